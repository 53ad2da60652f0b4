package whoami

import (
	"context"
	"fmt"
	"log"

	"github.com/pizza-net/pizza-frontend/cmd/pizza/config/cartfile"
	"github.com/pizza-net/pizza-frontend/cmd/pizza/config/session"
	krst "github.com/pizza-net/pizza-frontend/cmd/pizza/rest"
	"github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/common"
	"github.com/youta-t/flarc"
)

type Flags struct {
	Verify bool `flag:"verify" help:"ask the auth service whether the stored token is still good"`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Show who you are logged in as.",
		Flags{},
		flarc.Args{},
		common.NewTask(Task),
		flarc.WithDescription(`
Show the identity in the stored session.

With --verify, also ask the auth service whether the token is still
accepted. The check is read-only; an invalid token is reported, not
dropped.
`),
	)
}

func Task(
	ctx context.Context,
	logger *log.Logger,
	sess session.Session,
	cartStore *cartfile.Store,
	client krst.StorefrontClient,
	cl flarc.Commandline[Flags],
	params []any,
) error {
	if !sess.IsAuthenticated() {
		return session.ErrNotLoggedIn
	}

	fmt.Fprintf(cl.Stdout(), "username: %s\n", sess.Username)
	fmt.Fprintf(cl.Stdout(), "user id: %d\n", sess.UserID)
	fmt.Fprintf(cl.Stdout(), "role: %s\n", sess.Role)

	if cl.Flags().Verify {
		ok, err := client.VerifyToken(ctx)
		if err != nil {
			return err
		}
		if ok {
			fmt.Fprintln(cl.Stdout(), "token: valid")
		} else {
			fmt.Fprintln(cl.Stdout(), "token: rejected by the auth service")
		}
	}
	return nil
}
