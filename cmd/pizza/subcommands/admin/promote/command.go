package promote

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/pizza-net/pizza-frontend/cmd/pizza/config/cartfile"
	"github.com/pizza-net/pizza-frontend/cmd/pizza/config/session"
	krst "github.com/pizza-net/pizza-frontend/cmd/pizza/rest"
	"github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/common"
	"github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/internal/args"
	apiusers "github.com/pizza-net/pizza-frontend/pkg/api/types/users"
	"github.com/pizza-net/pizza-frontend/pkg/access"
	"github.com/youta-t/flarc"
)

const (
	ARG_USER_ID = "USER_ID"
	ARG_ROLE    = "ROLE"
)

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Change the role of an account.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_USER_ID, Required: true,
				Help: "id of the account",
			},
			{
				Name: ARG_ROLE, Required: true,
				Help: "new role: user, courier or admin",
			},
		},
		common.NewTask(Task),
		flarc.WithDescription(`
Change the role of an account, e.g. make a customer a courier.

The change takes effect on that account's next login.
`),
	)
}

func Task(
	ctx context.Context,
	logger *log.Logger,
	sess session.Session,
	cartStore *cartfile.Store,
	client krst.StorefrontClient,
	cl flarc.Commandline[struct{}],
	params []any,
) error {
	if err := common.EnsureScreen(sess, access.UserManagement); err != nil {
		return err
	}

	userID, err := args.ParseID(ARG_USER_ID, cl.Args()[ARG_USER_ID][0])
	if err != nil {
		return err
	}

	role := apiusers.Role(strings.ToUpper(cl.Args()[ARG_ROLE][0]))
	if !apiusers.KnownRole(role) {
		return fmt.Errorf(
			"%w: unknown role %q. Pick one of user, courier, admin",
			flarc.ErrUsage, cl.Args()[ARG_ROLE][0],
		)
	}

	updated, err := client.UpdateUserRole(ctx, userID, apiusers.RoleChange{Role: role})
	if err != nil {
		return fmt.Errorf("%w: user #%d", err, userID)
	}

	fmt.Fprintf(
		cl.Stdout(), "%s (user #%d) is now %s\n",
		updated.Username, updated.ID, updated.Role,
	)
	return nil
}
