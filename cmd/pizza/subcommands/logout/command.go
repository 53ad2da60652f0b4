package logout

import (
	"context"
	"fmt"
	"log"

	"github.com/pizza-net/pizza-frontend/cmd/pizza/config/session"
	"github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/common"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Drop the stored session.",
		struct{}{},
		flarc.Args{},
		common.NewTaskWithCommonFlag(Task),
		flarc.WithDescription(`
Forget the stored session. The token is not revoked on the server; it
just stops being presented. Logging out while logged out is fine.
`),
	)
}

func Task(
	ctx context.Context,
	logger *log.Logger,
	commonFlag common.CommonFlags,
	cl flarc.Commandline[struct{}],
	params []any,
) error {
	if err := session.NewStore(commonFlag.Session).Clear(); err != nil {
		return fmt.Errorf("%w: failed to drop session", err)
	}
	fmt.Fprintln(cl.Stdout(), "logged out")
	return nil
}
