package rm

import (
	"context"
	"fmt"
	"log"

	"github.com/pizza-net/pizza-frontend/cmd/pizza/config/cartfile"
	"github.com/pizza-net/pizza-frontend/cmd/pizza/config/session"
	krst "github.com/pizza-net/pizza-frontend/cmd/pizza/rest"
	"github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/common"
	"github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/internal/args"
	"github.com/pizza-net/pizza-frontend/pkg/access"
	"github.com/youta-t/flarc"
)

const ARG_PIZZA_ID = "PIZZA_ID"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Take a pizza off the menu.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_PIZZA_ID, Required: true,
				Help: "id of the pizza to remove",
			},
		},
		common.NewTask(Task),
		flarc.WithDescription(`
Remove a menu entry for good. Admins only.
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
	if err := common.EnsureScreen(sess, access.MenuManagement); err != nil {
		return err
	}

	pizzaID, err := args.ParseID(ARG_PIZZA_ID, cl.Args()[ARG_PIZZA_ID][0])
	if err != nil {
		return err
	}

	if err := client.DeletePizza(ctx, pizzaID); err != nil {
		return err
	}
	fmt.Fprintf(cl.Stdout(), "removed from the menu: #%d\n", pizzaID)
	return nil
}
