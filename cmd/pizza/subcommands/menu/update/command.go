package update

import (
	"context"
	"fmt"
	"log"

	"github.com/pizza-net/pizza-frontend/cmd/pizza/config/cartfile"
	"github.com/pizza-net/pizza-frontend/cmd/pizza/config/session"
	krst "github.com/pizza-net/pizza-frontend/cmd/pizza/rest"
	"github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/common"
	"github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/internal/args"
	menu_add "github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/menu/add"
	"github.com/pizza-net/pizza-frontend/pkg/access"
	"github.com/youta-t/flarc"
)

const ARG_PIZZA_ID = "PIZZA_ID"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Replace a menu entry.",
		menu_add.Flags{
			Size:      "medium",
			Available: true,
		},
		flarc.Args{
			{
				Name: ARG_PIZZA_ID, Required: true,
				Help: "id of the pizza to update",
			},
		},
		common.NewTask(Task),
		flarc.WithDescription(`
Replace a menu entry wholesale. Admins only.

All fields are replaced with the flag values, so pass every field, not
just the changed ones. To take a pizza off the menu temporarily, pass
--available=false; to remove it for good, use "pizza menu rm".
`),
	)
}

func Task(
	ctx context.Context,
	logger *log.Logger,
	sess session.Session,
	cartStore *cartfile.Store,
	client krst.StorefrontClient,
	cl flarc.Commandline[menu_add.Flags],
	params []any,
) error {
	if err := common.EnsureScreen(sess, access.MenuManagement); err != nil {
		return err
	}

	pizzaID, err := args.ParseID(ARG_PIZZA_ID, cl.Args()[ARG_PIZZA_ID][0])
	if err != nil {
		return err
	}

	spec, err := menu_add.ParseSpec(cl.Flags())
	if err != nil {
		return err
	}

	updated, err := client.UpdatePizza(ctx, pizzaID, spec)
	if err != nil {
		return err
	}

	note := ""
	if !updated.Available {
		note = ", not available"
	}
	fmt.Fprintf(
		cl.Stdout(), "updated: #%d %s (%s, $%.2f%s)\n",
		updated.ID, updated.Name, updated.Size, updated.Price, note,
	)
	return nil
}
