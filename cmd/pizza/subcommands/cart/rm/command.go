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
		"Drop a line from the cart.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_PIZZA_ID, Required: true,
				Help: "id of the pizza to drop, whatever its quantity",
			},
		},
		common.NewTask(Task),
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
	if err := common.EnsureScreen(sess, access.Cart); err != nil {
		return err
	}

	pizzaID, err := args.ParseID(ARG_PIZZA_ID, cl.Args()[ARG_PIZZA_ID][0])
	if err != nil {
		return err
	}

	c, err := cartStore.Load()
	if err != nil {
		return err
	}
	c.Remove(pizzaID)
	if err := cartStore.Save(c); err != nil {
		return err
	}

	fmt.Fprintf(cl.Stdout(), "removed #%d. cart total: $%.2f\n", pizzaID, c.Total())
	return nil
}
