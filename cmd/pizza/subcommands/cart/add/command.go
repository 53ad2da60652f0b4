package add

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
	apipizzas "github.com/pizza-net/pizza-frontend/pkg/api/types/pizzas"
	"github.com/pizza-net/pizza-frontend/pkg/utils/slices"
	"github.com/youta-t/flarc"
)

const ARG_PIZZA_ID = "PIZZA_ID"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Put one more pizza into the cart.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_PIZZA_ID, Required: true,
				Help: "id of the pizza, as shown by `pizza menu list`",
			},
		},
		common.NewTask(Task),
		flarc.WithDescription(`
Put one more of the given pizza into your cart.

The pizza has to be on the menu and available. Adding a pizza already
in the cart bumps its quantity by one.
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
	if err := common.EnsureScreen(sess, access.Cart); err != nil {
		return err
	}

	pizzaID, err := args.ParseID(ARG_PIZZA_ID, cl.Args()[ARG_PIZZA_ID][0])
	if err != nil {
		return err
	}

	menu, err := client.FindPizzas(ctx)
	if err != nil {
		return err
	}

	p, ok := slices.First(menu, func(p apipizzas.Detail) bool { return p.ID == pizzaID })
	if !ok {
		return fmt.Errorf("pizza #%d is not on the menu", pizzaID)
	}
	if !p.Available {
		return fmt.Errorf("pizza #%d (%s) is not available right now", p.ID, p.Name)
	}

	c, err := cartStore.Load()
	if err != nil {
		return err
	}
	c.Add(p)
	if err := cartStore.Save(c); err != nil {
		return err
	}

	fmt.Fprintf(
		cl.Stdout(), "added: %s ($%.2f). cart total: $%.2f\n",
		p.Name, p.Price, c.Total(),
	)
	return nil
}
