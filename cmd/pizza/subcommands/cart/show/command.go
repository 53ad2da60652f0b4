package show

import (
	"context"
	"fmt"
	"log"

	"github.com/pizza-net/pizza-frontend/cmd/pizza/config/cartfile"
	"github.com/pizza-net/pizza-frontend/cmd/pizza/config/session"
	krst "github.com/pizza-net/pizza-frontend/cmd/pizza/rest"
	"github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/common"
	"github.com/pizza-net/pizza-frontend/pkg/access"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Show the cart.",
		struct{}{},
		flarc.Args{},
		common.NewTask(Task),
		flarc.WithDescription(`
Show what is in your cart, line by line, with the running total.

The total shown here is the cart's own arithmetic. The price that
counts is computed by the order service at "pizza order submit".
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

	c, err := cartStore.Load()
	if err != nil {
		return err
	}

	out := cl.Stdout()
	if c.IsEmpty() {
		fmt.Fprintln(out, "your cart is empty")
		return nil
	}

	for _, l := range c.Lines() {
		fmt.Fprintf(
			out, "#%d\t%s\t$%.2f x %d\t= $%.2f\n",
			l.PizzaID, l.Name, l.UnitPrice, l.Quantity,
			l.UnitPrice*float64(l.Quantity),
		)
	}
	fmt.Fprintf(out, "total: $%.2f (%d items)\n", c.Total(), c.ItemCount())
	return nil
}
