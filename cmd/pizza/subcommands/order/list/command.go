package list

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
		"List your orders.",
		struct{}{},
		flarc.Args{},
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
	if err := common.EnsureScreen(sess, access.OrderTracking); err != nil {
		return err
	}

	orders, err := client.FindOrders(ctx, sess.UserID)
	if err != nil {
		return err
	}

	out := cl.Stdout()
	if len(orders) == 0 {
		fmt.Fprintln(out, "no orders yet")
		return nil
	}
	for _, o := range orders {
		fmt.Fprintf(
			out, "#%d\t%s\t%s\t$%.2f\n",
			o.ID, o.OrderDate.Time().Format("2006-01-02 15:04"), o.Status, o.TotalPrice,
		)
	}
	return nil
}
