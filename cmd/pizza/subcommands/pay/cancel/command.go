package cancel

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

const ARG_ORDER_ID = "ORDER_ID"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Cancel an unpaid order.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_ORDER_ID, Required: true,
				Help: "id of the order to cancel",
			},
		},
		common.NewTask(Task),
		flarc.WithDescription(`
Mark an order CANCELLED before it is paid.

The order record stays; nothing is charged for it. Orders already in
the kitchen are the order service's call to refuse.
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

	orderID, err := args.ParseID(ARG_ORDER_ID, cl.Args()[ARG_ORDER_ID][0])
	if err != nil {
		return err
	}

	cancelled, err := client.UpdateOrderStatus(ctx, orderID, "CANCELLED")
	if err != nil {
		return fmt.Errorf("%w: order #%d", err, orderID)
	}

	fmt.Fprintf(cl.Stdout(), "order #%d is %s\n", cancelled.ID, cancelled.Status)
	return nil
}
