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

const ARG_ORDER_ID = "ORDER_ID"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Delete an order.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_ORDER_ID, Required: true,
				Help: "id of the order to delete",
			},
		},
		common.NewTask(Task),
		flarc.WithDescription(`
Delete an order record. The order service decides whose orders you may
delete; ordinary customers can only touch their own.
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
	if err := common.EnsureScreen(sess, access.OrderTracking); err != nil {
		return err
	}

	orderID, err := args.ParseID(ARG_ORDER_ID, cl.Args()[ARG_ORDER_ID][0])
	if err != nil {
		return err
	}

	if err := client.DeleteOrder(ctx, orderID); err != nil {
		return fmt.Errorf("%w: order #%d", err, orderID)
	}
	fmt.Fprintf(cl.Stdout(), "deleted: order #%d\n", orderID)
	return nil
}
