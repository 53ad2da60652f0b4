package dispatch

import (
	"context"
	"fmt"
	"log"

	"github.com/pizza-net/pizza-frontend/cmd/pizza/config/cartfile"
	"github.com/pizza-net/pizza-frontend/cmd/pizza/config/session"
	krst "github.com/pizza-net/pizza-frontend/cmd/pizza/rest"
	"github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/common"
	"github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/internal/args"
	apideliveries "github.com/pizza-net/pizza-frontend/pkg/api/types/deliveries"
	"github.com/pizza-net/pizza-frontend/pkg/access"
	"github.com/youta-t/flarc"
)

const ARG_ORDER_ID = "ORDER_ID"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Open a delivery record for an order.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_ORDER_ID, Required: true,
				Help: "id of the order to dispatch",
			},
		},
		common.NewTask(Task),
		flarc.WithDescription(`
Open a PENDING delivery record for an order, taking the address and
phone number from the order itself. Assign a courier to it with
"pizza admin assign".
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
	if err := common.EnsureScreen(sess, access.DeliveryManagement); err != nil {
		return err
	}

	orderID, err := args.ParseID(ARG_ORDER_ID, cl.Args()[ARG_ORDER_ID][0])
	if err != nil {
		return err
	}

	order, err := client.GetOrder(ctx, orderID)
	if err != nil {
		return fmt.Errorf("%w: order #%d", err, orderID)
	}

	created, err := client.CreateDelivery(ctx, apideliveries.Spec{
		OrderID:         order.ID,
		CustomerID:      order.CustomerID,
		DeliveryAddress: order.DeliveryAddress,
		CustomerPhone:   order.CustomerPhone,
		Notes:           order.Notes,
	})
	if err != nil {
		return fmt.Errorf("%w: order #%d", err, orderID)
	}

	fmt.Fprintf(
		cl.Stdout(), "delivery #%d is open for order #%d (%s)\n",
		created.ID, created.OrderID, created.Status,
	)
	return nil
}
