package assign

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

const (
	ARG_DELIVERY_ID = "DELIVERY_ID"
	ARG_COURIER_ID  = "COURIER_ID"
)

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Put a courier on a delivery.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_DELIVERY_ID, Required: true,
				Help: "id of the delivery",
			},
			{
				Name: ARG_COURIER_ID, Required: true,
				Help: "id of the courier account. See `pizza admin users --couriers`",
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
	if err := common.EnsureScreen(sess, access.DeliveryManagement); err != nil {
		return err
	}

	deliveryID, err := args.ParseID(ARG_DELIVERY_ID, cl.Args()[ARG_DELIVERY_ID][0])
	if err != nil {
		return err
	}
	courierID, err := args.ParseID(ARG_COURIER_ID, cl.Args()[ARG_COURIER_ID][0])
	if err != nil {
		return err
	}

	assigned, err := client.AssignCourier(
		ctx, deliveryID, apideliveries.CourierAssignment{CourierID: courierID},
	)
	if err != nil {
		return fmt.Errorf("%w: delivery #%d", err, deliveryID)
	}

	fmt.Fprintf(
		cl.Stdout(), "delivery #%d (order #%d) is %s to courier #%d\n",
		assigned.ID, assigned.OrderID, assigned.Status, courierID,
	)
	return nil
}
