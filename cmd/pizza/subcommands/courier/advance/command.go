package advance

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

const ARG_DELIVERY_ID = "DELIVERY_ID"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Push a delivery one step along the route.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_DELIVERY_ID, Required: true,
				Help: "id of the delivery to advance",
			},
		},
		common.NewTask(Task),
		flarc.WithDescription(`
Move a delivery one step forward:

	ASSIGNED -> PICKED_UP -> IN_TRANSIT -> DELIVERED

Deliveries go forward only, one step at a time. A PENDING delivery
waits for the dispatcher; DELIVERED and CANCELLED are final.
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
	if err := common.EnsureScreen(sess, access.CourierPanel); err != nil {
		return err
	}

	deliveryID, err := args.ParseID(ARG_DELIVERY_ID, cl.Args()[ARG_DELIVERY_ID][0])
	if err != nil {
		return err
	}

	advanced, err := client.AdvanceDelivery(ctx, deliveryID)
	if err != nil {
		return fmt.Errorf("%w: delivery #%d", err, deliveryID)
	}

	fmt.Fprintf(
		cl.Stdout(), "delivery #%d (order #%d) is now %s\n",
		advanced.ID, advanced.OrderID, advanced.Status,
	)
	return nil
}
