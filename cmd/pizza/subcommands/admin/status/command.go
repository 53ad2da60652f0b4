package status

import (
	"context"
	"fmt"
	"log"
	"strings"

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
	ARG_STATUS      = "STATUS"
)

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Set a delivery's status by hand.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_DELIVERY_ID, Required: true,
				Help: "id of the delivery",
			},
			{
				Name: ARG_STATUS, Required: true,
				Help: "new status: pending, assigned, picked_up, in_transit, delivered or cancelled",
			},
		},
		common.NewTask(Task),
		flarc.WithDescription(`
Set a delivery's status to an arbitrary value, forward or backward.

Couriers go one step at a time with "pizza courier advance"; this is
the dispatcher's override for correcting mistakes and cancelling.
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

	deliveryID, err := args.ParseID(ARG_DELIVERY_ID, cl.Args()[ARG_DELIVERY_ID][0])
	if err != nil {
		return err
	}
	status := apideliveries.Status(strings.ToUpper(cl.Args()[ARG_STATUS][0]))

	updated, err := client.UpdateDeliveryStatus(
		ctx, deliveryID, apideliveries.StatusChange{Status: status},
	)
	if err != nil {
		return fmt.Errorf("%w: delivery #%d", err, deliveryID)
	}

	fmt.Fprintf(
		cl.Stdout(), "delivery #%d (order #%d) is now %s\n",
		updated.ID, updated.OrderID, updated.Status,
	)
	return nil
}
