package rmdelivery

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
		"Delete a delivery record.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_DELIVERY_ID, Required: true,
				Help: "id of the delivery to delete",
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

	if err := client.DeleteDelivery(ctx, deliveryID); err != nil {
		return fmt.Errorf("%w: delivery #%d", err, deliveryID)
	}
	fmt.Fprintf(cl.Stdout(), "deleted: delivery #%d\n", deliveryID)
	return nil
}
