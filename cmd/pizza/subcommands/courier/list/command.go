package list

import (
	"context"
	"fmt"
	"log"

	"github.com/pizza-net/pizza-frontend/cmd/pizza/config/cartfile"
	"github.com/pizza-net/pizza-frontend/cmd/pizza/config/session"
	krst "github.com/pizza-net/pizza-frontend/cmd/pizza/rest"
	"github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/common"
	apideliveries "github.com/pizza-net/pizza-frontend/pkg/api/types/deliveries"
	"github.com/pizza-net/pizza-frontend/pkg/access"
	"github.com/youta-t/flarc"
)

type Flags struct {
	Status string `flag:"status" alias:"s" metavar:"ASSIGNED|PICKED_UP|..." help:"show only deliveries in this status"`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"List the deliveries assigned to you.",
		Flags{},
		flarc.Args{},
		common.NewTask(Task),
		flarc.WithDescription(`
List the deliveries assigned to you, one line each.

Push one forward with "pizza courier advance DELIVERY_ID".
`),
	)
}

func Task(
	ctx context.Context,
	logger *log.Logger,
	sess session.Session,
	cartStore *cartfile.Store,
	client krst.StorefrontClient,
	cl flarc.Commandline[Flags],
	params []any,
) error {
	if err := common.EnsureScreen(sess, access.CourierPanel); err != nil {
		return err
	}

	me := sess.UserID
	deliveries, err := client.FindDeliveries(ctx, apideliveries.Filter{
		Status:    apideliveries.Status(cl.Flags().Status),
		CourierID: &me,
	})
	if err != nil {
		return err
	}

	out := cl.Stdout()
	if len(deliveries) == 0 {
		fmt.Fprintln(out, "nothing to deliver")
		return nil
	}
	for _, d := range deliveries {
		fmt.Fprintf(
			out, "#%d\torder #%d\t%s\t%s\t%s\n",
			d.ID, d.OrderID, d.Status, d.DeliveryAddress, d.CustomerPhone,
		)
	}
	return nil
}
