package deliveries

import (
	"context"
	"encoding/json"
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

type Flags struct {
	Status   string `flag:"status" alias:"s" metavar:"PENDING|ASSIGNED|..." help:"show only deliveries in this status"`
	Courier  string `flag:"courier" metavar:"COURIER_ID" help:"show only deliveries of this courier"`
	Customer string `flag:"customer" metavar:"CUSTOMER_ID" help:"show only deliveries of this customer"`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"List deliveries, as JSON.",
		Flags{},
		flarc.Args{},
		common.NewTask(Task),
		flarc.WithDescription(`
List delivery records, optionally narrowed by status, courier or
customer. Filters combine with AND.
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
	if err := common.EnsureScreen(sess, access.DeliveryManagement); err != nil {
		return err
	}

	flags := cl.Flags()
	filter := apideliveries.Filter{
		Status: apideliveries.Status(strings.ToUpper(flags.Status)),
	}
	if flags.Courier != "" {
		id, err := args.ParseID("COURIER_ID", flags.Courier)
		if err != nil {
			return err
		}
		filter.CourierID = &id
	}
	if flags.Customer != "" {
		id, err := args.ParseID("CUSTOMER_ID", flags.Customer)
		if err != nil {
			return err
		}
		filter.CustomerID = &id
	}

	found, err := client.FindDeliveries(ctx, filter)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cl.Stdout())
	enc.SetIndent("", "    ")
	if err := enc.Encode(found); err != nil {
		logger.Panicf("fail to dump found deliveries")
	}
	return nil
}
