package admin

import (
	admin_assign "github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/admin/assign"
	admin_deliveries "github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/admin/deliveries"
	admin_dispatch "github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/admin/dispatch"
	admin_promote "github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/admin/promote"
	admin_rmdelivery "github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/admin/rmdelivery"
	admin_status "github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/admin/status"
	admin_users "github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/admin/users"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {

	users, err := admin_users.New()
	if err != nil {
		return nil, err
	}
	promote, err := admin_promote.New()
	if err != nil {
		return nil, err
	}
	deliveries, err := admin_deliveries.New()
	if err != nil {
		return nil, err
	}
	dispatch, err := admin_dispatch.New()
	if err != nil {
		return nil, err
	}
	assign, err := admin_assign.New()
	if err != nil {
		return nil, err
	}
	status, err := admin_status.New()
	if err != nil {
		return nil, err
	}
	rmDelivery, err := admin_rmdelivery.New()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Back-office operations.",
		struct{}{},
		flarc.WithSubcommand("users", users),
		flarc.WithSubcommand("promote", promote),
		flarc.WithSubcommand("deliveries", deliveries),
		flarc.WithSubcommand("dispatch", dispatch),
		flarc.WithSubcommand("assign", assign),
		flarc.WithSubcommand("status", status),
		flarc.WithSubcommand("rm-delivery", rmDelivery),
	)
}
