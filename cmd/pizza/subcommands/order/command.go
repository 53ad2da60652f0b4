package order

import (
	order_list "github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/order/list"
	order_rm "github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/order/rm"
	order_show "github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/order/show"
	order_submit "github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/order/submit"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {

	submit, err := order_submit.New()
	if err != nil {
		return nil, err
	}
	list, err := order_list.New()
	if err != nil {
		return nil, err
	}
	show, err := order_show.New()
	if err != nil {
		return nil, err
	}
	rm, err := order_rm.New()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Submit and inspect orders.",
		struct{}{},
		flarc.WithSubcommand("submit", submit),
		flarc.WithSubcommand("list", list),
		flarc.WithSubcommand("show", show),
		flarc.WithSubcommand("rm", rm),
	)
}
