package cart

import (
	cart_add "github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/cart/add"
	cart_clear "github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/cart/clear"
	cart_rm "github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/cart/rm"
	cart_set "github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/cart/set"
	cart_show "github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/cart/show"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {

	show, err := cart_show.New()
	if err != nil {
		return nil, err
	}
	add, err := cart_add.New()
	if err != nil {
		return nil, err
	}
	rm, err := cart_rm.New()
	if err != nil {
		return nil, err
	}
	set, err := cart_set.New()
	if err != nil {
		return nil, err
	}
	clear, err := cart_clear.New()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Fill your cart before ordering.",
		struct{}{},
		flarc.WithSubcommand("show", show),
		flarc.WithSubcommand("add", add),
		flarc.WithSubcommand("rm", rm),
		flarc.WithSubcommand("set", set),
		flarc.WithSubcommand("clear", clear),
	)
}
