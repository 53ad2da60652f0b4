package courier

import (
	courier_advance "github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/courier/advance"
	courier_list "github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/courier/list"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {

	list, err := courier_list.New()
	if err != nil {
		return nil, err
	}
	advance, err := courier_advance.New()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Work your delivery queue.",
		struct{}{},
		flarc.WithSubcommand("list", list),
		flarc.WithSubcommand("advance", advance),
	)
}
