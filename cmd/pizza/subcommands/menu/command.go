package menu

import (
	menu_add "github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/menu/add"
	menu_list "github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/menu/list"
	menu_rm "github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/menu/rm"
	menu_update "github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/menu/update"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {

	list, err := menu_list.New()
	if err != nil {
		return nil, err
	}
	add, err := menu_add.New()
	if err != nil {
		return nil, err
	}
	update, err := menu_update.New()
	if err != nil {
		return nil, err
	}
	rm, err := menu_rm.New()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Browse and manage the menu.",
		struct{}{},
		flarc.WithSubcommand("list", list),
		flarc.WithSubcommand("add", add),
		flarc.WithSubcommand("update", update),
		flarc.WithSubcommand("rm", rm),
	)
}
