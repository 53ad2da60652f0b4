package list

import (
	"context"
	"fmt"
	"log"

	"github.com/pizza-net/pizza-frontend/cmd/pizza/config/cartfile"
	"github.com/pizza-net/pizza-frontend/cmd/pizza/config/session"
	krst "github.com/pizza-net/pizza-frontend/cmd/pizza/rest"
	"github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/common"
	"github.com/youta-t/flarc"
)

type Flags struct {
	All bool `flag:"all" alias:"a" help:"also show pizzas currently not available"`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Show the menu.",
		Flags{},
		flarc.Args{},
		common.NewTask(Task),
		flarc.WithDescription(`
Show the menu of the pizza-net you are pointed at.

Pizzas marked unavailable are hidden unless --all is passed. No login
is needed to look at the menu.
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
	menu, err := client.FindPizzas(ctx)
	if err != nil {
		return err
	}

	out := cl.Stdout()
	for _, p := range menu {
		if !p.Available && !cl.Flags().All {
			continue
		}
		note := ""
		if !p.Available {
			note = "  (not available)"
		}
		fmt.Fprintf(out, "#%d\t%s\t%s\t$%.2f%s\n", p.ID, p.Name, p.Size, p.Price, note)
		if p.Description != "" {
			fmt.Fprintf(out, "\t%s\n", p.Description)
		}
	}
	return nil
}
