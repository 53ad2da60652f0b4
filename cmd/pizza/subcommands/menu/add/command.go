package add

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/pizza-net/pizza-frontend/cmd/pizza/config/cartfile"
	"github.com/pizza-net/pizza-frontend/cmd/pizza/config/session"
	krst "github.com/pizza-net/pizza-frontend/cmd/pizza/rest"
	"github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/common"
	apipizzas "github.com/pizza-net/pizza-frontend/pkg/api/types/pizzas"
	"github.com/pizza-net/pizza-frontend/pkg/access"
	"github.com/youta-t/flarc"
)

type Flags struct {
	Name        string `flag:"name" alias:"n" help:"name of the new pizza"`
	Description string `flag:"description" help:"description shown on the menu"`
	Price       string `flag:"price" alias:"p" metavar:"29.99" help:"price of the new pizza"`
	Size        string `flag:"size" alias:"s" metavar:"small|medium|large" help:"size of the new pizza"`
	ImageURL    string `flag:"image-url" help:"URL of the menu picture"`
	Available   bool   `flag:"available" help:"whether the pizza can be ordered right away"`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Put a new pizza on the menu.",
		Flags{
			Size:      "medium",
			Available: true,
		},
		flarc.Args{},
		common.NewTask(Task),
		flarc.WithDescription(`
Put a new pizza on the menu. Admins only.
`),
	)
}

// ParseSpec turns the command flags into a menu spec.
func ParseSpec(flags Flags) (apipizzas.Spec, error) {
	price, err := strconv.ParseFloat(flags.Price, 64)
	if err != nil {
		return apipizzas.Spec{}, fmt.Errorf(
			"%w: --price must be a number, got %q", flarc.ErrUsage, flags.Price,
		)
	}
	return apipizzas.Spec{
		Name:        flags.Name,
		Description: flags.Description,
		Price:       price,
		Size:        apipizzas.Size(strings.ToUpper(flags.Size)),
		Available:   flags.Available,
		ImageURL:    flags.ImageURL,
	}, nil
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
	if err := common.EnsureScreen(sess, access.MenuManagement); err != nil {
		return err
	}

	spec, err := ParseSpec(cl.Flags())
	if err != nil {
		return err
	}

	created, err := client.AddPizza(ctx, spec)
	if err != nil {
		return err
	}

	fmt.Fprintf(
		cl.Stdout(), "added to the menu: #%d %s (%s, $%.2f)\n",
		created.ID, created.Name, created.Size, created.Price,
	)
	return nil
}
