package submit

import (
	"context"
	"fmt"
	"log"

	"github.com/pizza-net/pizza-frontend/cmd/pizza/config/cartfile"
	"github.com/pizza-net/pizza-frontend/cmd/pizza/config/session"
	krst "github.com/pizza-net/pizza-frontend/cmd/pizza/rest"
	"github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/common"
	"github.com/pizza-net/pizza-frontend/pkg/access"
	"github.com/pizza-net/pizza-frontend/pkg/checkout"
	"github.com/youta-t/flarc"
)

type Flags struct {
	Name    string `flag:"name" help:"who receives the order. Defaults to your username"`
	Address string `flag:"address" alias:"a" help:"where to deliver"`
	Phone   string `flag:"phone" alias:"p" help:"phone number for the courier"`
	Notes   string `flag:"notes" help:"notes for the kitchen or the courier"`
	Email   string `flag:"email" help:"email address for the payment receipt"`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Turn the cart into an order and start the payment.",
		Flags{},
		flarc.Args{},
		common.NewTask(Task),
		flarc.WithDescription(`
Submit your cart as an order, then open a payment session for it.

The order service computes the price from its own menu; that total is
the one charged, whatever the cart said. On success the cart is
emptied and a checkout URL is printed. Open it in a browser, pay, and
confirm with:

	{{ .Command }}   (prints the session id)
	pizza pay verify SESSION_ID

If the payment session cannot be opened, the order still exists and
nothing is charged. Do not resubmit the same cart; check the order
with "pizza order list" and cancel it with "pizza pay cancel" if you
changed your mind.
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
	if err := common.EnsureScreen(sess, access.Cart); err != nil {
		return err
	}

	c, err := cartStore.Load()
	if err != nil {
		return err
	}

	flags := cl.Flags()
	name := flags.Name
	if name == "" {
		name = sess.Username
	}

	orch := checkout.New(client, checkout.Customer{ID: sess.UserID, Name: sess.Username})

	created, err := orch.Submit(ctx, c, checkout.Contact{
		Name:    name,
		Address: flags.Address,
		Phone:   flags.Phone,
		Notes:   flags.Notes,
	})
	if err != nil {
		return err
	}

	out := cl.Stdout()
	fmt.Fprintf(out, "order #%d is created. total: $%.2f\n", created.ID, created.TotalPrice)
	if created.TotalPrice != c.Total() {
		logger.Printf(
			"the order service priced your order at $%.2f (your cart said $%.2f); the server price is the one charged",
			created.TotalPrice, c.Total(),
		)
	}

	if err := cartStore.Clear(); err != nil {
		logger.Printf("failed to empty the cart: %s", err)
	}

	psession, err := orch.StartPayment(ctx, flags.Email)
	if err != nil {
		logger.Printf(
			"order #%d exists, but opening a payment session failed. Nothing is charged yet.",
			created.ID,
		)
		return err
	}

	fmt.Fprintf(out, "pay here: %s\n", psession.CheckoutURL)
	fmt.Fprintf(out, "after paying, run: pizza pay verify %s\n", psession.SessionID)
	return nil
}
