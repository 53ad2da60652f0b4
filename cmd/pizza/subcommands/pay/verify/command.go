package verify

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

const ARG_SESSION_ID = "SESSION_ID"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Confirm a payment after coming back from the payment page.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_SESSION_ID, Required: true,
				Help: "payment session id, printed by `pizza order submit`",
			},
		},
		common.NewTask(Task),
		flarc.WithDescription(`
Ask the payment service whether the given session is paid.

"{{ .Command }}" can run in a different terminal, or after a reboot;
the session id is all it needs.
`),
	)
}

func Task(
	ctx context.Context,
	logger *log.Logger,
	sess session.Session,
	cartStore *cartfile.Store,
	client krst.StorefrontClient,
	cl flarc.Commandline[struct{}],
	params []any,
) error {
	if err := common.EnsureScreen(sess, access.Cart); err != nil {
		return err
	}

	result, err := checkout.Verify(ctx, client, cl.Args()[ARG_SESSION_ID][0])
	if err != nil {
		return err
	}

	fmt.Fprintf(
		cl.Stdout(), "order #%d: payment %s ($%.2f, payment id: %s)\n",
		result.OrderID, result.Status, result.Amount, result.PaymentID,
	)
	return nil
}
