package pay

import (
	pay_cancel "github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/pay/cancel"
	pay_verify "github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/pay/verify"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {

	verify, err := pay_verify.New()
	if err != nil {
		return nil, err
	}
	cancel, err := pay_cancel.New()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Confirm or abandon a payment.",
		struct{}{},
		flarc.WithSubcommand("verify", verify),
		flarc.WithSubcommand("cancel", cancel),
	)
}
