package register

import (
	"context"
	"fmt"
	"log"

	"github.com/pizza-net/pizza-frontend/cmd/pizza/config/session"
	krst "github.com/pizza-net/pizza-frontend/cmd/pizza/rest"
	"github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/common"
	"github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/internal/prompt"
	apiusers "github.com/pizza-net/pizza-frontend/pkg/api/types/users"
	"github.com/youta-t/flarc"
)

type Option struct {
	client ClientFactory
}

// ClientFactory builds the client to register against.
type ClientFactory func(common.CommonFlags) (krst.StorefrontClient, error)

func WithClientFactory(f ClientFactory) func(*Option) *Option {
	return func(opt *Option) *Option {
		opt.client = f
		return opt
	}
}

const (
	ARG_USERNAME = "USERNAME"
	ARG_EMAIL    = "EMAIL"
)

func New(options ...func(*Option) *Option) (flarc.Command, error) {
	option := &Option{
		client: func(cf common.CommonFlags) (krst.StorefrontClient, error) {
			return common.Client(cf)
		},
	}
	for _, opt := range options {
		option = opt(option)
	}

	return flarc.NewCommand(
		"Create a new customer account.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_USERNAME, Required: true,
				Help: "name of the new account",
			},
			{
				Name: ARG_EMAIL, Required: true,
				Help: "email address of the new account",
			},
		},
		common.NewTaskWithCommonFlag(Task(option.client)),
		flarc.WithDescription(`
Create a new account on the pizza-net you are pointed at.

The password is read from stdin. When the auth service logs the new
account in right away, the session is stored and you are ready to order.
`),
	)
}

func Task(factory ClientFactory) common.TaskWithCommonFlag[struct{}] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		commonFlag common.CommonFlags,
		cl flarc.Commandline[struct{}],
		params []any,
	) error {
		username := cl.Args()[ARG_USERNAME][0]
		email := cl.Args()[ARG_EMAIL][0]

		password, err := prompt.Line(cl.Stdin(), cl.Stderr(), "password")
		if err != nil {
			return fmt.Errorf("%w: %s", flarc.ErrUsage, err)
		}

		client, err := factory(commonFlag)
		if err != nil {
			return err
		}

		result, err := client.Register(ctx, apiusers.Registration{
			Username: username, Email: email, Password: password,
		})
		if err != nil {
			return err
		}

		if result.Token != "" {
			store := session.NewStore(commonFlag.Session)
			if err := store.Save(session.FromLoginResult(result)); err != nil {
				return fmt.Errorf("%w: failed to store session", err)
			}
		}

		fmt.Fprintf(
			cl.Stdout(), "registered: %s (user id: %d)\n",
			result.Username, result.UserID,
		)
		return nil
	}
}
