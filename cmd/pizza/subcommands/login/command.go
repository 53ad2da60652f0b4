package login

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

// ClientFactory builds the client to log in against.
type ClientFactory func(common.CommonFlags) (krst.StorefrontClient, error)

func WithClientFactory(f ClientFactory) func(*Option) *Option {
	return func(opt *Option) *Option {
		opt.client = f
		return opt
	}
}

const ARG_USERNAME = "USERNAME"

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
		"Log in and store the session.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_USERNAME, Required: true,
				Help: "name of your account",
			},
		},
		common.NewTaskWithCommonFlag(Task(option.client)),
		flarc.WithDescription(`
Exchange your credentials for a token and keep it in the session file.

The password is read from stdin. Commands needing identity use the
stored session until "pizza logout", or until the gateway rejects the
token and the session is dropped.
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

		password, err := prompt.Line(cl.Stdin(), cl.Stderr(), "password")
		if err != nil {
			return fmt.Errorf("%w: %s", flarc.ErrUsage, err)
		}

		client, err := factory(commonFlag)
		if err != nil {
			return err
		}

		result, err := client.Login(ctx, apiusers.Credentials{
			Username: username, Password: password,
		})
		if err != nil {
			return err
		}

		store := session.NewStore(commonFlag.Session)
		if err := store.Save(session.FromLoginResult(result)); err != nil {
			return fmt.Errorf("%w: failed to store session", err)
		}

		fmt.Fprintf(
			cl.Stdout(), "logged in as %s (role: %s)\n",
			result.Username, result.Role,
		)
		return nil
	}
}
