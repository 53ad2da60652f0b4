package users

import (
	"context"
	"encoding/json"
	"log"

	"github.com/pizza-net/pizza-frontend/cmd/pizza/config/cartfile"
	"github.com/pizza-net/pizza-frontend/cmd/pizza/config/session"
	krst "github.com/pizza-net/pizza-frontend/cmd/pizza/rest"
	"github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/common"
	apiusers "github.com/pizza-net/pizza-frontend/pkg/api/types/users"
	"github.com/pizza-net/pizza-frontend/pkg/access"
	"github.com/youta-t/flarc"
)

type Flags struct {
	Couriers bool `flag:"couriers" help:"list only accounts with the COURIER role"`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"List accounts, as JSON.",
		Flags{},
		flarc.Args{},
		common.NewTask(Task),
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
	if err := common.EnsureScreen(sess, access.UserManagement); err != nil {
		return err
	}

	var found []apiusers.Summary
	var err error
	if cl.Flags().Couriers {
		found, err = client.FindCouriers(ctx)
	} else {
		found, err = client.FindUsers(ctx)
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cl.Stdout())
	enc.SetIndent("", "    ")
	if err := enc.Encode(found); err != nil {
		logger.Panicf("fail to dump found accounts")
	}
	return nil
}
