package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path"

	subadmin "github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/admin"
	subcart "github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/cart"
	"github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/common"
	subcourier "github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/courier"
	subinit "github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/init"
	"github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/logger"
	sublogin "github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/login"
	sublogout "github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/logout"
	submenu "github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/menu"
	suborder "github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/order"
	subpay "github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/pay"
	subregister "github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/register"
	subtrack "github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/track"
	subver "github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/version"
	subwhoami "github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/whoami"
	"github.com/pizza-net/pizza-frontend/pkg/utils/try"
	"github.com/youta-t/flarc"
)

func main() {
	name := path.Base(os.Args[0])
	logger := logger.Default()
	logger.SetPrefix(fmt.Sprintf("[%s] ", name))

	ctx, cancel := signal.NotifyContext(
		context.Background(), os.Interrupt, os.Kill,
	)
	defer cancel()

	cf := try.To(common.Flags(".")).OrFatal(logger)
	init := try.To(subinit.New()).OrFatal(logger)
	register := try.To(subregister.New()).OrFatal(logger)
	login := try.To(sublogin.New()).OrFatal(logger)
	logout := try.To(sublogout.New()).OrFatal(logger)
	whoami := try.To(subwhoami.New()).OrFatal(logger)
	menu := try.To(submenu.New()).OrFatal(logger)
	cart := try.To(subcart.New()).OrFatal(logger)
	order := try.To(suborder.New()).OrFatal(logger)
	pay := try.To(subpay.New()).OrFatal(logger)
	track := try.To(subtrack.New()).OrFatal(logger)
	courier := try.To(subcourier.New()).OrFatal(logger)
	admin := try.To(subadmin.New()).OrFatal(logger)
	version := try.To(subver.New()).OrFatal(logger)

	pizza := try.To(
		flarc.NewCommandGroup(
			"Pizza-net commandline storefront",
			cf,
			flarc.WithSubcommand("init", init),
			flarc.WithSubcommand("register", register),
			flarc.WithSubcommand("login", login),
			flarc.WithSubcommand("logout", logout),
			flarc.WithSubcommand("whoami", whoami),
			flarc.WithSubcommand("menu", menu),
			flarc.WithSubcommand("cart", cart),
			flarc.WithSubcommand("order", order),
			flarc.WithSubcommand("pay", pay),
			flarc.WithSubcommand("track", track),
			flarc.WithSubcommand("courier", courier),
			flarc.WithSubcommand("admin", admin),
			flarc.WithSubcommand("version", version),
		),
	).OrFatal(logger)

	os.Exit(flarc.Run(ctx, pizza, flarc.WithHelp(true)))
}
