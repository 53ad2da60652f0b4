package track

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/pizza-net/pizza-frontend/cmd/pizza/config/cartfile"
	"github.com/pizza-net/pizza-frontend/cmd/pizza/config/session"
	krst "github.com/pizza-net/pizza-frontend/cmd/pizza/rest"
	"github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/common"
	"github.com/pizza-net/pizza-frontend/pkg/access"
	"github.com/pizza-net/pizza-frontend/pkg/tracking"
	"github.com/youta-t/flarc"
)

type Flags struct {
	Watch    bool          `flag:"watch" alias:"w" help:"keep polling until every delivery is done"`
	Interval time.Duration `flag:"interval" help:"polling interval with --watch"`
}

const progressBar pb.ProgressBarTemplate = `{{with string . "prefix"}}{{.}} {{end}}{{bar . "[" "=" ">" " " "]"}} {{percent . }}{{with string . "suffix"}} {{.}}{{end}}`

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Track your orders and their deliveries.",
		Flags{
			Interval: 5 * time.Second,
		},
		flarc.Args{},
		common.NewTask(Task),
		flarc.WithDescription(`
Show all of your orders, newest first, each with the progress of its
delivery.

With --watch, the board is reprinted every --interval until every
delivery is delivered or cancelled, or until you interrupt it.
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
	if err := common.EnsureScreen(sess, access.OrderTracking); err != nil {
		return err
	}

	flags := cl.Flags()
	out := cl.Stdout()

	board, err := tracking.FetchBoard(ctx, client, sess.UserID)
	if err != nil {
		return err
	}
	render(out, board)

	if !flags.Watch {
		return nil
	}

	tick := time.NewTicker(flags.Interval)
	defer tick.Stop()
	for !settled(board) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick.C:
		}

		board, err = tracking.FetchBoard(ctx, client, sess.UserID)
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		render(out, board)
	}
	return nil
}

func render(out io.Writer, board []tracking.Entry) {
	if len(board) == 0 {
		fmt.Fprintln(out, "no orders yet")
		return
	}
	for _, e := range board {
		prefix := fmt.Sprintf(
			"order #%d ($%.2f)", e.Order.ID, e.Order.TotalPrice,
		)
		if e.Delivery == nil {
			fmt.Fprintf(out, "%s %s, no delivery yet\n", prefix, e.Order.Status)
			continue
		}

		bar := progressBar.New(100)
		bar.SetCurrent(int64(tracking.Progress(e.Delivery.Status)))
		bar.Set("prefix", prefix)
		bar.Set("suffix", string(e.Delivery.Status))
		fmt.Fprintln(out, bar.String())
	}
}

// settled reports whether nothing on the board can change anymore.
func settled(board []tracking.Entry) bool {
	for _, e := range board {
		if e.Delivery == nil {
			if e.Order.Status == "CANCELLED" {
				continue
			}
			return false
		}
		if !tracking.Terminal(e.Delivery.Status) {
			return false
		}
	}
	return true
}
