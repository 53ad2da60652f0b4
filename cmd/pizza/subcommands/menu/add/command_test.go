package add_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pizza-net/pizza-frontend/cmd/pizza/config/cartfile"
	"github.com/pizza-net/pizza-frontend/cmd/pizza/config/session"
	"github.com/pizza-net/pizza-frontend/cmd/pizza/rest/mock"
	"github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/internal/commandline"
	"github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/logger"
	menu_add "github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/menu/add"
	apipizzas "github.com/pizza-net/pizza-frontend/pkg/api/types/pizzas"
	apiusers "github.com/pizza-net/pizza-frontend/pkg/api/types/users"
	"github.com/youta-t/flarc"
)

func TestAddCommand(t *testing.T) {
	admin := session.Session{
		Token: "test-token", UserID: 1, Username: "root", Role: apiusers.Admin,
	}

	t.Run("an admin puts a pizza on the menu", func(t *testing.T) {
		client := mock.New(t)
		client.Impl.AddPizza = func(
			ctx context.Context, spec apipizzas.Spec,
		) (apipizzas.Detail, error) {
			want := apipizzas.Spec{
				Name: "Capricciosa", Price: 32.50, Size: apipizzas.Medium, Available: true,
			}
			if spec != want {
				t.Errorf("unexpected spec (actual, expected) = (%+v, %+v)", spec, want)
			}
			return apipizzas.Detail{
				ID: 3, Name: spec.Name, Price: spec.Price, Size: spec.Size, Available: true,
			}, nil
		}

		stdout := new(strings.Builder)
		err := menu_add.Task(
			context.Background(),
			logger.Null(),
			admin,
			cartfile.NewStore(filepath.Join(t.TempDir(), "cart")),
			client,
			commandline.MockCommandline[menu_add.Flags]{
				Fullname_: "pizza menu add",
				Stdout_:   stdout,
				Stderr_:   new(strings.Builder),
				Flags_: menu_add.Flags{
					Name: "Capricciosa", Price: "32.50", Size: "medium", Available: true,
				},
				Args_: map[string][]string{},
			},
			[]any{},
		)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if !strings.Contains(stdout.String(), "#3 Capricciosa") {
			t.Errorf("unexpected output: %s", stdout.String())
		}
	})

	t.Run("a broken price is a usage error and no request is made", func(t *testing.T) {
		client := mock.New(t) // AddPizza: should not be called

		err := menu_add.Task(
			context.Background(),
			logger.Null(),
			admin,
			cartfile.NewStore(filepath.Join(t.TempDir(), "cart")),
			client,
			commandline.MockCommandline[menu_add.Flags]{
				Fullname_: "pizza menu add",
				Stdout_:   new(strings.Builder),
				Stderr_:   new(strings.Builder),
				Flags_: menu_add.Flags{
					Name: "Capricciosa", Price: "cheap", Size: "medium", Available: true,
				},
				Args_: map[string][]string{},
			},
			[]any{},
		)
		if !errors.Is(err, flarc.ErrUsage) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("a customer is turned away before any request", func(t *testing.T) {
		client := mock.New(t) // AddPizza: should not be called

		err := menu_add.Task(
			context.Background(),
			logger.Null(),
			session.Session{Token: "t", UserID: 7, Username: "alice", Role: apiusers.User},
			cartfile.NewStore(filepath.Join(t.TempDir(), "cart")),
			client,
			commandline.MockCommandline[menu_add.Flags]{
				Fullname_: "pizza menu add",
				Stdout_:   new(strings.Builder),
				Stderr_:   new(strings.Builder),
				Flags_: menu_add.Flags{
					Name: "Capricciosa", Price: "32.50", Size: "medium", Available: true,
				},
				Args_: map[string][]string{},
			},
			[]any{},
		)
		if err == nil {
			t.Error("no error occured")
		}
	})

	t.Run("anonymous callers are sent to login", func(t *testing.T) {
		client := mock.New(t)

		err := menu_add.Task(
			context.Background(),
			logger.Null(),
			session.Session{},
			cartfile.NewStore(filepath.Join(t.TempDir(), "cart")),
			client,
			commandline.MockCommandline[menu_add.Flags]{
				Fullname_: "pizza menu add",
				Stdout_:   new(strings.Builder),
				Stderr_:   new(strings.Builder),
				Flags_: menu_add.Flags{
					Name: "Capricciosa", Price: "32.50", Size: "medium", Available: true,
				},
				Args_: map[string][]string{},
			},
			[]any{},
		)
		if !errors.Is(err, session.ErrNotLoggedIn) {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
