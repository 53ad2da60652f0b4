package add_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pizza-net/pizza-frontend/cmd/pizza/config/cartfile"
	"github.com/pizza-net/pizza-frontend/cmd/pizza/config/session"
	"github.com/pizza-net/pizza-frontend/cmd/pizza/rest/mock"
	cart_add "github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/cart/add"
	"github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/internal/commandline"
	"github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/logger"
	apipizzas "github.com/pizza-net/pizza-frontend/pkg/api/types/pizzas"
	apiusers "github.com/pizza-net/pizza-frontend/pkg/api/types/users"
	"github.com/pizza-net/pizza-frontend/pkg/utils/try"
)

func TestCartAddCommand(t *testing.T) {
	alice := session.Session{
		Token: "test-token", UserID: 7, Username: "alice", Role: apiusers.User,
	}
	menu := []apipizzas.Detail{
		{ID: 1, Name: "Margherita", Price: 29.99, Size: apipizzas.Medium, Available: true},
		{ID: 2, Name: "Pepperoni", Price: 34.99, Size: apipizzas.Large, Available: true},
		{ID: 3, Name: "Quattro", Price: 39.99, Size: apipizzas.Large, Available: false},
	}

	theory := func(pizzaID string, wantLines int, wantErr bool) func(*testing.T) {
		return func(t *testing.T) {
			client := mock.New(t)
			client.Impl.FindPizzas = func(ctx context.Context) ([]apipizzas.Detail, error) {
				return menu, nil
			}

			cartStore := cartfile.NewStore(filepath.Join(t.TempDir(), "cart"))
			err := cart_add.Task(
				context.Background(),
				logger.Null(),
				alice,
				cartStore,
				client,
				commandline.MockCommandline[struct{}]{
					Fullname_: "pizza cart add",
					Stdout_:   new(strings.Builder),
					Stderr_:   new(strings.Builder),
					Args_: map[string][]string{
						cart_add.ARG_PIZZA_ID: {pizzaID},
					},
				},
				[]any{},
			)

			if wantErr {
				if err == nil {
					t.Error("no error occured")
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}

			c := try.To(cartStore.Load()).OrFatal(t)
			if len(c.Lines()) != wantLines {
				t.Errorf("unexpected cart: %+v", c.Lines())
			}
		}
	}

	t.Run("an available pizza goes into the cart", theory("2", 1, false))
	t.Run("a pizza not on the menu does not", theory("99", 0, true))
	t.Run("an unavailable pizza does not", theory("3", 0, true))

	t.Run("adding twice bumps the quantity", func(t *testing.T) {
		client := mock.New(t)
		client.Impl.FindPizzas = func(ctx context.Context) ([]apipizzas.Detail, error) {
			return menu, nil
		}

		cartStore := cartfile.NewStore(filepath.Join(t.TempDir(), "cart"))
		for i := 0; i < 2; i++ {
			err := cart_add.Task(
				context.Background(),
				logger.Null(),
				alice,
				cartStore,
				client,
				commandline.MockCommandline[struct{}]{
					Fullname_: "pizza cart add",
					Stdout_:   new(strings.Builder),
					Stderr_:   new(strings.Builder),
					Args_: map[string][]string{
						cart_add.ARG_PIZZA_ID: {"1"},
					},
				},
				[]any{},
			)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
		}

		c := try.To(cartStore.Load()).OrFatal(t)
		lines := c.Lines()
		if len(lines) != 1 || lines[0].Quantity != 2 {
			t.Errorf("unexpected cart: %+v", lines)
		}
	})
}
