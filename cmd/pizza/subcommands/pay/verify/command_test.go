package verify_test

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
	pay_verify "github.com/pizza-net/pizza-frontend/cmd/pizza/subcommands/pay/verify"
	apipayments "github.com/pizza-net/pizza-frontend/pkg/api/types/payments"
	apiusers "github.com/pizza-net/pizza-frontend/pkg/api/types/users"
)

func TestVerifyCommand(t *testing.T) {
	alice := session.Session{
		Token: "test-token", UserID: 7, Username: "alice", Role: apiusers.User,
	}

	t.Run("it confirms the payment of the given session", func(t *testing.T) {
		client := mock.New(t)
		client.Impl.VerifySession = func(
			ctx context.Context, spec apipayments.VerifySpec,
		) (apipayments.VerifyResult, error) {
			if spec.SessionID != "cs_test_1" {
				t.Errorf("unexpected session id: %s", spec.SessionID)
			}
			return apipayments.VerifyResult{
				OrderID: 42, Amount: 99.47, PaymentID: "pi_1", Status: "COMPLETED",
			}, nil
		}

		stdout := new(strings.Builder)
		err := pay_verify.Task(
			context.Background(),
			logger.Null(),
			alice,
			cartfile.NewStore(filepath.Join(t.TempDir(), "cart")),
			client,
			commandline.MockCommandline[struct{}]{
				Fullname_: "pizza pay verify",
				Stdout_:   stdout,
				Stderr_:   new(strings.Builder),
				Args_: map[string][]string{
					pay_verify.ARG_SESSION_ID: {"cs_test_1"},
				},
			},
			[]any{},
		)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if !strings.Contains(stdout.String(), "order #42: payment COMPLETED") {
			t.Errorf("unexpected output: %s", stdout.String())
		}
	})

	t.Run("anonymous callers are sent to login before any request", func(t *testing.T) {
		client := mock.New(t) // VerifySession: should not be called

		err := pay_verify.Task(
			context.Background(),
			logger.Null(),
			session.Session{},
			cartfile.NewStore(filepath.Join(t.TempDir(), "cart")),
			client,
			commandline.MockCommandline[struct{}]{
				Fullname_: "pizza pay verify",
				Stdout_:   new(strings.Builder),
				Stderr_:   new(strings.Builder),
				Args_: map[string][]string{
					pay_verify.ARG_SESSION_ID: {"cs_test_1"},
				},
			},
			[]any{},
		)
		if !errors.Is(err, session.ErrNotLoggedIn) {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
