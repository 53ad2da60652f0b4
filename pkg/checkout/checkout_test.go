package checkout_test

import (
	"context"
	"errors"
	"testing"

	apiorders "github.com/pizza-net/pizza-frontend/pkg/api/types/orders"
	apipayments "github.com/pizza-net/pizza-frontend/pkg/api/types/payments"
	"github.com/pizza-net/pizza-frontend/pkg/cart"
	"github.com/pizza-net/pizza-frontend/pkg/checkout"
	"github.com/pizza-net/pizza-frontend/pkg/cmp"
	"github.com/pizza-net/pizza-frontend/pkg/utils/try"
)

type mockClient struct {
	t                     *testing.T
	createOrder           func(ctx context.Context, spec apiorders.Spec) (apiorders.Detail, error)
	createCheckoutSession func(ctx context.Context, spec apipayments.CheckoutSpec) (apipayments.CheckoutSession, error)
	verifySession         func(ctx context.Context, spec apipayments.VerifySpec) (apipayments.VerifyResult, error)
}

func (m *mockClient) CreateOrder(ctx context.Context, spec apiorders.Spec) (apiorders.Detail, error) {
	if m.createOrder == nil {
		m.t.Fatal("CreateOrder: should not be called")
	}
	return m.createOrder(ctx, spec)
}

func (m *mockClient) CreateCheckoutSession(ctx context.Context, spec apipayments.CheckoutSpec) (apipayments.CheckoutSession, error) {
	if m.createCheckoutSession == nil {
		m.t.Fatal("CreateCheckoutSession: should not be called")
	}
	return m.createCheckoutSession(ctx, spec)
}

func (m *mockClient) VerifySession(ctx context.Context, spec apipayments.VerifySpec) (apipayments.VerifyResult, error) {
	if m.verifySession == nil {
		m.t.Fatal("VerifySession: should not be called")
	}
	return m.verifySession(ctx, spec)
}

var (
	alice   = checkout.Customer{ID: 7, Name: "Alice"}
	contact = checkout.Contact{
		Name: "Alice", Address: "1 Pizza Way", Phone: "+1-555-0100", Notes: "ring twice",
	}
)

func filledCart() *cart.Cart {
	return cart.FromLines([]cart.Line{
		{PizzaID: 1, Name: "Margherita", UnitPrice: 29.99, Quantity: 2},
		{PizzaID: 2, Name: "Pepperoni", UnitPrice: 34.99, Quantity: 1},
	})
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("it sends the cart as an order and moves to OrderCreated", func(t *testing.T) {
		created := apiorders.Detail{
			ID: 42, CustomerID: 7, Status: "PENDING", TotalPrice: 94.97,
		}
		client := &mockClient{
			t: t,
			createOrder: func(_ context.Context, spec apiorders.Spec) (apiorders.Detail, error) {
				expected := apiorders.Spec{
					CustomerID:      7,
					CustomerName:    "Alice",
					DeliveryAddress: "1 Pizza Way",
					CustomerPhone:   "+1-555-0100",
					Notes:           "ring twice",
					Items: []apiorders.Item{
						{PizzaID: 1, Quantity: 2},
						{PizzaID: 2, Quantity: 1},
					},
				}
				if spec.CustomerID != expected.CustomerID ||
					spec.CustomerName != expected.CustomerName ||
					spec.DeliveryAddress != expected.DeliveryAddress ||
					spec.CustomerPhone != expected.CustomerPhone ||
					spec.Notes != expected.Notes ||
					!cmp.SliceEq(spec.Items, expected.Items) {
					t.Errorf("unexpected spec (actual, expected) = (%+v, %+v)", spec, expected)
				}
				return created, nil
			},
		}

		testee := checkout.New(client, alice)
		actual := try.To(testee.Submit(ctx, filledCart(), contact)).OrFatal(t)

		if !actual.Equal(&created) {
			t.Errorf("unexpected order (actual, expected) = (%+v, %+v)", actual, created)
		}
		if testee.State() != checkout.OrderCreated {
			t.Errorf("unexpected state: %s", testee.State())
		}
		if testee.PendingOrder() == nil || !testee.PendingOrder().Equal(&created) {
			t.Errorf("unexpected pending order: %+v", testee.PendingOrder())
		}
	})

	t.Run("validation failures are local and leave the state at Idle", func(t *testing.T) {
		for name, testcase := range map[string]struct {
			customer    checkout.Customer
			cart        *cart.Cart
			contact     checkout.Contact
			expectedErr error
		}{
			"no customer identity": {
				customer: checkout.Customer{}, cart: filledCart(), contact: contact,
				expectedErr: checkout.ErrNotLoggedIn,
			},
			"empty cart": {
				customer: alice, cart: cart.New(), contact: contact,
				expectedErr: checkout.ErrEmptyCart,
			},
			"missing address": {
				customer: alice, cart: filledCart(),
				contact:     checkout.Contact{Name: "Alice", Phone: "+1-555-0100"},
				expectedErr: checkout.ErrMissingContact,
			},
			"missing phone": {
				customer: alice, cart: filledCart(),
				contact:     checkout.Contact{Name: "Alice", Address: "1 Pizza Way"},
				expectedErr: checkout.ErrMissingContact,
			},
			"missing name": {
				customer: alice, cart: filledCart(),
				contact:     checkout.Contact{Address: "1 Pizza Way", Phone: "+1-555-0100"},
				expectedErr: checkout.ErrMissingContact,
			},
		} {
			t.Run(name, func(t *testing.T) {
				client := &mockClient{t: t} // no calls expected
				testee := checkout.New(client, testcase.customer)

				if _, err := testee.Submit(ctx, testcase.cart, testcase.contact); !errors.Is(err, testcase.expectedErr) {
					t.Errorf("unexpected error: %v", err)
				}
				if testee.State() != checkout.Idle {
					t.Errorf("unexpected state: %s", testee.State())
				}
			})
		}
	})

	t.Run("when order creation fails, it falls back to Idle and never touches payments", func(t *testing.T) {
		expectedErr := errors.New("fake error")
		client := &mockClient{
			t: t,
			createOrder: func(context.Context, apiorders.Spec) (apiorders.Detail, error) {
				return apiorders.Detail{}, expectedErr
			},
		}

		testee := checkout.New(client, alice)
		if _, err := testee.Submit(ctx, filledCart(), contact); !errors.Is(err, expectedErr) {
			t.Errorf("unexpected error: %v", err)
		}
		if testee.State() != checkout.Idle {
			t.Errorf("unexpected state: %s", testee.State())
		}
		if testee.PendingOrder() != nil {
			t.Errorf("unexpected pending order: %+v", testee.PendingOrder())
		}
	})
}

func TestStartPayment(t *testing.T) {
	ctx := context.Background()

	submitted := func(t *testing.T, client *mockClient, serverTotal float64) *checkout.Orchestrator {
		client.createOrder = func(context.Context, apiorders.Spec) (apiorders.Detail, error) {
			return apiorders.Detail{ID: 42, CustomerID: 7, Status: "PENDING", TotalPrice: serverTotal}, nil
		}
		testee := checkout.New(client, alice)
		try.To(testee.Submit(ctx, filledCart(), contact)).OrFatal(t)
		return testee
	}

	t.Run("it charges the server-computed total, not the cart's", func(t *testing.T) {
		client := &mockClient{t: t}
		// cart total is 94.97; the order service answered with 99.47
		testee := submitted(t, client, 99.47)

		expected := apipayments.CheckoutSession{
			CheckoutURL: "https://pay.example/cs_test_1", SessionID: "cs_test_1", OrderID: 42,
		}
		client.createCheckoutSession = func(_ context.Context, spec apipayments.CheckoutSpec) (apipayments.CheckoutSession, error) {
			if spec.Amount != 99.47 {
				t.Errorf("unexpected amount (actual, expected) = (%v, 99.47)", spec.Amount)
			}
			if spec.OrderID != 42 || spec.CustomerID != 7 {
				t.Errorf("unexpected ids in spec: %+v", spec)
			}
			if spec.CustomerEmail != "alice@example.com" {
				t.Errorf("unexpected email: %s", spec.CustomerEmail)
			}
			return expected, nil
		}

		actual := try.To(testee.StartPayment(ctx, "alice@example.com")).OrFatal(t)
		if !actual.Equal(&expected) {
			t.Errorf("unexpected session (actual, expected) = (%+v, %+v)", actual, expected)
		}
		if testee.State() != checkout.AwaitingRedirect {
			t.Errorf("unexpected state: %s", testee.State())
		}
	})

	t.Run("when session creation fails, the order is kept and the state allows retry", func(t *testing.T) {
		client := &mockClient{t: t}
		testee := submitted(t, client, 94.97)

		expectedErr := errors.New("fake error")
		client.createCheckoutSession = func(context.Context, apipayments.CheckoutSpec) (apipayments.CheckoutSession, error) {
			return apipayments.CheckoutSession{}, expectedErr
		}

		if _, err := testee.StartPayment(ctx, "alice@example.com"); !errors.Is(err, expectedErr) {
			t.Errorf("unexpected error: %v", err)
		}
		if testee.State() != checkout.OrderCreated {
			t.Errorf("unexpected state: %s", testee.State())
		}
		if testee.PendingOrder() == nil || testee.PendingOrder().ID != 42 {
			t.Errorf("pending order should survive: %+v", testee.PendingOrder())
		}

		// retry works
		client.createCheckoutSession = func(context.Context, apipayments.CheckoutSpec) (apipayments.CheckoutSession, error) {
			return apipayments.CheckoutSession{CheckoutURL: "https://pay.example/cs_test_2"}, nil
		}
		try.To(testee.StartPayment(ctx, "alice@example.com")).OrFatal(t)
		if testee.State() != checkout.AwaitingRedirect {
			t.Errorf("unexpected state after retry: %s", testee.State())
		}
	})

	t.Run("it refuses to start before an order exists", func(t *testing.T) {
		testee := checkout.New(&mockClient{t: t}, alice)
		if _, err := testee.StartPayment(ctx, ""); !errors.Is(err, checkout.ErrInvalidState) {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("cancelling before the redirect drops the session", func(t *testing.T) {
		client := &mockClient{
			t: t,
			createOrder: func(context.Context, apiorders.Spec) (apiorders.Detail, error) {
				return apiorders.Detail{ID: 42, TotalPrice: 94.97}, nil
			},
			createCheckoutSession: func(context.Context, apipayments.CheckoutSpec) (apipayments.CheckoutSession, error) {
				return apipayments.CheckoutSession{CheckoutURL: "https://pay.example/cs_test_1"}, nil
			},
		}
		testee := checkout.New(client, alice)
		try.To(testee.Submit(ctx, filledCart(), contact)).OrFatal(t)
		try.To(testee.StartPayment(ctx, "")).OrFatal(t)

		if err := testee.Cancel(); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if testee.State() != checkout.Cancelled {
			t.Errorf("unexpected state: %s", testee.State())
		}
		if testee.Session() != nil {
			t.Errorf("session should be dropped: %+v", testee.Session())
		}
	})

	t.Run("a cancelled checkout accepts nothing further", func(t *testing.T) {
		testee := checkout.New(&mockClient{t: t}, alice)
		if err := testee.Cancel(); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}

		if _, err := testee.Submit(ctx, filledCart(), contact); !errors.Is(err, checkout.ErrInvalidState) {
			t.Errorf("unexpected error: %v", err)
		}
		if err := testee.Cancel(); !errors.Is(err, checkout.ErrInvalidState) {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestVerify(t *testing.T) {
	ctx := context.Background()

	t.Run("an empty session id fails before any network call", func(t *testing.T) {
		client := &mockClient{t: t} // no calls expected
		if _, err := checkout.Verify(ctx, client, ""); !errors.Is(err, checkout.ErrMissingSessionID) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("it passes the session id through and returns the result", func(t *testing.T) {
		expected := apipayments.VerifyResult{
			OrderID: 42, Amount: 94.97, PaymentID: "pi_1", Status: "COMPLETED",
		}
		client := &mockClient{
			t: t,
			verifySession: func(_ context.Context, spec apipayments.VerifySpec) (apipayments.VerifyResult, error) {
				if spec.SessionID != "cs_test_1" {
					t.Errorf("unexpected session id: %s", spec.SessionID)
				}
				return expected, nil
			},
		}

		actual := try.To(checkout.Verify(ctx, client, "cs_test_1")).OrFatal(t)
		if !actual.Equal(&expected) {
			t.Errorf("unexpected result (actual, expected) = (%+v, %+v)", actual, expected)
		}
	})
}

func TestCompletePayment(t *testing.T) {
	ctx := context.Background()

	awaiting := func(t *testing.T, client *mockClient) *checkout.Orchestrator {
		client.createOrder = func(context.Context, apiorders.Spec) (apiorders.Detail, error) {
			return apiorders.Detail{ID: 42, TotalPrice: 94.97}, nil
		}
		client.createCheckoutSession = func(context.Context, apipayments.CheckoutSpec) (apipayments.CheckoutSession, error) {
			return apipayments.CheckoutSession{CheckoutURL: "https://pay.example/cs_test_1", SessionID: "cs_test_1"}, nil
		}
		testee := checkout.New(client, alice)
		try.To(testee.Submit(ctx, filledCart(), contact)).OrFatal(t)
		try.To(testee.StartPayment(ctx, "")).OrFatal(t)
		return testee
	}

	t.Run("a successful verification ends in PaymentVerified", func(t *testing.T) {
		client := &mockClient{t: t}
		testee := awaiting(t, client)

		client.verifySession = func(context.Context, apipayments.VerifySpec) (apipayments.VerifyResult, error) {
			return apipayments.VerifyResult{OrderID: 42, Amount: 94.97, Status: "COMPLETED"}, nil
		}

		result := try.To(testee.CompletePayment(ctx, "cs_test_1")).OrFatal(t)
		if result.OrderID != 42 {
			t.Errorf("unexpected result: %+v", result)
		}
		if testee.State() != checkout.PaymentVerified {
			t.Errorf("unexpected state: %s", testee.State())
		}
	})

	t.Run("a failed verification ends in PaymentFailed", func(t *testing.T) {
		client := &mockClient{t: t}
		testee := awaiting(t, client)

		expectedErr := errors.New("fake error")
		client.verifySession = func(context.Context, apipayments.VerifySpec) (apipayments.VerifyResult, error) {
			return apipayments.VerifyResult{}, expectedErr
		}

		if _, err := testee.CompletePayment(ctx, "cs_test_1"); !errors.Is(err, expectedErr) {
			t.Errorf("unexpected error: %v", err)
		}
		if testee.State() != checkout.PaymentFailed {
			t.Errorf("unexpected state: %s", testee.State())
		}
	})
}
