package checkout

import (
	"context"
	"errors"
	"fmt"

	apiorders "github.com/pizza-net/pizza-frontend/pkg/api/types/orders"
	apipayments "github.com/pizza-net/pizza-frontend/pkg/api/types/payments"
	"github.com/pizza-net/pizza-frontend/pkg/cart"
)

// State of a checkout in flight.
//
// The happy path is
//
//	Idle -> OrderSubmitting -> OrderCreated -> PaymentSessionCreating
//	     -> AwaitingRedirect -> PaymentVerifying -> PaymentVerified
//
// Failures fall back: a failed order submission returns to Idle, a
// failed payment-session creation returns to OrderCreated (the order
// stays as it is, the backend never rolls it back), and a failed
// verification ends in PaymentFailed.
type State string

const (
	Idle                   State = "idle"
	OrderSubmitting        State = "order-submitting"
	OrderCreated           State = "order-created"
	PaymentSessionCreating State = "payment-session-creating"
	AwaitingRedirect       State = "awaiting-redirect"
	PaymentVerifying       State = "payment-verifying"
	PaymentVerified        State = "payment-verified"
	PaymentFailed          State = "payment-failed"
	Cancelled              State = "cancelled"
)

var (
	// ErrNotLoggedIn is returned before any network call when the
	// checkout has no customer identity to order on behalf of.
	ErrNotLoggedIn = errors.New("not logged in")

	ErrEmptyCart      = errors.New("cart is empty")
	ErrMissingContact = errors.New("missing contact field")

	// ErrMissingSessionID is returned by Verify, before any network
	// call, when the redirect came back without a session id.
	ErrMissingSessionID = errors.New("missing payment session id")

	// ErrInvalidState means the requested operation does not apply to
	// the checkout's current state.
	ErrInvalidState = errors.New("invalid checkout state")
)

// Client is the slice of the storefront API a checkout drives.
type Client interface {
	CreateOrder(ctx context.Context, spec apiorders.Spec) (apiorders.Detail, error)
	CreateCheckoutSession(ctx context.Context, spec apipayments.CheckoutSpec) (apipayments.CheckoutSession, error)
	VerifySession(ctx context.Context, spec apipayments.VerifySpec) (apipayments.VerifyResult, error)
}

// Customer is the logged-in identity a checkout orders on behalf of.
type Customer struct {
	ID   int64
	Name string
}

// Contact is where and how the order should be delivered.
type Contact struct {
	Name    string
	Address string
	Phone   string
	Notes   string
}

// Orchestrator walks one order through submission, payment-session
// creation and verification. It is not safe for concurrent use.
type Orchestrator struct {
	client   Client
	customer Customer

	state   State
	pending *apiorders.Detail
	session *apipayments.CheckoutSession
}

func New(client Client, customer Customer) *Orchestrator {
	return &Orchestrator{client: client, customer: customer, state: Idle}
}

func (o *Orchestrator) State() State {
	return o.state
}

// PendingOrder is the order created by Submit, or nil before that.
//
// It stays set after a failed payment-session creation: the order
// exists on the backend whether or not it ever gets paid.
func (o *Orchestrator) PendingOrder() *apiorders.Detail {
	return o.pending
}

// Session is the open checkout session, or nil when there is none.
func (o *Orchestrator) Session() *apipayments.CheckoutSession {
	return o.session
}

// Submit validates the cart and contact locally, then creates the
// order on the backend.
//
// Validation failures are returned before any network call and leave
// the state at Idle. The created order carries the server-computed
// total price, which may differ from the cart's own total; the server
// value is the one that counts from here on.
func (o *Orchestrator) Submit(ctx context.Context, c *cart.Cart, contact Contact) (apiorders.Detail, error) {
	if o.state != Idle {
		return apiorders.Detail{}, fmt.Errorf("%w: Submit in %s", ErrInvalidState, o.state)
	}
	if o.customer.ID == 0 {
		return apiorders.Detail{}, ErrNotLoggedIn
	}
	if c == nil || c.IsEmpty() {
		return apiorders.Detail{}, ErrEmptyCart
	}
	for field, value := range map[string]string{
		"name": contact.Name, "address": contact.Address, "phone": contact.Phone,
	} {
		if value == "" {
			return apiorders.Detail{}, fmt.Errorf("%w: %s", ErrMissingContact, field)
		}
	}

	o.state = OrderSubmitting
	created, err := o.client.CreateOrder(ctx, apiorders.Spec{
		CustomerID:      o.customer.ID,
		CustomerName:    contact.Name,
		DeliveryAddress: contact.Address,
		CustomerPhone:   contact.Phone,
		Notes:           contact.Notes,
		Items:           c.Items(),
	})
	if err != nil {
		o.state = Idle
		return apiorders.Detail{}, err
	}

	o.pending = &created
	o.state = OrderCreated
	return created, nil
}

// StartPayment opens a checkout session for the pending order.
//
// The charged amount is the pending order's server-computed total.
// On failure the order is NOT rolled back: the state returns to
// OrderCreated and StartPayment can be retried.
func (o *Orchestrator) StartPayment(ctx context.Context, email string) (apipayments.CheckoutSession, error) {
	if o.state != OrderCreated {
		return apipayments.CheckoutSession{}, fmt.Errorf("%w: StartPayment in %s", ErrInvalidState, o.state)
	}

	o.state = PaymentSessionCreating
	session, err := o.client.CreateCheckoutSession(ctx, apipayments.CheckoutSpec{
		OrderID:       o.pending.ID,
		CustomerID:    o.customer.ID,
		Amount:        o.pending.TotalPrice,
		Currency:      "usd",
		Description:   fmt.Sprintf("Pizza order #%d", o.pending.ID),
		CustomerEmail: email,
	})
	if err != nil {
		o.state = OrderCreated
		return apipayments.CheckoutSession{}, err
	}

	o.session = &session
	o.state = AwaitingRedirect
	return session, nil
}

// Cancel abandons the checkout before the customer is redirected to
// the payment page. The pending order, if any, is left untouched on
// the backend.
func (o *Orchestrator) Cancel() error {
	switch o.state {
	case Idle, OrderCreated, AwaitingRedirect:
		o.session = nil
		o.state = Cancelled
		return nil
	default:
		return fmt.Errorf("%w: Cancel in %s", ErrInvalidState, o.state)
	}
}

// CompletePayment verifies the payment after the customer comes back
// from the redirect.
//
// Verification failure is terminal for this checkout: the state ends
// in PaymentFailed and the session is dropped.
func (o *Orchestrator) CompletePayment(ctx context.Context, sessionID string) (apipayments.VerifyResult, error) {
	if o.state != AwaitingRedirect {
		return apipayments.VerifyResult{}, fmt.Errorf("%w: CompletePayment in %s", ErrInvalidState, o.state)
	}

	o.state = PaymentVerifying
	result, err := Verify(ctx, o.client, sessionID)
	if err != nil {
		o.session = nil
		o.state = PaymentFailed
		return apipayments.VerifyResult{}, err
	}

	o.session = nil
	o.state = PaymentVerified
	return result, nil
}

// Verify confirms a payment session with the payment service.
//
// The redirect back from the payment page may land in a different
// process than the one that started the checkout, so Verify works
// without an Orchestrator. An empty session id fails immediately,
// before any network call.
func Verify(ctx context.Context, client Client, sessionID string) (apipayments.VerifyResult, error) {
	if sessionID == "" {
		return apipayments.VerifyResult{}, ErrMissingSessionID
	}
	return client.VerifySession(ctx, apipayments.VerifySpec{SessionID: sessionID})
}
