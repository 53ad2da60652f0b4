package rest

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	kprof "github.com/pizza-net/pizza-frontend/cmd/pizza/config/profiles"
	apideliveries "github.com/pizza-net/pizza-frontend/pkg/api/types/deliveries"
	apiorders "github.com/pizza-net/pizza-frontend/pkg/api/types/orders"
	apipayments "github.com/pizza-net/pizza-frontend/pkg/api/types/payments"
	apipizzas "github.com/pizza-net/pizza-frontend/pkg/api/types/pizzas"
	apiusers "github.com/pizza-net/pizza-frontend/pkg/api/types/users"
	"github.com/pizza-net/pizza-frontend/pkg/utils/slices"
)

// ErrLoginRequired means the gateway rejected the stored credential.
//
// When a client built with WithForcedLogoutHook sees 401 on any call
// except VerifyToken, it fires the hook (dropping the session) and
// returns an error wrapping this one. Callers should send the user to
// `pizza login`.
var ErrLoginRequired = errors.New("login required")

// StorefrontClient is the whole pizza-net backend, as seen through the
// API gateway.
type StorefrontClient interface {
	// Register creates a new customer account.
	Register(ctx context.Context, reg apiusers.Registration) (apiusers.LoginResult, error)

	// Login exchanges credentials for a token and identity.
	Login(ctx context.Context, cred apiusers.Credentials) (apiusers.LoginResult, error)

	// VerifyToken asks the auth service whether the stored token is
	// still good. 401 is an answer (false), not a forced logout.
	VerifyToken(ctx context.Context) (bool, error)

	// FindUsers lists all accounts. Admin only on the backend side.
	FindUsers(ctx context.Context) ([]apiusers.Summary, error)

	// FindCouriers lists accounts with the COURIER role.
	FindCouriers(ctx context.Context) ([]apiusers.Summary, error)

	// UpdateUserRole changes the role of the given account.
	UpdateUserRole(ctx context.Context, userID int64, change apiusers.RoleChange) (apiusers.Summary, error)

	// FindPizzas lists the menu.
	FindPizzas(ctx context.Context) ([]apipizzas.Detail, error)

	// AddPizza puts a new pizza on the menu.
	AddPizza(ctx context.Context, spec apipizzas.Spec) (apipizzas.Detail, error)

	// UpdatePizza replaces a menu entry.
	UpdatePizza(ctx context.Context, pizzaID int64, spec apipizzas.Spec) (apipizzas.Detail, error)

	// DeletePizza takes a pizza off the menu.
	DeletePizza(ctx context.Context, pizzaID int64) error

	// CreateOrder submits a new order. The returned Detail carries the
	// server-computed total price.
	CreateOrder(ctx context.Context, spec apiorders.Spec) (apiorders.Detail, error)

	// FindOrders lists the orders of one customer.
	FindOrders(ctx context.Context, customerID int64) ([]apiorders.Detail, error)

	// GetOrder fetches one order.
	GetOrder(ctx context.Context, orderID int64) (apiorders.Detail, error)

	// UpdateOrderStatus sets the order's status.
	UpdateOrderStatus(ctx context.Context, orderID int64, status string) (apiorders.Detail, error)

	// DeleteOrder removes an order.
	DeleteOrder(ctx context.Context, orderID int64) error

	// CreateCheckoutSession opens a payment session for an order.
	CreateCheckoutSession(ctx context.Context, spec apipayments.CheckoutSpec) (apipayments.CheckoutSession, error)

	// VerifySession confirms a payment after the redirect came back.
	VerifySession(ctx context.Context, spec apipayments.VerifySpec) (apipayments.VerifyResult, error)

	// CreateDelivery opens a delivery record for an order.
	CreateDelivery(ctx context.Context, spec apideliveries.Spec) (apideliveries.Detail, error)

	// FindDeliveries lists deliveries matching the filter.
	FindDeliveries(ctx context.Context, filter apideliveries.Filter) ([]apideliveries.Detail, error)

	// GetDelivery fetches one delivery.
	GetDelivery(ctx context.Context, deliveryID int64) (apideliveries.Detail, error)

	// GetDeliveryByOrder fetches the delivery of an order.
	//
	// deliveries.ErrNotFound is returned when the order has none yet.
	GetDeliveryByOrder(ctx context.Context, orderID int64) (apideliveries.Detail, error)

	// UpdateDeliveryStatus sets a delivery's status as given.
	UpdateDeliveryStatus(ctx context.Context, deliveryID int64, change apideliveries.StatusChange) (apideliveries.Detail, error)

	// AdvanceDelivery moves a delivery one step along the route.
	// Deliveries that cannot go forward are rejected locally, without
	// any status-changing request.
	AdvanceDelivery(ctx context.Context, deliveryID int64) (apideliveries.Detail, error)

	// AssignCourier puts a courier on a delivery.
	AssignCourier(ctx context.Context, deliveryID int64, assignment apideliveries.CourierAssignment) (apideliveries.Detail, error)

	// DeleteDelivery removes a delivery record.
	DeleteDelivery(ctx context.Context, deliveryID int64) error
}

type client struct {
	httpclient *http.Client
	api        string

	token          func() string
	onForcedLogout func() error
}

type Option func(*client) *client

// WithToken makes every request carry `Authorization: Bearer <token>`.
// The function is consulted per request.
func WithToken(token func() string) Option {
	return func(c *client) *client {
		c.token = token
		return c
	}
}

// WithForcedLogoutHook is called once per client call answering 401,
// before the call returns ErrLoginRequired.
func WithForcedLogoutHook(hook func() error) Option {
	return func(c *client) *client {
		c.onForcedLogout = hook
		return c
	}
}

// NewClient creates a StorefrontClient for the given Profile.
//
// # Return
//
// If given profile is invalid, ErrProfileInvalid is returned.
func NewClient(prof *kprof.Profile, options ...Option) (StorefrontClient, error) {
	if err := prof.Verify(); err != nil {
		return nil, err
	}
	httpclient := new(http.Client)

	if prof.Cert.CA != "" {
		hc, err := trustCa(httpclient, []string{prof.Cert.CA})
		if err != nil {
			return nil, err
		}
		httpclient = hc
	}

	c := &client{
		httpclient: httpclient,
		api:        strings.TrimSuffix(prof.ApiRoot, "/"),
		token:      func() string { return "" },
	}

	for _, opt := range options {
		c = opt(c)
	}
	return c, nil
}

// build URL with path
func (c *client) apipath(path ...string) string {
	path = slices.Map(path, func(p string) string {
		return strings.TrimPrefix(strings.TrimSuffix(p, "/"), "/")
	})

	return strings.Join(append([]string{c.api}, path...), "/")
}

// do sends the request with the bearer token attached.
//
// 401 fires the forced-logout hook and comes back as ErrLoginRequired;
// requests that treat 401 as an answer (VerifyToken) bypass do.
func (c *client) do(req *http.Request) (*http.Response, error) {
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	resp, err := c.httpclient.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		if c.onForcedLogout != nil {
			if herr := c.onForcedLogout(); herr != nil {
				return nil, fmt.Errorf("%w (and dropping session failed: %s)", ErrLoginRequired, herr)
			}
		}
		return nil, fmt.Errorf("%w: your session has expired or is invalid", ErrLoginRequired)
	}

	return resp, nil
}

func trustCa(hc *http.Client, cacerts []string) (*http.Client, error) {
	if len(cacerts) <= 0 {
		return hc, nil
	}

	if hc.Transport == nil {
		hc.Transport = http.DefaultTransport
	}

	tran, ok := hc.Transport.(*http.Transport)
	if !ok {
		return nil, fmt.Errorf("failed to add ca cert")
	}
	tran = tran.Clone()

	tcc := tran.TLSClientConfig.Clone()
	if tcc == nil {
		tcc = &tls.Config{}
	}

	rootcas := tcc.RootCAs
	if rootcas == nil {
		rootcas = x509.NewCertPool()
		tcc.RootCAs = rootcas
	}
	for _, ca := range cacerts {
		bin, err := base64.StdEncoding.DecodeString(ca)
		if err != nil {
			return nil, err
		}

		if !rootcas.AppendCertsFromPEM(bin) {
			return nil, fmt.Errorf("failed to add cert")
		}
	}

	tran.TLSClientConfig = tcc
	hc.Transport = tran
	return hc, nil
}
