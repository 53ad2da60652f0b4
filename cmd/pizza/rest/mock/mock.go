package mock

import (
	"context"
	"testing"

	"github.com/pizza-net/pizza-frontend/cmd/pizza/rest"
	apideliveries "github.com/pizza-net/pizza-frontend/pkg/api/types/deliveries"
	apiorders "github.com/pizza-net/pizza-frontend/pkg/api/types/orders"
	apipayments "github.com/pizza-net/pizza-frontend/pkg/api/types/payments"
	apipizzas "github.com/pizza-net/pizza-frontend/pkg/api/types/pizzas"
	apiusers "github.com/pizza-net/pizza-frontend/pkg/api/types/users"
)

func New(t *testing.T) *mockStorefrontClient {
	return &mockStorefrontClient{t: t}
}

type mockStorefrontClient struct {
	t    *testing.T
	Impl struct {
		Register      func(ctx context.Context, reg apiusers.Registration) (apiusers.LoginResult, error)
		Login         func(ctx context.Context, cred apiusers.Credentials) (apiusers.LoginResult, error)
		VerifyToken   func(ctx context.Context) (bool, error)
		FindUsers     func(ctx context.Context) ([]apiusers.Summary, error)
		FindCouriers  func(ctx context.Context) ([]apiusers.Summary, error)
		UpdateUserRole func(ctx context.Context, userID int64, change apiusers.RoleChange) (apiusers.Summary, error)

		FindPizzas  func(ctx context.Context) ([]apipizzas.Detail, error)
		AddPizza    func(ctx context.Context, spec apipizzas.Spec) (apipizzas.Detail, error)
		UpdatePizza func(ctx context.Context, pizzaID int64, spec apipizzas.Spec) (apipizzas.Detail, error)
		DeletePizza func(ctx context.Context, pizzaID int64) error

		CreateOrder       func(ctx context.Context, spec apiorders.Spec) (apiorders.Detail, error)
		FindOrders        func(ctx context.Context, customerID int64) ([]apiorders.Detail, error)
		GetOrder          func(ctx context.Context, orderID int64) (apiorders.Detail, error)
		UpdateOrderStatus func(ctx context.Context, orderID int64, status string) (apiorders.Detail, error)
		DeleteOrder       func(ctx context.Context, orderID int64) error

		CreateCheckoutSession func(ctx context.Context, spec apipayments.CheckoutSpec) (apipayments.CheckoutSession, error)
		VerifySession         func(ctx context.Context, spec apipayments.VerifySpec) (apipayments.VerifyResult, error)

		CreateDelivery       func(ctx context.Context, spec apideliveries.Spec) (apideliveries.Detail, error)
		FindDeliveries       func(ctx context.Context, filter apideliveries.Filter) ([]apideliveries.Detail, error)
		GetDelivery          func(ctx context.Context, deliveryID int64) (apideliveries.Detail, error)
		GetDeliveryByOrder   func(ctx context.Context, orderID int64) (apideliveries.Detail, error)
		UpdateDeliveryStatus func(ctx context.Context, deliveryID int64, change apideliveries.StatusChange) (apideliveries.Detail, error)
		AdvanceDelivery      func(ctx context.Context, deliveryID int64) (apideliveries.Detail, error)
		AssignCourier        func(ctx context.Context, deliveryID int64, assignment apideliveries.CourierAssignment) (apideliveries.Detail, error)
		DeleteDelivery       func(ctx context.Context, deliveryID int64) error
	}
}

var _ rest.StorefrontClient = &mockStorefrontClient{}

func (m *mockStorefrontClient) Register(ctx context.Context, reg apiusers.Registration) (apiusers.LoginResult, error) {
	if m.Impl.Register == nil {
		m.t.Fatal("Register: should not be called")
	}
	return m.Impl.Register(ctx, reg)
}

func (m *mockStorefrontClient) Login(ctx context.Context, cred apiusers.Credentials) (apiusers.LoginResult, error) {
	if m.Impl.Login == nil {
		m.t.Fatal("Login: should not be called")
	}
	return m.Impl.Login(ctx, cred)
}

func (m *mockStorefrontClient) VerifyToken(ctx context.Context) (bool, error) {
	if m.Impl.VerifyToken == nil {
		m.t.Fatal("VerifyToken: should not be called")
	}
	return m.Impl.VerifyToken(ctx)
}

func (m *mockStorefrontClient) FindUsers(ctx context.Context) ([]apiusers.Summary, error) {
	if m.Impl.FindUsers == nil {
		m.t.Fatal("FindUsers: should not be called")
	}
	return m.Impl.FindUsers(ctx)
}

func (m *mockStorefrontClient) FindCouriers(ctx context.Context) ([]apiusers.Summary, error) {
	if m.Impl.FindCouriers == nil {
		m.t.Fatal("FindCouriers: should not be called")
	}
	return m.Impl.FindCouriers(ctx)
}

func (m *mockStorefrontClient) UpdateUserRole(ctx context.Context, userID int64, change apiusers.RoleChange) (apiusers.Summary, error) {
	if m.Impl.UpdateUserRole == nil {
		m.t.Fatal("UpdateUserRole: should not be called")
	}
	return m.Impl.UpdateUserRole(ctx, userID, change)
}

func (m *mockStorefrontClient) FindPizzas(ctx context.Context) ([]apipizzas.Detail, error) {
	if m.Impl.FindPizzas == nil {
		m.t.Fatal("FindPizzas: should not be called")
	}
	return m.Impl.FindPizzas(ctx)
}

func (m *mockStorefrontClient) AddPizza(ctx context.Context, spec apipizzas.Spec) (apipizzas.Detail, error) {
	if m.Impl.AddPizza == nil {
		m.t.Fatal("AddPizza: should not be called")
	}
	return m.Impl.AddPizza(ctx, spec)
}

func (m *mockStorefrontClient) UpdatePizza(ctx context.Context, pizzaID int64, spec apipizzas.Spec) (apipizzas.Detail, error) {
	if m.Impl.UpdatePizza == nil {
		m.t.Fatal("UpdatePizza: should not be called")
	}
	return m.Impl.UpdatePizza(ctx, pizzaID, spec)
}

func (m *mockStorefrontClient) DeletePizza(ctx context.Context, pizzaID int64) error {
	if m.Impl.DeletePizza == nil {
		m.t.Fatal("DeletePizza: should not be called")
	}
	return m.Impl.DeletePizza(ctx, pizzaID)
}

func (m *mockStorefrontClient) CreateOrder(ctx context.Context, spec apiorders.Spec) (apiorders.Detail, error) {
	if m.Impl.CreateOrder == nil {
		m.t.Fatal("CreateOrder: should not be called")
	}
	return m.Impl.CreateOrder(ctx, spec)
}

func (m *mockStorefrontClient) FindOrders(ctx context.Context, customerID int64) ([]apiorders.Detail, error) {
	if m.Impl.FindOrders == nil {
		m.t.Fatal("FindOrders: should not be called")
	}
	return m.Impl.FindOrders(ctx, customerID)
}

func (m *mockStorefrontClient) GetOrder(ctx context.Context, orderID int64) (apiorders.Detail, error) {
	if m.Impl.GetOrder == nil {
		m.t.Fatal("GetOrder: should not be called")
	}
	return m.Impl.GetOrder(ctx, orderID)
}

func (m *mockStorefrontClient) UpdateOrderStatus(ctx context.Context, orderID int64, status string) (apiorders.Detail, error) {
	if m.Impl.UpdateOrderStatus == nil {
		m.t.Fatal("UpdateOrderStatus: should not be called")
	}
	return m.Impl.UpdateOrderStatus(ctx, orderID, status)
}

func (m *mockStorefrontClient) DeleteOrder(ctx context.Context, orderID int64) error {
	if m.Impl.DeleteOrder == nil {
		m.t.Fatal("DeleteOrder: should not be called")
	}
	return m.Impl.DeleteOrder(ctx, orderID)
}

func (m *mockStorefrontClient) CreateCheckoutSession(ctx context.Context, spec apipayments.CheckoutSpec) (apipayments.CheckoutSession, error) {
	if m.Impl.CreateCheckoutSession == nil {
		m.t.Fatal("CreateCheckoutSession: should not be called")
	}
	return m.Impl.CreateCheckoutSession(ctx, spec)
}

func (m *mockStorefrontClient) VerifySession(ctx context.Context, spec apipayments.VerifySpec) (apipayments.VerifyResult, error) {
	if m.Impl.VerifySession == nil {
		m.t.Fatal("VerifySession: should not be called")
	}
	return m.Impl.VerifySession(ctx, spec)
}

func (m *mockStorefrontClient) CreateDelivery(ctx context.Context, spec apideliveries.Spec) (apideliveries.Detail, error) {
	if m.Impl.CreateDelivery == nil {
		m.t.Fatal("CreateDelivery: should not be called")
	}
	return m.Impl.CreateDelivery(ctx, spec)
}

func (m *mockStorefrontClient) FindDeliveries(ctx context.Context, filter apideliveries.Filter) ([]apideliveries.Detail, error) {
	if m.Impl.FindDeliveries == nil {
		m.t.Fatal("FindDeliveries: should not be called")
	}
	return m.Impl.FindDeliveries(ctx, filter)
}

func (m *mockStorefrontClient) GetDelivery(ctx context.Context, deliveryID int64) (apideliveries.Detail, error) {
	if m.Impl.GetDelivery == nil {
		m.t.Fatal("GetDelivery: should not be called")
	}
	return m.Impl.GetDelivery(ctx, deliveryID)
}

func (m *mockStorefrontClient) GetDeliveryByOrder(ctx context.Context, orderID int64) (apideliveries.Detail, error) {
	if m.Impl.GetDeliveryByOrder == nil {
		m.t.Fatal("GetDeliveryByOrder: should not be called")
	}
	return m.Impl.GetDeliveryByOrder(ctx, orderID)
}

func (m *mockStorefrontClient) UpdateDeliveryStatus(ctx context.Context, deliveryID int64, change apideliveries.StatusChange) (apideliveries.Detail, error) {
	if m.Impl.UpdateDeliveryStatus == nil {
		m.t.Fatal("UpdateDeliveryStatus: should not be called")
	}
	return m.Impl.UpdateDeliveryStatus(ctx, deliveryID, change)
}

func (m *mockStorefrontClient) AdvanceDelivery(ctx context.Context, deliveryID int64) (apideliveries.Detail, error) {
	if m.Impl.AdvanceDelivery == nil {
		m.t.Fatal("AdvanceDelivery: should not be called")
	}
	return m.Impl.AdvanceDelivery(ctx, deliveryID)
}

func (m *mockStorefrontClient) AssignCourier(ctx context.Context, deliveryID int64, assignment apideliveries.CourierAssignment) (apideliveries.Detail, error) {
	if m.Impl.AssignCourier == nil {
		m.t.Fatal("AssignCourier: should not be called")
	}
	return m.Impl.AssignCourier(ctx, deliveryID, assignment)
}

func (m *mockStorefrontClient) DeleteDelivery(ctx context.Context, deliveryID int64) error {
	if m.Impl.DeleteDelivery == nil {
		m.t.Fatal("DeleteDelivery: should not be called")
	}
	return m.Impl.DeleteDelivery(ctx, deliveryID)
}
