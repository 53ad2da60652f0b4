package deliveries

import (
	"errors"

	"github.com/pizza-net/pizza-frontend/pkg/cmp"
	"github.com/pizza-net/pizza-frontend/pkg/utils/rfctime"
)

// ErrNotFound means the order has no delivery (yet).
var ErrNotFound = errors.New("delivery not found")

// Status of a delivery, owned by the backend delivery service.
type Status string

const (
	Pending   Status = "PENDING"
	Assigned  Status = "ASSIGNED"
	PickedUp  Status = "PICKED_UP"
	InTransit Status = "IN_TRANSIT"
	Delivered Status = "DELIVERED"
	Cancelled Status = "CANCELLED"
)

type Detail struct {
	ID              int64            `json:"id"`
	OrderID         int64            `json:"orderId"`
	Status          Status           `json:"status"`
	CourierID       *int64           `json:"courierId,omitempty"`
	DeliveryAddress string           `json:"deliveryAddress"`
	CustomerPhone   string           `json:"customerPhone"`
	Notes           string           `json:"notes,omitempty"`
	CreatedAt       rfctime.RFC3339  `json:"createdAt"`
	DeliveredAt     *rfctime.RFC3339 `json:"deliveredAt,omitempty"`
}

func (d *Detail) Equal(o *Detail) bool {
	if d == nil || o == nil {
		return (d == nil) && (o == nil)
	}
	return d.ID == o.ID &&
		d.OrderID == o.OrderID &&
		d.Status == o.Status &&
		cmp.PEqEq(d.CourierID, o.CourierID) &&
		d.DeliveryAddress == o.DeliveryAddress &&
		d.CustomerPhone == o.CustomerPhone &&
		d.Notes == o.Notes &&
		d.CreatedAt.Equal(&o.CreatedAt) &&
		d.DeliveredAt.Equal(o.DeliveredAt)
}

// Spec asks the delivery service to open a delivery for an order.
type Spec struct {
	OrderID         int64  `json:"orderId"`
	CustomerID      int64  `json:"customerId"`
	DeliveryAddress string `json:"deliveryAddress"`
	CustomerPhone   string `json:"customerPhone"`
	Notes           string `json:"notes,omitempty"`
}

// Filter narrows FindDeliveries. Zero-valued fields are not sent.
type Filter struct {
	Status     Status
	CourierID  *int64
	CustomerID *int64
}

type StatusChange struct {
	Status Status `json:"status"`
}

type CourierAssignment struct {
	CourierID int64 `json:"courierId"`
}
