package orders

import (
	"github.com/pizza-net/pizza-frontend/pkg/cmp"
	"github.com/pizza-net/pizza-frontend/pkg/utils/rfctime"
)

type Item struct {
	PizzaID  int64 `json:"pizzaId"`
	Quantity int   `json:"quantity"`
}

// Spec is the order-creation payload.
//
// TotalPrice is absent on purpose: the order service computes the price
// from its own menu, and that value wins over anything the client knows.
type Spec struct {
	CustomerID      int64  `json:"customerId"`
	CustomerName    string `json:"customerName"`
	DeliveryAddress string `json:"deliveryAddress"`
	CustomerPhone   string `json:"customerPhone"`
	Notes           string `json:"notes,omitempty"`
	Items           []Item `json:"items"`
}

type Detail struct {
	ID              int64           `json:"id"`
	CustomerID      int64           `json:"customerId"`
	Status          string          `json:"status"`
	TotalPrice      float64         `json:"totalPrice"`
	DeliveryAddress string          `json:"deliveryAddress"`
	CustomerPhone   string          `json:"customerPhone"`
	Notes           string          `json:"notes,omitempty"`
	OrderDate       rfctime.RFC3339 `json:"orderDate"`
	DeliveryID      *int64          `json:"deliveryId,omitempty"`
	Items           []Item          `json:"items,omitempty"`
}

func (d *Detail) Equal(o *Detail) bool {
	if d == nil || o == nil {
		return (d == nil) && (o == nil)
	}
	return d.ID == o.ID &&
		d.CustomerID == o.CustomerID &&
		d.Status == o.Status &&
		d.TotalPrice == o.TotalPrice &&
		d.DeliveryAddress == o.DeliveryAddress &&
		d.CustomerPhone == o.CustomerPhone &&
		d.Notes == o.Notes &&
		d.OrderDate.Equal(&o.OrderDate) &&
		cmp.PEqEq(d.DeliveryID, o.DeliveryID) &&
		cmp.SliceEq(d.Items, o.Items)
}
