package tracking

import (
	"context"
	"errors"
	"fmt"

	apideliveries "github.com/pizza-net/pizza-frontend/pkg/api/types/deliveries"
	apiorders "github.com/pizza-net/pizza-frontend/pkg/api/types/orders"
	"github.com/pizza-net/pizza-frontend/pkg/utils/slices"
)

// Progress maps a delivery status onto a 0..100 completion value,
// for progress bars and the like.
//
// Cancelled and unknown statuses both map to 0.
func Progress(s apideliveries.Status) int {
	switch s {
	case apideliveries.Pending:
		return 20
	case apideliveries.Assigned:
		return 40
	case apideliveries.PickedUp:
		return 60
	case apideliveries.InTransit:
		return 80
	case apideliveries.Delivered:
		return 100
	default:
		return 0
	}
}

// ErrNoForwardTransition means the delivery cannot be advanced from its
// current status: it is not started, already done, or cancelled.
var ErrNoForwardTransition = errors.New("no forward transition")

var forward = map[apideliveries.Status]apideliveries.Status{
	apideliveries.Assigned:  apideliveries.PickedUp,
	apideliveries.PickedUp:  apideliveries.InTransit,
	apideliveries.InTransit: apideliveries.Delivered,
}

// Next is the single legal courier-side advance from the given status.
//
// Only ASSIGNED, PICKED_UP and IN_TRANSIT can advance; everything else
// gets ErrNoForwardTransition. In particular PENDING cannot be skipped
// ahead: assignment is the dispatcher's move, not the courier's.
func Next(s apideliveries.Status) (apideliveries.Status, error) {
	n, ok := forward[s]
	if !ok {
		return s, fmt.Errorf("%w: from %s", ErrNoForwardTransition, s)
	}
	return n, nil
}

// Terminal reports whether a delivery in this status will never change
// again. Watchers can stop polling on it.
func Terminal(s apideliveries.Status) bool {
	return s == apideliveries.Delivered || s == apideliveries.Cancelled
}

// Entry pairs one order with its delivery, if the order has one.
type Entry struct {
	Order apiorders.Detail

	// Delivery is nil while the order has no delivery record.
	Delivery *apideliveries.Detail
}

// Client is the slice of the storefront API the tracking board needs.
type Client interface {
	FindOrders(ctx context.Context, customerID int64) ([]apiorders.Detail, error)
	GetDeliveryByOrder(ctx context.Context, orderID int64) (apideliveries.Detail, error)
}

// FetchBoard assembles the order-tracking view for one customer: all of
// their orders, newest first, each joined with its delivery record.
//
// Deliveries are fetched concurrently, one request per order. An order
// whose delivery lookup answers "not found" gets a nil Delivery; any
// other lookup failure fails the whole fetch.
func FetchBoard(ctx context.Context, client Client, customerID int64) ([]Entry, error) {
	orders, err := client.FindOrders(ctx, customerID)
	if err != nil {
		return nil, err
	}

	orders = slices.Sorted(orders, func(a, b apiorders.Detail) bool {
		return b.OrderDate.Time().Before(a.OrderDate.Time())
	})

	board := make([]Entry, len(orders))
	errs := make([]error, len(orders))
	done := make(chan struct{})
	for i, o := range orders {
		go func(i int, o apiorders.Detail) {
			defer func() { done <- struct{}{} }()
			board[i] = Entry{Order: o}

			d, err := client.GetDeliveryByOrder(ctx, o.ID)
			if err != nil {
				if !errors.Is(err, apideliveries.ErrNotFound) {
					errs[i] = err
				}
				return
			}
			board[i].Delivery = &d
		}(i, o)
	}
	for range orders {
		<-done
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return board, nil
}
