package cart

import (
	"github.com/pizza-net/pizza-frontend/pkg/api/types/orders"
	"github.com/pizza-net/pizza-frontend/pkg/api/types/pizzas"
	"github.com/pizza-net/pizza-frontend/pkg/utils/slices"
)

// Line is one pizza in the cart with how many of it the customer wants.
//
// Quantity is 1 or more, always: a line whose quantity would drop to zero
// is removed from the cart instead.
type Line struct {
	PizzaID   int64   `yaml:"pizzaId" json:"pizzaId"`
	Name      string  `yaml:"name" json:"name"`
	UnitPrice float64 `yaml:"unitPrice" json:"unitPrice"`
	Quantity  int     `yaml:"quantity" json:"quantity"`
}

// Cart is an ordered collection of Lines.
//
// Ordering is stable: existing lines keep their position on quantity
// change, new lines are appended at the end. Totals are recomputed on
// every call, never cached.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// FromLines restores a cart from a snapshot, e.g. one read back from disk.
func FromLines(lines []Line) *Cart {
	c := &Cart{lines: make([]Line, 0, len(lines))}
	for _, l := range lines {
		if l.Quantity < 1 {
			continue
		}
		c.lines = append(c.lines, l)
	}
	return c
}

// Add puts one more of the given pizza into the cart.
//
// If the pizza is there already (by id), its quantity is incremented;
// otherwise a new line with quantity 1 is appended.
func (c *Cart) Add(p pizzas.Detail) {
	for i := range c.lines {
		if c.lines[i].PizzaID == p.ID {
			c.lines[i].Quantity += 1
			return
		}
	}
	c.lines = append(c.lines, Line{
		PizzaID: p.ID, Name: p.Name, UnitPrice: p.Price, Quantity: 1,
	})
}

// Remove drops the line with the given pizza id entirely,
// regardless of its quantity. Removing an absent id is a no-op.
func (c *Cart) Remove(pizzaID int64) {
	c.lines = slices.Filter(c.lines, func(l Line) bool {
		return l.PizzaID != pizzaID
	})
}

// SetQuantity replaces the quantity of the line with the given pizza id.
//
// q <= 0 is equivalent to Remove. Setting quantity of an absent id is
// a no-op.
func (c *Cart) SetQuantity(pizzaID int64, q int) {
	if q <= 0 {
		c.Remove(pizzaID)
		return
	}
	for i := range c.lines {
		if c.lines[i].PizzaID == pizzaID {
			c.lines[i].Quantity = q
			return
		}
	}
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Total is the sum of unitPrice x quantity over all lines.
func (c *Cart) Total() float64 {
	total := 0.0
	for _, l := range c.lines {
		total += l.UnitPrice * float64(l.Quantity)
	}
	return total
}

// ItemCount is the sum of quantities over all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}

// Lines returns a copy of the cart content, in cart order.
func (c *Cart) Lines() []Line {
	ret := make([]Line, len(c.lines))
	copy(ret, c.lines)
	return ret
}

// Items converts the cart into the order-creation payload shape.
func (c *Cart) Items() []orders.Item {
	return slices.Map(c.lines, func(l Line) orders.Item {
		return orders.Item{PizzaID: l.PizzaID, Quantity: l.Quantity}
	})
}
