package pizzas

import "fmt"

type Size string

const (
	Small  Size = "SMALL"
	Medium Size = "MEDIUM"
	Large  Size = "LARGE"
)

var ErrInvalidSpec = fmt.Errorf("invalid pizza spec")

// Spec is what an admin sends to create or update a menu item.
type Spec struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Size        Size    `json:"size"`
	Available   bool    `json:"available"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

// Validate rejects specs the menu service would refuse anyway,
// before any network call.
func (s Spec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidSpec)
	}
	if s.Price <= 0 {
		return fmt.Errorf("%w: price must be positive, got %v", ErrInvalidSpec, s.Price)
	}
	switch s.Size {
	case Small, Medium, Large:
		return nil
	default:
		return fmt.Errorf("%w: unknown size %q", ErrInvalidSpec, s.Size)
	}
}

type Detail struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Size        Size    `json:"size"`
	Available   bool    `json:"available"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

func (d *Detail) Equal(o *Detail) bool {
	if d == nil || o == nil {
		return (d == nil) && (o == nil)
	}
	return d.ID == o.ID &&
		d.Name == o.Name &&
		d.Description == o.Description &&
		d.Price == o.Price &&
		d.Size == o.Size &&
		d.Available == o.Available &&
		d.ImageURL == o.ImageURL
}
