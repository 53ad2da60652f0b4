package cartfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pizza-net/pizza-frontend/cmd/pizza/config/open"
	"github.com/pizza-net/pizza-frontend/pkg/cart"
	yaml "gopkg.in/yaml.v3"
)

// Store reads and writes the cart snapshot file.
//
// The cart lives on disk between invocations, so `pizza cart add` and
// `pizza order submit` can be separate processes.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the stored cart. No cart file means an empty cart.
func (st *Store) Load() (*cart.Cart, error) {
	buf, err := os.ReadFile(st.path)
	if err != nil {
		if os.IsNotExist(err) {
			return cart.New(), nil
		}
		return nil, err
	}

	var lines []cart.Line
	if err := yaml.Unmarshal(buf, &lines); err != nil {
		return nil, fmt.Errorf("cart file (%s) is broken: %w", st.path, err)
	}
	return cart.FromLines(lines), nil
}

// Save writes the cart snapshot, readable by the current user only.
func (st *Store) Save(c *cart.Cart) error {
	if err := os.MkdirAll(filepath.Dir(st.path), os.FileMode(0700)); err != nil {
		return err
	}

	f, err := open.NewSafeFile(st.path)
	if err != nil {
		return err
	}
	defer f.Close()

	buf, err := yaml.Marshal(c.Lines())
	if err != nil {
		return err
	}
	_, err = f.Write(buf)
	return err
}

// Clear removes the cart file. Clearing an absent cart is not an error.
func (st *Store) Clear() error {
	err := os.Remove(st.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
