package args

import (
	"fmt"
	"strconv"

	"github.com/youta-t/flarc"
)

// ParseID reads a positional argument as a numeric id.
//
// A non-numeric value is a usage error, not a runtime failure.
func ParseID(name string, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number, got %q", flarc.ErrUsage, name, raw)
	}
	return id, nil
}
