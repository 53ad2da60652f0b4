package common

import (
	"fmt"

	"github.com/pizza-net/pizza-frontend/cmd/pizza/config/session"
	"github.com/pizza-net/pizza-frontend/pkg/access"
)

// EnsureScreen gates a command on the screen it corresponds to.
//
// Anonymous callers are sent to login; callers whose role does not
// cover the screen get an error naming where they belong instead.
// The backend enforces its own rules regardless; this only saves a
// doomed round-trip.
func EnsureScreen(sess session.Session, screen access.Screen) error {
	d := access.Decide(sess.IsAuthenticated(), sess.Role, screen)
	if d.Allowed {
		return nil
	}
	if d.RedirectTo == access.Login {
		return session.ErrNotLoggedIn
	}
	return fmt.Errorf(
		"%s is not open to role %s. Your home is %s",
		screen, sess.Role, d.RedirectTo,
	)
}
