package access

import (
	"github.com/pizza-net/pizza-frontend/pkg/api/types/users"
)

// Screen is one gated view of the storefront or back office.
type Screen string

const (
	Storefront         Screen = "storefront"
	Cart               Screen = "cart"
	OrderTracking      Screen = "order-tracking"
	CourierPanel       Screen = "courier-panel"
	AdminDashboard     Screen = "admin-dashboard"
	MenuManagement     Screen = "menu-management"
	UserManagement     Screen = "user-management"
	DeliveryManagement Screen = "delivery-management"

	// Login is the only screen everyone may see.
	Login Screen = "login"
)

var permitted = map[users.Role][]Screen{
	users.User:    {Storefront, Cart, OrderTracking},
	users.Courier: {CourierPanel},
	users.Admin:   {AdminDashboard, MenuManagement, UserManagement, DeliveryManagement},
}

var home = map[users.Role]Screen{
	users.User:    Storefront,
	users.Courier: CourierPanel,
	users.Admin:   AdminDashboard,
}

// PermittedScreens returns the screens the given role may view.
// Unknown roles get nothing.
func PermittedScreens(role users.Role) []Screen {
	ret := make([]Screen, len(permitted[role]))
	copy(ret, permitted[role])
	return ret
}

// Home is where a principal with the given role lands by default.
// The default/unknown route resolves through this same mapping.
func Home(role users.Role) Screen {
	if h, ok := home[role]; ok {
		return h
	}
	return Login
}

// Decision tells the caller what to do with a screen request.
type Decision struct {
	Allowed bool

	// RedirectTo is set when Allowed is false: Login for anonymous
	// callers, the role's home screen for everyone else.
	RedirectTo Screen
}

// Decide is a pure function of (authenticated, role, screen).
//
// Unauthenticated access to any gated screen redirects to login.
// Authenticated access to a screen outside the caller's role redirects
// to that role's home screen, never to an error.
func Decide(authenticated bool, role users.Role, screen Screen) Decision {
	if screen == Login {
		return Decision{Allowed: true}
	}
	if !authenticated {
		return Decision{RedirectTo: Login}
	}
	for _, s := range permitted[role] {
		if s == screen {
			return Decision{Allowed: true}
		}
	}
	return Decision{RedirectTo: Home(role)}
}
