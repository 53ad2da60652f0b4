package access_test

import (
	"testing"

	"github.com/pizza-net/pizza-frontend/pkg/access"
	"github.com/pizza-net/pizza-frontend/pkg/api/types/users"
)

func TestDecide(t *testing.T) {
	type when struct {
		authenticated bool
		role          users.Role
		screen        access.Screen
	}
	type then struct {
		allowed    bool
		redirectTo access.Screen
	}

	theory := func(when when, then then) func(*testing.T) {
		return func(t *testing.T) {
			actual := access.Decide(when.authenticated, when.role, when.screen)
			if actual.Allowed != then.allowed {
				t.Errorf("unexpected Allowed (actual, expected) = (%t, %t)", actual.Allowed, then.allowed)
			}
			if actual.RedirectTo != then.redirectTo {
				t.Errorf(
					"unexpected RedirectTo (actual, expected) = (%s, %s)",
					actual.RedirectTo, then.redirectTo,
				)
			}
		}
	}

	t.Run(
		"when anonymous asks for the storefront, it redirects to login",
		theory(
			when{authenticated: false, screen: access.Storefront},
			then{allowed: false, redirectTo: access.Login},
		),
	)
	t.Run(
		"when anonymous asks for the login screen, it is allowed",
		theory(
			when{authenticated: false, screen: access.Login},
			then{allowed: true},
		),
	)
	t.Run(
		"when a user asks for a user screen, it is allowed",
		theory(
			when{authenticated: true, role: users.User, screen: access.OrderTracking},
			then{allowed: true},
		),
	)
	t.Run(
		"when a user asks for an admin screen, it redirects to the user home",
		theory(
			when{authenticated: true, role: users.User, screen: access.MenuManagement},
			then{allowed: false, redirectTo: access.Storefront},
		),
	)
	t.Run(
		"when a courier asks for the courier panel, it is allowed",
		theory(
			when{authenticated: true, role: users.Courier, screen: access.CourierPanel},
			then{allowed: true},
		),
	)
	t.Run(
		"when a courier asks for the storefront, it redirects to the courier panel",
		theory(
			when{authenticated: true, role: users.Courier, screen: access.Storefront},
			then{allowed: false, redirectTo: access.CourierPanel},
		),
	)
	t.Run(
		"when an admin asks for delivery management, it is allowed",
		theory(
			when{authenticated: true, role: users.Admin, screen: access.DeliveryManagement},
			then{allowed: true},
		),
	)
	t.Run(
		"when an admin asks for the cart, it redirects to the admin dashboard",
		theory(
			when{authenticated: true, role: users.Admin, screen: access.Cart},
			then{allowed: false, redirectTo: access.AdminDashboard},
		),
	)
	t.Run(
		"when the role is unknown, it redirects to login",
		theory(
			when{authenticated: true, role: users.Role("MYSTERY"), screen: access.Storefront},
			then{allowed: false, redirectTo: access.Login},
		),
	)
}

func TestHome(t *testing.T) {
	for _, testcase := range []struct {
		role     users.Role
		expected access.Screen
	}{
		{users.User, access.Storefront},
		{users.Courier, access.CourierPanel},
		{users.Admin, access.AdminDashboard},
		{users.Role(""), access.Login},
		{users.Role("MYSTERY"), access.Login},
	} {
		if actual := access.Home(testcase.role); actual != testcase.expected {
			t.Errorf(
				"unexpected home of %q (actual, expected) = (%s, %s)",
				testcase.role, actual, testcase.expected,
			)
		}
	}
}
