// Package session defines the screen set and which screens each role may
// reach. The engine itself knows nothing about screens; only the session
// surface consumes this.
package session

import "kfc-ordering/internal/domain"

type Screen string

const (
	ScreenLogin          Screen = "login"
	ScreenSignup         Screen = "signup"
	ScreenCustomerMenu   Screen = "customer-menu"
	ScreenCustomerCart   Screen = "customer-cart"
	ScreenCustomerOrders Screen = "customer-orders"
	ScreenAdminDashboard Screen = "admin-dashboard"
	ScreenAdminMenu      Screen = "admin-menu"
	ScreenAdminOrders    Screen = "admin-orders"
	ScreenReceipt        Screen = "receipt"
)

var anonymousScreens = map[Screen]bool{
	ScreenLogin:  true,
	ScreenSignup: true,
}

var screensByRole = map[domain.Role]map[Screen]bool{
	domain.RoleCustomer: {
		ScreenCustomerMenu:   true,
		ScreenCustomerCart:   true,
		ScreenCustomerOrders: true,
		ScreenReceipt:        true,
	},
	domain.RoleAdmin: {
		ScreenAdminDashboard: true,
		ScreenAdminMenu:      true,
		ScreenAdminOrders:    true,
	},
}

// HomeFor returns the screen a freshly authenticated user lands on.
func HomeFor(role domain.Role) Screen {
	if role == domain.RoleAdmin {
		return ScreenAdminDashboard
	}
	return ScreenCustomerMenu
}

// CanView reports whether a user with the given role may reach the screen.
// An empty role means no user is logged in.
func CanView(role domain.Role, s Screen) bool {
	if anonymousScreens[s] {
		return true
	}
	return screensByRole[role][s]
}

func Valid(s Screen) bool {
	switch s {
	case ScreenLogin, ScreenSignup,
		ScreenCustomerMenu, ScreenCustomerCart, ScreenCustomerOrders,
		ScreenAdminDashboard, ScreenAdminMenu, ScreenAdminOrders,
		ScreenReceipt:
		return true
	}
	return false
}
