package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kfc-ordering/internal/domain"
	"kfc-ordering/internal/session"
)

func TestHomeFor(t *testing.T) {
	assert.Equal(t, session.ScreenAdminDashboard, session.HomeFor(domain.RoleAdmin))
	assert.Equal(t, session.ScreenCustomerMenu, session.HomeFor(domain.RoleCustomer))
}

func TestCanView(t *testing.T) {
	tests := []struct {
		name   string
		role   domain.Role
		screen session.Screen
		want   bool
	}{
		{name: "anonymous_login", role: "", screen: session.ScreenLogin, want: true},
		{name: "anonymous_signup", role: "", screen: session.ScreenSignup, want: true},
		{name: "anonymous_menu_blocked", role: "", screen: session.ScreenCustomerMenu, want: false},
		{name: "customer_menu", role: domain.RoleCustomer, screen: session.ScreenCustomerMenu, want: true},
		{name: "customer_cart", role: domain.RoleCustomer, screen: session.ScreenCustomerCart, want: true},
		{name: "customer_orders", role: domain.RoleCustomer, screen: session.ScreenCustomerOrders, want: true},
		{name: "customer_receipt", role: domain.RoleCustomer, screen: session.ScreenReceipt, want: true},
		{name: "customer_admin_blocked", role: domain.RoleCustomer, screen: session.ScreenAdminDashboard, want: false},
		{name: "admin_dashboard", role: domain.RoleAdmin, screen: session.ScreenAdminDashboard, want: true},
		{name: "admin_menu", role: domain.RoleAdmin, screen: session.ScreenAdminMenu, want: true},
		{name: "admin_orders", role: domain.RoleAdmin, screen: session.ScreenAdminOrders, want: true},
		{name: "admin_customer_cart_blocked", role: domain.RoleAdmin, screen: session.ScreenCustomerCart, want: false},
		{name: "admin_back_to_login", role: domain.RoleAdmin, screen: session.ScreenLogin, want: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, session.CanView(tc.role, tc.screen))
		})
	}
}

func TestValid(t *testing.T) {
	assert.True(t, session.Valid(session.ScreenReceipt))
	assert.False(t, session.Valid(session.Screen("checkout")))
}
