package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kfc-ordering/internal/domain"
)

func placeTestOrder(t *testing.T, env *testEnv, itemID string) *domain.Order {
	t.Helper()
	env.cart.AddToCart(env.item(t, itemID))
	order, err := env.cart.PlaceOrder()
	require.NoError(t, err)
	return order
}

func TestSetStatus_SkippingStatesAllowed(t *testing.T) {
	env := newTestEnv(t)
	env.loginCustomer(t)
	order := placeTestOrder(t, env, "4")

	// pending straight to ready, no intermediate step required.
	require.NoError(t, env.orders.SetStatus(order.ID, domain.StatusReady))

	stored := env.data.Orders()
	require.Len(t, stored, 1)
	assert.Equal(t, domain.StatusReady, stored[0].Status)

	// And back again: transitions are unrestricted in any direction.
	require.NoError(t, env.orders.SetStatus(order.ID, domain.StatusPending))
	assert.Equal(t, domain.StatusPending, env.data.Orders()[0].Status)
}

func TestSetStatus_UnknownOrderSilentNoop(t *testing.T) {
	env := newTestEnv(t)
	env.loginCustomer(t)
	placeTestOrder(t, env, "4")

	require.NoError(t, env.orders.SetStatus("404", domain.StatusReady))
	assert.Equal(t, domain.StatusPending, env.data.Orders()[0].Status)
}

func TestSetStatus_RejectsUnknownStatus(t *testing.T) {
	env := newTestEnv(t)
	env.loginCustomer(t)
	order := placeTestOrder(t, env, "4")

	err := env.orders.SetStatus(order.ID, domain.OrderStatus("cancelled"))
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, domain.StatusPending, env.data.Orders()[0].Status)
}

func TestSetStatus_PublishesEvent(t *testing.T) {
	env := newTestEnv(t)
	env.loginCustomer(t)
	order := placeTestOrder(t, env, "4")

	require.NoError(t, env.orders.SetStatus(order.ID, domain.StatusPreparing))

	events := env.events.Events()
	require.Len(t, events, 2) // order_placed, then status_change
	assert.Equal(t, domain.EventStatusChange, events[1].Type)
	assert.Equal(t, order.ID, events[1].OrderID)
	assert.Equal(t, domain.StatusPreparing, events[1].Status)
}

func TestGetStats(t *testing.T) {
	env := newTestEnv(t)
	env.loginCustomer(t)

	assert.Equal(t, domain.Stats{}, env.orders.GetStats())

	first := placeTestOrder(t, env, "1")  // 8.99
	second := placeTestOrder(t, env, "4") // 2.99

	stats := env.orders.GetStats()
	assert.Equal(t, 2, stats.TotalOrders)
	assert.Equal(t, 2, stats.PendingOrders)
	assert.Equal(t, domain.Round2(first.Total+second.Total), stats.TotalRevenue)

	// Resolving the only remaining pending order drops the pending count.
	require.NoError(t, env.orders.SetStatus(first.ID, domain.StatusReady))
	require.NoError(t, env.orders.SetStatus(second.ID, domain.StatusPreparing))

	stats = env.orders.GetStats()
	assert.Equal(t, 2, stats.TotalOrders)
	assert.Equal(t, 0, stats.PendingOrders)
}

func TestFilterByStatus(t *testing.T) {
	env := newTestEnv(t)
	env.loginCustomer(t)

	first := placeTestOrder(t, env, "1")
	second := placeTestOrder(t, env, "4")
	require.NoError(t, env.orders.SetStatus(second.ID, domain.StatusReady))

	all := env.orders.FilterByStatus("all")
	assert.Len(t, all, 2)

	pending := env.orders.FilterByStatus("pending")
	require.Len(t, pending, 1)
	assert.Equal(t, first.ID, pending[0].ID)

	ready := env.orders.FilterByStatus("ready")
	require.Len(t, ready, 1)
	assert.Equal(t, second.ID, ready[0].ID)

	assert.Empty(t, env.orders.FilterByStatus("preparing"))
}

func TestOrdersForUser(t *testing.T) {
	env := newTestEnv(t)
	customer := env.loginCustomer(t)
	placeTestOrder(t, env, "4")

	// A second account's order must not leak into the first user's listing.
	other, err := env.auth.Signup("Jane Roe", "jane@example.com", "pass1234", "pass1234")
	require.NoError(t, err)
	placeTestOrder(t, env, "6")

	mine := env.orders.OrdersForUser(customer.ID)
	require.Len(t, mine, 1)
	assert.Equal(t, customer.ID, mine[0].UserID)

	theirs := env.orders.OrdersForUser(other.ID)
	require.Len(t, theirs, 1)
	assert.Equal(t, other.ID, theirs[0].UserID)

	assert.Empty(t, env.orders.OrdersForUser("404"))
}
