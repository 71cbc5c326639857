package service

import (
	"context"

	"kfc-ordering/internal/domain"
)

// BlobStore is the persistence adapter: one serialized snapshot under one
// fixed application key. Load reports found=false when the key is absent.
type BlobStore interface {
	Load() (domain.Snapshot, bool, error)
	Save(snapshot domain.Snapshot) error
}

// OrderEventPublisher pushes order events to an external broker. Optional:
// services treat a nil publisher as "don't publish", and publish failures
// never affect the store.
type OrderEventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

// QRGenerator encodes a receipt lookup for an order as a PNG.
type QRGenerator interface {
	Generate(orderNumber string) ([]byte, error)
}

type CartServiceInterface interface {
	AddToCart(item domain.MenuItem)
	UpdateQuantity(itemID string, delta int)
	RemoveFromCart(itemID string)
	Lines() []domain.CartLine
	CartTotal() float64
	PlaceOrder() (*domain.Order, error)
}

type CatalogServiceInterface interface {
	AddMenuItem(input NewMenuItem) (*domain.MenuItem, error)
	UpdateMenuItem(id string, updates MenuItemUpdate) error
	DeleteMenuItem(id string) error
	ToggleAvailability(id string) error
	FullMenu() []domain.MenuItem
	CustomerMenu() []domain.MenuItem
	Categories() []string
	FindItem(id string) (*domain.MenuItem, error)
}

type OrderServiceInterface interface {
	SetStatus(orderID string, status domain.OrderStatus) error
	OrdersForUser(userID string) []domain.Order
	FilterByStatus(filter string) []domain.Order
	GetStats() domain.Stats
}

type AuthServiceInterface interface {
	Login(email, password string) (*domain.User, error)
	Signup(name, email, password, confirm string) (*domain.User, error)
	Logout()
}
