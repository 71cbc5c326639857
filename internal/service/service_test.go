package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"kfc-ordering/internal/domain"
	"kfc-ordering/internal/service"
	"kfc-ordering/internal/storage"
)

// recordingPublisher captures order events for assertions.
type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.OrderEvent
}

func (p *recordingPublisher) PublishOrderEvent(_ context.Context, event domain.OrderEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) Events() []domain.OrderEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.OrderEvent, len(p.events))
	copy(out, p.events)
	return out
}

type testEnv struct {
	blob    *storage.MemoryStore
	data    *service.DataStore
	session *service.Session
	auth    *service.AuthService
	catalog *service.CatalogService
	cart    *service.CartService
	orders  *service.OrderService
	events  *recordingPublisher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	blob := storage.NewMemoryStore()
	data, err := service.NewDataStore(blob)
	require.NoError(t, err)

	sess := service.NewSession()
	events := &recordingPublisher{}
	return &testEnv{
		blob:    blob,
		data:    data,
		session: sess,
		auth:    service.NewAuthService(data, sess),
		catalog: service.NewCatalogService(data),
		cart:    service.NewCartService(data, sess, events),
		orders:  service.NewOrderService(data, events),
		events:  events,
	}
}

func (e *testEnv) loginCustomer(t *testing.T) *domain.User {
	t.Helper()
	user, err := e.auth.Login("john@example.com", "customer123")
	require.NoError(t, err)
	return user
}

func (e *testEnv) loginAdmin(t *testing.T) *domain.User {
	t.Helper()
	user, err := e.auth.Login("admin@kfc.com", "admin123")
	require.NoError(t, err)
	return user
}

func (e *testEnv) item(t *testing.T, id string) domain.MenuItem {
	t.Helper()
	item, err := e.catalog.FindItem(id)
	require.NoError(t, err)
	return *item
}
