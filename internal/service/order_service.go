package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"kfc-ordering/internal/domain"
)

type OrderService struct {
	data      *DataStore
	publisher OrderEventPublisher
}

func NewOrderService(data *DataStore, publisher OrderEventPublisher) *OrderService {
	return &OrderService{data: data, publisher: publisher}
}

// SetStatus sets an order's status to any of the three values — skipping
// states is allowed, matching the permissive lifecycle. An unknown order id
// is a silent no-op; a string outside the status set is rejected before it
// can reach the persisted snapshot.
func (s *OrderService) SetStatus(orderID string, status domain.OrderStatus) error {
	if !domain.ValidStatus(status) {
		return fmt.Errorf("%w: unknown order status %q", domain.ErrValidation, status)
	}

	var updated *domain.Order
	err := s.data.Update(func(snap *domain.Snapshot) {
		for i := range snap.Orders {
			if snap.Orders[i].ID == orderID {
				snap.Orders[i].Status = status
				updated = &snap.Orders[i]
				return
			}
		}
	})
	if err != nil {
		return err
	}

	if updated != nil && s.publisher != nil {
		event := domain.OrderEvent{
			Type:        domain.EventStatusChange,
			OrderID:     updated.ID,
			OrderNumber: updated.OrderNumber,
			UserID:      updated.UserID,
			Status:      status,
			Total:       updated.Total,
			Timestamp:   time.Now(),
		}
		if err := s.publisher.PublishOrderEvent(context.Background(), event); err != nil {
			log.Printf("[orders] failed to publish status event for %s: %v", updated.OrderNumber, err)
		}
	}
	return nil
}

// OrdersForUser returns the user's orders, newest first.
func (s *OrderService) OrdersForUser(userID string) []domain.Order {
	var out []domain.Order
	for _, o := range s.data.Orders() {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	sortNewestFirst(out)
	return out
}

// FilterByStatus returns all orders, or those with the given status, newest
// first. The filter "all" (or empty) means no filtering.
func (s *OrderService) FilterByStatus(filter string) []domain.Order {
	orders := s.data.Orders()
	if filter == "" || filter == "all" {
		sortNewestFirst(orders)
		return orders
	}
	var out []domain.Order
	for _, o := range orders {
		if string(o.Status) == filter {
			out = append(out, o)
		}
	}
	sortNewestFirst(out)
	return out
}

func sortNewestFirst(orders []domain.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}

// GetStats is a pure projection over the order collection, recomputed on
// every call so it is always consistent with the store.
func (s *OrderService) GetStats() domain.Stats {
	stats := domain.Stats{}
	for _, o := range s.data.Orders() {
		stats.TotalRevenue += o.Total
		stats.TotalOrders++
		if o.Status == domain.StatusPending {
			stats.PendingOrders++
		}
	}
	stats.TotalRevenue = domain.Round2(stats.TotalRevenue)
	return stats
}

var _ OrderServiceInterface = (*OrderService)(nil)
