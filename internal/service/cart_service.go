package service

import (
	"context"
	"log"
	"time"

	"kfc-ordering/internal/domain"
	"kfc-ordering/internal/session"
)

// CartService is the cart/order engine: it turns session cart lines into a
// priced order. The cart itself lives on the session; the order collection
// lives in the data store.
type CartService struct {
	data      *DataStore
	session   *Session
	publisher OrderEventPublisher
	now       func() time.Time
}

func NewCartService(data *DataStore, sess *Session, publisher OrderEventPublisher) *CartService {
	return &CartService{
		data:      data,
		session:   sess,
		publisher: publisher,
		now:       time.Now,
	}
}

// AddToCart increments the existing line for the item, or appends a new line
// with quantity 1. Item fields are snapshotted at first add; repeat adds keep
// the locked-in price even if the catalog changed in between.
func (s *CartService) AddToCart(item domain.MenuItem) {
	for i := range s.session.Cart {
		if s.session.Cart[i].ItemID == item.ID {
			s.session.Cart[i].Quantity++
			return
		}
	}
	s.session.Cart = append(s.session.Cart, domain.CartLine{
		ItemID:      item.ID,
		Name:        item.Name,
		Price:       item.Price,
		Description: item.Description,
		Image:       item.Image,
		Quantity:    1,
	})
}

// UpdateQuantity adds delta to the matching line's quantity, removing the
// line when the result drops to zero or below. Unknown ids are a no-op.
func (s *CartService) UpdateQuantity(itemID string, delta int) {
	for i := range s.session.Cart {
		if s.session.Cart[i].ItemID != itemID {
			continue
		}
		if s.session.Cart[i].Quantity+delta <= 0 {
			s.session.Cart = append(s.session.Cart[:i], s.session.Cart[i+1:]...)
		} else {
			s.session.Cart[i].Quantity += delta
		}
		return
	}
}

// RemoveFromCart deletes the matching line; no-op when absent.
func (s *CartService) RemoveFromCart(itemID string) {
	for i := range s.session.Cart {
		if s.session.Cart[i].ItemID == itemID {
			s.session.Cart = append(s.session.Cart[:i], s.session.Cart[i+1:]...)
			return
		}
	}
}

// Lines returns a copy of the current cart.
func (s *CartService) Lines() []domain.CartLine {
	out := make([]domain.CartLine, len(s.session.Cart))
	copy(out, s.session.Cart)
	return out
}

// CartTotal sums price*quantity across lines, rounded to 2 decimal places.
func (s *CartService) CartTotal() float64 {
	var total float64
	for _, l := range s.session.Cart {
		total += l.Subtotal()
	}
	return domain.Round2(total)
}

// PlaceOrder materializes the cart into an order: fresh id and order number,
// line-by-line copies, total equal to the pre-call CartTotal, status pending.
// The order collection and the cart change together or not at all — a failed
// persist leaves both untouched.
func (s *CartService) PlaceOrder() (*domain.Order, error) {
	if len(s.session.Cart) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if !s.session.LoggedIn() {
		return nil, domain.ErrNotAuthenticated
	}

	lines := make([]domain.OrderLine, len(s.session.Cart))
	for i, l := range s.session.Cart {
		lines[i] = domain.OrderLine{
			ItemID:   l.ItemID,
			Name:     l.Name,
			Price:    l.Price,
			Quantity: l.Quantity,
		}
	}

	order := domain.Order{
		ID:          s.data.NextID(),
		UserID:      s.session.User.ID,
		UserName:    s.session.User.Name,
		Lines:       lines,
		Total:       s.CartTotal(),
		Status:      domain.StatusPending,
		CreatedAt:   s.now(),
		OrderNumber: s.data.NextOrderNumber(),
	}

	err := s.data.Update(func(snap *domain.Snapshot) {
		snap.Orders = append(snap.Orders, order)
	})
	if err != nil {
		return nil, err
	}

	s.session.ClearCart()
	s.session.Receipt = &order
	s.session.Screen = session.ScreenReceipt

	if s.publisher != nil {
		event := domain.OrderEvent{
			Type:        domain.EventOrderPlaced,
			OrderID:     order.ID,
			OrderNumber: order.OrderNumber,
			UserID:      order.UserID,
			Status:      order.Status,
			Total:       order.Total,
			Timestamp:   s.now(),
		}
		if err := s.publisher.PublishOrderEvent(context.Background(), event); err != nil {
			log.Printf("[cart] failed to publish order event for %s: %v", order.OrderNumber, err)
		}
	}

	return &order, nil
}

var _ CartServiceInterface = (*CartService)(nil)
