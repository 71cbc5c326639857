package domain

import (
	"math"
	"strconv"
	"time"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
)

// ValidStatus reports whether s is one of the three order statuses.
// Transitions between them are unrestricted; only unknown strings are rejected.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady:
		return true
	}
	return false
}

type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Available   bool    `json:"available"`
}

type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Password string `json:"password"`
}

// CartLine lives in the session only. It carries a copy of the item fields
// taken when the item first entered the cart, so later catalog edits do not
// change an in-progress cart.
type CartLine struct {
	ItemID      string  `json:"item_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Quantity    int     `json:"quantity"`
}

func (l CartLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// OrderLine is an independent copy of a menu item at order-creation time.
// It does not reference MenuItem; deleting or editing catalog items never
// alters historical orders.
type OrderLine struct {
	ItemID   string  `json:"item_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

func (l OrderLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

type Order struct {
	ID          string      `json:"id"`
	UserID      string      `json:"user_id"`
	UserName    string      `json:"user_name"`
	Lines       []OrderLine `json:"lines"`
	Total       float64     `json:"total"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	OrderNumber string      `json:"order_number"`
}

// Snapshot is the persisted aggregate: everything that survives a restart.
type Snapshot struct {
	Menu   []MenuItem `json:"menu"`
	Orders []Order    `json:"orders"`
	Users  []User     `json:"users"`
}

// Clone returns a deep copy so callers can build a replacement snapshot
// without mutating the one readers currently see.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Menu:   make([]MenuItem, len(s.Menu)),
		Orders: make([]Order, len(s.Orders)),
		Users:  make([]User, len(s.Users)),
	}
	copy(out.Menu, s.Menu)
	copy(out.Users, s.Users)
	for i, o := range s.Orders {
		lines := make([]OrderLine, len(o.Lines))
		copy(lines, o.Lines)
		o.Lines = lines
		out.Orders[i] = o
	}
	return out
}

// Round2 rounds a money amount to 2 decimal places. Totals are rounded once,
// at computation time, and never recomputed later.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatAmount renders a money amount with exactly two decimals, e.g. "2.99".
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

type Stats struct {
	TotalRevenue  float64 `json:"total_revenue"`
	TotalOrders   int     `json:"total_orders"`
	PendingOrders int     `json:"pending_orders"`
}

// OrderEvent is published to Kafka when an order is placed or its status
// changes. Consumers (kitchen displays etc.) are outside this system.
type OrderEvent struct {
	Type        string      `json:"type"`
	OrderID     string      `json:"order_id"`
	OrderNumber string      `json:"order_number"`
	UserID      string      `json:"user_id"`
	Status      OrderStatus `json:"status"`
	Total       float64     `json:"total"`
	Timestamp   time.Time   `json:"timestamp"`
}

const (
	EventOrderPlaced  = "order_placed"
	EventStatusChange = "status_change"
)
