package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"kfc-ordering/internal/domain"
	"kfc-ordering/internal/service"
	"kfc-ordering/internal/session"
)

// Handler exposes the single-session ordering surface as a JSON API. The
// session it serves is the one user session of the process.
type Handler struct {
	Auth    service.AuthServiceInterface
	Catalog service.CatalogServiceInterface
	Cart    service.CartServiceInterface
	Orders  service.OrderServiceInterface
	Session *service.Session
	QR      service.QRGenerator
}

func NewHandler(auth service.AuthServiceInterface, catalog service.CatalogServiceInterface, cart service.CartServiceInterface, orders service.OrderServiceInterface, sess *service.Session, qr service.QRGenerator) *Handler {
	return &Handler{
		Auth:    auth,
		Catalog: catalog,
		Cart:    cart,
		Orders:  orders,
		Session: sess,
		QR:      qr,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/auth/login", h.login).Methods("POST")
	r.HandleFunc("/api/auth/signup", h.signup).Methods("POST")
	r.HandleFunc("/api/auth/logout", h.logout).Methods("POST")

	r.HandleFunc("/api/session", h.getSession).Methods("GET")
	r.HandleFunc("/api/session/screen", h.setScreen).Methods("POST")

	r.HandleFunc("/api/menu", h.getCustomerMenu).Methods("GET")
	r.HandleFunc("/api/menu/categories", h.getCategories).Methods("GET")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{id}", h.updateCartItem).Methods("PATCH")
	r.HandleFunc("/api/cart/items/{id}", h.removeCartItem).Methods("DELETE")

	r.HandleFunc("/api/orders", h.placeOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.getMyOrders).Methods("GET")
	r.HandleFunc("/api/receipt", h.getReceipt).Methods("GET")
	r.HandleFunc("/api/receipt/qrcode", h.getReceiptQRCode).Methods("GET")

	r.HandleFunc("/api/admin/stats", h.getStats).Methods("GET")
	r.HandleFunc("/api/admin/menu", h.getFullMenu).Methods("GET")
	r.HandleFunc("/api/admin/menu", h.addMenuItem).Methods("POST")
	r.HandleFunc("/api/admin/menu/{id}", h.updateMenuItem).Methods("PUT")
	r.HandleFunc("/api/admin/menu/{id}", h.deleteMenuItem).Methods("DELETE")
	r.HandleFunc("/api/admin/menu/{id}/availability", h.toggleAvailability).Methods("POST")
	r.HandleFunc("/api/admin/orders", h.getAllOrders).Methods("GET")
	r.HandleFunc("/api/admin/orders/{id}/status", h.setOrderStatus).Methods("PUT")
}

func writeJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrEmptyCart):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrNotAuthenticated), errors.Is(err, domain.ErrInvalidCredentials):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, domain.ErrEmailInUse):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) requireUser(w http.ResponseWriter) bool {
	if !h.Session.LoggedIn() {
		http.Error(w, "not logged in", http.StatusUnauthorized)
		return false
	}
	return true
}

func (h *Handler) requireAdmin(w http.ResponseWriter) bool {
	if !h.requireUser(w) {
		return false
	}
	if !h.Session.IsAdmin() {
		http.Error(w, "admin only", http.StatusForbidden)
		return false
	}
	return true
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "kfc-ordering",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	user, err := h.Auth.Login(creds.Email, creds.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user":   user,
		"screen": h.Session.Screen,
	})
}

type signupForm struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Confirm  string `json:"confirm"`
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var form signupForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	user, err := h.Auth.Signup(form.Name, form.Email, form.Password, form.Confirm)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"user":   user,
		"screen": h.Session.Screen,
	})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.Auth.Logout()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"screen": h.Session.Screen,
	})
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	count := 0
	for _, l := range h.Cart.Lines() {
		count += l.Quantity
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user":       h.Session.User,
		"screen":     h.Session.Screen,
		"cart_items": count,
	})
}

func (h *Handler) setScreen(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Screen session.Screen `json:"screen"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !session.Valid(body.Screen) {
		http.Error(w, "unknown screen", http.StatusBadRequest)
		return
	}
	if !h.Session.Navigate(body.Screen) {
		http.Error(w, "screen not reachable for this role", http.StatusForbidden)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"screen": h.Session.Screen})
}

func (h *Handler) getCustomerMenu(w http.ResponseWriter, r *http.Request) {
	if !h.requireUser(w) {
		return
	}
	items := h.Catalog.CustomerMenu()
	if items == nil {
		items = []domain.MenuItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	if !h.requireUser(w) {
		return
	}
	categories := h.Catalog.Categories()
	if categories == nil {
		categories = []string{}
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	if !h.requireUser(w) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"lines": h.Cart.Lines(),
		"total": domain.FormatAmount(h.Cart.CartTotal()),
	})
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	if !h.requireUser(w) {
		return
	}
	var body struct {
		ItemID string `json:"item_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item, err := h.Catalog.FindItem(body.ItemID)
	if err != nil {
		writeError(w, err)
		return
	}
	if !item.Available {
		http.Error(w, "item is not available", http.StatusBadRequest)
		return
	}
	h.Cart.AddToCart(*item)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"lines": h.Cart.Lines(),
		"total": domain.FormatAmount(h.Cart.CartTotal()),
	})
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	if !h.requireUser(w) {
		return
	}
	var body struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.Cart.UpdateQuantity(mux.Vars(r)["id"], body.Delta)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"lines": h.Cart.Lines(),
		"total": domain.FormatAmount(h.Cart.CartTotal()),
	})
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	if !h.requireUser(w) {
		return
	}
	h.Cart.RemoveFromCart(mux.Vars(r)["id"])
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"lines": h.Cart.Lines(),
		"total": domain.FormatAmount(h.Cart.CartTotal()),
	})
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Cart.PlaceOrder()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getMyOrders(w http.ResponseWriter, r *http.Request) {
	if !h.requireUser(w) {
		return
	}
	orders := h.Orders.OrdersForUser(h.Session.User.ID)
	if orders == nil {
		orders = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getReceipt(w http.ResponseWriter, r *http.Request) {
	if !h.requireUser(w) {
		return
	}
	if h.Session.Receipt == nil {
		http.Error(w, "no receipt", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, h.Session.Receipt)
}

func (h *Handler) getReceiptQRCode(w http.ResponseWriter, r *http.Request) {
	if !h.requireUser(w) {
		return
	}
	if h.Session.Receipt == nil {
		http.Error(w, "no receipt", http.StatusNotFound)
		return
	}
	if h.QR == nil {
		http.Error(w, "QR generation not configured", http.StatusNotFound)
		return
	}
	png, err := h.QR.Generate(h.Session.Receipt.OrderNumber)
	if err != nil {
		http.Error(w, "failed to generate QR code", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w) {
		return
	}
	writeJSON(w, http.StatusOK, h.Orders.GetStats())
}

func (h *Handler) getFullMenu(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w) {
		return
	}
	items := h.Catalog.FullMenu()
	if items == nil {
		items = []domain.MenuItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) addMenuItem(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w) {
		return
	}
	var input service.NewMenuItem
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item, err := h.Catalog.AddMenuItem(input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w) {
		return
	}
	var updates service.MenuItemUpdate
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Catalog.UpdateMenuItem(mux.Vars(r)["id"], updates); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w) {
		return
	}
	if err := h.Catalog.DeleteMenuItem(mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) toggleAvailability(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w) {
		return
	}
	if err := h.Catalog.ToggleAvailability(mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getAllOrders(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w) {
		return
	}
	orders := h.Orders.FilterByStatus(r.URL.Query().Get("status"))
	if orders == nil {
		orders = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) setOrderStatus(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w) {
		return
	}
	var body struct {
		Status domain.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Orders.SetStatus(mux.Vars(r)["id"], body.Status); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
