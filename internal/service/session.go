package service

import (
	"kfc-ordering/internal/domain"
	"kfc-ordering/internal/session"
)

// Session is the ephemeral per-visit state. It exclusively owns the cart and
// the logged-in identity and is never written to the blob store: logout or a
// restart discards it.
type Session struct {
	User    *domain.User
	Cart    []domain.CartLine
	Receipt *domain.Order
	Screen  session.Screen
}

func NewSession() *Session {
	return &Session{Screen: session.ScreenLogin}
}

func (s *Session) LoggedIn() bool {
	return s.User != nil
}

func (s *Session) IsAdmin() bool {
	return s.User != nil && s.User.Role == domain.RoleAdmin
}

func (s *Session) Role() domain.Role {
	if s.User == nil {
		return ""
	}
	return s.User.Role
}

func (s *Session) ClearCart() {
	s.Cart = nil
}

// Reset drops identity, cart and receipt, returning to the login screen.
func (s *Session) Reset() {
	s.User = nil
	s.Cart = nil
	s.Receipt = nil
	s.Screen = session.ScreenLogin
}

// Navigate moves to a screen if the current role may reach it.
func (s *Session) Navigate(to session.Screen) bool {
	if !session.CanView(s.Role(), to) {
		return false
	}
	s.Screen = to
	return true
}
