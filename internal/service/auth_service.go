package service

import (
	"fmt"
	"strings"

	"kfc-ordering/internal/domain"
	"kfc-ordering/internal/session"
)

type AuthService struct {
	data    *DataStore
	session *Session
}

func NewAuthService(data *DataStore, sess *Session) *AuthService {
	return &AuthService{data: data, session: sess}
}

// Login matches email and password exactly, case-sensitive. Both fields are
// compared in plaintext — this is a demo, not a security boundary. Success
// installs the user, drops any stale cart and routes to the role's home.
func (s *AuthService) Login(email, password string) (*domain.User, error) {
	for _, u := range s.data.Users() {
		if u.Email == email && u.Password == password {
			user := u
			s.session.User = &user
			s.session.ClearCart()
			s.session.Screen = session.HomeFor(user.Role)
			return &user, nil
		}
	}
	return nil, domain.ErrInvalidCredentials
}

// Signup creates a customer account. Email uniqueness is a hard invariant
// checked against the live user collection before anything is written.
func (s *AuthService) Signup(name, email, password, confirm string) (*domain.User, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", domain.ErrValidation)
	}
	if len(password) < 4 {
		return nil, fmt.Errorf("%w: password should be at least 4 characters", domain.ErrValidation)
	}
	if password != confirm {
		return nil, fmt.Errorf("%w: passwords do not match", domain.ErrValidation)
	}
	for _, u := range s.data.Users() {
		if u.Email == email {
			return nil, domain.ErrEmailInUse
		}
	}

	user := domain.User{
		ID:       s.data.NextID(),
		Name:     name,
		Email:    email,
		Role:     domain.RoleCustomer,
		Password: password,
	}
	err := s.data.Update(func(snap *domain.Snapshot) {
		snap.Users = append(snap.Users, user)
	})
	if err != nil {
		return nil, err
	}

	s.session.User = &user
	s.session.ClearCart()
	s.session.Screen = session.HomeFor(user.Role)
	return &user, nil
}

// Logout drops the session state entirely.
func (s *AuthService) Logout() {
	s.session.Reset()
}

var _ AuthServiceInterface = (*AuthService)(nil)
