package domain

import "errors"

// Recoverable conditions surfaced to the actor who triggered the action.
var (
	ErrValidation         = errors.New("invalid or missing input")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrNotAuthenticated   = errors.New("not logged in")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailInUse         = errors.New("an account with that email already exists")
	ErrNotFound           = errors.New("not found")
)

// ErrCorruptSnapshot is the one fatal-class condition: persisted state that
// cannot be parsed at startup. There is no auto-repair; fail loudly rather
// than silently discard data.
var ErrCorruptSnapshot = errors.New("persisted snapshot is corrupt")
