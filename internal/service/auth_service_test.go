package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kfc-ordering/internal/domain"
	"kfc-ordering/internal/session"
)

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
		wantRole domain.Role
	}{
		{name: "admin", email: "admin@kfc.com", password: "admin123", wantRole: domain.RoleAdmin},
		{name: "customer", email: "john@example.com", password: "customer123", wantRole: domain.RoleCustomer},
		{name: "wrong_password", email: "john@example.com", password: "nope", wantErr: domain.ErrInvalidCredentials},
		{name: "unknown_email", email: "ghost@example.com", password: "customer123", wantErr: domain.ErrInvalidCredentials},
		{name: "case_sensitive_password", email: "john@example.com", password: "Customer123", wantErr: domain.ErrInvalidCredentials},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)

			user, err := env.auth.Login(tc.email, tc.password)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, user)
				assert.False(t, env.session.LoggedIn())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantRole, user.Role)
			assert.Equal(t, session.HomeFor(tc.wantRole), env.session.Screen)
		})
	}
}

func TestLogin_ClearsStaleCart(t *testing.T) {
	env := newTestEnv(t)
	env.loginCustomer(t)
	env.cart.AddToCart(env.item(t, "4"))

	env.loginAdmin(t)
	assert.Empty(t, env.cart.Lines())
}

func TestSignup_Validation(t *testing.T) {
	tests := []struct {
		name              string
		user, email       string
		password, confirm string
		wantErr           error
	}{
		{name: "blank_name", user: "", email: "a@b.com", password: "1234", confirm: "1234", wantErr: domain.ErrValidation},
		{name: "blank_email", user: "Amy", email: "", password: "1234", confirm: "1234", wantErr: domain.ErrValidation},
		{name: "blank_password", user: "Amy", email: "a@b.com", password: "", confirm: "", wantErr: domain.ErrValidation},
		{name: "short_password", user: "Amy", email: "a@b.com", password: "123", confirm: "123", wantErr: domain.ErrValidation},
		{name: "mismatch", user: "Amy", email: "a@b.com", password: "1234", confirm: "4321", wantErr: domain.ErrValidation},
		{name: "email_in_use", user: "Amy", email: "john@example.com", password: "1234", confirm: "1234", wantErr: domain.ErrEmailInUse},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			before := len(env.data.Users())

			user, err := env.auth.Signup(tc.user, tc.email, tc.password, tc.confirm)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, user)
			assert.Len(t, env.data.Users(), before, "user collection must be unchanged")
			assert.False(t, env.session.LoggedIn())
		})
	}
}

func TestSignup_Success(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.auth.Signup("Amy Pond", "amy@example.com", "1234", "1234")
	require.NoError(t, err)

	assert.Equal(t, domain.RoleCustomer, user.Role, "signup always creates customers")
	assert.NotEmpty(t, user.ID)
	assert.Len(t, env.data.Users(), 3)

	// Logged in immediately, cart empty, routed home.
	require.True(t, env.session.LoggedIn())
	assert.Equal(t, user.ID, env.session.User.ID)
	assert.Empty(t, env.cart.Lines())
	assert.Equal(t, session.ScreenCustomerMenu, env.session.Screen)
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)
	env.loginCustomer(t)
	env.cart.AddToCart(env.item(t, "4"))

	env.auth.Logout()

	assert.False(t, env.session.LoggedIn())
	assert.Empty(t, env.cart.Lines())
	assert.Nil(t, env.session.Receipt)
	assert.Equal(t, session.ScreenLogin, env.session.Screen)
}
