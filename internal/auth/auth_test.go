// internal/auth/auth_test.go
package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pahana-billing/internal/domain"
	"pahana-billing/internal/util"
)

func TestHashPassword(t *testing.T) {
	// Known SHA-256 vector.
	assert.Equal(t,
		"240be518fabd2724ddb6f04eeb1da5967448d7e831c08c8fa822809f74c720a9",
		HashPassword("admin123"))

	// Deterministic across calls.
	assert.Equal(t, HashPassword("secret"), HashPassword("secret"))
	assert.NotEqual(t, HashPassword("secret"), HashPassword("Secret"))
}

// mapStore is a minimal in-memory UserStore for authenticator tests.
type mapStore map[string]*domain.User

func (m mapStore) UserByName(username string) (*domain.User, bool) {
	u, ok := m[strings.ToLower(username)]
	return u, ok
}

func TestAuthenticate(t *testing.T) {
	store := mapStore{
		"admin": domain.NewUser("admin", HashPassword("admin123")),
	}
	a := NewAuthenticator(store)

	t.Run("valid credentials", func(t *testing.T) {
		u, err := a.Authenticate("admin", "admin123")
		require.NoError(t, err)
		assert.Equal(t, "admin", u.Username)
	})

	t.Run("username lookup is case-insensitive", func(t *testing.T) {
		u, err := a.Authenticate("Admin", "admin123")
		require.NoError(t, err)
		assert.Equal(t, "admin", u.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := a.Authenticate("admin", "nope")
		assert.ErrorIs(t, err, util.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := a.Authenticate("ghost", "admin123")
		assert.ErrorIs(t, err, util.ErrInvalidCredentials)
	})
}
