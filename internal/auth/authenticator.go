// internal/auth/authenticator.go
package auth

import (
	"crypto/subtle"

	"pahana-billing/internal/domain"
	"pahana-billing/internal/util"
)

// UserStore defines the interface for user lookup.
// This keeps the authenticator independent of the storage implementation.
type UserStore interface {
	// UserByName looks a user up by username, case-insensitively.
	UserByName(username string) (*domain.User, bool)
}

// Authenticator verifies operator credentials against a UserStore.
type Authenticator struct {
	store UserStore
}

// NewAuthenticator creates a new Authenticator.
func NewAuthenticator(store UserStore) *Authenticator {
	return &Authenticator{store: store}
}

// Authenticate verifies the username and password, returning the user if
// valid. Unknown usernames and wrong passwords both yield
// util.ErrInvalidCredentials.
func (a *Authenticator) Authenticate(username, password string) (*domain.User, error) {
	user, ok := a.store.UserByName(username)
	if !ok {
		return nil, util.ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(user.PasswordHash), []byte(HashPassword(password))) != 1 {
		return nil, util.ErrInvalidCredentials
	}
	return user, nil
}
