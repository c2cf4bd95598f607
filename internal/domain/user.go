// internal/domain/user.go
package domain

import "time"

// User represents an operator account for the billing system.
// Username lookup is case-insensitive; the stored password hash is a
// lowercase hex SHA-256 digest of the plaintext password.
type User struct {
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// NewUser creates a new User instance with an already-hashed password.
func NewUser(username, passwordHash string) *User {
	return &User{
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
}
