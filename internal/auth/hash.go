// internal/auth/hash.go
package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the lowercase hex SHA-256 digest of the plaintext
// password. Single-pass and unsalted, matching the stored users.csv format.
// This is a teaching artifact; do not use this scheme for a real deployment.
func HashPassword(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}
