// internal/util/errors.go
package util

import "errors"

// Common application-specific errors.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input provided")
	ErrDuplicateEntry     = errors.New("duplicate entry") // key already exists on create
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrItemNotFound       = errors.New("item not found")
	ErrBillNotFound       = errors.New("bill not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	// Add more specific errors as needed
)

// IsError reports whether err wraps (or is) the target error.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
