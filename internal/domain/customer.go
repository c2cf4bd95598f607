// internal/domain/customer.go
package domain

import "time"

// Customer represents a billed customer account.
// The account number is the user-supplied primary key and is immutable once created.
type Customer struct {
	AccountNo     string    `db:"account_no" json:"account_no"`         // Primary key, user supplied
	Name          string    `db:"name" json:"name"`                     // Full name
	Address       string    `db:"address" json:"address"`               // Postal address
	Phone         string    `db:"phone" json:"phone"`                   // Telephone number
	UnitsConsumed int       `db:"units_consumed" json:"units_consumed"` // Billable units, always >= 0
	CreatedAt     time.Time `db:"created_at" json:"created_at"`         // Timestamp of creation
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`         // Timestamp of last update
}

// NewCustomer creates a new Customer instance.
func NewCustomer(accountNo, name, address, phone string, unitsConsumed int) *Customer {
	now := time.Now().UTC()
	return &Customer{
		AccountNo:     accountNo,
		Name:          name,
		Address:       address,
		Phone:         phone,
		UnitsConsumed: unitsConsumed,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
