// internal/domain/item.go
package domain

import (
	"time"

	"github.com/shopspring/decimal" // For precise monetary calculations
)

// Item represents a catalog item that can be added to a bill.
// The item code is the user-supplied primary key and is immutable once created.
type Item struct {
	Code      string          `db:"code" json:"code"`             // Primary key, user supplied
	Name      string          `db:"name" json:"name"`             // Display name
	UnitPrice decimal.Decimal `db:"unit_price" json:"unit_price"` // Price per unit, always >= 0
	CreatedAt time.Time       `db:"created_at" json:"created_at"` // Timestamp of creation
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"` // Timestamp of last update
}

// NewItem creates a new Item instance.
func NewItem(code, name string, unitPrice decimal.Decimal) *Item {
	now := time.Now().UTC()
	return &Item{
		Code:      code,
		Name:      name,
		UnitPrice: unitPrice,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
