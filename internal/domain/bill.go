// internal/domain/bill.go
package domain

import (
	"time"

	"github.com/shopspring/decimal" // For precise monetary calculations
)

// Bill is an immutable record of one billing calculation. Bills are appended
// to the bill log and never updated or deleted.
//
// All monetary fields are rounded to 2 decimal places. The account number
// references a Customer but is not enforced as a foreign key; the referenced
// customer may be edited or deleted after the bill is written.
type Bill struct {
	BillID       string          `db:"bill_id" json:"bill_id"`             // Primary key, time derived
	AccountNo    string          `db:"account_no" json:"account_no"`       // Billed customer account
	BillTime     time.Time       `db:"bill_time" json:"bill_time"`         // When the bill was calculated
	Units        int             `db:"units" json:"units"`                 // Units the energy charge was computed from
	EnergyCharge decimal.Decimal `db:"energy_charge" json:"energy_charge"` // Tiered tariff charge
	ItemTotal    decimal.Decimal `db:"item_total" json:"item_total"`       // Purchased items subtotal
	Tax          decimal.Decimal `db:"tax" json:"tax"`                     // Flat-rate tax on energy charge + item total
	GrandTotal   decimal.Decimal `db:"grand_total" json:"grand_total"`     // energy charge + item total + tax
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`       // Timestamp of record creation
}
