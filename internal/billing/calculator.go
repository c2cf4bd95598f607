// internal/billing/calculator.go
package billing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pahana-billing/internal/domain"
)

// Tariff slabs, consumed in order from the lowest band. A capacity of 0 marks
// the open-ended top band.
var tariffTiers = []struct {
	capacity int
	rate     decimal.Decimal
}{
	{capacity: 50, rate: decimal.NewFromInt(10)},
	{capacity: 50, rate: decimal.NewFromInt(12)},
	{capacity: 0, rate: decimal.NewFromInt(15)},
}

// TaxRate is the flat rate applied to the sum of energy charge and item subtotal.
var TaxRate = decimal.New(15, -2) // 0.15

// Line is one purchased-item entry on a bill: an item snapshot and a positive
// quantity. Quantities are validated by the caller.
type Line struct {
	Item     domain.Item
	Quantity int
}

// Total returns the line amount (unit price x quantity).
func (l Line) Total() decimal.Decimal {
	return l.Item.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// ComputeTieredCharge computes the energy charge for the given units using the
// slab tariff: first 50 units at 10.00/unit, next 50 at 12.00/unit, anything
// above 100 at 15.00/unit. No rounding happens between tiers.
func ComputeTieredCharge(units int) decimal.Decimal {
	remaining := units
	total := decimal.Zero
	for _, tier := range tariffTiers {
		if remaining <= 0 {
			break
		}
		n := remaining
		if tier.capacity > 0 && n > tier.capacity {
			n = tier.capacity
		}
		total = total.Add(tier.rate.Mul(decimal.NewFromInt(int64(n))))
		remaining -= n
	}
	return total
}

// ItemSubtotal sums the line totals of the given lines.
func ItemSubtotal(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Total())
	}
	return total
}

// Calculate produces a Bill for the given account from its consumed units and
// an optional list of purchased-item lines.
//
// Tax is computed from the unrounded subtotal and rounded to the cent
// (half up); the grand total is the rounded sum of subtotal and tax. The
// stored energy charge and item total are rounded independently. With inputs
// carrying at most 2 decimal places all four fields are consistent.
func Calculate(accountNo string, units int, lines []Line, at time.Time) *domain.Bill {
	energy := ComputeTieredCharge(units)
	itemTotal := ItemSubtotal(lines)
	subtotal := energy.Add(itemTotal)
	tax := subtotal.Mul(TaxRate).Round(2)
	grand := subtotal.Add(tax).Round(2)

	return &domain.Bill{
		BillID:       NewBillID(),
		AccountNo:    accountNo,
		BillTime:     at,
		Units:        units,
		EnergyCharge: energy.Round(2),
		ItemTotal:    itemTotal.Round(2),
		Tax:          tax,
		GrandTotal:   grand,
		CreatedAt:    at,
	}
}

// NewBillID generates a bill identifier: a "B" prefix, the current millisecond
// timestamp, and a short random suffix so that rapid successive calls within
// the same millisecond still produce distinct identifiers.
func NewBillID() string {
	return fmt.Sprintf("B%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
