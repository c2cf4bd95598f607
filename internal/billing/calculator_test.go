// internal/billing/calculator_test.go
package billing

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pahana-billing/internal/domain"
)

func TestComputeTieredCharge(t *testing.T) {
	tests := []struct {
		units int
		want  string
	}{
		{units: 0, want: "0"},
		{units: 1, want: "10"},
		{units: 49, want: "490"},
		{units: 50, want: "500"},
		{units: 51, want: "512"},
		{units: 100, want: "1100"},
		{units: 101, want: "1115"},
		{units: 120, want: "1400"},
		{units: 150, want: "1850"},
	}
	for _, tt := range tests {
		got := ComputeTieredCharge(tt.units)
		assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
			"units=%d: got %s, want %s", tt.units, got, tt.want)
	}
}

// The slab tariff must agree with its closed form:
// 10*min(u,50) + 12*min(max(u-50,0),50) + 15*max(u-100,0).
func TestComputeTieredChargeClosedForm(t *testing.T) {
	min := func(a, b int) int {
		if a < b {
			return a
		}
		return b
	}
	max := func(a, b int) int {
		if a > b {
			return a
		}
		return b
	}
	for u := 0; u <= 300; u++ {
		want := 10*min(u, 50) + 12*min(max(u-50, 0), 50) + 15*max(u-100, 0)
		got := ComputeTieredCharge(u)
		require.True(t, got.Equal(decimal.NewFromInt(int64(want))),
			"units=%d: got %s, want %d", u, got, want)
	}
}

func TestCalculate(t *testing.T) {
	now := time.Now().UTC()

	t.Run("120 units with one item line", func(t *testing.T) {
		lines := []Line{
			{Item: domain.Item{Code: "BK-001", UnitPrice: decimal.RequireFromString("25.00")}, Quantity: 2},
		}
		bill := Calculate("ACC-001", 120, lines, now)

		assert.Equal(t, "ACC-001", bill.AccountNo)
		assert.Equal(t, 120, bill.Units)
		assert.Equal(t, "1400.00", bill.EnergyCharge.StringFixed(2))
		assert.Equal(t, "50.00", bill.ItemTotal.StringFixed(2))
		assert.Equal(t, "217.50", bill.Tax.StringFixed(2))
		assert.Equal(t, "1667.50", bill.GrandTotal.StringFixed(2))
		assert.Equal(t, now, bill.BillTime)
	})

	t.Run("no lines", func(t *testing.T) {
		bill := Calculate("ACC-002", 0, nil, now)
		assert.Equal(t, "0.00", bill.EnergyCharge.StringFixed(2))
		assert.Equal(t, "0.00", bill.ItemTotal.StringFixed(2))
		assert.Equal(t, "0.00", bill.Tax.StringFixed(2))
		assert.Equal(t, "0.00", bill.GrandTotal.StringFixed(2))
	})

	t.Run("tax rounds half up at the cent", func(t *testing.T) {
		// 0.35 * 0.15 = 0.0525 -> 0.05; 0.37 * 0.15 = 0.0555 -> 0.06
		lines := []Line{
			{Item: domain.Item{Code: "X", UnitPrice: decimal.RequireFromString("0.37")}, Quantity: 1},
		}
		bill := Calculate("ACC-003", 0, lines, now)
		assert.Equal(t, "0.06", bill.Tax.StringFixed(2))
		assert.Equal(t, "0.43", bill.GrandTotal.StringFixed(2))
	})

	t.Run("grand total is sum of components", func(t *testing.T) {
		lines := []Line{
			{Item: domain.Item{Code: "A", UnitPrice: decimal.RequireFromString("19.99")}, Quantity: 3},
			{Item: domain.Item{Code: "B", UnitPrice: decimal.RequireFromString("4.50")}, Quantity: 1},
		}
		bill := Calculate("ACC-004", 75, lines, now)
		sum := bill.EnergyCharge.Add(bill.ItemTotal).Add(bill.Tax)
		assert.True(t, bill.GrandTotal.Equal(sum), "grand=%s sum=%s", bill.GrandTotal, sum)
	})
}

func TestNewBillID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewBillID()
		require.True(t, strings.HasPrefix(id, "B"), "id %q must carry the B prefix", id)
		require.False(t, seen[id], "duplicate bill id %q", id)
		seen[id] = true
	}
}
