// internal/console/console_test.go
package console

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pahana-billing/internal/csvstore"
)

func runSession(t *testing.T, dir string, input string) string {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := csvstore.Open(dir, logger)
	require.NoError(t, err)

	var out bytes.Buffer
	c := New(store, strings.NewReader(input), &out, logger)
	require.NoError(t, c.Run())
	return out.String()
}

func TestRun_ExitAtUsername(t *testing.T) {
	out := runSession(t, t.TempDir(), "exit\n")
	assert.Contains(t, out, "Username: ")
	assert.NotContains(t, out, "MAIN MENU")
}

func TestRun_RejectsBadCredentialsThenLogsIn(t *testing.T) {
	input := strings.Join([]string{
		"admin", "wrongpass",
		"ADMIN", "admin123",
		"8",
	}, "\n") + "\n"
	out := runSession(t, t.TempDir(), input)
	assert.Contains(t, out, "Invalid username or password")
	assert.Contains(t, out, "Welcome, admin!")
	assert.Contains(t, out, "Goodbye!")
}

func TestRun_FullBillingSession(t *testing.T) {
	dir := t.TempDir()
	input := strings.Join([]string{
		"admin", "admin123",
		// add a customer with 120 units
		"1", "ACC-001", "Nimal Perera", "12 Galle Road, Colombo", "0771234567", "120",
		// add an item priced 25.00
		"3", "1", "BK-001", "Atlas Exercise Book", "25.00", "5",
		// bill: two of BK-001, one invalid code attempt
		"5", "ACC-001", "y", "NOPE", "y", "BK-001", "2", "n",
		"8",
	}, "\n") + "\n"
	out := runSession(t, dir, input)

	assert.Contains(t, out, "Customer added successfully.")
	assert.Contains(t, out, "Item added.")
	assert.Contains(t, out, "Invalid code.")
	assert.Contains(t, out, "Added: Atlas Exercise Book x 2 = 50.00")

	// 120 units: 50*10 + 50*12 + 20*15 = 1400.00
	assert.Contains(t, out, "PAHANA EDU - BILL RECEIPT")
	assert.Contains(t, out, "Energy Charge       :    1400.00")
	assert.Contains(t, out, "Item Purchases      :      50.00")
	assert.Contains(t, out, "Tax (15%)           :     217.50")
	assert.Contains(t, out, "GRAND TOTAL         :    1667.50")

	// the bill was appended to the flat file
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := csvstore.Open(dir, logger)
	require.NoError(t, err)
	bills, err := store.Bills()
	require.NoError(t, err)
	require.Len(t, bills, 1)
	assert.Equal(t, "ACC-001", bills[0].AccountNo)
	assert.Equal(t, "1667.50", bills[0].GrandTotal.StringFixed(2))
}

func TestRun_EditCustomerBlankKeepsCurrent(t *testing.T) {
	dir := t.TempDir()
	seed := strings.Join([]string{
		"admin", "admin123",
		"1", "ACC-002", "Kamala Silva", "45 Kandy Road", "0719876543", "30",
		"2", "ACC-002", "", "", "0700000000", "",
		"4", "ACC-002",
		"8",
	}, "\n") + "\n"
	out := runSession(t, dir, seed)

	assert.Contains(t, out, "Customer updated successfully.")
	assert.Contains(t, out, "Name: Kamala Silva")
	assert.Contains(t, out, "Phone: 0700000000")
	assert.Contains(t, out, "Units: 30")
}

func TestRun_DisplayAllCustomers(t *testing.T) {
	input := strings.Join([]string{
		"admin", "admin123",
		"1", "ACC-010", "Sunil", "1 Main St", "0751112222", "10",
		"4", "*",
		"8",
	}, "\n") + "\n"
	out := runSession(t, t.TempDir(), input)
	assert.Contains(t, out, "All Customers:")
	assert.Contains(t, out, "Account: ACC-010")
}

func TestRun_InputExhaustedMidMenu(t *testing.T) {
	// EOF after login behaves as an exit request
	out := runSession(t, t.TempDir(), "admin\nadmin123\n")
	assert.Contains(t, out, "Welcome, admin!")
	assert.Contains(t, out, "Goodbye!")
}
