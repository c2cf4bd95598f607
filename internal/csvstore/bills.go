// internal/csvstore/bills.go
package csvstore

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"pahana-billing/internal/domain"
)

// bills.csv: bill-id, account-number, ISO-8601 timestamp, units,
// energy-charge, item-total, tax, grand-total
//
// Bills are append-only: one line is written when a bill is calculated and
// records are never rewritten.

const billArity = 8

// AppendBill appends one bill record to the bill log.
func (s *Store) AppendBill(b *domain.Bill) error {
	return s.appendLine(billsFile, marshalRecord(
		b.BillID,
		b.AccountNo,
		b.BillTime.Format(time.RFC3339),
		strconv.Itoa(b.Units),
		b.EnergyCharge.StringFixed(2),
		b.ItemTotal.StringFixed(2),
		b.Tax.StringFixed(2),
		b.GrandTotal.StringFixed(2),
	))
}

// Bills reads the full bill log from disk. Bills are not cached in memory;
// the log is only read on demand.
func (s *Store) Bills() ([]*domain.Bill, error) {
	lines, err := s.readLines(billsFile)
	if err != nil {
		return nil, err
	}
	bills := make([]*domain.Bill, 0, len(lines))
	for _, line := range lines {
		f := splitRecord(line, billArity)
		if len(f) != billArity || f[0] == "" {
			s.logger.Warn("skipping malformed bill record", "line", line)
			continue
		}
		b, err := billFromRecord(f)
		if err != nil {
			s.logger.Warn("skipping unparseable bill record", "bill_id", f[0], "error", err)
			continue
		}
		bills = append(bills, b)
	}
	return bills, nil
}

func billFromRecord(f []string) (*domain.Bill, error) {
	when, err := time.Parse(time.RFC3339, f[2])
	if err != nil {
		return nil, err
	}
	units, err := strconv.Atoi(f[3])
	if err != nil {
		return nil, err
	}
	amounts := make([]decimal.Decimal, 4)
	for i, raw := range f[4:8] {
		amounts[i], err = decimal.NewFromString(raw)
		if err != nil {
			return nil, err
		}
	}
	return &domain.Bill{
		BillID:       f[0],
		AccountNo:    f[1],
		BillTime:     when,
		Units:        units,
		EnergyCharge: amounts[0],
		ItemTotal:    amounts[1],
		Tax:          amounts[2],
		GrandTotal:   amounts[3],
		CreatedAt:    when,
	}, nil
}
