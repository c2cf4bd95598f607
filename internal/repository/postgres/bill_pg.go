// internal/repository/postgres/bill_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"pahana-billing/internal/domain"
	"pahana-billing/internal/repository"
	"pahana-billing/internal/util"
)

// BillRepository implements repository.BillRepository for PostgreSQL.
// The bills table is append-only.
type BillRepository struct{}

// NewBillRepository creates a new BillRepository.
func NewBillRepository() repository.BillRepository {
	return &BillRepository{}
}

// Create appends a new bill record using the provided DBExecutor.
func (r *BillRepository) Create(ctx context.Context, q repository.DBExecutor, bill *domain.Bill) error {
	query := `INSERT INTO bills (bill_id, account_no, bill_time, units, energy_charge, item_total, tax, grand_total, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := q.ExecContext(ctx, query,
		bill.BillID, bill.AccountNo, bill.BillTime, bill.Units,
		bill.EnergyCharge, bill.ItemTotal, bill.Tax, bill.GrandTotal, bill.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return util.ErrDuplicateEntry
		}
		return fmt.Errorf("failed to create bill %s: %w", bill.BillID, err)
	}
	return nil
}

// GetByID retrieves a bill by its identifier using the provided DBExecutor.
func (r *BillRepository) GetByID(ctx context.Context, q repository.DBExecutor, billID string) (*domain.Bill, error) {
	var bill domain.Bill
	query := `SELECT bill_id, account_no, bill_time, units, energy_charge, item_total, tax, grand_total, created_at
              FROM bills WHERE bill_id = $1`
	err := q.GetContext(ctx, &bill, query, billID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrBillNotFound
		}
		return nil, fmt.Errorf("failed to get bill %s: %w", billID, err)
	}
	return &bill, nil
}

// List retrieves all bills, newest first, using the provided DBExecutor.
func (r *BillRepository) List(ctx context.Context, q repository.DBExecutor) ([]domain.Bill, error) {
	bills := []domain.Bill{}
	query := `SELECT bill_id, account_no, bill_time, units, energy_charge, item_total, tax, grand_total, created_at
              FROM bills ORDER BY created_at DESC`
	if err := q.SelectContext(ctx, &bills, query); err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	return bills, nil
}
