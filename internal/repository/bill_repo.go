// internal/repository/bill_repo.go
package repository

import (
	"context"

	"pahana-billing/internal/domain"
)

// BillRepository defines the interface for the append-only bill log.
// Bills are immutable once written; there are no update or delete operations.
type BillRepository interface {
	// Create appends a new bill record using the provided DBExecutor.
	Create(ctx context.Context, q DBExecutor, bill *domain.Bill) error
	// GetByID retrieves a bill by its identifier.
	GetByID(ctx context.Context, q DBExecutor, billID string) (*domain.Bill, error)
	// List retrieves all bills, newest first.
	List(ctx context.Context, q DBExecutor) ([]domain.Bill, error)
}
