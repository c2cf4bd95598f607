// internal/service/billing_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"pahana-billing/internal/billing"
	"pahana-billing/internal/domain"
	"pahana-billing/internal/repository"
	"pahana-billing/internal/util"
	"pahana-billing/pkg/db"
)

// BillLine is one requested purchase line on a bill calculation request.
type BillLine struct {
	ItemCode string
	Quantity int
}

// BillingService defines the interface for bill calculation business logic.
type BillingService interface {
	// CreateBill calculates and persists a bill for the given account.
	// Lines referencing unknown item codes are skipped, not fatal; the
	// skipped codes are returned alongside the bill.
	CreateBill(ctx context.Context, accountNo string, lines []BillLine) (*domain.Bill, []string, error)
	// GetBill retrieves a previously created bill.
	GetBill(ctx context.Context, billID string) (*domain.Bill, error)
	// ListBills retrieves all bills, newest first.
	ListBills(ctx context.Context) ([]domain.Bill, error)
}

// billingService implements the BillingService interface.
type billingService struct {
	dbBeginner   db.DBTxBeginner       // For starting transactions (e.g., *sqlx.DB)
	dbExecutor   repository.DBExecutor // For non-transactional reads (e.g., *sqlx.DB)
	customerRepo repository.CustomerRepository
	itemRepo     repository.ItemRepository
	billRepo     repository.BillRepository
	beginTx      db.BeginTxFunc
	commitTx     db.CommitTxFunc
	rollbackTx   db.RollbackTxFunc
}

// NewBillingService creates a new instance of BillingService.
func NewBillingService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	customerRepo repository.CustomerRepository,
	itemRepo repository.ItemRepository,
	billRepo repository.BillRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) BillingService {
	return &billingService{
		dbBeginner:   dbBeginner,
		dbExecutor:   dbExecutor,
		customerRepo: customerRepo,
		itemRepo:     itemRepo,
		billRepo:     billRepo,
		beginTx:      beginTx,
		commitTx:     commitTx,
		rollbackTx:   rollbackTx,
	}
}

// CreateBill looks up the customer and requested items, computes the tiered
// energy charge, item subtotal, tax and grand total, and stores the bill,
// all inside one database transaction.
func (s *billingService) CreateBill(ctx context.Context, accountNo string, lines []BillLine) (*domain.Bill, []string, error) {
	for _, l := range lines {
		if l.Quantity <= 0 {
			return nil, nil, util.ErrInvalidInput
		}
	}

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, nil, fmt.Errorf("create bill: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, nil, fmt.Errorf("create bill: transaction controller does not implement DBExecutor")
	}

	customer, err := s.customerRepo.GetByAccountNo(ctx, txExecutor, accountNo)
	if err != nil {
		return nil, nil, fmt.Errorf("create bill: failed to get customer %s: %w", accountNo, err)
	}

	var (
		billLines []billing.Line
		skipped   []string
	)
	for _, l := range lines {
		item, err := s.itemRepo.GetByCode(ctx, txExecutor, l.ItemCode)
		if err != nil {
			if util.IsError(err, util.ErrItemNotFound) {
				skipped = append(skipped, l.ItemCode)
				continue
			}
			return nil, nil, fmt.Errorf("create bill: failed to get item %s: %w", l.ItemCode, err)
		}
		billLines = append(billLines, billing.Line{Item: *item, Quantity: l.Quantity})
	}

	bill := billing.Calculate(customer.AccountNo, customer.UnitsConsumed, billLines, time.Now().UTC())
	if err := s.billRepo.Create(ctx, txExecutor, bill); err != nil {
		return nil, nil, fmt.Errorf("create bill: failed to persist bill: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, nil, fmt.Errorf("create bill: failed to commit transaction: %w", err)
	}

	return bill, skipped, nil
}

// GetBill retrieves a bill by its identifier.
func (s *billingService) GetBill(ctx context.Context, billID string) (*domain.Bill, error) {
	return s.billRepo.GetByID(ctx, s.dbExecutor, billID)
}

// ListBills retrieves all bills, newest first.
func (s *billingService) ListBills(ctx context.Context) ([]domain.Bill, error) {
	return s.billRepo.List(ctx, s.dbExecutor)
}
