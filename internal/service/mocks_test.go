// internal/service/mocks_test.go
package service

import (
	"context"
	"database/sql"

	"github.com/stretchr/testify/mock"

	"pahana-billing/internal/domain"
	"pahana-billing/internal/repository"
	"pahana-billing/pkg/db"
)

// MockDBExecutor is a mock implementation of repository.DBExecutor.
type MockDBExecutor struct {
	mock.Mock
}

func (m *MockDBExecutor) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	argsCalled := m.Called(ctx, dest, query, args)
	return argsCalled.Error(0)
}

func (m *MockDBExecutor) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	argsCalled := m.Called(ctx, dest, query, args)
	return argsCalled.Error(0)
}

func (m *MockDBExecutor) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	argsCalled := m.Called(ctx, query, args)
	return argsCalled.Get(0).(sql.Result), argsCalled.Error(1)
}

func (m *MockDBExecutor) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	m.Called(ctx, query, args)
	return &sql.Row{}
}

// MockCustomerRepository is a mock implementation of repository.CustomerRepository.
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(ctx context.Context, q repository.DBExecutor, customer *domain.Customer) error {
	args := m.Called(ctx, q, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) GetByAccountNo(ctx context.Context, q repository.DBExecutor, accountNo string) (*domain.Customer, error) {
	args := m.Called(ctx, q, accountNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) List(ctx context.Context, q repository.DBExecutor) ([]domain.Customer, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Update(ctx context.Context, q repository.DBExecutor, customer *domain.Customer) error {
	args := m.Called(ctx, q, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, q repository.DBExecutor, accountNo string) error {
	args := m.Called(ctx, q, accountNo)
	return args.Error(0)
}

// MockItemRepository is a mock implementation of repository.ItemRepository.
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Create(ctx context.Context, q repository.DBExecutor, item *domain.Item) error {
	args := m.Called(ctx, q, item)
	return args.Error(0)
}

func (m *MockItemRepository) GetByCode(ctx context.Context, q repository.DBExecutor, code string) (*domain.Item, error) {
	args := m.Called(ctx, q, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemRepository) List(ctx context.Context, q repository.DBExecutor) ([]domain.Item, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockItemRepository) Update(ctx context.Context, q repository.DBExecutor, item *domain.Item) error {
	args := m.Called(ctx, q, item)
	return args.Error(0)
}

func (m *MockItemRepository) Delete(ctx context.Context, q repository.DBExecutor, code string) error {
	args := m.Called(ctx, q, code)
	return args.Error(0)
}

// MockBillRepository is a mock implementation of repository.BillRepository.
type MockBillRepository struct {
	mock.Mock
}

func (m *MockBillRepository) Create(ctx context.Context, q repository.DBExecutor, bill *domain.Bill) error {
	args := m.Called(ctx, q, bill)
	return args.Error(0)
}

func (m *MockBillRepository) GetByID(ctx context.Context, q repository.DBExecutor, billID string) (*domain.Bill, error) {
	args := m.Called(ctx, q, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillRepository) List(ctx context.Context, q repository.DBExecutor) ([]domain.Bill, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bill), args.Error(1)
}

// fakeTx is a TxController that also satisfies repository.DBExecutor, so it
// can stand in for *sqlx.Tx in service tests.
type fakeTx struct {
	MockDBExecutor
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit() error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback() error {
	t.rolledBack = true
	return nil
}

// fakeTxFuncs returns injectable begin/commit/rollback funcs bound to tx.
func fakeTxFuncs(tx *fakeTx) (db.BeginTxFunc, db.CommitTxFunc, db.RollbackTxFunc) {
	begin := func(ctx context.Context, dbConn db.DBTxBeginner) (db.TxController, error) {
		return tx, nil
	}
	commit := func(t db.TxController) error {
		return t.Commit()
	}
	rollback := func(t db.TxController) {
		if !tx.committed {
			_ = t.Rollback()
		}
	}
	return begin, commit, rollback
}
