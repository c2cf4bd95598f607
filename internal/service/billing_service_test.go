// internal/service/billing_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pahana-billing/internal/domain"
	"pahana-billing/internal/util"
)

func newBillingFixture() (*fakeTx, *MockCustomerRepository, *MockItemRepository, *MockBillRepository, BillingService) {
	tx := &fakeTx{}
	customerRepo := new(MockCustomerRepository)
	itemRepo := new(MockItemRepository)
	billRepo := new(MockBillRepository)
	begin, commit, rollback := fakeTxFuncs(tx)
	svc := NewBillingService(nil, tx, customerRepo, itemRepo, billRepo, begin, commit, rollback)
	return tx, customerRepo, itemRepo, billRepo, svc
}

func TestCreateBill(t *testing.T) {
	ctx := context.Background()

	t.Run("computes totals and persists inside a transaction", func(t *testing.T) {
		tx, customerRepo, itemRepo, billRepo, svc := newBillingFixture()

		customer := domain.NewCustomer("ACC-001", "Nimal", "Colombo", "077", 120)
		item := domain.NewItem("BK-001", "Exercise Book", decimal.RequireFromString("25.00"))

		customerRepo.On("GetByAccountNo", ctx, tx, "ACC-001").Return(customer, nil)
		itemRepo.On("GetByCode", ctx, tx, "BK-001").Return(item, nil)
		billRepo.On("Create", ctx, tx, mock.AnythingOfType("*domain.Bill")).Return(nil)

		bill, skipped, err := svc.CreateBill(ctx, "ACC-001", []BillLine{{ItemCode: "BK-001", Quantity: 2}})
		require.NoError(t, err)
		assert.Empty(t, skipped)

		assert.Equal(t, "1400.00", bill.EnergyCharge.StringFixed(2))
		assert.Equal(t, "50.00", bill.ItemTotal.StringFixed(2))
		assert.Equal(t, "217.50", bill.Tax.StringFixed(2))
		assert.Equal(t, "1667.50", bill.GrandTotal.StringFixed(2))

		assert.True(t, tx.committed, "transaction must be committed")
		billRepo.AssertExpectations(t)
	})

	t.Run("unknown item code is skipped, not fatal", func(t *testing.T) {
		tx, customerRepo, itemRepo, billRepo, svc := newBillingFixture()

		customer := domain.NewCustomer("ACC-001", "Nimal", "Colombo", "077", 10)
		item := domain.NewItem("BK-001", "Exercise Book", decimal.RequireFromString("25.00"))

		customerRepo.On("GetByAccountNo", ctx, tx, "ACC-001").Return(customer, nil)
		itemRepo.On("GetByCode", ctx, tx, "GONE").Return(nil, util.ErrItemNotFound)
		itemRepo.On("GetByCode", ctx, tx, "BK-001").Return(item, nil)
		billRepo.On("Create", ctx, tx, mock.AnythingOfType("*domain.Bill")).Return(nil)

		bill, skipped, err := svc.CreateBill(ctx, "ACC-001", []BillLine{
			{ItemCode: "GONE", Quantity: 1},
			{ItemCode: "BK-001", Quantity: 1},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"GONE"}, skipped)
		assert.Equal(t, "25.00", bill.ItemTotal.StringFixed(2))
		assert.True(t, tx.committed)
	})

	t.Run("customer not found aborts", func(t *testing.T) {
		tx, customerRepo, _, billRepo, svc := newBillingFixture()

		customerRepo.On("GetByAccountNo", ctx, tx, "ACC-404").Return(nil, util.ErrCustomerNotFound)

		_, _, err := svc.CreateBill(ctx, "ACC-404", nil)
		assert.ErrorIs(t, err, util.ErrCustomerNotFound)
		assert.True(t, tx.rolledBack, "transaction must be rolled back")
		billRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("non-positive quantity is invalid input", func(t *testing.T) {
		_, _, _, _, svc := newBillingFixture()
		_, _, err := svc.CreateBill(ctx, "ACC-001", []BillLine{{ItemCode: "BK-001", Quantity: 0}})
		assert.ErrorIs(t, err, util.ErrInvalidInput)
	})
}

func TestGetAndListBills(t *testing.T) {
	ctx := context.Background()
	tx, _, _, billRepo, svc := newBillingFixture()

	bill := &domain.Bill{BillID: "B123-abc"}
	billRepo.On("GetByID", ctx, tx, "B123-abc").Return(bill, nil)
	billRepo.On("List", ctx, tx).Return([]domain.Bill{*bill}, nil)

	got, err := svc.GetBill(ctx, "B123-abc")
	require.NoError(t, err)
	assert.Equal(t, "B123-abc", got.BillID)

	bills, err := svc.ListBills(ctx)
	require.NoError(t, err)
	assert.Len(t, bills, 1)
}
