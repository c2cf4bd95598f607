// internal/service/customer_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pahana-billing/internal/domain"
	"pahana-billing/internal/util"
)

func TestCustomerServiceCreate(t *testing.T) {
	ctx := context.Background()
	executor := new(MockDBExecutor)
	repo := new(MockCustomerRepository)
	svc := NewCustomerService(executor, repo)

	t.Run("success", func(t *testing.T) {
		repo.On("Create", ctx, executor, mock.AnythingOfType("*domain.Customer")).Return(nil).Once()
		c, err := svc.Create(ctx, "ACC-001", "Nimal", "Colombo", "077", 120)
		require.NoError(t, err)
		assert.Equal(t, "ACC-001", c.AccountNo)
		assert.Equal(t, 120, c.UnitsConsumed)
	})

	t.Run("duplicate key surfaces conflict", func(t *testing.T) {
		repo.On("Create", ctx, executor, mock.AnythingOfType("*domain.Customer")).Return(util.ErrDuplicateEntry).Once()
		_, err := svc.Create(ctx, "ACC-001", "Nimal", "Colombo", "077", 120)
		assert.ErrorIs(t, err, util.ErrDuplicateEntry)
	})

	t.Run("negative units rejected before persistence", func(t *testing.T) {
		_, err := svc.Create(ctx, "ACC-002", "Kamala", "", "", -1)
		assert.ErrorIs(t, err, util.ErrInvalidInput)
		repo.AssertNotCalled(t, "Create", ctx, executor, mock.MatchedBy(func(c *domain.Customer) bool {
			return c.AccountNo == "ACC-002"
		}))
	})
}

func TestCustomerServiceUpdate(t *testing.T) {
	ctx := context.Background()
	executor := new(MockDBExecutor)
	repo := new(MockCustomerRepository)
	svc := NewCustomerService(executor, repo)

	t.Run("nil fields keep prior values", func(t *testing.T) {
		existing := domain.NewCustomer("ACC-001", "Nimal", "Colombo", "0771234567", 120)
		repo.On("GetByAccountNo", ctx, executor, "ACC-001").Return(existing, nil).Once()
		repo.On("Update", ctx, executor, mock.AnythingOfType("*domain.Customer")).Return(nil).Once()

		phone := "0719876543"
		updated, err := svc.Update(ctx, "ACC-001", UpdateCustomerParams{Phone: &phone})
		require.NoError(t, err)
		assert.Equal(t, "0719876543", updated.Phone)
		assert.Equal(t, "Nimal", updated.Name)
		assert.Equal(t, 120, updated.UnitsConsumed)
	})

	t.Run("missing key is not found", func(t *testing.T) {
		repo.On("GetByAccountNo", ctx, executor, "ACC-404").Return(nil, util.ErrCustomerNotFound).Once()
		_, err := svc.Update(ctx, "ACC-404", UpdateCustomerParams{})
		assert.ErrorIs(t, err, util.ErrCustomerNotFound)
	})
}

func TestCustomerServiceDelete(t *testing.T) {
	ctx := context.Background()
	executor := new(MockDBExecutor)
	repo := new(MockCustomerRepository)
	svc := NewCustomerService(executor, repo)

	repo.On("Delete", ctx, executor, "ACC-404").Return(util.ErrCustomerNotFound).Once()
	assert.ErrorIs(t, svc.Delete(ctx, "ACC-404"), util.ErrCustomerNotFound)
}
