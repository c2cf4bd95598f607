// internal/service/item_service.go
package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"pahana-billing/internal/domain"
	"pahana-billing/internal/repository"
	"pahana-billing/internal/util"
)

// UpdateItemParams carries a partial item update. A nil field keeps the prior
// value.
type UpdateItemParams struct {
	Name      *string
	UnitPrice *decimal.Decimal
}

// ItemService defines the interface for item-catalog business logic.
type ItemService interface {
	Create(ctx context.Context, code, name string, unitPrice decimal.Decimal) (*domain.Item, error)
	Get(ctx context.Context, code string) (*domain.Item, error)
	List(ctx context.Context) ([]domain.Item, error)
	Update(ctx context.Context, code string, params UpdateItemParams) (*domain.Item, error)
	Delete(ctx context.Context, code string) error
}

// itemService implements the ItemService interface.
type itemService struct {
	dbExecutor repository.DBExecutor
	itemRepo   repository.ItemRepository
}

// NewItemService creates a new instance of ItemService.
func NewItemService(dbExecutor repository.DBExecutor, itemRepo repository.ItemRepository) ItemService {
	return &itemService{
		dbExecutor: dbExecutor,
		itemRepo:   itemRepo,
	}
}

// Create adds a new catalog item.
func (s *itemService) Create(ctx context.Context, code, name string, unitPrice decimal.Decimal) (*domain.Item, error) {
	if code == "" || name == "" || unitPrice.IsNegative() {
		return nil, util.ErrInvalidInput
	}
	item := domain.NewItem(code, name, unitPrice)
	if err := s.itemRepo.Create(ctx, s.dbExecutor, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Get retrieves an item by code.
func (s *itemService) Get(ctx context.Context, code string) (*domain.Item, error) {
	return s.itemRepo.GetByCode(ctx, s.dbExecutor, code)
}

// List retrieves all items.
func (s *itemService) List(ctx context.Context) ([]domain.Item, error) {
	return s.itemRepo.List(ctx, s.dbExecutor)
}

// Update applies a partial update to an existing item.
func (s *itemService) Update(ctx context.Context, code string, params UpdateItemParams) (*domain.Item, error) {
	item, err := s.itemRepo.GetByCode(ctx, s.dbExecutor, code)
	if err != nil {
		return nil, fmt.Errorf("update: failed to get item %s: %w", code, err)
	}
	if params.Name != nil {
		item.Name = *params.Name
	}
	if params.UnitPrice != nil {
		if params.UnitPrice.IsNegative() {
			return nil, util.ErrInvalidInput
		}
		item.UnitPrice = *params.UnitPrice
	}
	if err := s.itemRepo.Update(ctx, s.dbExecutor, item); err != nil {
		return nil, fmt.Errorf("update: failed to save item %s: %w", code, err)
	}
	return item, nil
}

// Delete removes an item by code.
func (s *itemService) Delete(ctx context.Context, code string) error {
	return s.itemRepo.Delete(ctx, s.dbExecutor, code)
}
