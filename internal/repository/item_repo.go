// internal/repository/item_repo.go
package repository

import (
	"context"

	"pahana-billing/internal/domain"
)

// ItemRepository defines the interface for item catalog data operations.
type ItemRepository interface {
	// Create adds a new item using the provided DBExecutor.
	Create(ctx context.Context, q DBExecutor, item *domain.Item) error
	// GetByCode retrieves an item by code.
	GetByCode(ctx context.Context, q DBExecutor, code string) (*domain.Item, error)
	// List retrieves all items.
	List(ctx context.Context, q DBExecutor) ([]domain.Item, error)
	// Update replaces the mutable fields of an existing item.
	Update(ctx context.Context, q DBExecutor, item *domain.Item) error
	// Delete removes an item by code.
	Delete(ctx context.Context, q DBExecutor, code string) error
}
