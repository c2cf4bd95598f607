// internal/repository/postgres/item_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"pahana-billing/internal/domain"
	"pahana-billing/internal/repository"
	"pahana-billing/internal/util"
)

// ItemRepository implements repository.ItemRepository for PostgreSQL.
type ItemRepository struct{}

// NewItemRepository creates a new ItemRepository.
func NewItemRepository() repository.ItemRepository {
	return &ItemRepository{}
}

// Create inserts a new item using the provided DBExecutor.
func (r *ItemRepository) Create(ctx context.Context, q repository.DBExecutor, item *domain.Item) error {
	query := `INSERT INTO items (code, name, unit_price, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5)`
	_, err := q.ExecContext(ctx, query, item.Code, item.Name, item.UnitPrice, item.CreatedAt, item.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return util.ErrDuplicateEntry
		}
		return fmt.Errorf("failed to create item %s: %w", item.Code, err)
	}
	return nil
}

// GetByCode retrieves an item by code using the provided DBExecutor.
func (r *ItemRepository) GetByCode(ctx context.Context, q repository.DBExecutor, code string) (*domain.Item, error) {
	var item domain.Item
	query := `SELECT code, name, unit_price, created_at, updated_at FROM items WHERE code = $1`
	err := q.GetContext(ctx, &item, query, code)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item %s: %w", code, err)
	}
	return &item, nil
}

// List retrieves all items using the provided DBExecutor.
func (r *ItemRepository) List(ctx context.Context, q repository.DBExecutor) ([]domain.Item, error) {
	items := []domain.Item{}
	query := `SELECT code, name, unit_price, created_at, updated_at FROM items ORDER BY created_at`
	if err := q.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

// Update replaces the mutable fields of an existing item using the provided DBExecutor.
// The item code never changes.
func (r *ItemRepository) Update(ctx context.Context, q repository.DBExecutor, item *domain.Item) error {
	query := `UPDATE items SET name = $1, unit_price = $2, updated_at = $3 WHERE code = $4`
	result, err := q.ExecContext(ctx, query, item.Name, item.UnitPrice, time.Now().UTC(), item.Code)
	if err != nil {
		return fmt.Errorf("failed to update item %s: %w", item.Code, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected updating item %s: %w", item.Code, err)
	}
	if rowsAffected == 0 {
		return util.ErrItemNotFound
	}
	return nil
}

// Delete removes an item by code using the provided DBExecutor.
func (r *ItemRepository) Delete(ctx context.Context, q repository.DBExecutor, code string) error {
	result, err := q.ExecContext(ctx, `DELETE FROM items WHERE code = $1`, code)
	if err != nil {
		return fmt.Errorf("failed to delete item %s: %w", code, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected deleting item %s: %w", code, err)
	}
	if rowsAffected == 0 {
		return util.ErrItemNotFound
	}
	return nil
}
