// internal/repository/postgres/customer_pg.go
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

// CustomerRepository implements repository.CustomerRepository for PostgreSQL.
type CustomerRepository struct{}

// NewCustomerRepository creates a new CustomerRepository.
func NewCustomerRepository() repository.CustomerRepository {
	return &CustomerRepository{}
}

// Create inserts a new customer using the provided DBExecutor.
func (r *CustomerRepository) Create(ctx context.Context, q repository.DBExecutor, customer *domain.Customer) error {
	query := `INSERT INTO customers (account_no, name, address, phone, units_consumed, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := q.ExecContext(ctx, query,
		customer.AccountNo, customer.Name, customer.Address, customer.Phone,
		customer.UnitsConsumed, customer.CreatedAt, customer.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return util.ErrDuplicateEntry
		}
		return fmt.Errorf("failed to create customer %s: %w", customer.AccountNo, err)
	}
	return nil
}

// GetByAccountNo retrieves a customer by account number using the provided DBExecutor.
func (r *CustomerRepository) GetByAccountNo(ctx context.Context, q repository.DBExecutor, accountNo string) (*domain.Customer, error) {
	var customer domain.Customer
	query := `SELECT account_no, name, address, phone, units_consumed, created_at, updated_at
              FROM customers WHERE account_no = $1`
	err := q.GetContext(ctx, &customer, query, accountNo)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer %s: %w", accountNo, err)
	}
	return &customer, nil
}

// List retrieves all customers using the provided DBExecutor.
func (r *CustomerRepository) List(ctx context.Context, q repository.DBExecutor) ([]domain.Customer, error) {
	customers := []domain.Customer{}
	query := `SELECT account_no, name, address, phone, units_consumed, created_at, updated_at
              FROM customers ORDER BY created_at`
	if err := q.SelectContext(ctx, &customers, query); err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

// Update replaces the mutable fields of an existing customer using the provided DBExecutor.
// The account number never changes.
func (r *CustomerRepository) Update(ctx context.Context, q repository.DBExecutor, customer *domain.Customer) error {
	query := `UPDATE customers SET name = $1, address = $2, phone = $3, units_consumed = $4, updated_at = $5
              WHERE account_no = $6`
	result, err := q.ExecContext(ctx, query,
		customer.Name, customer.Address, customer.Phone, customer.UnitsConsumed,
		time.Now().UTC(), customer.AccountNo)
	if err != nil {
		return fmt.Errorf("failed to update customer %s: %w", customer.AccountNo, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected updating customer %s: %w", customer.AccountNo, err)
	}
	if rowsAffected == 0 {
		return util.ErrCustomerNotFound
	}
	return nil
}

// Delete removes a customer by account number using the provided DBExecutor.
func (r *CustomerRepository) Delete(ctx context.Context, q repository.DBExecutor, accountNo string) error {
	result, err := q.ExecContext(ctx, `DELETE FROM customers WHERE account_no = $1`, accountNo)
	if err != nil {
		return fmt.Errorf("failed to delete customer %s: %w", accountNo, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected deleting customer %s: %w", accountNo, err)
	}
	if rowsAffected == 0 {
		return util.ErrCustomerNotFound
	}
	return nil
}
