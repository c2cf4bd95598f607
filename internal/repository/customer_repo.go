// internal/repository/customer_repo.go
package repository

import (
	"context"

	"pahana-billing/internal/domain"
)

// CustomerRepository defines the interface for customer data operations.
type CustomerRepository interface {
	// Create adds a new customer using the provided DBExecutor.
	Create(ctx context.Context, q DBExecutor, customer *domain.Customer) error
	// GetByAccountNo retrieves a customer by account number.
	GetByAccountNo(ctx context.Context, q DBExecutor, accountNo string) (*domain.Customer, error)
	// List retrieves all customers.
	List(ctx context.Context, q DBExecutor) ([]domain.Customer, error)
	// Update replaces the mutable fields of an existing customer.
	Update(ctx context.Context, q DBExecutor, customer *domain.Customer) error
	// Delete removes a customer by account number.
	Delete(ctx context.Context, q DBExecutor, accountNo string) error
}
