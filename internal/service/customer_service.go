// internal/service/customer_service.go
package service

import (
	"context"
	"fmt"

	"pahana-billing/internal/domain"
	"pahana-billing/internal/repository"
	"pahana-billing/internal/util"
)

// UpdateCustomerParams carries a partial customer update. A nil field keeps
// the prior value, mirroring the console program's "blank keeps current"
// convention.
type UpdateCustomerParams struct {
	Name          *string
	Address       *string
	Phone         *string
	UnitsConsumed *int
}

// CustomerService defines the interface for customer-related business logic.
type CustomerService interface {
	Create(ctx context.Context, accountNo, name, address, phone string, unitsConsumed int) (*domain.Customer, error)
	Get(ctx context.Context, accountNo string) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, accountNo string, params UpdateCustomerParams) (*domain.Customer, error)
	Delete(ctx context.Context, accountNo string) error
}

// customerService implements the CustomerService interface.
type customerService struct {
	dbExecutor   repository.DBExecutor
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new instance of CustomerService.
func NewCustomerService(dbExecutor repository.DBExecutor, customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{
		dbExecutor:   dbExecutor,
		customerRepo: customerRepo,
	}
}

// Create adds a new customer account.
func (s *customerService) Create(ctx context.Context, accountNo, name, address, phone string, unitsConsumed int) (*domain.Customer, error) {
	if accountNo == "" || name == "" || unitsConsumed < 0 {
		return nil, util.ErrInvalidInput
	}
	customer := domain.NewCustomer(accountNo, name, address, phone, unitsConsumed)
	if err := s.customerRepo.Create(ctx, s.dbExecutor, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Get retrieves a customer by account number.
func (s *customerService) Get(ctx context.Context, accountNo string) (*domain.Customer, error) {
	return s.customerRepo.GetByAccountNo(ctx, s.dbExecutor, accountNo)
}

// List retrieves all customers.
func (s *customerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.List(ctx, s.dbExecutor)
}

// Update applies a partial update to an existing customer.
func (s *customerService) Update(ctx context.Context, accountNo string, params UpdateCustomerParams) (*domain.Customer, error) {
	customer, err := s.customerRepo.GetByAccountNo(ctx, s.dbExecutor, accountNo)
	if err != nil {
		return nil, fmt.Errorf("update: failed to get customer %s: %w", accountNo, err)
	}
	if params.Name != nil {
		customer.Name = *params.Name
	}
	if params.Address != nil {
		customer.Address = *params.Address
	}
	if params.Phone != nil {
		customer.Phone = *params.Phone
	}
	if params.UnitsConsumed != nil {
		if *params.UnitsConsumed < 0 {
			return nil, util.ErrInvalidInput
		}
		customer.UnitsConsumed = *params.UnitsConsumed
	}
	if err := s.customerRepo.Update(ctx, s.dbExecutor, customer); err != nil {
		return nil, fmt.Errorf("update: failed to save customer %s: %w", accountNo, err)
	}
	return customer, nil
}

// Delete removes a customer by account number.
func (s *customerService) Delete(ctx context.Context, accountNo string) error {
	return s.customerRepo.Delete(ctx, s.dbExecutor, accountNo)
}
