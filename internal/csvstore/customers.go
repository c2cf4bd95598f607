// internal/csvstore/customers.go
package csvstore

import (
	"strconv"
	"time"

	"pahana-billing/internal/domain"
	"pahana-billing/internal/util"
)

// customers.csv: account-number, name, address, phone, units-consumed

const customerArity = 5

func (s *Store) loadCustomers() {
	lines, err := s.readLines(customersFile)
	if err != nil {
		s.logger.Warn("could not read customers file, starting empty", "error", err)
		return
	}
	for _, line := range lines {
		f := splitRecord(line, customerArity)
		if len(f) != customerArity || f[0] == "" {
			s.logger.Warn("skipping malformed customer record", "line", line)
			continue
		}
		units, err := strconv.Atoi(f[4])
		if err != nil || units < 0 {
			s.logger.Warn("skipping customer record with bad units", "account_no", f[0], "units", f[4])
			continue
		}
		c := &domain.Customer{
			AccountNo:     f[0],
			Name:          f[1],
			Address:       f[2],
			Phone:         f[3],
			UnitsConsumed: units,
		}
		s.customers[c.AccountNo] = c
		s.customerOrder = append(s.customerOrder, c.AccountNo)
	}
}

func (s *Store) saveCustomers() error {
	lines := make([]string, 0, len(s.customerOrder))
	for _, acc := range s.customerOrder {
		c := s.customers[acc]
		lines = append(lines, marshalRecord(
			c.AccountNo, c.Name, c.Address, c.Phone, strconv.Itoa(c.UnitsConsumed)))
	}
	return s.writeLines(customersFile, lines)
}

// CreateCustomer inserts a new customer and flushes the collection.
// Returns util.ErrDuplicateEntry if the account number already exists.
func (s *Store) CreateCustomer(c *domain.Customer) error {
	if _, exists := s.customers[c.AccountNo]; exists {
		return util.ErrDuplicateEntry
	}
	stored := *c
	s.customers[stored.AccountNo] = &stored
	s.customerOrder = append(s.customerOrder, stored.AccountNo)
	return s.saveCustomers()
}

// GetCustomer retrieves a customer by account number.
func (s *Store) GetCustomer(accountNo string) (*domain.Customer, error) {
	c, ok := s.customers[accountNo]
	if !ok {
		return nil, util.ErrCustomerNotFound
	}
	copied := *c
	return &copied, nil
}

// ListCustomers returns all customers in insertion order.
func (s *Store) ListCustomers() []*domain.Customer {
	out := make([]*domain.Customer, 0, len(s.customerOrder))
	for _, acc := range s.customerOrder {
		copied := *s.customers[acc]
		out = append(out, &copied)
	}
	return out
}

// UpdateCustomer replaces an existing customer record and flushes the
// collection. The account number is the immutable key.
func (s *Store) UpdateCustomer(c *domain.Customer) error {
	if _, ok := s.customers[c.AccountNo]; !ok {
		return util.ErrCustomerNotFound
	}
	stored := *c
	stored.UpdatedAt = time.Now().UTC()
	s.customers[stored.AccountNo] = &stored
	return s.saveCustomers()
}

// DeleteCustomer removes a customer irrevocably and flushes the collection.
func (s *Store) DeleteCustomer(accountNo string) error {
	if _, ok := s.customers[accountNo]; !ok {
		return util.ErrCustomerNotFound
	}
	delete(s.customers, accountNo)
	for i, acc := range s.customerOrder {
		if acc == accountNo {
			s.customerOrder = append(s.customerOrder[:i], s.customerOrder[i+1:]...)
			break
		}
	}
	return s.saveCustomers()
}
