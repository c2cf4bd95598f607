// internal/csvstore/items.go
package csvstore

import (
	"time"

	"github.com/shopspring/decimal"

	"pahana-billing/internal/domain"
	"pahana-billing/internal/util"
)

// items.csv: code, name, unit-price

const itemArity = 3

func (s *Store) loadItems() {
	lines, err := s.readLines(itemsFile)
	if err != nil {
		s.logger.Warn("could not read items file, starting empty", "error", err)
		return
	}
	for _, line := range lines {
		f := splitRecord(line, itemArity)
		if len(f) != itemArity || f[0] == "" {
			s.logger.Warn("skipping malformed item record", "line", line)
			continue
		}
		price, err := decimal.NewFromString(f[2])
		if err != nil || price.IsNegative() {
			s.logger.Warn("skipping item record with bad price", "code", f[0], "price", f[2])
			continue
		}
		it := &domain.Item{Code: f[0], Name: f[1], UnitPrice: price}
		s.items[it.Code] = it
		s.itemOrder = append(s.itemOrder, it.Code)
	}
}

func (s *Store) saveItems() error {
	lines := make([]string, 0, len(s.itemOrder))
	for _, code := range s.itemOrder {
		it := s.items[code]
		lines = append(lines, marshalRecord(it.Code, it.Name, it.UnitPrice.String()))
	}
	return s.writeLines(itemsFile, lines)
}

// CreateItem inserts a new item and flushes the collection.
// Returns util.ErrDuplicateEntry if the code already exists.
func (s *Store) CreateItem(it *domain.Item) error {
	if _, exists := s.items[it.Code]; exists {
		return util.ErrDuplicateEntry
	}
	stored := *it
	s.items[stored.Code] = &stored
	s.itemOrder = append(s.itemOrder, stored.Code)
	return s.saveItems()
}

// GetItem retrieves an item by code.
func (s *Store) GetItem(code string) (*domain.Item, error) {
	it, ok := s.items[code]
	if !ok {
		return nil, util.ErrItemNotFound
	}
	copied := *it
	return &copied, nil
}

// ListItems returns all items in insertion order.
func (s *Store) ListItems() []*domain.Item {
	out := make([]*domain.Item, 0, len(s.itemOrder))
	for _, code := range s.itemOrder {
		copied := *s.items[code]
		out = append(out, &copied)
	}
	return out
}

// UpdateItem replaces an existing item record and flushes the collection.
// The item code is the immutable key.
func (s *Store) UpdateItem(it *domain.Item) error {
	if _, ok := s.items[it.Code]; !ok {
		return util.ErrItemNotFound
	}
	stored := *it
	stored.UpdatedAt = time.Now().UTC()
	s.items[stored.Code] = &stored
	return s.saveItems()
}

// DeleteItem removes an item irrevocably and flushes the collection.
func (s *Store) DeleteItem(code string) error {
	if _, ok := s.items[code]; !ok {
		return util.ErrItemNotFound
	}
	delete(s.items, code)
	for i, c := range s.itemOrder {
		if c == code {
			s.itemOrder = append(s.itemOrder[:i], s.itemOrder[i+1:]...)
			break
		}
	}
	return s.saveItems()
}
