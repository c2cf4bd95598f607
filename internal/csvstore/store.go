// internal/csvstore/store.go

// Package csvstore persists the billing entities as flat CSV text files under
// a data directory: users.csv, customers.csv, items.csv and bills.csv, one
// record per line. Collections are loaded into memory at startup and every
// mutation rewrites the affected file in full (bills are append-only).
//
// The store is not safe for concurrent use; the console program drives it
// from a single goroutine.
package csvstore

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"pahana-billing/internal/domain"
)

const (
	usersFile     = "users.csv"
	customersFile = "customers.csv"
	itemsFile     = "items.csv"
	billsFile     = "bills.csv"
)

// Store holds the in-memory collections backed by CSV files.
type Store struct {
	dir    string
	logger *slog.Logger

	users     map[string]*domain.User // keyed by lowercase username
	customers map[string]*domain.Customer
	items     map[string]*domain.Item

	// Insertion order for listing, matching the order of records on disk.
	userOrder     []string
	customerOrder []string
	itemOrder     []string
}

// Open creates the data directory if needed, loads all collections and
// ensures a default admin user exists when the user set is empty.
//
// A collection that fails to load starts empty with a warning; the store
// stays usable so a damaged file never blocks startup.
func Open(dir string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	s := &Store{
		dir:       dir,
		logger:    logger,
		users:     make(map[string]*domain.User),
		customers: make(map[string]*domain.Customer),
		items:     make(map[string]*domain.Item),
	}
	s.loadUsers()
	s.loadCustomers()
	s.loadItems()
	if err := s.ensureDefaultAdmin(); err != nil {
		return nil, err
	}
	return s, nil
}

// Dir returns the data directory the store writes to.
func (s *Store) Dir() string {
	return s.dir
}

// readLines returns the non-empty lines of the named data file. A missing
// file is not an error; it reads as an empty collection.
func (s *Store) readLines(name string) ([]string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// writeLines rewrites the named data file with the given records, using a
// write-then-rename so a failed save never truncates the previous contents.
func (s *Store) writeLines(name string, lines []string) error {
	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(tmp, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	return nil
}

// appendLine appends one record to the named data file.
func (s *Store) appendLine(name, line string) error {
	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s for append: %w", name, err)
	}
	defer f.Close()
	if _, err := f.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("failed to append to %s: %w", name, err)
	}
	return nil
}
