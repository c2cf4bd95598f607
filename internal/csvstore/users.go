// internal/csvstore/users.go
package csvstore

import (
	"strings"

	"pahana-billing/internal/auth"
	"pahana-billing/internal/domain"
)

// users.csv: username, password-hash

const userArity = 2

func (s *Store) loadUsers() {
	lines, err := s.readLines(usersFile)
	if err != nil {
		s.logger.Warn("could not read users file, starting empty", "error", err)
		return
	}
	for _, line := range lines {
		f := splitRecord(line, userArity)
		if len(f) != userArity || f[0] == "" {
			s.logger.Warn("skipping malformed user record", "line", line)
			continue
		}
		u := &domain.User{Username: f[0], PasswordHash: f[1]}
		key := strings.ToLower(u.Username)
		if _, exists := s.users[key]; !exists {
			s.userOrder = append(s.userOrder, key)
		}
		s.users[key] = u
	}
}

func (s *Store) saveUsers() error {
	lines := make([]string, 0, len(s.users))
	for _, key := range s.userOrder {
		u := s.users[key]
		lines = append(lines, marshalRecord(u.Username, u.PasswordHash))
	}
	return s.writeLines(usersFile, lines)
}

// ensureDefaultAdmin seeds admin/admin123 on first run so the operator can
// log in before any users exist.
func (s *Store) ensureDefaultAdmin() error {
	if len(s.users) > 0 {
		return nil
	}
	u := domain.NewUser("admin", auth.HashPassword("admin123"))
	key := strings.ToLower(u.Username)
	s.users[key] = u
	s.userOrder = append(s.userOrder, key)
	if err := s.saveUsers(); err != nil {
		return err
	}
	s.logger.Info("default admin created", "username", "admin", "password", "admin123")
	return nil
}

// UserByName looks a user up by username, case-insensitively.
// It implements auth.UserStore.
func (s *Store) UserByName(username string) (*domain.User, bool) {
	u, ok := s.users[strings.ToLower(strings.TrimSpace(username))]
	if !ok {
		return nil, false
	}
	copied := *u
	return &copied, true
}
