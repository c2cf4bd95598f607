// pkg/db/postgres.go
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver
)

// Config holds database connection configuration.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// NewPostgresDB initializes and returns a new PostgreSQL database connection.
// It uses sqlx for enhanced database operations.
func NewPostgresDB(cfg Config) (*sqlx.DB, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	db, err := sqlx.Connect("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Ping the database to verify the connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err = db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}

	return db, nil
}

// schema is applied idempotently at startup; there is no separate migration
// tooling for this system.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		account_no     TEXT PRIMARY KEY,
		name           TEXT NOT NULL,
		address        TEXT NOT NULL DEFAULT '',
		phone          TEXT NOT NULL DEFAULT '',
		units_consumed INTEGER NOT NULL DEFAULT 0 CHECK (units_consumed >= 0),
		created_at     TIMESTAMPTZ NOT NULL,
		updated_at     TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS items (
		code       TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		unit_price NUMERIC(12, 2) NOT NULL CHECK (unit_price >= 0),
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS bills (
		bill_id       TEXT PRIMARY KEY,
		account_no    TEXT NOT NULL,
		bill_time     TIMESTAMPTZ NOT NULL,
		units         INTEGER NOT NULL,
		energy_charge NUMERIC(12, 2) NOT NULL,
		item_total    NUMERIC(12, 2) NOT NULL,
		tax           NUMERIC(12, 2) NOT NULL,
		grand_total   NUMERIC(12, 2) NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bills_account_no ON bills (account_no)`,
}

// EnsureSchema creates the billing tables if they do not already exist.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
