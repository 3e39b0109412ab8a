// Package db defines the contract of the relational store connection.
package db

import (
	"context"
	"database/sql"

	"github.com/gnames/ctryrisk/pkg/config"
)

// Operator defines the interface for basic database management
// operations. It owns the connection lifecycle and exposes *sql.DB for
// higher level components (Persister) that run their own statements
// through GORM.
type Operator interface {
	// Connect opens the database described by the config. For SQLite
	// it also makes sure foreign keys are enforced.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close releases the connection.
	Close() error

	// DB returns the underlying connection, nil before Connect.
	DB() *sql.DB

	// Driver returns "sqlite" or "postgres".
	Driver() string

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)
}
