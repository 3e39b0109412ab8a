package iodb

import (
	"context"
	"database/sql"

	"github.com/gnames/ctryrisk/pkg/config"
	"github.com/gnames/ctryrisk/pkg/db"
	_ "modernc.org/sqlite"
)

type sqliteOperator struct {
	db   *sql.DB
	path string
}

// NewSqliteOperator creates an operator for a local SQLite file.
func NewSqliteOperator() db.Operator {
	return &sqliteOperator{}
}

// Connect opens the SQLite file, creating it when missing, and turns
// foreign key enforcement on. The pragma is read back, because SQLite
// silently ignores it inside a transaction or in builds without
// foreign key support.
func (s *sqliteOperator) Connect(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	dsn := sqliteDSN(cfg.Path)
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return SqliteConnectionError(cfg.Path, err)
	}

	// one writer, and pragmas are per connection
	sqlDB.SetMaxOpenConns(1)

	if err = sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return SqliteConnectionError(cfg.Path, err)
	}

	if _, err = sqlDB.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		sqlDB.Close()
		return ForeignKeysError(cfg.Path, err)
	}

	var on int
	err = sqlDB.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&on)
	if err != nil || on != 1 {
		sqlDB.Close()
		return ForeignKeysError(cfg.Path, err)
	}

	s.db = sqlDB
	s.path = cfg.Path
	return nil
}

func (s *sqliteOperator) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *sqliteOperator) DB() *sql.DB {
	return s.db
}

func (s *sqliteOperator) Driver() string {
	return "sqlite"
}

// TableExists checks if a table exists in the SQLite file.
func (s *sqliteOperator) TableExists(
	ctx context.Context,
	tableName string,
) (bool, error) {
	if s.db == nil {
		return false, NotConnectedError()
	}

	query := `
		SELECT count(*)
		FROM sqlite_master
		WHERE type = 'table' AND name = ?
	`

	var count int
	err := s.db.QueryRowContext(ctx, query, tableName).Scan(&count)
	if err != nil {
		return false, TableExistsCheckError(tableName, err)
	}
	return count > 0, nil
}

func sqliteDSN(path string) string {
	return "file:" + path + "?_pragma=foreign_keys(1)"
}
