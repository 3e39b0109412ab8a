package iodb

import (
	"errors"
	"fmt"

	"github.com/gnames/ctryrisk/pkg/errcode"
	"github.com/gnames/gn"
)

// ConnectionError creates an error for PostgreSQL connection
// failures.
func ConnectionError(
	host string,
	port int,
	database, user string,
	err error,
) error {
	msg := `Cannot connect to PostgreSQL database

<em>Possible causes:</em>
  - PostgreSQL is not running
  - Database configuration is incorrect

<em>How to fix:</em>
  1. Check if PostgreSQL is running:
     <em>pg_isready -h %s -p %d</em>
  2. Review connection settings:
     Host: %s, Port: %d, Database: %s, User: %s`

	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: []any{host, port, host, port, database, user},
		Err: fmt.Errorf("failed to connect to %s:%d/%s: %w",
			host, port, database, err),
	}
}

// SqliteConnectionError creates an error for a SQLite file that
// cannot be opened.
func SqliteConnectionError(path string, err error) error {
	msg := "Cannot open SQLite database <em>%s</em>"
	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("failed to open sqlite %s: %w", path, err),
	}
}

// ForeignKeysError is returned when SQLite does not confirm foreign
// key enforcement.
func ForeignKeysError(path string, err error) error {
	msg := "Cannot enable foreign keys in <em>%s</em>"
	if err == nil {
		err = errors.New("PRAGMA foreign_keys is off")
	}
	return &gn.Error{
		Code: errcode.DBForeignKeysError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("foreign keys in %s: %w", path, err),
	}
}

// NotConnectedError creates an error for when an operation is
// attempted without database connection.
func NotConnectedError() error {
	msg := "Database operation attempted without connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  errors.New("not connected to database"),
	}
}

// TableExistsCheckError creates an error for failed table
// existence checks.
func TableExistsCheckError(table string, err error) error {
	msg := "Cannot check if table <em>%s</em> exists"
	return &gn.Error{
		Code: errcode.DBTableCheckError,
		Msg:  msg,
		Vars: []any{table},
		Err:  fmt.Errorf("failed to check table %s: %w", table, err),
	}
}
