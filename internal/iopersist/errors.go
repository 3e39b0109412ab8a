package iopersist

import (
	"errors"
	"fmt"

	"github.com/gnames/ctryrisk/pkg/errcode"
	"github.com/gnames/gn"
)

// GORMConnectionError creates an error for GORM
// connection failures.
func GORMConnectionError(err error) error {
	msg := "Cannot connect to database with GORM"

	return &gn.Error{
		Code: errcode.PersistGORMConnectionError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to connect with GORM: %w", err),
	}
}

// DropTableError creates an error for a table that cannot be
// dropped.
func DropTableError(table string, err error) error {
	msg := `Cannot drop table <em>%s</em>

<em>How to fix:</em>
  1. Make sure no other program holds the database
  2. Check database user has DROP permissions`

	return &gn.Error{
		Code: errcode.PersistSchemaError,
		Msg:  msg,
		Vars: []any{table},
		Err:  fmt.Errorf("failed to drop table %s: %w", table, err),
	}
}

// CreateTableError creates an error for schema creation
// failures.
func CreateTableError(table string, err error) error {
	msg := "Cannot create table <em>%s</em>"

	return &gn.Error{
		Code: errcode.PersistSchemaError,
		Msg:  msg,
		Vars: []any{table},
		Err:  fmt.Errorf("failed to create table %s: %w", table, err),
	}
}

// InsertError creates an error for failed batch inserts.
func InsertError(table string, err error) error {
	msg := "Cannot insert rows into <em>%s</em>, nothing was changed"

	return &gn.Error{
		Code: errcode.PersistWriteError,
		Msg:  msg,
		Vars: []any{table},
		Err:  fmt.Errorf("failed to insert into %s: %w", table, err),
	}
}

// NoTablesError is returned when the view is requested from an empty
// database.
func NoTablesError() error {
	msg := `The database has no data yet

<em>How to fix:</em>
  Import data first:
     <em>ctryrisk run</em>`

	return &gn.Error{
		Code: errcode.ReportQueryError,
		Msg:  msg,
		Err:  errors.New("table Country does not exist"),
	}
}

// ViewQueryError creates an error for a failed reporting query.
func ViewQueryError(err error) error {
	msg := "Cannot read the reporting view"

	return &gn.Error{
		Code: errcode.ReportQueryError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to run view query: %w", err),
	}
}
