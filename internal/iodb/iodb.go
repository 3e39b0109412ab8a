// Package iodb implements database connections for SQLite
// (modernc.org/sqlite) and PostgreSQL (pgxpool). This is an impure
// I/O package that implements contracts defined in pkg/.
package iodb

import (
	"github.com/gnames/ctryrisk/pkg/db"
)

// NewOperator creates a database operator for the driver (without
// connecting). Anything but "postgres" gives SQLite.
func NewOperator(driver string) db.Operator {
	if driver == "postgres" {
		return NewPgxOperator()
	}
	return NewSqliteOperator()
}
