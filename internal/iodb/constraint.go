package iodb

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Constraint kinds returned by ConstraintKind.
const (
	ForeignKey = "foreign key"
	PrimaryKey = "primary key"
)

// ConstraintKind detects primary and foreign key violations reported
// by SQLite or PostgreSQL drivers. It returns false for any other
// error.
func ConstraintKind(err error) (string, bool) {
	if err == nil {
		return "", false
	}

	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return ForeignKey, true
		case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY,
			sqlite3.SQLITE_CONSTRAINT_UNIQUE:
			return PrimaryKey, true
		}
	}

	var pe *pgconn.PgError
	if errors.As(err, &pe) {
		switch pe.Code {
		case "23503":
			return ForeignKey, true
		case "23505":
			return PrimaryKey, true
		}
	}

	// some SQLite paths report the primary result code only
	msg := err.Error()
	switch {
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return ForeignKey, true
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return PrimaryKey, true
	}
	return "", false
}
