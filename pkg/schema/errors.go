package schema

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/ctryrisk/pkg/errcode"
	"github.com/gnames/gn"
)

// ErrConstraint is wrapped by every constraint violation, so callers
// can use errors.Is.
var ErrConstraint = errors.New("constraint violation")

// ConstraintViolationError reports data that breaks a primary or
// foreign key of the relational schema.
func ConstraintViolationError(table, detail string, err error) error {
	msg := "Constraint violation in <em>%s</em>: %s"
	vars := []any{table, detail}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	if err == nil {
		err = ErrConstraint
	} else {
		err = fmt.Errorf("%w: %w", ErrConstraint, err)
	}
	return &gn.Error{
		Code: errcode.ConstraintViolationError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: table %s: %s: %w",
			fn.Name(), table, detail, err),
	}
}

func DuplicateKeyError(table, id string) error {
	return ConstraintViolationError(table,
		fmt.Sprintf("duplicate key '%s'", id), nil)
}

func MissingReferenceError(table, id, ref string) error {
	return ConstraintViolationError(table,
		fmt.Sprintf("row '%s' references missing Country '%s'", id, ref), nil)
}

func NullKeyError(table string, row int) error {
	return ConstraintViolationError(table,
		fmt.Sprintf("record %d has no Id", row), nil)
}
