package iodb_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gnames/ctryrisk/internal/iodb"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestConstraintKind(t *testing.T) {
	tests := []struct {
		msg  string
		err  error
		kind string
		ok   bool
	}{
		{"nil", nil, "", false},
		{"other", errors.New("disk full"), "", false},
		{
			"pg foreign key",
			&pgconn.PgError{Code: "23503"},
			iodb.ForeignKey, true,
		},
		{
			"pg unique",
			fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}),
			iodb.PrimaryKey, true,
		},
		{"pg other", &pgconn.PgError{Code: "42P01"}, "", false},
		{
			"sqlite message",
			errors.New("constraint failed: FOREIGN KEY constraint failed (787)"),
			iodb.ForeignKey, true,
		},
		{
			"sqlite unique message",
			errors.New("UNIQUE constraint failed: Country.Id"),
			iodb.PrimaryKey, true,
		},
	}

	for _, v := range tests {
		kind, ok := iodb.ConstraintKind(v.err)
		assert.Equal(t, v.ok, ok, v.msg)
		assert.Equal(t, v.kind, kind, v.msg)
	}
}
