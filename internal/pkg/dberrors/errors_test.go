package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind Kind
		ok   bool
	}{
		{"unique", &pgconn.PgError{Code: CodeUniqueViolation, ConstraintName: "uq_students_email"}, KindUnique, true},
		{"check", &pgconn.PgError{Code: CodeCheckViolation, ConstraintName: "chk_courses_credits"}, KindCheck, true},
		{"foreign key", &pgconn.PgError{Code: CodeForeignKeyViolation}, KindForeignKey, true},
		{"wrapped", fmt.Errorf("insert: %w", &pgconn.PgError{Code: CodeUniqueViolation}), KindUnique, true},
		{"syntax error", &pgconn.PgError{Code: "42601"}, KindNone, false},
		{"plain error", errors.New("boom"), KindNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := Classify(tt.err)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.kind, v.Kind)
		})
	}
}

func TestIsDuplicateConstraintError(t *testing.T) {
	err := &pgconn.PgError{Code: CodeUniqueViolation, ConstraintName: "uq_courses_code"}

	assert.True(t, IsDuplicateConstraintError(err, "uq_courses_code"))
	assert.False(t, IsDuplicateConstraintError(err, "uq_students_email"))
	assert.True(t, IsDuplicateConstraintError(fmt.Errorf("insert: %w", err), "uq_courses_code"))
	assert.False(t, IsDuplicateConstraintError(&pgconn.PgError{Code: CodeCheckViolation, ConstraintName: "uq_courses_code"}, "uq_courses_code"))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, IsNoRows(fmt.Errorf("get: %w", pgx.ErrNoRows)))
	assert.False(t, IsNoRows(errors.New("other")))
}
