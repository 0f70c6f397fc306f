package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn" // Import pgconn for PgError
)

// PostgreSQL SQLSTATE codes for integrity constraint violations.
const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
	CodeCheckViolation      = "23514"
	CodeNotNullViolation    = "23502"
)

// Kind classifies an integrity violation reported by the store.
type Kind int

const (
	KindNone Kind = iota
	KindUnique
	KindForeignKey
	KindCheck
	KindNotNull
)

// Violation describes a constraint failure extracted from a PgError.
type Violation struct {
	Kind       Kind
	Constraint string
	Table      string
	Column     string
	Detail     string
}

// Classify returns the violation carried by err, or false when err is not an
// integrity constraint failure.
func Classify(err error) (Violation, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return Violation{}, false
	}

	v := Violation{
		Constraint: pgErr.ConstraintName,
		Table:      pgErr.TableName,
		Column:     pgErr.ColumnName,
		Detail:     pgErr.Detail,
	}
	switch pgErr.Code {
	case CodeUniqueViolation:
		v.Kind = KindUnique
	case CodeForeignKeyViolation:
		v.Kind = KindForeignKey
	case CodeCheckViolation:
		v.Kind = KindCheck
	case CodeNotNullViolation:
		v.Kind = KindNotNull
	default:
		return Violation{}, false
	}
	return v, true
}

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation error
// for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == CodeUniqueViolation && pgErr.ConstraintName == constraintName
}

// IsNoRows checks if the error is a "no rows" error.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
