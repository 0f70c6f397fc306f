package identifier

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/yigit/akademik/internal/pkg/apperrors"
)

// SequenceSource reports the highest sequence already used in a scope.
// It returns 0 when the scope is empty.
type SequenceSource interface {
	MaxSequence(ctx context.Context, year int, programCode string) (int, error)
}

// SequenceSourceFunc adapts a function to SequenceSource.
type SequenceSourceFunc func(ctx context.Context, year int, programCode string) (int, error)

// MaxSequence implements SequenceSource.
func (f SequenceSourceFunc) MaxSequence(ctx context.Context, year int, programCode string) (int, error) {
	return f(ctx, year, programCode)
}

// Allocator proposes the next free identifier of a scope. It never persists
// anything; the caller inserts the student and the primary key decides.
type Allocator struct {
	catalog *Catalog
	tracer  trace.Tracer
}

// NewAllocator creates an allocator over catalog.
func NewAllocator(catalog *Catalog) *Allocator {
	return &Allocator{
		catalog: catalog,
		tracer:  otel.Tracer("github.com/yigit/akademik/internal/app/identifier"),
	}
}

// Catalog returns the program catalog the allocator resolves against.
func (a *Allocator) Catalog() *Catalog {
	return a.catalog
}

// CheckYear validates an enrollment year.
func CheckYear(year int) error {
	if year < MinYear || year > MaxYear {
		return apperrors.NewRangeError("enrollment_year",
			fmt.Sprintf("enrollment year %d must be between %d and %d", year, MinYear, MaxYear))
	}
	return nil
}

// Allocate returns max+1 of the (year, program) scope, or sequence 1 when empty.
func (a *Allocator) Allocate(ctx context.Context, src SequenceSource, year int, programName string) (StudentID, error) {
	ctx, span := a.tracer.Start(ctx, "identifier.Allocate",
		trace.WithAttributes(attribute.Int("student.enrollment_year", year), attribute.String("student.program", programName)))
	defer span.End()

	id, err := a.allocate(ctx, src, year, programName)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return StudentID{}, err
	}
	span.SetAttributes(attribute.String("student.id", id.String()))
	return id, nil
}

func (a *Allocator) allocate(ctx context.Context, src SequenceSource, year int, programName string) (StudentID, error) {
	if err := CheckYear(year); err != nil {
		return StudentID{}, err
	}

	code, err := a.catalog.Resolve(programName)
	if err != nil {
		return StudentID{}, err
	}

	maxSeq, err := src.MaxSequence(ctx, year, code)
	if err != nil {
		return StudentID{}, fmt.Errorf("failed to read max sequence for %s: %w", ScopePrefix(year, code), err)
	}

	next := maxSeq + 1
	if next > MaxSequence {
		return StudentID{}, apperrors.NewCustomError(apperrors.ErrCapacityExceeded,
			fmt.Sprintf("no identifiers left for year %d and program code %s", year, code)).
			WithDetails(map[string]interface{}{"year": year, "program_code": code, "max_sequence": MaxSequence})
	}

	return StudentID{Year: year, ProgramCode: code, Sequence: next}, nil
}
