package services

import (
	"context"

	"github.com/yigit/akademik/internal/app/identifier"
	"github.com/yigit/akademik/internal/app/repositories"
)

// IdentifierService exposes student identifier allocation and parsing
type IdentifierService interface {
	// AllocateStudentID returns the identifier the next student of the scope would
	// receive. Nothing is persisted.
	AllocateStudentID(ctx context.Context, enrollmentYear int, programName string) (string, error)
	ValidateStudentID(id string) bool
	ParseStudentID(id string) (year int, programCode string, sequence int, err error)
	Programs() []identifier.Program
}

// identifierServiceImpl implements the IdentifierService interface
type identifierServiceImpl struct {
	store     repositories.Store
	allocator *identifier.Allocator
}

// NewIdentifierService creates a new identifier service instance
func NewIdentifierService(store repositories.Store, allocator *identifier.Allocator) IdentifierService {
	return &identifierServiceImpl{
		store:     store,
		allocator: allocator,
	}
}

func (s *identifierServiceImpl) AllocateStudentID(ctx context.Context, enrollmentYear int, programName string) (string, error) {
	id, err := s.allocator.Allocate(ctx, s.store.Students(), enrollmentYear, programName)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func (s *identifierServiceImpl) ValidateStudentID(id string) bool {
	return identifier.ValidateFormat(id)
}

func (s *identifierServiceImpl) ParseStudentID(id string) (int, string, int, error) {
	parsed, err := identifier.Parse(id)
	if err != nil {
		return 0, "", 0, err
	}
	return parsed.Year, parsed.ProgramCode, parsed.Sequence, nil
}

func (s *identifierServiceImpl) Programs() []identifier.Program {
	return s.allocator.Catalog().Programs()
}
