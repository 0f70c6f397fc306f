package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/yigit/akademik/internal/app/identifier"
	"github.com/yigit/akademik/internal/app/models"
	"github.com/yigit/akademik/internal/app/models/dto"
	"github.com/yigit/akademik/internal/app/repositories"
	"github.com/yigit/akademik/internal/pkg/apperrors"
	"github.com/yigit/akademik/internal/pkg/cache"
)

// StudentService defines the interface for student operations
type StudentService interface {
	CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, error)
	GetStudent(ctx context.Context, id string) (*models.Student, error)
	ListStudents(ctx context.Context, filter dto.StudentFilter, skip, limit int) ([]*models.Student, int64, error)
	UpdateStudent(ctx context.Context, id string, req dto.UpdateStudentRequest) (*models.Student, error)
	DeleteStudent(ctx context.Context, id string) error
	GetTranscript(ctx context.Context, id string) (*models.Student, []*models.Enrollment, error)
}

// StudentServiceConfig tunes student creation.
type StudentServiceConfig struct {
	// MaxAttempts bounds how often a create is retried after an identifier conflict.
	MaxAttempts int
	CacheTTL    time.Duration
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	store     repositories.Transactor
	allocator *identifier.Allocator
	locks     *identifier.ScopeLocks
	cache     cache.Store
	config    StudentServiceConfig
	logger    zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(
	store repositories.Transactor,
	allocator *identifier.Allocator,
	locks *identifier.ScopeLocks,
	cacheStore cache.Store,
	config StudentServiceConfig,
	logger zerolog.Logger,
) StudentService {
	if config.MaxAttempts < 1 {
		config.MaxAttempts = 1
	}
	if config.CacheTTL <= 0 {
		config.CacheTTL = cache.TTLStudentCache
	}
	if cacheStore == nil {
		cacheStore = cache.Noop{}
	}
	return &studentServiceImpl{
		store:     store,
		allocator: allocator,
		locks:     locks,
		cache:     cacheStore,
		config:    config,
		logger:    logger,
	}
}

// CreateStudent allocates the next identifier of the student's (year, program) scope
// and inserts the student in the same transaction.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, error) {
	student, err := s.newStudent(req)
	if err != nil {
		return nil, err
	}

	code, err := s.allocator.Catalog().Resolve(student.Program)
	if err != nil {
		return nil, err
	}

	for attempt := 1; ; attempt++ {
		err = s.createOnce(ctx, student, code)
		if err == nil {
			break
		}
		if !errors.Is(err, apperrors.ErrIdentifierConflict) || attempt >= s.config.MaxAttempts {
			return nil, err
		}
		s.logger.Warn().
			Str("scope", identifier.ScopePrefix(student.EnrollmentYear, code)).
			Int("attempt", attempt).
			Msg("Student identifier conflict, retrying allocation")
	}

	s.logger.Info().Str("studentID", student.ID).Str("program", student.Program).Msg("Student created")
	return student, nil
}

func (s *studentServiceImpl) createOnce(ctx context.Context, student *models.Student, code string) error {
	unlock, err := s.locks.Lock(ctx, student.EnrollmentYear, code)
	if err != nil {
		return err
	}
	defer unlock()

	return s.store.InTx(ctx, func(ctx context.Context, tx repositories.Store) error {
		taken, err := tx.Students().EmailTaken(ctx, student.Email, "")
		if err != nil {
			return err
		}
		if taken {
			return apperrors.NewDuplicateError("email", "a student with this email already exists")
		}

		id, err := s.allocator.Allocate(ctx, tx.Students(), student.EnrollmentYear, student.Program)
		if err != nil {
			return err
		}
		student.ID = id.String()

		if err := student.Validate(); err != nil {
			return err
		}
		return tx.Students().Create(ctx, student)
	})
}

func (s *studentServiceImpl) newStudent(req dto.CreateStudentRequest) (*models.Student, error) {
	if err := identifier.CheckYear(req.EnrollmentYear); err != nil {
		return nil, err
	}

	program, _, err := s.allocator.Catalog().Canonical(req.Program)
	if err != nil {
		return nil, err
	}

	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		return nil, err
	}

	gender, err := models.ParseGender(req.Gender)
	if err != nil {
		return nil, apperrors.NewValidationError("gender", err.Error())
	}

	status := models.StudentActive
	if req.Status != nil {
		if status, err = models.ParseStudentStatus(*req.Status); err != nil {
			return nil, apperrors.NewValidationError("status", err.Error())
		}
	}

	return &models.Student{
		Name:           strings.TrimSpace(req.Name),
		Email:          strings.TrimSpace(req.Email),
		Phone:          strings.TrimSpace(req.Phone),
		Address:        req.Address,
		BirthDate:      birthDate,
		Gender:         gender,
		Program:        program,
		EnrollmentYear: req.EnrollmentYear,
		Status:         status,
	}, nil
}

// GetStudent reads through the cache
func (s *studentServiceImpl) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	key := cache.StudentKey(id)

	var cached models.Student
	err := s.cache.Get(ctx, key, &cached)
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn().Err(err).Str("studentID", id).Msg("Student cache read failed")
	}

	student, err := s.store.Students().GetByID(ctx, id)
	if err != nil {
		return nil, studentNotFound(err, id)
	}

	if err := s.cache.Set(ctx, key, student, s.config.CacheTTL); err != nil {
		s.logger.Warn().Err(err).Str("studentID", id).Msg("Student cache write failed")
	}
	return student, nil
}

func (s *studentServiceImpl) ListStudents(ctx context.Context, filter dto.StudentFilter, skip, limit int) ([]*models.Student, int64, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, 0, apperrors.NewValidationError("status",
			fmt.Sprintf("unknown student status %q", filter.Status))
	}
	filter.Program = strings.TrimSpace(filter.Program)
	return s.store.Students().List(ctx, filter, skip, limit)
}

// UpdateStudent applies the present fields of req. The identifier and the
// enrollment year never change.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id string, req dto.UpdateStudentRequest) (*models.Student, error) {
	var updated *models.Student
	err := s.store.InTx(ctx, func(ctx context.Context, tx repositories.Store) error {
		student, err := tx.Students().GetByID(ctx, id)
		if err != nil {
			return studentNotFound(err, id)
		}

		if err := s.applyUpdate(student, req); err != nil {
			return err
		}

		if req.Email != nil {
			taken, err := tx.Students().EmailTaken(ctx, student.Email, student.ID)
			if err != nil {
				return err
			}
			if taken {
				return apperrors.NewDuplicateError("email", "a student with this email already exists")
			}
		}

		if err := student.Validate(); err != nil {
			return err
		}
		if err := tx.Students().Update(ctx, student); err != nil {
			return err
		}
		updated = student
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	return updated, nil
}

func (s *studentServiceImpl) applyUpdate(student *models.Student, req dto.UpdateStudentRequest) error {
	if req.Name != nil {
		student.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		student.Email = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		student.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Address != nil {
		student.Address = req.Address
	}
	if req.BirthDate != nil {
		birthDate, err := parseBirthDate(*req.BirthDate)
		if err != nil {
			return err
		}
		student.BirthDate = birthDate
	}
	if req.Gender != nil {
		gender, err := models.ParseGender(*req.Gender)
		if err != nil {
			return apperrors.NewValidationError("gender", err.Error())
		}
		student.Gender = gender
	}
	if req.Program != nil {
		program, _, err := s.allocator.Catalog().Canonical(*req.Program)
		if err != nil {
			return err
		}
		student.Program = program
	}
	if req.Status != nil {
		status, err := models.ParseStudentStatus(*req.Status)
		if err != nil {
			return apperrors.NewValidationError("status", err.Error())
		}
		student.Status = status
	}
	return nil
}

// DeleteStudent removes the student and, through the cascade, its enrollments
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id string) error {
	if err := s.store.Students().Delete(ctx, id); err != nil {
		return studentNotFound(err, id)
	}
	s.invalidate(ctx, id)
	s.logger.Info().Str("studentID", id).Msg("Student deleted")
	return nil
}

func (s *studentServiceImpl) GetTranscript(ctx context.Context, id string) (*models.Student, []*models.Enrollment, error) {
	student, err := s.store.Students().GetByID(ctx, id)
	if err != nil {
		return nil, nil, studentNotFound(err, id)
	}

	enrollments, err := s.store.Enrollments().Transcript(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return student, enrollments, nil
}

func (s *studentServiceImpl) invalidate(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, cache.StudentKey(id)); err != nil {
		s.logger.Warn().Err(err).Str("studentID", id).Msg("Student cache invalidation failed")
	}
}

func parseBirthDate(raw string) (time.Time, error) {
	t, err := time.Parse(dto.DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("birth_date", "birth date must be formatted YYYY-MM-DD")
	}
	return t, nil
}

func studentNotFound(err error, id string) error {
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		return apperrors.NewResourceNotFoundError(fmt.Sprintf("student %s not found", id))
	}
	return err
}
