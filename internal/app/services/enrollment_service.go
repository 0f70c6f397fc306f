package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yigit/akademik/internal/app/identifier"
	"github.com/yigit/akademik/internal/app/models"
	"github.com/yigit/akademik/internal/app/models/dto"
	"github.com/yigit/akademik/internal/app/repositories"
	"github.com/yigit/akademik/internal/pkg/apperrors"
)

// EnrollmentService defines the interface for enrollment operations
type EnrollmentService interface {
	CreateEnrollment(ctx context.Context, req dto.CreateEnrollmentRequest) (*models.Enrollment, error)
	GetEnrollment(ctx context.Context, id int64) (*models.Enrollment, error)
	ListEnrollments(ctx context.Context, filter dto.EnrollmentFilter, skip, limit int) ([]*models.Enrollment, int64, error)
	UpdateEnrollment(ctx context.Context, id int64, req dto.UpdateEnrollmentRequest) (*models.Enrollment, error)
	DeleteEnrollment(ctx context.Context, id int64) error
}

// enrollmentServiceImpl implements the EnrollmentService interface
type enrollmentServiceImpl struct {
	store repositories.Transactor
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(store repositories.Transactor) EnrollmentService {
	return &enrollmentServiceImpl{store: store}
}

// CreateEnrollment checks that the student and the course exist and that the
// student is not already enrolled in the course for the academic year.
func (s *enrollmentServiceImpl) CreateEnrollment(ctx context.Context, req dto.CreateEnrollmentRequest) (*models.Enrollment, error) {
	if !identifier.ValidateFormat(req.StudentID) {
		return nil, apperrors.NewCustomError(apperrors.ErrMalformedIdentifier,
			fmt.Sprintf("student id %q must be formatted YYYY-PP-NNNN", req.StudentID)).WithField("student_id")
	}

	enrollment := &models.Enrollment{
		StudentID:    req.StudentID,
		CourseID:     req.CourseID,
		Grade:        req.Grade,
		Semester:     req.Semester,
		AcademicYear: strings.TrimSpace(req.AcademicYear),
		Status:       models.EnrollmentRegistered,
	}
	if req.Status != nil {
		status, err := models.ParseEnrollmentStatus(*req.Status)
		if err != nil {
			return nil, apperrors.NewValidationError("status", err.Error())
		}
		enrollment.Status = status
	}
	if err := enrollment.Validate(); err != nil {
		return nil, err
	}

	err := s.store.InTx(ctx, func(ctx context.Context, tx repositories.Store) error {
		found, err := tx.Students().Exists(ctx, enrollment.StudentID)
		if err != nil {
			return err
		}
		if !found {
			return apperrors.NewCustomError(apperrors.ErrResourceNotFound,
				fmt.Sprintf("student %s not found", enrollment.StudentID)).WithField("student_id")
		}

		found, err = tx.Courses().Exists(ctx, enrollment.CourseID)
		if err != nil {
			return err
		}
		if !found {
			return apperrors.NewCustomError(apperrors.ErrResourceNotFound,
				fmt.Sprintf("course %d not found", enrollment.CourseID)).WithField("course_id")
		}

		dup, err := tx.Enrollments().Exists(ctx, enrollment.StudentID, enrollment.CourseID, enrollment.AcademicYear)
		if err != nil {
			return err
		}
		if dup {
			return apperrors.NewDuplicateError("course_id",
				"the student is already enrolled in this course for this academic year")
		}

		return tx.Enrollments().Create(ctx, enrollment)
	})
	if err != nil {
		return nil, err
	}
	return enrollment, nil
}

func (s *enrollmentServiceImpl) GetEnrollment(ctx context.Context, id int64) (*models.Enrollment, error) {
	enrollment, err := s.store.Enrollments().GetByID(ctx, id)
	if err != nil {
		return nil, enrollmentNotFound(err, id)
	}
	return enrollment, nil
}

func (s *enrollmentServiceImpl) ListEnrollments(ctx context.Context, filter dto.EnrollmentFilter, skip, limit int) ([]*models.Enrollment, int64, error) {
	filter.StudentID = strings.TrimSpace(filter.StudentID)
	filter.AcademicYear = strings.TrimSpace(filter.AcademicYear)
	if filter.AcademicYear != "" && !models.ValidAcademicYear(filter.AcademicYear) {
		return nil, 0, apperrors.NewValidationError("academic_year", "academic year must be formatted YYYY/YYYY with consecutive years")
	}
	return s.store.Enrollments().List(ctx, filter, skip, limit)
}

// UpdateEnrollment changes the grade and/or the status. Status changes follow the
// enrollment state machine and a cancelled enrollment cannot be graded.
func (s *enrollmentServiceImpl) UpdateEnrollment(ctx context.Context, id int64, req dto.UpdateEnrollmentRequest) (*models.Enrollment, error) {
	if err := models.ValidateGrade(req.Grade); err != nil {
		return nil, err
	}

	var updated *models.Enrollment
	err := s.store.InTx(ctx, func(ctx context.Context, tx repositories.Store) error {
		enrollment, err := tx.Enrollments().GetByID(ctx, id)
		if err != nil {
			return enrollmentNotFound(err, id)
		}

		if req.Status != nil {
			next, err := models.ParseEnrollmentStatus(*req.Status)
			if err != nil {
				return apperrors.NewValidationError("status", err.Error())
			}
			if err := enrollment.TransitionTo(next); err != nil {
				return err
			}
		}

		if req.Grade != nil {
			if enrollment.Status == models.EnrollmentCancelled {
				return apperrors.NewCustomError(apperrors.ErrInvalidTransition,
					"a cancelled enrollment cannot be graded").WithField("grade")
			}
			enrollment.Grade = req.Grade
		}

		if err := tx.Enrollments().Update(ctx, enrollment); err != nil {
			return err
		}
		updated = enrollment
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *enrollmentServiceImpl) DeleteEnrollment(ctx context.Context, id int64) error {
	if err := s.store.Enrollments().Delete(ctx, id); err != nil {
		return enrollmentNotFound(err, id)
	}
	return nil
}

func enrollmentNotFound(err error, id int64) error {
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		return apperrors.NewResourceNotFoundError(fmt.Sprintf("enrollment %d not found", id))
	}
	return err
}
