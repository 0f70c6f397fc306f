package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yigit/akademik/internal/app/models"
	"github.com/yigit/akademik/internal/app/models/dto"
	"github.com/yigit/akademik/internal/app/repositories"
	"github.com/yigit/akademik/internal/pkg/apperrors"
)

// CourseService defines the interface for course operations
type CourseService interface {
	CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error)
	GetCourse(ctx context.Context, id int64) (*models.Course, error)
	ListCourses(ctx context.Context, filter dto.CourseFilter, skip, limit int) ([]*models.Course, int64, error)
	UpdateCourse(ctx context.Context, id int64, req dto.UpdateCourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, id int64) error
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	store repositories.Transactor
}

// NewCourseService creates a new course service instance
func NewCourseService(store repositories.Transactor) CourseService {
	return &courseServiceImpl{store: store}
}

func (s *courseServiceImpl) CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error) {
	course := &models.Course{
		Code:        strings.ToUpper(strings.TrimSpace(req.Code)),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Credits:     req.Credits,
		Semester:    req.Semester,
		Program:     strings.TrimSpace(req.Program),
	}
	if err := course.Validate(); err != nil {
		return nil, err
	}

	err := s.store.InTx(ctx, func(ctx context.Context, tx repositories.Store) error {
		if err := checkCourseCode(ctx, tx, course.Code, 0); err != nil {
			return err
		}
		return tx.Courses().Create(ctx, course)
	})
	if err != nil {
		return nil, err
	}
	return course, nil
}

func (s *courseServiceImpl) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.store.Courses().GetByID(ctx, id)
	if err != nil {
		return nil, courseNotFound(err, id)
	}
	return course, nil
}

func (s *courseServiceImpl) ListCourses(ctx context.Context, filter dto.CourseFilter, skip, limit int) ([]*models.Course, int64, error) {
	if filter.Semester != nil && (*filter.Semester < models.MinSemester || *filter.Semester > models.MaxSemester) {
		return nil, 0, apperrors.NewValidationError("semester",
			fmt.Sprintf("semester must be between %d and %d", models.MinSemester, models.MaxSemester))
	}
	filter.Program = strings.TrimSpace(filter.Program)
	return s.store.Courses().List(ctx, filter, skip, limit)
}

func (s *courseServiceImpl) UpdateCourse(ctx context.Context, id int64, req dto.UpdateCourseRequest) (*models.Course, error) {
	var updated *models.Course
	err := s.store.InTx(ctx, func(ctx context.Context, tx repositories.Store) error {
		course, err := tx.Courses().GetByID(ctx, id)
		if err != nil {
			return courseNotFound(err, id)
		}

		if req.Code != nil {
			course.Code = strings.ToUpper(strings.TrimSpace(*req.Code))
			if err := checkCourseCode(ctx, tx, course.Code, course.ID); err != nil {
				return err
			}
		}
		if req.Name != nil {
			course.Name = strings.TrimSpace(*req.Name)
		}
		if req.Description != nil {
			course.Description = req.Description
		}
		if req.Credits != nil {
			course.Credits = *req.Credits
		}
		if req.Semester != nil {
			course.Semester = *req.Semester
		}
		if req.Program != nil {
			course.Program = strings.TrimSpace(*req.Program)
		}

		if err := course.Validate(); err != nil {
			return err
		}
		if err := tx.Courses().Update(ctx, course); err != nil {
			return err
		}
		updated = course
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteCourse removes the course and, through the cascade, its enrollments
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	if err := s.store.Courses().Delete(ctx, id); err != nil {
		return courseNotFound(err, id)
	}
	return nil
}

func checkCourseCode(ctx context.Context, tx repositories.Store, code string, exceptID int64) error {
	taken, err := tx.Courses().CodeTaken(ctx, code, exceptID)
	if err != nil {
		return err
	}
	if taken {
		return apperrors.NewDuplicateError("code", fmt.Sprintf("a course with code %s already exists", code))
	}
	return nil
}

func courseNotFound(err error, id int64) error {
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		return apperrors.NewResourceNotFoundError(fmt.Sprintf("course %d not found", id))
	}
	return err
}
