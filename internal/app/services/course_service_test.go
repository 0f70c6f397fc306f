package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/akademik/internal/app/models/dto"
	"github.com/yigit/akademik/internal/pkg/apperrors"
)

func courseRequest(code string, credits, semester int) dto.CreateCourseRequest {
	return dto.CreateCourseRequest{Code: code, Name: "Struktur Data", Credits: credits, Semester: semester, Program: "teknik_informatika"}
}

func TestCourseService_Create(t *testing.T) {
	svc := NewCourseService(newMemStore())
	ctx := context.Background()

	course, err := svc.CreateCourse(ctx, courseRequest("if201", 3, 2))
	require.NoError(t, err)
	assert.Equal(t, "IF201", course.Code)
	assert.NotZero(t, course.ID)

	_, err = svc.CreateCourse(ctx, courseRequest("IF201", 3, 2))
	assert.True(t, errors.Is(err, apperrors.ErrDuplicateConstraint))

	_, err = svc.CreateCourse(ctx, courseRequest("IF202", 10, 2))
	assert.True(t, errors.Is(err, apperrors.ErrRangeViolation))

	_, err = svc.CreateCourse(ctx, courseRequest("IF203", 3, 9))
	assert.True(t, errors.Is(err, apperrors.ErrRangeViolation))
}

func TestCourseService_UpdateListDelete(t *testing.T) {
	svc := NewCourseService(newMemStore())
	ctx := context.Background()

	a, err := svc.CreateCourse(ctx, courseRequest("IF101", 3, 1))
	require.NoError(t, err)
	_, err = svc.CreateCourse(ctx, courseRequest("IF102", 2, 2))
	require.NoError(t, err)

	code := "IF102"
	_, err = svc.UpdateCourse(ctx, a.ID, dto.UpdateCourseRequest{Code: &code})
	assert.True(t, errors.Is(err, apperrors.ErrDuplicateConstraint))

	credits := 0
	_, err = svc.UpdateCourse(ctx, a.ID, dto.UpdateCourseRequest{Credits: &credits})
	assert.True(t, errors.Is(err, apperrors.ErrRangeViolation))

	credits = 4
	updated, err := svc.UpdateCourse(ctx, a.ID, dto.UpdateCourseRequest{Credits: &credits})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Credits)

	semester := 2
	list, total, err := svc.ListCourses(ctx, dto.CourseFilter{Semester: &semester}, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "IF102", list[0].Code)

	semester = 9
	_, _, err = svc.ListCourses(ctx, dto.CourseFilter{Semester: &semester}, 0, 10)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))

	require.NoError(t, svc.DeleteCourse(ctx, a.ID))
	_, err = svc.GetCourse(ctx, a.ID)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
	assert.True(t, errors.Is(svc.DeleteCourse(ctx, a.ID), apperrors.ErrResourceNotFound))
}
