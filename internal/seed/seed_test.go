package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appModels "github.com/yigit/akademik/internal/app/models"
	"github.com/yigit/akademik/internal/app/models/dto"
)

type courseStub struct {
	codes   map[string]bool
	failOn  string
	creates int
}

func (s *courseStub) Create(_ context.Context, c *appModels.Course) error {
	if c.Code == s.failOn {
		return errors.New("insert failed")
	}
	s.codes[c.Code] = true
	s.creates++
	return nil
}
func (s *courseStub) GetByID(context.Context, int64) (*appModels.Course, error) { return nil, nil }
func (s *courseStub) List(context.Context, dto.CourseFilter, int, int) ([]*appModels.Course, int64, error) {
	return nil, 0, nil
}
func (s *courseStub) Update(context.Context, *appModels.Course) error { return nil }
func (s *courseStub) Delete(context.Context, int64) error             { return nil }
func (s *courseStub) Exists(context.Context, int64) (bool, error)     { return false, nil }
func (s *courseStub) CodeTaken(_ context.Context, code string, _ int64) (bool, error) {
	return s.codes[code], nil
}

func TestDefaultCoursesAreValid(t *testing.T) {
	for _, c := range DefaultCourses() {
		course := c
		assert.NoError(t, course.Validate(), course.Code)
	}
}

func TestCreateDefaultData_Idempotent(t *testing.T) {
	stub := &courseStub{codes: map[string]bool{"IF101": true}}
	ctx := context.Background()

	require.NoError(t, CreateDefaultData(ctx, stub, zerolog.Nop()))
	assert.Equal(t, len(DefaultCourses())-1, stub.creates)

	require.NoError(t, CreateDefaultData(ctx, stub, zerolog.Nop()))
	assert.Equal(t, len(DefaultCourses())-1, stub.creates)
}

func TestCreateDefaultData_CollectsErrors(t *testing.T) {
	stub := &courseStub{codes: map[string]bool{}, failOn: "IF102"}

	err := CreateDefaultData(context.Background(), stub, zerolog.Nop())
	assert.Error(t, err)
	assert.Equal(t, len(DefaultCourses())-1, stub.creates)
}
