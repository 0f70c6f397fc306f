package repositories

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/akademik/internal/app/migrations"
	"github.com/yigit/akademik/internal/app/models"
	"github.com/yigit/akademik/internal/app/models/dto"
	"github.com/yigit/akademik/internal/db"
	"github.com/yigit/akademik/internal/pkg/apperrors"
)

// Set AKADEMIK_TEST_DATABASE_URL to a disposable database to run these tests.
func setupStore(t *testing.T) *Repositories {
	t.Helper()
	url := os.Getenv("AKADEMIK_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("AKADEMIK_TEST_DATABASE_URL not set")
	}

	database, err := db.Connect(url)
	require.NoError(t, err)
	t.Cleanup(database.Close)

	ctx := context.Background()
	require.NoError(t, migrations.NewMigrator(database, zerolog.Nop()).Migrate(ctx, migrations.Files()))
	_, err = database.Pool.Exec(ctx, `TRUNCATE enrollments, courses, students RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	return NewRepositories(database)
}

func newStudent(id, email string) *models.Student {
	return &models.Student{
		ID:             id,
		Name:           "Siti Rahma",
		Email:          email,
		Phone:          "081234567890",
		BirthDate:      time.Date(2005, 3, 14, 0, 0, 0, 0, time.UTC),
		Gender:         models.GenderFemale,
		Program:        "teknik_informatika",
		EnrollmentYear: 2024,
		Status:         models.StudentActive,
	}
}

func newCourse(code string, credits int) *models.Course {
	return &models.Course{Code: code, Name: "Algoritma", Credits: credits, Semester: 1, Program: "teknik_informatika"}
}

func TestIntegration_StudentConstraints(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	students := store.Students()

	require.NoError(t, students.Create(ctx, newStudent("2024-10-0001", "siti@example.ac.id")))

	err := students.Create(ctx, newStudent("2024-10-0002", "siti@example.ac.id"))
	assert.True(t, errors.Is(err, apperrors.ErrDuplicateConstraint))

	err = students.Create(ctx, newStudent("2024-20-0001", "SITI@Example.ac.id"))
	assert.True(t, errors.Is(err, apperrors.ErrDuplicateConstraint))
	if ce, ok := apperrors.AsCustom(err); assert.True(t, ok) {
		assert.Equal(t, "email", ce.Field)
	}

	taken, err := students.EmailTaken(ctx, "Siti@EXAMPLE.ac.id", "")
	require.NoError(t, err)
	assert.True(t, taken)

	err = students.Create(ctx, newStudent("2024-10-0001", "other@example.ac.id"))
	assert.True(t, errors.Is(err, apperrors.ErrIdentifierConflict))

	bad := newStudent("1999-10-0001", "old@example.ac.id")
	bad.EnrollmentYear = 1999
	err = students.Create(ctx, bad)
	assert.True(t, errors.Is(err, apperrors.ErrRangeViolation))

	_, err = students.GetByID(ctx, "2030-10-0001")
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}

func TestIntegration_MaxSequencePerScope(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	students := store.Students()

	require.NoError(t, students.Create(ctx, newStudent("2024-10-0001", "a@example.ac.id")))
	require.NoError(t, students.Create(ctx, newStudent("2024-10-0007", "b@example.ac.id")))
	require.NoError(t, students.Create(ctx, newStudent("2024-20-0003", "c@example.ac.id")))

	seq, err := students.MaxSequence(ctx, 2024, "10")
	require.NoError(t, err)
	assert.Equal(t, 7, seq)

	seq, err = students.MaxSequence(ctx, 2023, "10")
	require.NoError(t, err)
	assert.Equal(t, 0, seq)
}

func TestIntegration_CourseConstraints(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	courses := store.Courses()

	require.NoError(t, courses.Create(ctx, newCourse("IF101", 3)))

	err := courses.Create(ctx, newCourse("IF101", 3))
	assert.True(t, errors.Is(err, apperrors.ErrDuplicateConstraint))

	err = courses.Create(ctx, newCourse("IF999", 10))
	assert.True(t, errors.Is(err, apperrors.ErrRangeViolation))

	semester := 1
	list, total, err := courses.List(ctx, dto.CourseFilter{Program: "informatika", Semester: &semester}, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Len(t, list, 1)
}

func TestIntegration_EnrollmentUniquenessAndCascade(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Students().Create(ctx, newStudent("2024-10-0001", "a@example.ac.id")))
	course := newCourse("IF101", 3)
	require.NoError(t, store.Courses().Create(ctx, course))

	enroll := func(year string) error {
		return store.Enrollments().Create(ctx, &models.Enrollment{
			StudentID: "2024-10-0001", CourseID: course.ID, Semester: 1, AcademicYear: year, Status: models.EnrollmentRegistered,
		})
	}

	require.NoError(t, enroll("2024/2025"))
	assert.True(t, errors.Is(enroll("2024/2025"), apperrors.ErrDuplicateConstraint))
	require.NoError(t, enroll("2025/2026"))

	transcript, err := store.Enrollments().Transcript(ctx, "2024-10-0001")
	require.NoError(t, err)
	require.Len(t, transcript, 2)
	assert.Equal(t, "2025/2026", transcript[0].AcademicYear)
	assert.Equal(t, "IF101", transcript[0].Course.Code)

	require.NoError(t, store.Students().Delete(ctx, "2024-10-0001"))
	_, total, err := store.Enrollments().List(ctx, dto.EnrollmentFilter{}, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)

	require.NoError(t, store.Students().Create(ctx, newStudent("2024-10-0002", "b@example.ac.id")))
	require.NoError(t, store.Enrollments().Create(ctx, &models.Enrollment{
		StudentID: "2024-10-0002", CourseID: course.ID, Semester: 1, AcademicYear: "2024/2025", Status: models.EnrollmentRegistered,
	}))
	require.NoError(t, store.Courses().Delete(ctx, course.ID))
	_, total, err = store.Enrollments().List(ctx, dto.EnrollmentFilter{StudentID: "2024-10-0002"}, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)
}

func TestIntegration_InTxRollsBack(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	sentinel := errors.New("abort")
	err := store.InTx(ctx, func(ctx context.Context, tx Store) error {
		require.NoError(t, tx.Students().Create(ctx, newStudent("2024-10-0001", "a@example.ac.id")))
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)

	ok, err := store.Students().Exists(ctx, "2024-10-0001")
	require.NoError(t, err)
	assert.False(t, ok)
}
