package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	appModels "github.com/yigit/akademik/internal/app/models"
	appRepos "github.com/yigit/akademik/internal/app/repositories"
)

func strPtr(s string) *string { return &s }

// DefaultCourses is the sample curriculum created on first start.
func DefaultCourses() []appModels.Course {
	return []appModels.Course{
		{Code: "IF101", Name: "Algoritma dan Pemrograman", Description: strPtr("Dasar algoritma dan pemrograman terstruktur"), Credits: 3, Semester: 1, Program: "teknik_informatika"},
		{Code: "IF102", Name: "Matematika Diskrit", Credits: 3, Semester: 1, Program: "teknik_informatika"},
		{Code: "IF201", Name: "Struktur Data", Description: strPtr("Struktur data linear dan non-linear"), Credits: 3, Semester: 2, Program: "teknik_informatika"},
		{Code: "SI101", Name: "Pengantar Sistem Informasi", Credits: 2, Semester: 1, Program: "sistem_informasi"},
		{Code: "SI202", Name: "Basis Data", Credits: 4, Semester: 3, Program: "sistem_informasi"},
		{Code: "CS301", Name: "Keamanan Jaringan", Credits: 3, Semester: 5, Program: "cybersecurity"},
	}
}

// CreateDefaultData creates the default courses that don't exist yet.
// Failures are collected so one bad row does not stop the others.
func CreateDefaultData(ctx context.Context, courses appRepos.CourseRepository, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (Courses)...")
	var finalErr error
	created := 0

	for _, c := range DefaultCourses() {
		course := c
		taken, err := courses.CodeTaken(ctx, course.Code, 0)
		if err != nil {
			lgr.Error().Err(err).Str("code", course.Code).Msg("Error checking course code")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if taken {
			continue
		}
		if err := courses.Create(ctx, &course); err != nil {
			lgr.Error().Err(err).Str("code", course.Code).Msg("Error creating default course")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		created++
	}

	lgr.Info().Int("created", created).Msg("Default data check complete")
	return finalErr
}
