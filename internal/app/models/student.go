package models

import (
	"fmt"
	"time"

	"github.com/yigit/akademik/internal/pkg/apperrors"
)

// Student defines the student model based on the 'students' table
type Student struct {
	ID             string        `json:"id" db:"id"` // YYYY-PP-NNNN
	Name           string        `json:"name" db:"name"`
	Email          string        `json:"email" db:"email"`
	Phone          string        `json:"phone" db:"phone"`
	Address        *string       `json:"address,omitempty" db:"address"` // Nullable
	BirthDate      time.Time     `json:"birth_date" db:"birth_date"`
	Gender         Gender        `json:"gender" db:"gender"`
	Program        string        `json:"program" db:"program"`
	EnrollmentYear int           `json:"enrollment_year" db:"enrollment_year"`
	Status         StudentStatus `json:"status" db:"status"`
	CreatedAt      time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at" db:"updated_at"`
}

// Validate checks the invariants also enforced by the students table.
func (s *Student) Validate() error {
	if s.EnrollmentYear < MinEnrollmentYear || s.EnrollmentYear > MaxEnrollmentYear {
		return apperrors.NewRangeError("enrollment_year",
			fmt.Sprintf("enrollment year must be between %d and %d", MinEnrollmentYear, MaxEnrollmentYear))
	}
	if !s.Status.Valid() {
		return apperrors.NewValidationError("status", fmt.Sprintf("status must be one of %s", joinValues(StudentStatuses)))
	}
	if !s.Gender.Valid() {
		return apperrors.NewValidationError("gender", fmt.Sprintf("gender must be one of %s", joinValues(Genders)))
	}
	return nil
}
