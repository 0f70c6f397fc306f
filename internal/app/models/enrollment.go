package models

import (
	"fmt"
	"time"

	"github.com/yigit/akademik/internal/pkg/apperrors"
	"github.com/yigit/akademik/internal/pkg/validation"
)

// Enrollment links a student to a course for one academic year.
type Enrollment struct {
	ID           int64            `json:"id" db:"id"`
	StudentID    string           `json:"student_id" db:"student_id"`
	CourseID     int64            `json:"course_id" db:"course_id"`
	Grade        *float64         `json:"grade" db:"grade"` // NULL until graded
	Semester     int              `json:"semester" db:"semester"`
	AcademicYear string           `json:"academic_year" db:"academic_year"`
	Status       EnrollmentStatus `json:"status" db:"status"`
	CreatedAt    time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at" db:"updated_at"`

	// Relations (populated for transcripts)
	Course *Course `json:"course,omitempty"`
}

// ValidAcademicYear reports whether s is "YYYY/YYYY" with consecutive years.
func ValidAcademicYear(s string) bool {
	return validation.IsAcademicYear(s)
}

// ValidateGrade checks a grade against the allowed range.
func ValidateGrade(grade *float64) error {
	if grade != nil && (*grade < MinGrade || *grade > MaxGrade) {
		return apperrors.NewRangeError("grade", fmt.Sprintf("grade must be between %.0f and %.0f", MinGrade, MaxGrade))
	}
	return nil
}

// Validate checks the invariants also enforced by the enrollments table.
func (e *Enrollment) Validate() error {
	if err := ValidateGrade(e.Grade); err != nil {
		return err
	}
	if e.Semester < MinSemester || e.Semester > MaxSemester {
		return apperrors.NewRangeError("semester", fmt.Sprintf("semester must be between %d and %d", MinSemester, MaxSemester))
	}
	if !ValidAcademicYear(e.AcademicYear) {
		return apperrors.NewValidationError("academic_year", "academic year must be formatted YYYY/YYYY with consecutive years")
	}
	if !e.Status.Valid() {
		return apperrors.NewValidationError("status", fmt.Sprintf("status must be one of %s", joinValues(EnrollmentStatuses)))
	}
	return nil
}

// TransitionTo moves the enrollment to next, enforcing the status state machine.
func (e *Enrollment) TransitionTo(next EnrollmentStatus) error {
	if !next.Valid() {
		return apperrors.NewValidationError("status", fmt.Sprintf("status must be one of %s", joinValues(EnrollmentStatuses)))
	}
	if !e.Status.CanTransitionTo(next) {
		return apperrors.NewTransitionError(fmt.Sprintf("cannot change enrollment status from %s to %s", e.Status, next))
	}
	e.Status = next
	return nil
}
