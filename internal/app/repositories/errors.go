package repositories

import (
	"fmt"

	"github.com/yigit/akademik/internal/pkg/apperrors"
	"github.com/yigit/akademik/internal/pkg/dberrors"
)

// Constraint names declared by the migrations.
const (
	ConstraintStudentsPK             = "students_pkey"
	ConstraintStudentEmail           = "uq_students_email"
	ConstraintStudentEnrollmentYear  = "chk_students_enrollment_year"
	ConstraintStudentStatus          = "chk_students_status"
	ConstraintStudentGender          = "chk_students_gender"
	ConstraintStudentIDFormat        = "chk_students_id_format"
	ConstraintCourseCode             = "uq_courses_code"
	ConstraintCourseCredits          = "chk_courses_credits"
	ConstraintCourseSemester         = "chk_courses_semester"
	ConstraintEnrollmentGrade        = "chk_enrollments_grade"
	ConstraintEnrollmentSemester     = "chk_enrollments_semester"
	ConstraintEnrollmentAcademicYear = "chk_enrollments_academic_year"
	ConstraintEnrollmentUnique       = "uq_enrollments_student_course_year"
	ConstraintEnrollmentStatus       = "chk_enrollments_status"
	ConstraintEnrollmentStudentFK    = "fk_enrollments_student"
	ConstraintEnrollmentCourseFK     = "fk_enrollments_course"
)

type constraintError struct {
	field   string
	message string
}

var constraintErrors = map[string]constraintError{
	ConstraintStudentEmail:           {"email", "a student with this email already exists"},
	ConstraintStudentEnrollmentYear:  {"enrollment_year", "enrollment year must be between 2000 and 2100"},
	ConstraintStudentStatus:          {"status", "status must be one of active, inactive, graduated, withdrawn"},
	ConstraintStudentGender:          {"gender", "gender must be one of male, female"},
	ConstraintStudentIDFormat:        {"id", "student id must be formatted YYYY-PP-NNNN"},
	ConstraintCourseCode:             {"code", "a course with this code already exists"},
	ConstraintCourseCredits:          {"credits", "credits must be between 1 and 6"},
	ConstraintCourseSemester:         {"semester", "semester must be between 1 and 8"},
	ConstraintEnrollmentGrade:        {"grade", "grade must be between 0 and 100"},
	ConstraintEnrollmentSemester:     {"semester", "semester must be between 1 and 8"},
	ConstraintEnrollmentAcademicYear: {"academic_year", "academic year must be formatted YYYY/YYYY"},
	ConstraintEnrollmentUnique:       {"course_id", "the student is already enrolled in this course for this academic year"},
	ConstraintEnrollmentStatus:       {"status", "status must be one of registered, in-progress, completed, cancelled"},
	ConstraintEnrollmentStudentFK:    {"student_id", "student not found"},
	ConstraintEnrollmentCourseFK:     {"course_id", "course not found"},
}

// translateError maps store failures to application errors so that callers never
// see a raw driver error for a constraint violation or a missing row.
func translateError(err error, op string) error {
	if err == nil {
		return nil
	}
	if dberrors.IsNoRows(err) {
		return apperrors.NewResourceNotFoundError(op + ": not found")
	}
	if dberrors.IsDuplicateConstraintError(err, ConstraintStudentsPK) {
		return apperrors.NewCustomError(apperrors.ErrIdentifierConflict,
			"student identifier was taken by a concurrent request, retry the request").WithField("id")
	}

	v, ok := dberrors.Classify(err)
	if !ok {
		return fmt.Errorf("%s: %w", op, err)
	}

	known, hasKnown := constraintErrors[v.Constraint]
	switch v.Kind {
	case dberrors.KindUnique:
		if hasKnown {
			return apperrors.NewDuplicateError(known.field, known.message)
		}
		return apperrors.NewDuplicateError(v.Column, "record already exists")
	case dberrors.KindCheck:
		if hasKnown {
			return apperrors.NewRangeError(known.field, known.message)
		}
		return apperrors.NewRangeError(v.Column, "value violates constraint "+v.Constraint)
	case dberrors.KindForeignKey:
		if hasKnown {
			return apperrors.NewCustomError(apperrors.ErrResourceNotFound, known.message).WithField(known.field)
		}
		return apperrors.NewResourceNotFoundError("referenced record not found")
	case dberrors.KindNotNull:
		return apperrors.NewValidationError(v.Column, v.Column+" is required")
	}
	return fmt.Errorf("%s: %w", op, err)
}
