package dto

import (
	"time"

	"github.com/yigit/akademik/internal/app/models"
)

// CreateEnrollmentRequest is the body of POST /enrollments.
type CreateEnrollmentRequest struct {
	StudentID    string   `json:"student_id" binding:"required,studentid"`
	CourseID     int64    `json:"course_id" binding:"required,gt=0"`
	Grade        *float64 `json:"grade"`
	Semester     int      `json:"semester" binding:"required"`
	AcademicYear string   `json:"academic_year" binding:"required,academicyear"`
	Status       *string  `json:"status" binding:"omitempty,oneof=registered in-progress completed cancelled"`
}

// UpdateEnrollmentRequest is the body of PUT /enrollments/:id. Only the grade
// and the status may change.
type UpdateEnrollmentRequest struct {
	Grade  *float64 `json:"grade"`
	Status *string  `json:"status" binding:"omitempty,oneof=registered in-progress completed cancelled"`
}

// EnrollmentFilter narrows GET /enrollments.
type EnrollmentFilter struct {
	StudentID    string
	AcademicYear string
}

// EnrollmentResponse is the wire form of an enrollment.
type EnrollmentResponse struct {
	ID           int64           `json:"id"`
	StudentID    string          `json:"student_id"`
	CourseID     int64           `json:"course_id"`
	Grade        *float64        `json:"grade"`
	Semester     int             `json:"semester"`
	AcademicYear string          `json:"academic_year"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	Course       *CourseResponse `json:"course,omitempty"`
}

// FromEnrollment converts a model to its response form.
func FromEnrollment(e *models.Enrollment) EnrollmentResponse {
	resp := EnrollmentResponse{
		ID:           e.ID,
		StudentID:    e.StudentID,
		CourseID:     e.CourseID,
		Grade:        e.Grade,
		Semester:     e.Semester,
		AcademicYear: e.AcademicYear,
		Status:       string(e.Status),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
	if e.Course != nil {
		course := FromCourse(e.Course)
		resp.Course = &course
	}
	return resp
}

// FromEnrollments converts a slice of models.
func FromEnrollments(enrollments []*models.Enrollment) []EnrollmentResponse {
	out := make([]EnrollmentResponse, 0, len(enrollments))
	for _, e := range enrollments {
		out = append(out, FromEnrollment(e))
	}
	return out
}
