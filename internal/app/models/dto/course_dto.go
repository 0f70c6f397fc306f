package dto

import (
	"time"

	"github.com/yigit/akademik/internal/app/models"
)

// CreateCourseRequest is the body of POST /courses.
type CreateCourseRequest struct {
	Code        string  `json:"code" binding:"required,min=3,max=20,alphanum"`
	Name        string  `json:"name" binding:"required,min=3,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Credits     int     `json:"credits" binding:"required"`
	Semester    int     `json:"semester" binding:"required"`
	Program     string  `json:"program" binding:"required,min=3,max=50"`
}

// UpdateCourseRequest is the body of PUT /courses/:id.
type UpdateCourseRequest struct {
	Code        *string `json:"code" binding:"omitempty,min=3,max=20,alphanum"`
	Name        *string `json:"name" binding:"omitempty,min=3,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Credits     *int    `json:"credits"`
	Semester    *int    `json:"semester"`
	Program     *string `json:"program" binding:"omitempty,min=3,max=50"`
}

// CourseFilter narrows GET /courses.
type CourseFilter struct {
	Program  string
	Semester *int
}

// CourseResponse is the wire form of a course.
type CourseResponse struct {
	ID          int64     `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Credits     int       `json:"credits"`
	Semester    int       `json:"semester"`
	Program     string    `json:"program"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FromCourse converts a model to its response form.
func FromCourse(c *models.Course) CourseResponse {
	return CourseResponse{
		ID:          c.ID,
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
		Credits:     c.Credits,
		Semester:    c.Semester,
		Program:     c.Program,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// FromCourses converts a slice of models.
func FromCourses(courses []*models.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, FromCourse(c))
	}
	return out
}
