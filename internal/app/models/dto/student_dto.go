package dto

import (
	"time"

	"github.com/yigit/akademik/internal/app/models"
)

// DateLayout is the wire format of birth dates.
const DateLayout = "2006-01-02"

// CreateStudentRequest is the body of POST /students. The identifier is generated.
type CreateStudentRequest struct {
	Name           string  `json:"name" binding:"required,min=3,max=100,notnumeric"`
	Email          string  `json:"email" binding:"required,email,max=255"`
	Phone          string  `json:"phone" binding:"required,min=10,max=15"`
	Address        *string `json:"address" binding:"omitempty,max=255"`
	BirthDate      string  `json:"birth_date" binding:"required,birthdate"`
	Gender         string  `json:"gender" binding:"required,oneof=male female"`
	Program        string  `json:"program" binding:"required,min=3,max=50"`
	EnrollmentYear int     `json:"enrollment_year" binding:"required,gte=2000,lte=2100"`
	Status         *string `json:"status" binding:"omitempty,oneof=active inactive graduated withdrawn"`
}

// UpdateStudentRequest is the body of PUT /students/:id. Absent fields are left unchanged;
// the identifier and enrollment year cannot be changed.
type UpdateStudentRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=3,max=100,notnumeric"`
	Email     *string `json:"email" binding:"omitempty,email,max=255"`
	Phone     *string `json:"phone" binding:"omitempty,min=10,max=15"`
	Address   *string `json:"address" binding:"omitempty,max=255"`
	BirthDate *string `json:"birth_date" binding:"omitempty,birthdate"`
	Gender    *string `json:"gender" binding:"omitempty,oneof=male female"`
	Program   *string `json:"program" binding:"omitempty,min=3,max=50"`
	Status    *string `json:"status" binding:"omitempty,oneof=active inactive graduated withdrawn"`
}

// StudentFilter narrows GET /students.
type StudentFilter struct {
	Program string
	Status  models.StudentStatus
}

// StudentResponse is the wire form of a student.
type StudentResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Address        *string   `json:"address,omitempty"`
	BirthDate      string    `json:"birth_date"`
	Gender         string    `json:"gender"`
	Program        string    `json:"program"`
	EnrollmentYear int       `json:"enrollment_year"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// FromStudent converts a model to its response form.
func FromStudent(s *models.Student) StudentResponse {
	return StudentResponse{
		ID:             s.ID,
		Name:           s.Name,
		Email:          s.Email,
		Phone:          s.Phone,
		Address:        s.Address,
		BirthDate:      s.BirthDate.Format(DateLayout),
		Gender:         string(s.Gender),
		Program:        s.Program,
		EnrollmentYear: s.EnrollmentYear,
		Status:         string(s.Status),
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

// FromStudents converts a slice of models.
func FromStudents(students []*models.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, FromStudent(s))
	}
	return out
}

// TranscriptResponse lists a student's enrollments, most recent academic year first.
type TranscriptResponse struct {
	Student     StudentResponse      `json:"student"`
	Enrollments []EnrollmentResponse `json:"enrollments"`
}
