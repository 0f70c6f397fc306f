package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/akademik/internal/app/models"
	"github.com/yigit/akademik/internal/app/models/dto"
	"github.com/yigit/akademik/internal/app/services"
	"github.com/yigit/akademik/internal/middleware"
	"github.com/yigit/akademik/internal/pkg/helpers"
)

// StudentController handles student-related operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// CreateStudent handles student creation
// @Summary Create a new student
// @Description Creates a student. The identifier YYYY-PP-NNNN is generated from the enrollment year and program.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=dto.StudentResponse} "Student created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or unknown program"
// @Failure 409 {object} dto.ErrorResponse "Email already exists or identifier conflict"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	student, err := c.studentService.CreateStudent(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.FromStudent(student)))
}

// GetStudent retrieves a student by identifier
// @Summary Get student by ID
// @Tags students
// @Produce json
// @Param id path string true "Student ID (YYYY-PP-NNNN)"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 400 {object} dto.ErrorResponse "Malformed student ID"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	id, err := studentIDParam(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, err := c.studentService.GetStudent(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromStudent(student)))
}

// ListStudents lists students
// @Summary List students
// @Tags students
// @Produce json
// @Param skip query int false "Records to skip" default(0)
// @Param limit query int false "Page size (max 100)" default(10)
// @Param program query string false "Program name contains"
// @Param status query string false "Student status" Enums(active, inactive, graduated, withdrawn)
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	skip, limit, err := helpers.ParseSkipLimit(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	filter := dto.StudentFilter{
		Program: ctx.Query("program"),
		Status:  models.StudentStatus(ctx.Query("status")),
	}

	students, total, err := c.studentService.ListStudents(ctx.Request.Context(), filter, skip, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPagedResponse(dto.FromStudents(students), helpers.NewPaginationInfo(total, skip, limit)))
}

// UpdateStudent updates a student
// @Summary Update a student
// @Description Updates the present fields. The identifier and the enrollment year cannot change.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID (YYYY-PP-NNNN)"
// @Param request body dto.UpdateStudentRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, err := studentIDParam(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	student, err := c.studentService.UpdateStudent(ctx.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromStudent(student)))
}

// DeleteStudent deletes a student and its enrollments
// @Summary Delete a student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID (YYYY-PP-NNNN)"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, err := studentIDParam(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.studentService.DeleteStudent(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Student deleted successfully"}))
}

// GetTranscript lists a student's enrollments
// @Summary Get student transcript
// @Description Enrollments with their courses, most recent academic year first
// @Tags students
// @Produce json
// @Param id path string true "Student ID (YYYY-PP-NNNN)"
// @Success 200 {object} dto.APIResponse{data=dto.TranscriptResponse}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/transcript [get]
func (c *StudentController) GetTranscript(ctx *gin.Context) {
	id, err := studentIDParam(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, enrollments, err := c.studentService.GetTranscript(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.TranscriptResponse{
		Student:     dto.FromStudent(student),
		Enrollments: dto.FromEnrollments(enrollments),
	}))
}
