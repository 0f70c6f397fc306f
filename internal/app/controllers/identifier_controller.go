package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/akademik/internal/app/models/dto"
	"github.com/yigit/akademik/internal/app/services"
	"github.com/yigit/akademik/internal/middleware"
)

// IdentifierController exposes the program catalog and identifier tools
type IdentifierController struct {
	identifierService services.IdentifierService
}

// NewIdentifierController creates a new IdentifierController
func NewIdentifierController(identifierService services.IdentifierService) *IdentifierController {
	return &IdentifierController{
		identifierService: identifierService,
	}
}

// ListPrograms returns the program catalog
// @Summary List programs
// @Tags identifiers
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.ProgramResponse}
// @Router /programs [get]
func (c *IdentifierController) ListPrograms(ctx *gin.Context) {
	programs := c.identifierService.Programs()
	out := make([]dto.ProgramResponse, 0, len(programs))
	for _, p := range programs {
		out = append(out, dto.ProgramResponse{Name: p.Name, Code: p.Code})
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(out))
}

// ParseIdentifier validates and parses a student identifier
// @Summary Parse a student identifier
// @Tags identifiers
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.IdentifierResponse} "Valid is false for malformed identifiers"
// @Router /identifiers/{id} [get]
func (c *IdentifierController) ParseIdentifier(ctx *gin.Context) {
	id := ctx.Param("id")
	resp := dto.IdentifierResponse{ID: id, Valid: c.identifierService.ValidateStudentID(id)}
	if resp.Valid {
		year, code, seq, err := c.identifierService.ParseStudentID(id)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		resp.Year, resp.ProgramCode, resp.Sequence = year, code, seq
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// PreviewIdentifier returns the identifier the next student of a scope would get
// @Summary Preview the next student identifier
// @Description Nothing is reserved; a concurrent create may take the identifier first.
// @Tags identifiers
// @Accept json
// @Produce json
// @Param request body dto.AllocateIdentifierRequest true "Scope"
// @Success 200 {object} dto.APIResponse{data=dto.IdentifierResponse}
// @Failure 400 {object} dto.ErrorResponse "Unknown program or year out of range"
// @Failure 409 {object} dto.ErrorResponse "Scope capacity exhausted"
// @Router /identifiers/allocate [post]
func (c *IdentifierController) PreviewIdentifier(ctx *gin.Context) {
	var req dto.AllocateIdentifierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	id, err := c.identifierService.AllocateStudentID(ctx.Request.Context(), req.EnrollmentYear, req.Program)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	year, code, seq, err := c.identifierService.ParseStudentID(id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.IdentifierResponse{
		ID: id, Valid: true, Year: year, ProgramCode: code, Sequence: seq,
	}))
}
