package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yigit/akademik/internal/app/identifier"
	"github.com/yigit/akademik/internal/pkg/apperrors"
)

func parseIDParam(ctx *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError(name, name+" must be a positive integer")
	}
	return id, nil
}

func studentIDParam(ctx *gin.Context) (string, error) {
	id := ctx.Param("id")
	if !identifier.ValidateFormat(id) {
		return "", apperrors.NewCustomError(apperrors.ErrMalformedIdentifier,
			"student id must be formatted YYYY-PP-NNNN").WithField("id")
	}
	return id, nil
}
