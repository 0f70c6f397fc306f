package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/akademik/internal/app/models/dto"
	"github.com/yigit/akademik/internal/pkg/apperrors"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// ParseSkipLimit reads the skip and limit query parameters. Missing values fall back
// to 0 and DefaultLimit; a limit above MaxLimit is capped.
func ParseSkipLimit(c *gin.Context) (skip, limit int, err error) {
	skip, err = queryInt(c, "skip", 0)
	if err != nil {
		return 0, 0, err
	}
	if skip < 0 {
		return 0, 0, apperrors.NewValidationError("skip", "skip must not be negative")
	}

	limit, err = queryInt(c, "limit", DefaultLimit)
	if err != nil {
		return 0, 0, err
	}
	if limit < 1 {
		return 0, 0, apperrors.NewValidationError("limit", "limit must be at least 1")
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return skip, limit, nil
}

// QueryIntPtr reads an optional integer query parameter.
func QueryIntPtr(c *gin.Context, key string) (*int, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperrors.NewValidationError(key, key+" must be an integer")
	}
	return &v, nil
}

func queryInt(c *gin.Context, key string, def int) (int, error) {
	v, err := QueryIntPtr(c, key)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return def, nil
	}
	return *v, nil
}

// NewPaginationInfo creates a standard PaginationInfo DTO.
func NewPaginationInfo(totalItems int64, skip, limit int) dto.PaginationInfo {
	return dto.PaginationInfo{
		Skip:       skip,
		Limit:      limit,
		TotalItems: totalItems,
	}
}
