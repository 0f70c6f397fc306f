package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yigit/akademik/internal/app/models/dto"
	"github.com/yigit/akademik/internal/pkg/logger"
)

// Pinger is a dependency that can report its health
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController serves the root and health endpoints
type HealthController struct {
	name     string
	version  string
	database Pinger
	cache    Pinger
}

// NewHealthController creates a new HealthController. cache may be nil when
// caching is disabled.
func NewHealthController(name, version string, database, cache Pinger) *HealthController {
	return &HealthController{
		name:     name,
		version:  version,
		database: database,
		cache:    cache,
	}
}

// Root describes the service
// @Summary Service information
// @Tags health
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.RootResponse}
// @Router / [get]
func (c *HealthController) Root(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.RootResponse{
		Name:    c.name,
		Version: c.version,
		Docs:    "/swagger/index.html",
	}))
}

// Health checks the database and the cache
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.HealthResponse}
// @Failure 503 {object} dto.APIResponse{data=dto.HealthResponse}
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	resp := dto.HealthResponse{Status: "healthy", Database: "connected"}
	status := http.StatusOK

	if err := c.database.Ping(pingCtx); err != nil {
		logger.Ctx(ctx.Request.Context()).Error().Err(err).Msg("Database health check failed")
		resp.Status, resp.Database = "unhealthy", "disconnected"
		status = http.StatusServiceUnavailable
	}
	if c.cache != nil {
		resp.Cache = "connected"
		if err := c.cache.Ping(pingCtx); err != nil {
			logger.Ctx(ctx.Request.Context()).Warn().Err(err).Msg("Cache health check failed")
			resp.Cache = "disconnected"
			if resp.Status == "healthy" {
				resp.Status = "degraded"
			}
		}
	}

	body := dto.NewSuccessResponse(resp)
	body.Success = status == http.StatusOK
	ctx.JSON(status, body)
}
