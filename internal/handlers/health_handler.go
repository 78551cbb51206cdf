package handlers

import (
	"net/http"
	"time"

	"avoqado-web/internal/errors"

	"github.com/labstack/echo/v4"
)

// Pinger reports whether a dependency is reachable
type Pinger interface {
	HealthCheck() error
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db         Pinger
	aiProvider string
}

// NewHealthCheckHandler creates a new health check handler. aiProvider is empty when
// no AI key is configured.
func NewHealthCheckHandler(db Pinger, aiProvider string) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, aiProvider: aiProvider}
}

// HealthCheck reports API and database status
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string,ai=string} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Database unreachable"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	if err := h.db.HealthCheck(); err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	ai := h.aiProvider
	if ai == "" {
		ai = "disabled"
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
		"ai":     ai,
	})
}
