package handlers

import (
	"context"
	"net/http"
	"time"

	"statement-importer/internal/errors"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const healthPingTimeout = 2 * time.Second

// HealthCheckHandler reports whether the ledger database is reachable
type HealthCheckHandler struct {
	db  *gorm.DB
	now func() time.Time
}

// HealthResponse is the body of a healthy /health call
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Time     string `json:"time"`
}

func NewHealthCheckHandler(db *gorm.DB) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, now: time.Now}
}

// HealthCheck pings the database with a short timeout
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Database unreachable"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return h.unavailable(c)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return h.unavailable(c)
	}

	return c.JSON(http.StatusOK, HealthResponse{
		Status:   "healthy",
		Database: h.db.Dialector.Name(),
		Time:     h.now().UTC().Format(time.RFC3339),
	})
}

func (h *HealthCheckHandler) unavailable(c echo.Context) error {
	traceID := getTraceID(c)
	if traceID == "" {
		traceID = c.Response().Header().Get("X-Trace-ID")
	}
	if traceID == "" {
		traceID = "unknown"
	}
	return c.JSON(http.StatusServiceUnavailable, errors.NewErrorResponse(
		errors.SystemServiceUnavailable,
		traceID,
		errors.WithDetails("Database connection failed"),
	))
}
