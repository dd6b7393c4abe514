package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"statement-importer/internal/errors"
	"statement-importer/internal/importer"
	"statement-importer/internal/models"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	now func() time.Time
}

// NewDevHandler creates a new development handler
func NewDevHandler() *DevHandler {
	return &DevHandler{now: time.Now}
}

// SampleStatement renders a synthetic statement file for manual testing
//
// Method: GET /api/v1/dev/sample-statement
// Environment: Development only
//
// Query parameters:
//   - schema: title_amount (default) or description_value
//   - months: Months of activity to generate (default: 3, max: 24)
//   - seed: Random seed; the same seed always yields the same file (default: 1)
//   - start: First month as YYYY-MM-DD (default: three months ago)
//
// Success Response: 200 OK with a text/csv body
//
// Error Responses:
//   - 400: Invalid start date
//   - 422: Unknown schema
func (h *DevHandler) SampleStatement(c echo.Context) error {
	schema := c.QueryParam("schema")
	if schema == "" {
		schema = importer.SchemaTitleAmount
	}

	months := getIntParam(c, "months", 3)
	if months < 1 {
		months = 1
	}
	if months > 24 {
		months = 24
	}

	seed := getIntParam(c, "seed", 1)

	start := h.now().AddDate(0, -months, 0)
	if raw := c.QueryParam("start"); raw != "" {
		parsed, err := time.Parse(models.DateLayout, raw)
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("start: must be YYYY-MM-DD"))
		}
		start = parsed
	}

	var buf bytes.Buffer
	rows, err := importer.NewGenerator(int64(seed)).Generate(&buf, schema, start, months)
	if err != nil {
		return sendServiceError(c, err)
	}

	c.Response().Header().Set("X-Statement-Rows", fmt.Sprintf("%d", rows))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "sample-"+schema+".csv"))
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
