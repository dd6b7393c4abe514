package handlers

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"statement-importer/internal/errors"
	"statement-importer/internal/importer"
	"statement-importer/internal/models"
	"statement-importer/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// sendServiceError maps domain errors onto API error codes, falling back to a system error
func sendServiceError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, importer.ErrUnrecognizedFormat):
		return SendError(c, errors.ImportUnrecognizedFormat)
	case stderrors.Is(err, importer.ErrEmptyFile):
		return SendError(c, errors.ImportEmptyFile)
	case stderrors.Is(err, importer.ErrInvalidPayload):
		return SendError(c, errors.ImportInvalidPayload)
	case stderrors.Is(err, services.ErrNoCandidates):
		return SendError(c, errors.ImportNothingToImport)
	case stderrors.Is(err, services.ErrAccountNotFound):
		return SendError(c, errors.AccountNotFound)
	case stderrors.Is(err, services.ErrInvalidOpeningBalance):
		return SendError(c, errors.AccountInvalidBalance)
	case stderrors.Is(err, models.ErrInvalidAccountKind):
		return SendError(c, errors.AccountInvalidKind)
	case stderrors.Is(err, models.ErrAccountNameRequired):
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("name: is required"))
	case stderrors.Is(err, models.ErrAccountRequired):
		return SendError(c, errors.AccountInvalidID)
	case stderrors.Is(err, models.ErrInvalidCategoryKind):
		return SendError(c, errors.CategoryInvalidKind)
	case stderrors.Is(err, context.Canceled), stderrors.Is(err, context.DeadlineExceeded):
		return SendError(c, errors.ImportInterrupted, errors.WithDetails(err.Error()))
	default:
		return SendSystemError(c, err)
	}
}

// validationDetails flattens validator errors into "field: tag" details
func validationDetails(err error) []string {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, fmt.Sprintf("%s: failed '%s'", fe.Namespace(), fe.Tag()))
	}
	return details
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

func getClientIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	xri := c.Request().Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	return c.Request().RemoteAddr
}
