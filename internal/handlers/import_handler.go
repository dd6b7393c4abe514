package handlers

import (
	"log/slog"
	"net/http"

	"statement-importer/internal/dto"
	"statement-importer/internal/errors"
	"statement-importer/internal/importer"
	"statement-importer/internal/models"
	"statement-importer/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const defaultBatchListLimit = 20

// ImportHandler handles statement upload, review and commit requests
type ImportHandler struct {
	importService  services.ImportServiceInterface
	maxUploadBytes int64
}

// NewImportHandler creates a new import handler
func NewImportHandler(importService services.ImportServiceInterface, maxUploadBytes int64) *ImportHandler {
	return &ImportHandler{
		importService:  importService,
		maxUploadBytes: maxUploadBytes,
	}
}

// PreviewImport parses and classifies a statement without writing anything
// @Summary Preview a statement import
// @Description Decode a base64 statement, detect its format and suggest a category for every row
// @Tags Imports
// @Accept json
// @Produce json
// @Param request body dto.PreviewImportRequest true "Statement upload"
// @Success 200 {object} dto.PreviewImportResponse "Classified candidates"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or IMPORT_003 - Invalid payload"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 422 {object} errors.ErrorResponse "IMPORT_001 - Statement format not recognized"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /imports/preview [post]
func (h *ImportHandler) PreviewImport(c echo.Context) error {
	var req dto.PreviewImportRequest
	accountID, content, err := h.bindUpload(c, &req)
	if err != nil {
		return err
	}
	if content == nil {
		return nil
	}

	preview, err := h.importService.Preview(c.Request().Context(), accountID, req.FileName, content)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewPreviewImportResponse(preview))
}

// CommitImport persists reviewed candidates
// @Summary Commit a reviewed import
// @Description Write reviewed candidates, skipping duplicates and projecting future installments
// @Tags Imports
// @Accept json
// @Produce json
// @Param request body dto.CommitImportRequest true "Reviewed candidates"
// @Success 201 {object} dto.ImportResultResponse "Import counters"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 503 {object} errors.ErrorResponse "IMPORT_005 - Import interrupted"
// @Router /imports/commit [post]
func (h *ImportHandler) CommitImport(c echo.Context) error {
	var req dto.CommitImportRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(validationDetails(err)...))
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		return SendError(c, errors.AccountInvalidID)
	}

	candidates := make([]*models.ImportCandidate, 0, len(req.Candidates))
	for _, item := range req.Candidates {
		candidate, err := item.ToCandidate()
		if err != nil {
			return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
		}
		candidates = append(candidates, candidate)
	}

	slog.InfoContext(c.Request().Context(), "Committing reviewed import",
		"account_id", accountID,
		"file_name", req.FileName,
		"candidates", len(candidates),
		"client_ip", getClientIP(c),
	)

	result, err := h.importService.Commit(c.Request().Context(), accountID, req.FileName, req.Schema, candidates)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewImportResultResponse(result))
}

// ImportStatement previews and commits a statement in one request
// @Summary Import a statement
// @Description Decode, classify and persist a statement without a review step
// @Tags Imports
// @Accept json
// @Produce json
// @Param request body dto.PreviewImportRequest true "Statement upload"
// @Success 201 {object} dto.ImportResultResponse "Import counters"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 422 {object} errors.ErrorResponse "IMPORT_001 - Statement format not recognized"
// @Router /imports [post]
func (h *ImportHandler) ImportStatement(c echo.Context) error {
	var req dto.PreviewImportRequest
	accountID, content, err := h.bindUpload(c, &req)
	if err != nil {
		return err
	}
	if content == nil {
		return nil
	}

	slog.InfoContext(c.Request().Context(), "Importing statement",
		"account_id", accountID,
		"file_name", req.FileName,
		"bytes", len(content),
		"client_ip", getClientIP(c),
	)

	result, err := h.importService.Import(c.Request().Context(), accountID, req.FileName, content)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewImportResultResponse(result))
}

// ListBatches returns the most recent import batches
// @Summary List import batches
// @Tags Imports
// @Produce json
// @Param limit query int false "Maximum batches to return (default 20)"
// @Success 200 {object} dto.ImportBatchListResponse "Recent imports"
// @Router /imports [get]
func (h *ImportHandler) ListBatches(c echo.Context) error {
	limit := getIntParam(c, "limit", defaultBatchListLimit)
	if limit <= 0 || limit > 100 {
		limit = defaultBatchListLimit
	}

	batches, err := h.importService.ListBatches(c.Request().Context(), limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ImportBatchListResponse{
		Batches: batches,
		Count:   len(batches),
	})
}

// bindUpload binds, validates and decodes an upload request.
// When the request is rejected the response has already been written and content is nil.
func (h *ImportHandler) bindUpload(c echo.Context, req *dto.PreviewImportRequest) (uuid.UUID, []byte, error) {
	if err := c.Bind(req); err != nil {
		return uuid.Nil, nil, SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(*req); err != nil {
		return uuid.Nil, nil, SendError(c, errors.ValidationGeneral, errors.WithDetails(validationDetails(err)...))
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		return uuid.Nil, nil, SendError(c, errors.AccountInvalidID)
	}

	content, err := importer.DecodePayload(req.Content)
	if err != nil {
		return uuid.Nil, nil, sendServiceError(c, err)
	}

	if h.maxUploadBytes > 0 && int64(len(content)) > h.maxUploadBytes {
		return uuid.Nil, nil, SendError(c, errors.ValidationOutOfRange, errors.WithDetails("content: statement file is too large"))
	}

	return accountID, content, nil
}
