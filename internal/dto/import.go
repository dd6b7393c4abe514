package dto

import (
	"fmt"
	"strings"
	"time"

	"statement-importer/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Import Request DTOs

// PreviewImportRequest carries a base64 encoded statement file
type PreviewImportRequest struct {
	AccountID string `json:"account_id" validate:"required,uuid"`
	FileName  string `json:"file_name" validate:"required,max=255"`
	Content   string `json:"content" validate:"required,base64_payload"`
}

// CommitImportRequest carries the reviewed candidates back for persistence
type CommitImportRequest struct {
	AccountID  string         `json:"account_id" validate:"required,uuid"`
	FileName   string         `json:"file_name" validate:"required,max=255"`
	Schema     string         `json:"schema" validate:"omitempty,max=50"`
	Candidates []CandidateDTO `json:"candidates" validate:"required,min=1,dive"`
}

// CandidateDTO is one statement row as shown to, and returned by, the reviewer
type CandidateDTO struct {
	RowNumber          int                           `json:"row_number"`
	Date               string                        `json:"date" validate:"required,iso_date"`
	Description        string                        `json:"description" validate:"max=200"`
	Amount             string                        `json:"amount" validate:"required,positive_amount"`
	Kind               string                        `json:"kind" validate:"required,transaction_kind"`
	CategoryLabel      string                        `json:"category_label" validate:"max=100"`
	Tags               string                        `json:"tags" validate:"max=500"`
	InstallmentCurrent *int                          `json:"installment_current,omitempty" validate:"omitempty,min=1"`
	InstallmentTotal   *int                          `json:"installment_total,omitempty" validate:"omitempty,min=1"`
	Transfer           models.TransferClassification `json:"transfer"`
	TransferFlag       bool                          `json:"transfer_flag"`
	EditLockFlag       bool                          `json:"edit_lock_flag"`
	ResolutionMethod   string                        `json:"resolution_method,omitempty"`
}

// NewCandidateDTO converts a candidate for presentation
func NewCandidateDTO(c *models.ImportCandidate, method string) CandidateDTO {
	return CandidateDTO{
		RowNumber:          c.RowNumber,
		Date:               c.DateString(),
		Description:        c.Description,
		Amount:             c.Amount.StringFixed(2),
		Kind:               c.Kind,
		CategoryLabel:      c.CategoryLabel,
		Tags:               c.Tags,
		InstallmentCurrent: c.InstallmentCurrent,
		InstallmentTotal:   c.InstallmentTotal,
		Transfer:           c.Transfer,
		TransferFlag:       c.IsTransferFlagged(),
		EditLockFlag:       c.IsEditLocked(),
		ResolutionMethod:   method,
	}
}

// ToCandidate parses the reviewed row back into a candidate.
// A locked row keeps its internal transfer label whatever the reviewer sent.
func (d CandidateDTO) ToCandidate() (*models.ImportCandidate, error) {
	date, err := time.Parse(models.DateLayout, d.Date)
	if err != nil {
		return nil, fmt.Errorf("row %d: invalid date %q", d.RowNumber, d.Date)
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(d.Amount))
	if err != nil {
		return nil, fmt.Errorf("row %d: invalid amount %q", d.RowNumber, d.Amount)
	}

	candidate := models.NewImportCandidate(d.RowNumber, date, d.Description, amount, strings.ToLower(d.Kind))
	candidate.Tags = strings.TrimSpace(d.Tags)
	candidate.Transfer = d.Transfer
	if label := strings.TrimSpace(d.CategoryLabel); label != "" {
		candidate.CategoryLabel = label
	}
	if candidate.IsEditLocked() {
		candidate.CategoryLabel = models.CategoryInternalTransfer
	}
	if d.InstallmentCurrent != nil && d.InstallmentTotal != nil {
		if *d.InstallmentCurrent > *d.InstallmentTotal {
			return nil, fmt.Errorf("row %d: %w", d.RowNumber, models.ErrInvalidInstallment)
		}
		candidate.SetInstallment(*d.InstallmentCurrent, *d.InstallmentTotal)
	}

	return candidate, nil
}

// Import Response DTOs

// PreviewImportResponse lists the classified candidates of an uploaded statement
type PreviewImportResponse struct {
	AccountID   uuid.UUID              `json:"account_id"`
	FileName    string                 `json:"file_name"`
	Schema      string                 `json:"schema"`
	RowCount    int                    `json:"row_count"`
	Candidates  []CandidateDTO         `json:"candidates"`
	Diagnostics []models.RowDiagnostic `json:"diagnostics"`
	HistorySize int                    `json:"history_size"`
}

// NewPreviewImportResponse converts a preview for presentation
func NewPreviewImportResponse(preview *models.ImportPreview) PreviewImportResponse {
	candidates := make([]CandidateDTO, 0, len(preview.Candidates))
	for i, c := range preview.Candidates {
		method := ""
		if i < len(preview.Resolutions) {
			method = preview.Resolutions[i].Method
		}
		candidates = append(candidates, NewCandidateDTO(c, method))
	}

	diagnostics := preview.Diagnostics
	if diagnostics == nil {
		diagnostics = []models.RowDiagnostic{}
	}

	return PreviewImportResponse{
		AccountID:   preview.AccountID,
		FileName:    preview.FileName,
		Schema:      preview.Schema,
		RowCount:    preview.RowCount,
		Candidates:  candidates,
		Diagnostics: diagnostics,
		HistorySize: preview.HistorySize,
	}
}

// ImportResultResponse reports the counters of a commit
type ImportResultResponse struct {
	BatchID            uuid.UUID                  `json:"batch_id"`
	Message            string                     `json:"message"`
	Created            int                        `json:"created"`
	Skipped            int                        `json:"skipped"`
	Projected          int                        `json:"projected"`
	ProjectedSkipped   int                        `json:"projected_skipped"`
	Failed             int                        `json:"failed"`
	Diagnostics        []models.RowDiagnostic     `json:"diagnostics"`
	PossibleDuplicates []models.PossibleDuplicate `json:"possible_duplicates"`
	DurationMs         int64                      `json:"duration_ms"`
}

// NewImportResultResponse converts a commit result for presentation
func NewImportResultResponse(result *models.ImportResult) ImportResultResponse {
	return ImportResultResponse{
		BatchID:            result.BatchID,
		Message:            result.Message(),
		Created:            result.Created,
		Skipped:            result.Skipped,
		Projected:          result.Projected,
		ProjectedSkipped:   result.ProjectedSkipped,
		Failed:             result.Failed,
		Diagnostics:        result.Diagnostics,
		PossibleDuplicates: result.PossibleDuplicates,
		DurationMs:         result.Duration.Milliseconds(),
	}
}

// ImportBatchListResponse lists recent imports
type ImportBatchListResponse struct {
	Batches []models.ImportBatch `json:"batches"`
	Count   int                  `json:"count"`
}
