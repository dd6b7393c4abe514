package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RowDiagnostic explains why a statement row was dropped or skipped
type RowDiagnostic struct {
	Row     int    `json:"row"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// KeywordRule maps a description fragment to a category label
type KeywordRule struct {
	Keyword  string `json:"keyword" yaml:"keyword"`
	Category string `json:"category" yaml:"category"`
}

// PossibleDuplicate is a created row whose description is close to an existing one on the same day and amount
type PossibleDuplicate struct {
	Row                 int             `json:"row"`
	Description         string          `json:"description"`
	ExistingID          uuid.UUID       `json:"existing_id"`
	ExistingDescription string          `json:"existing_description"`
	Amount              decimal.Decimal `json:"amount"`
	Date                time.Time       `json:"date"`
	Distance            int             `json:"distance"`
}

// ImportPreview is the parsed and classified content of an uploaded statement
type ImportPreview struct {
	AccountID   uuid.UUID          `json:"account_id"`
	FileName    string             `json:"file_name"`
	Schema      string             `json:"schema"`
	RowCount    int                `json:"row_count"`
	Candidates  []*ImportCandidate `json:"candidates"`
	Resolutions []ResolutionResult `json:"resolutions"`
	Diagnostics []RowDiagnostic    `json:"diagnostics"`
	HistorySize int                `json:"history_size"`
}

// ImportResult reports what a commit wrote
type ImportResult struct {
	BatchID            uuid.UUID           `json:"batch_id"`
	Created            int                 `json:"created"`
	Skipped            int                 `json:"skipped"`
	Projected          int                 `json:"projected"`
	ProjectedSkipped   int                 `json:"projected_skipped"`
	Failed             int                 `json:"failed"`
	Diagnostics        []RowDiagnostic     `json:"diagnostics"`
	PossibleDuplicates []PossibleDuplicate `json:"possible_duplicates"`
	Duration           time.Duration       `json:"-"`
}

// NewImportResult returns a result with empty, non-nil lists
func NewImportResult(batchID uuid.UUID) *ImportResult {
	return &ImportResult{
		BatchID:            batchID,
		Diagnostics:        []RowDiagnostic{},
		PossibleDuplicates: []PossibleDuplicate{},
	}
}

// Message summarizes the counters for the user
func (r *ImportResult) Message() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d transactions imported", r.Created)
	if r.Skipped > 0 {
		fmt.Fprintf(&b, ", %d duplicates skipped", r.Skipped)
	}
	if r.Projected > 0 {
		fmt.Fprintf(&b, ", %d future installments created", r.Projected)
	}
	if r.Failed > 0 {
		fmt.Fprintf(&b, ", %d rows failed", r.Failed)
	}
	return b.String()
}

// Total returns every row the commit wrote
func (r *ImportResult) Total() int {
	return r.Created + r.Projected
}
