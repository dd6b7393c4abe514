// Package importer turns uploaded statement exports into import candidates.
package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"statement-importer/internal/models"
)

var (
	ErrUnrecognizedFormat = errors.New("unrecognized statement format")
	ErrEmptyFile          = errors.New("statement file is empty")
	ErrInvalidPayload     = errors.New("statement payload could not be decoded")
)

// Row-level problems. A row failing with one of these is dropped and the rest of the file continues.
var (
	ErrIncompleteRow = errors.New("row is missing its date or amount")
	ErrInvalidDate   = errors.New("row date could not be parsed")
	ErrInvalidAmount = errors.New("row amount could not be parsed")
	ErrZeroAmount    = errors.New("row amount is zero")
)

// Diagnostic reasons reported for dropped or skipped rows
const (
	ReasonIncomplete    = "incomplete"
	ReasonInvalidDate   = "invalid_date"
	ReasonInvalidAmount = "invalid_amount"
	ReasonZeroAmount    = "zero_amount"
	ReasonMalformed     = "malformed"
	ReasonDuplicate     = "duplicate"
	ReasonWriteFailed   = "write_failed"
)

// Schema normalizes the rows of one known statement layout.
type Schema interface {
	Name() string
	Matches(headers []string) bool
	Normalize(rowNumber int, rec Record) (*models.ImportCandidate, error)
}

// Record gives a schema access to one data row by normalized header name.
type Record struct {
	columns map[string]int
	fields  []string
}

// NewRecord binds a data row to its normalized headers.
func NewRecord(headers []string, fields []string) Record {
	columns := make(map[string]int, len(headers))
	for i, h := range headers {
		if _, ok := columns[h]; !ok {
			columns[h] = i
		}
	}
	return Record{columns: columns, fields: fields}
}

// Get returns the trimmed value of the first named column present in the row.
func (r Record) Get(names ...string) string {
	for _, name := range names {
		i, ok := r.columns[name]
		if !ok {
			continue
		}
		if i < len(r.fields) {
			return strings.TrimSpace(r.fields[i])
		}
		return ""
	}
	return ""
}

// RowDiagnostic explains why a row was dropped.
type RowDiagnostic = models.RowDiagnostic

// ParseResult is the output of parsing one statement file.
type ParseResult struct {
	Schema      string                    `json:"schema"`
	Candidates  []*models.ImportCandidate `json:"candidates"`
	Diagnostics []RowDiagnostic           `json:"diagnostics"`
	RowCount    int                       `json:"row_count"`
}

// Registry holds schemas in detection order.
type Registry struct {
	schemas []Schema
	logger  *slog.Logger
}

// NewRegistry creates an empty schema registry.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{logger: logger}
}

// Register appends a schema. Panics on duplicate name.
func (r *Registry) Register(s Schema) {
	key := strings.ToLower(s.Name())
	for _, existing := range r.schemas {
		if strings.ToLower(existing.Name()) == key {
			panic("duplicate schema: " + key)
		}
	}
	r.schemas = append(r.schemas, s)
}

// Get returns the schema with the given name, or nil.
func (r *Registry) Get(name string) Schema {
	key := strings.ToLower(name)
	for _, s := range r.schemas {
		if strings.ToLower(s.Name()) == key {
			return s
		}
	}
	return nil
}

// Schemas returns the registered schemas in detection order.
func (r *Registry) Schemas() []Schema {
	return r.schemas
}

// DefaultRegistry returns a registry with both built-in statement schemas.
func DefaultRegistry(logger *slog.Logger) *Registry {
	r := NewRegistry(logger)
	r.Register(&TitleAmountSchema{})
	r.Register(&DescriptionValueSchema{})
	return r
}

// Detect returns the first schema matching the normalized headers.
func (r *Registry) Detect(headers []string) (Schema, error) {
	for _, s := range r.schemas {
		if s.Matches(headers) {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: headers %v", ErrUnrecognizedFormat, headers)
}

// NormalizeHeaders lower-cases and trims header names, dropping a leading byte order mark.
func NormalizeHeaders(headers []string) []string {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		normalized[i] = strings.ToLower(strings.TrimSpace(h))
	}
	return normalized
}

// ParseBytes parses an in-memory statement file.
func (r *Registry) ParseBytes(content []byte) (*ParseResult, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, ErrEmptyFile
	}
	return r.Parse(bytes.NewReader(content))
}

// Parse reads a whole statement, detects its schema and normalizes every row.
// An unrecognized header aborts before any row is read.
func (r *Registry) Parse(in io.Reader) (*ParseResult, error) {
	cr := csv.NewReader(in)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyFile
		}
		return nil, fmt.Errorf("reading statement header: %w", err)
	}

	headers := NormalizeHeaders(header)
	schema, err := r.Detect(headers)
	if err != nil {
		r.logger.Error("Unrecognized statement format", "headers", header)
		return nil, err
	}

	result := &ParseResult{
		Schema:      schema.Name(),
		Candidates:  []*models.ImportCandidate{},
		Diagnostics: []RowDiagnostic{},
	}

	for rowNumber := 2; ; rowNumber++ {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			r.logger.Warn("Skipping malformed row", "row", rowNumber, "error", err)
			result.Diagnostics = append(result.Diagnostics, RowDiagnostic{
				Row:     rowNumber,
				Reason:  ReasonMalformed,
				Message: err.Error(),
			})
			continue
		}
		if isBlank(fields) {
			continue
		}

		result.RowCount++

		candidate, err := schema.Normalize(rowNumber, NewRecord(headers, fields))
		if err != nil {
			reason := diagnosticReason(err)
			r.logger.Warn("Dropping statement row",
				"row", rowNumber,
				"schema", schema.Name(),
				"reason", reason,
				"error", err,
			)
			result.Diagnostics = append(result.Diagnostics, RowDiagnostic{
				Row:     rowNumber,
				Reason:  reason,
				Message: err.Error(),
			})
			continue
		}

		if candidate.IsTransferFlagged() {
			r.logger.Info("Row flagged as internal transfer",
				"row", rowNumber,
				"description", candidate.Description,
				"transfer", candidate.Transfer.String(),
			)
		}

		result.Candidates = append(result.Candidates, candidate)
	}

	r.logger.Info("Statement parsed",
		"schema", result.Schema,
		"rows", result.RowCount,
		"candidates", len(result.Candidates),
		"dropped", len(result.Diagnostics),
	)

	return result, nil
}

func isBlank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func diagnosticReason(err error) string {
	switch {
	case errors.Is(err, ErrIncompleteRow):
		return ReasonIncomplete
	case errors.Is(err, ErrInvalidDate):
		return ReasonInvalidDate
	case errors.Is(err, ErrInvalidAmount):
		return ReasonInvalidAmount
	case errors.Is(err, ErrZeroAmount):
		return ReasonZeroAmount
	default:
		return ReasonMalformed
	}
}
