package dto

import (
	"fmt"
	"strings"
	"time"

	"statement-importer/internal/models"

	"github.com/google/uuid"
)

const (
	defaultTransactionLimit = 50
	maxTransactionLimit     = 500
)

// TransactionListQuery contains filtering options for transaction queries
type TransactionListQuery struct {
	AccountID string `query:"account_id" validate:"omitempty,uuid"`
	StartDate string `query:"start_date" validate:"omitempty,iso_date"`
	EndDate   string `query:"end_date" validate:"omitempty,iso_date"`
	Kind      string `query:"kind" validate:"omitempty,transaction_kind"`
	Tag       string `query:"tag" validate:"omitempty,max=50"`
	Limit     int    `query:"limit" validate:"omitempty,min=1"`
	Offset    int    `query:"offset" validate:"omitempty,min=0"`
}

// ToFilters converts the query into repository filters, clamping the page size
func (q TransactionListQuery) ToFilters() (models.TransactionFilters, error) {
	filters := models.TransactionFilters{
		Kind:   strings.ToLower(q.Kind),
		Tag:    strings.TrimSpace(q.Tag),
		Offset: q.Offset,
		Limit:  q.Limit,
	}

	if filters.Limit <= 0 {
		filters.Limit = defaultTransactionLimit
	}
	if filters.Limit > maxTransactionLimit {
		filters.Limit = maxTransactionLimit
	}
	if filters.Offset < 0 {
		filters.Offset = 0
	}

	if q.AccountID != "" {
		id, err := uuid.Parse(q.AccountID)
		if err != nil {
			return filters, fmt.Errorf("invalid account_id: %w", err)
		}
		filters.AccountID = &id
	}

	if q.StartDate != "" {
		start, err := time.Parse(models.DateLayout, q.StartDate)
		if err != nil {
			return filters, fmt.Errorf("invalid start_date: %w", err)
		}
		filters.StartDate = &start
	}

	if q.EndDate != "" {
		end, err := time.Parse(models.DateLayout, q.EndDate)
		if err != nil {
			return filters, fmt.Errorf("invalid end_date: %w", err)
		}
		filters.EndDate = &end
	}

	if filters.StartDate != nil && filters.EndDate != nil && filters.EndDate.Before(*filters.StartDate) {
		return filters, fmt.Errorf("end_date must not be before start_date")
	}

	return filters, nil
}

// TransactionResponse is a persisted transaction as returned to clients
type TransactionResponse struct {
	ID                 uuid.UUID  `json:"id"`
	AccountID          uuid.UUID  `json:"account_id"`
	Date               string     `json:"date"`
	Description        string     `json:"description"`
	Amount             string     `json:"amount"`
	Kind               string     `json:"kind"`
	Category           string     `json:"category,omitempty"`
	Tags               []string   `json:"tags"`
	InstallmentCurrent *int       `json:"installment_current,omitempty"`
	InstallmentTotal   *int       `json:"installment_total,omitempty"`
	ImportBatchID      *uuid.UUID `json:"import_batch_id,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

// NewTransactionResponse converts a transaction for presentation
func NewTransactionResponse(t *models.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:                 t.ID,
		AccountID:          t.AccountID,
		Date:               t.Date.Format(models.DateLayout),
		Description:        t.Description,
		Amount:             t.Amount.StringFixed(2),
		Kind:               t.Kind,
		Tags:               t.TagList(),
		InstallmentCurrent: t.InstallmentCurrent,
		InstallmentTotal:   t.InstallmentTotal,
		ImportBatchID:      t.ImportBatchID,
		CreatedAt:          t.CreatedAt,
	}
	if t.Category != nil {
		resp.Category = t.Category.Name
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	return resp
}

// PaginationInfo contains pagination metadata
type PaginationInfo struct {
	HasMore bool  `json:"has_more"`
	Offset  int   `json:"offset"`
	Limit   int   `json:"limit"`
	Total   int64 `json:"total"`
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   PaginationInfo        `json:"pagination"`
}

// NewListTransactionsResponse builds a page of transactions
func NewListTransactionsResponse(transactions []models.Transaction, total int64, filters models.TransactionFilters) ListTransactionsResponse {
	items := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		items = append(items, NewTransactionResponse(&transactions[i]))
	}

	return ListTransactionsResponse{
		Transactions: items,
		Pagination: PaginationInfo{
			HasMore: int64(filters.Offset+len(items)) < total,
			Offset:  filters.Offset,
			Limit:   filters.Limit,
			Total:   total,
		},
	}
}
