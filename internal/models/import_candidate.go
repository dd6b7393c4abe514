package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferClassification tells whether a row looks like money moving between the user's own accounts
type TransferClassification int

const (
	// TransferNone is an ordinary income or expense row
	TransferNone TransferClassification = iota
	// TransferFlagged marks a probable internal movement that stays editable
	TransferFlagged
	// TransferFlaggedAndLocked marks a probable internal movement whose category is fixed
	TransferFlaggedAndLocked
)

func (tc TransferClassification) String() string {
	switch tc {
	case TransferFlagged:
		return "flagged"
	case TransferFlaggedAndLocked:
		return "flagged_and_locked"
	default:
		return "none"
	}
}

// MarshalText implements encoding.TextMarshaler
func (tc TransferClassification) MarshalText() ([]byte, error) {
	return []byte(tc.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (tc *TransferClassification) UnmarshalText(text []byte) error {
	switch string(text) {
	case "", "none":
		*tc = TransferNone
	case "flagged":
		*tc = TransferFlagged
	case "flagged_and_locked":
		*tc = TransferFlaggedAndLocked
	default:
		return fmt.Errorf("unknown transfer classification %q", string(text))
	}
	return nil
}

// IsFlagged reports whether the row is a probable internal movement
func (tc TransferClassification) IsFlagged() bool {
	return tc == TransferFlagged || tc == TransferFlaggedAndLocked
}

// IsLocked reports whether the row's category must not be edited
func (tc TransferClassification) IsLocked() bool {
	return tc == TransferFlaggedAndLocked
}

// ImportCandidate is a normalized statement row that has not been persisted yet
type ImportCandidate struct {
	RowNumber          int                    `json:"row_number"`
	Date               time.Time              `json:"date"`
	Description        string                 `json:"description"`
	Amount             decimal.Decimal        `json:"amount"`
	Kind               string                 `json:"kind"`
	CategoryLabel      string                 `json:"category_label"`
	Tags               string                 `json:"tags"`
	InstallmentCurrent *int                   `json:"installment_current,omitempty"`
	InstallmentTotal   *int                   `json:"installment_total,omitempty"`
	Transfer           TransferClassification `json:"transfer"`
}

// NewImportCandidate builds a candidate with the default category label
func NewImportCandidate(rowNumber int, date time.Time, description string, amount decimal.Decimal, kind string) *ImportCandidate {
	return &ImportCandidate{
		RowNumber:     rowNumber,
		Date:          NormalizeDate(date),
		Description:   description,
		Amount:        amount.Abs(),
		Kind:          kind,
		CategoryLabel: CategoryUncategorized,
		Tags:          "",
	}
}

// IsUncategorized reports whether the category can still be filled in
func (c *ImportCandidate) IsUncategorized() bool {
	return c.CategoryLabel == "" || c.CategoryLabel == CategoryUncategorized
}

// IsTransferFlagged is the presentation flag for probable internal movements
func (c *ImportCandidate) IsTransferFlagged() bool {
	return c.Transfer.IsFlagged()
}

// IsEditLocked is the presentation flag for rows whose category is fixed
func (c *ImportCandidate) IsEditLocked() bool {
	return c.Transfer.IsLocked()
}

// HasInstallments reports whether the candidate is part of a multi-payment plan
func (c *ImportCandidate) HasInstallments() bool {
	return c.InstallmentCurrent != nil && c.InstallmentTotal != nil && *c.InstallmentTotal > 1
}

// SetInstallment records the installment position
func (c *ImportCandidate) SetInstallment(current, total int) {
	c.InstallmentCurrent = &current
	c.InstallmentTotal = &total
}

// ClearInstallment drops the installment position
func (c *ImportCandidate) ClearInstallment() {
	c.InstallmentCurrent = nil
	c.InstallmentTotal = nil
}

// DateString returns the canonical calendar date
func (c *ImportCandidate) DateString() string {
	return c.Date.Format(DateLayout)
}

// ToTransaction converts the candidate into a persistable transaction
func (c *ImportCandidate) ToTransaction(accountID uuid.UUID, categoryID uint) *Transaction {
	tx := &Transaction{
		Kind:        c.Kind,
		Description: c.Description,
		Amount:      c.Amount,
		Date:        NormalizeDate(c.Date),
		CategoryID:  categoryID,
		AccountID:   accountID,
		Tags:        c.Tags,
	}
	if c.InstallmentCurrent != nil && c.InstallmentTotal != nil {
		current, total := *c.InstallmentCurrent, *c.InstallmentTotal
		tx.InstallmentCurrent = &current
		tx.InstallmentTotal = &total
	}
	return tx
}
