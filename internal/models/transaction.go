package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionKindIncome  = "income"
	TransactionKindExpense = "expense"

	RecurrenceDaily     = "daily"
	RecurrenceWeekly    = "weekly"
	RecurrenceBiweekly  = "biweekly"
	RecurrenceMonthly   = "monthly"
	RecurrenceQuarterly = "quarterly"
	RecurrenceYearly    = "yearly"

	// DateLayout is the canonical calendar date representation
	DateLayout = "2006-01-02"
)

var (
	ErrInvalidTransactionKind = errors.New("invalid transaction kind")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
	ErrDescriptionRequired    = errors.New("transaction description is required")
	ErrAccountRequired        = errors.New("account ID is required")
	ErrInvalidInstallment     = errors.New("installment current must be between 1 and total")
)

// Transaction is a persisted income or expense entry
type Transaction struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Kind                string          `gorm:"type:varchar(10);not null;index" json:"kind"`
	Description         string          `gorm:"type:varchar(200);not null" json:"description"`
	Amount              decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Date                time.Time       `gorm:"type:date;not null;index" json:"date"`
	CategoryID          uint            `gorm:"not null;index" json:"category_id"`
	AccountID           uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	Tags                string          `gorm:"type:varchar(500)" json:"tags"`
	Notes               string          `gorm:"type:text" json:"notes,omitempty"`
	InstallmentCurrent  *int            `json:"installment_current,omitempty"`
	InstallmentTotal    *int            `json:"installment_total,omitempty"`
	IsRecurring         bool            `gorm:"default:false" json:"is_recurring"`
	RecurrenceFrequency string          `gorm:"type:varchar(20)" json:"recurrence_frequency,omitempty"`
	RecurrenceUntil     *time.Time      `gorm:"type:date" json:"recurrence_until,omitempty"`
	ImportBatchID       *uuid.UUID      `gorm:"type:uuid;index" json:"import_batch_id,omitempty"`
	CreatedAt           time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt           time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Account  *Account  `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()

	// Set timestamps if not already set (for tests)
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	t.Description = strings.TrimSpace(t.Description)
	t.Date = NormalizeDate(t.Date)

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.AccountID == uuid.Nil {
		return ErrAccountRequired
	}

	if !IsValidTransactionKind(t.Kind) {
		return ErrInvalidTransactionKind
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if strings.TrimSpace(t.Description) == "" {
		return ErrDescriptionRequired
	}

	if len(t.Description) > 200 {
		return errors.New("transaction description too long")
	}

	if t.InstallmentCurrent != nil && t.InstallmentTotal != nil {
		if *t.InstallmentCurrent < 1 || *t.InstallmentCurrent > *t.InstallmentTotal {
			return ErrInvalidInstallment
		}
	}

	if t.IsRecurring && !IsValidRecurrenceFrequency(t.RecurrenceFrequency) {
		return errors.New("invalid recurrence frequency")
	}

	return nil
}

// IsIncome returns true if the transaction adds money to the account
func (t *Transaction) IsIncome() bool {
	return t.Kind == TransactionKindIncome
}

// IsExpense returns true if the transaction removes money from the account
func (t *Transaction) IsExpense() bool {
	return t.Kind == TransactionKindExpense
}

// IsInstallment returns true if the transaction belongs to an installment plan
func (t *Transaction) IsInstallment() bool {
	return t.InstallmentCurrent != nil && t.InstallmentTotal != nil && *t.InstallmentTotal > 1
}

// SignedAmount returns the amount with expenses negated
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.IsExpense() {
		return t.Amount.Neg()
	}
	return t.Amount
}

// TagList splits the comma joined tag text
func (t *Transaction) TagList() []string {
	return SplitTags(t.Tags)
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionKind checks if the transaction kind is valid
func IsValidTransactionKind(kind string) bool {
	switch kind {
	case TransactionKindIncome, TransactionKindExpense:
		return true
	default:
		return false
	}
}

// IsValidRecurrenceFrequency checks if the recurrence frequency is valid
func IsValidRecurrenceFrequency(frequency string) bool {
	switch frequency {
	case RecurrenceDaily, RecurrenceWeekly, RecurrenceBiweekly,
		RecurrenceMonthly, RecurrenceQuarterly, RecurrenceYearly:
		return true
	default:
		return false
	}
}

// NormalizeDate truncates a timestamp to a UTC calendar date
func NormalizeDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SplitTags splits comma joined tag text, dropping blanks
func SplitTags(tags string) []string {
	if strings.TrimSpace(tags) == "" {
		return []string{}
	}

	parts := strings.Split(tags, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// JoinTags joins tags into the persisted comma separated form
func JoinTags(tags []string) string {
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return strings.Join(cleaned, ",")
}
