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
	AccountKindChecking   = "checking"
	AccountKindCreditCard = "credit_card"
	AccountKindInvestment = "investment"
)

var (
	ErrInvalidAccountKind  = errors.New("invalid account kind")
	ErrAccountNameRequired = errors.New("account name is required")
)

// Account is the ledger an import lands in
type Account struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name           string          `gorm:"type:varchar(100);not null" json:"name"`
	Kind           string          `gorm:"type:varchar(20);not null" json:"kind"`
	OpeningBalance decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"opening_balance"`
	CreatedAt      time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	// Set timestamps if not already set (for tests)
	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	a.Name = strings.TrimSpace(a.Name)

	return a.Validate()
}

// BeforeUpdate hook for Account
func (a *Account) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now()
	return a.Validate()
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrAccountNameRequired
	}

	if !IsValidAccountKind(a.Kind) {
		return ErrInvalidAccountKind
	}

	return nil
}

// IsCreditCard returns true for card accounts
func (a *Account) IsCreditCard() bool {
	return a.Kind == AccountKindCreditCard
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}

// IsValidAccountKind checks if the account kind is valid
func IsValidAccountKind(kind string) bool {
	switch kind {
	case AccountKindChecking, AccountKindCreditCard, AccountKindInvestment:
		return true
	default:
		return false
	}
}

// CalculateBalance applies a set of transactions to the opening balance
func (a *Account) CalculateBalance(transactions []Transaction) decimal.Decimal {
	balance := a.OpeningBalance
	for i := range transactions {
		balance = balance.Add(transactions[i].SignedAmount())
	}
	return balance
}
