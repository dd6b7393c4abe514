package dto

import (
	"statement-importer/internal/models"

	"github.com/shopspring/decimal"
)

// Account Request DTOs

// CreateAccountRequest represents the request payload for creating a new account
type CreateAccountRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=100"`
	Kind           string `json:"kind" validate:"required,account_kind"`
	OpeningBalance string `json:"opening_balance" validate:"omitempty,numeric"`
}

// OpeningBalanceAmount parses the opening balance, treating an empty value as zero
func (r CreateAccountRequest) OpeningBalanceAmount() (decimal.Decimal, error) {
	if r.OpeningBalance == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(r.OpeningBalance)
}

// Account Response DTOs

// AccountResponse represents a single account with its current balance
type AccountResponse struct {
	*models.Account
	Balance decimal.Decimal `json:"balance"`
}

// CreateAccountResponse represents the response after creating an account
type CreateAccountResponse struct {
	Account *models.Account `json:"account"`
	Message string          `json:"message"`
}

// AccountListResponse represents the list of accounts
type AccountListResponse struct {
	Accounts []models.Account `json:"accounts"`
	Total    int              `json:"total"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
