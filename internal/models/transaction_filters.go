package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionFilters contains filtering options for transaction queries
type TransactionFilters struct {
	AccountID  *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	Kind       string
	CategoryID *uint
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
	Tag        string
	Offset     int
	Limit      int
}
