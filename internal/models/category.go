package models

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Category kinds mirror transaction kinds
const (
	CategoryKindIncome  = TransactionKindIncome
	CategoryKindExpense = TransactionKindExpense

	DefaultCategoryColor = "#6B7280"
)

// Well known category labels
const (
	CategoryUncategorized    = "Uncategorized"
	CategoryInternalTransfer = "Internal Transfer"
	CategoryInvestmentIncome = "Investment Income"
)

// Resolution method types
const (
	ResolutionMethodHistory = "HISTORY"
	ResolutionMethodKeyword = "KEYWORD"
	ResolutionMethodNone    = "NONE"
)

var (
	ErrCategoryNameRequired = errors.New("category name is required")
	ErrInvalidCategoryKind  = errors.New("invalid category kind")
	ErrInvalidCategoryColor = errors.New("category color must be in #RRGGBB format")

	hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// Category classifies transactions; (name, kind) is unique
type Category struct {
	ID         uint             `gorm:"primaryKey" json:"id"`
	Name       string           `gorm:"type:varchar(100);not null;uniqueIndex:uq_category_name_kind" json:"name"`
	Kind       string           `gorm:"type:varchar(10);not null;uniqueIndex:uq_category_name_kind;index" json:"kind"`
	Color      string           `gorm:"type:varchar(7);not null;default:'#6B7280'" json:"color"`
	Icon       string           `gorm:"type:varchar(50)" json:"icon,omitempty"`
	MonthlyCap *decimal.Decimal `gorm:"type:decimal(15,2)" json:"monthly_cap,omitempty"`
	CreatedAt  time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time        `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Color == "" {
		c.Color = DefaultCategoryColor
	}
	return c.Validate()
}

// Validate validates the category fields
func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrCategoryNameRequired
	}
	if !IsValidTransactionKind(c.Kind) {
		return ErrInvalidCategoryKind
	}
	if !hexColorPattern.MatchString(c.Color) {
		return ErrInvalidCategoryColor
	}
	return nil
}

// TableName returns the table name for Category
func (c *Category) TableName() string {
	return "categories"
}

// DefaultCategories returns the categories every ledger starts with
func DefaultCategories() []Category {
	return []Category{
		{Name: CategoryUncategorized, Kind: CategoryKindExpense, Color: DefaultCategoryColor, Icon: "❓"},
		{Name: CategoryUncategorized, Kind: CategoryKindIncome, Color: DefaultCategoryColor, Icon: "❓"},
		{Name: CategoryInternalTransfer, Kind: CategoryKindExpense, Color: "#3B82F6", Icon: "🔁"},
		{Name: CategoryInternalTransfer, Kind: CategoryKindIncome, Color: "#3B82F6", Icon: "🔁"},
		{Name: CategoryInvestmentIncome, Kind: CategoryKindIncome, Color: "#22C55E", Icon: "📈"},
	}
}

// ResolutionResult describes how a candidate's category and tags were resolved
type ResolutionResult struct {
	Category        string `json:"category"`
	Tags            string `json:"tags"`
	Method          string `json:"method"`
	MatchedPattern  string `json:"matched_pattern,omitempty"`
	CategoryChanged bool   `json:"category_changed"`
	TagsChanged     bool   `json:"tags_changed"`
}
