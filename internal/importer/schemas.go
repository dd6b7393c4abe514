package importer

import (
	"fmt"
	"strings"
	"time"

	"statement-importer/internal/models"

	"github.com/shopspring/decimal"
)

const (
	SchemaTitleAmount      = "title_amount"
	SchemaDescriptionValue = "description_value"

	// NoDescription replaces blank descriptions
	NoDescription = "No description"

	titleAmountDateLayout      = "2006-1-2"
	descriptionValueDateLayout = "2/1/2006"
)

var (
	descriptionValueDescriptionColumns = []string{"descrição", "descricao"}
)

// TitleAmountSchema reads card statements with date,title,amount columns.
// Dates are year-month-day; a positive amount is money spent.
type TitleAmountSchema struct{}

// Name returns the schema name.
func (s *TitleAmountSchema) Name() string { return SchemaTitleAmount }

// Matches requires title and amount columns.
func (s *TitleAmountSchema) Matches(headers []string) bool {
	return hasHeader(headers, "title") && hasHeader(headers, "amount")
}

// Normalize converts one card statement row.
func (s *TitleAmountSchema) Normalize(rowNumber int, rec Record) (*models.ImportCandidate, error) {
	return normalizeRow(rowNumber, rawRow{
		date:        rec.Get("date"),
		amount:      rec.Get("amount"),
		description: rec.Get("title"),
	}, titleAmountDateLayout, models.TransactionKindExpense, SchemaTitleAmount)
}

// DescriptionValueSchema reads checking account statements with data,valor,descrição columns.
// Dates are day/month/year; a positive amount is money received.
type DescriptionValueSchema struct{}

// Name returns the schema name.
func (s *DescriptionValueSchema) Name() string { return SchemaDescriptionValue }

// Matches requires date, value and either spelling of the description column.
func (s *DescriptionValueSchema) Matches(headers []string) bool {
	hasDescription := false
	for _, col := range descriptionValueDescriptionColumns {
		if hasHeader(headers, col) {
			hasDescription = true
			break
		}
	}
	return hasHeader(headers, "data") && hasHeader(headers, "valor") && hasDescription
}

// Normalize converts one checking account row.
func (s *DescriptionValueSchema) Normalize(rowNumber int, rec Record) (*models.ImportCandidate, error) {
	return normalizeRow(rowNumber, rawRow{
		date:        rec.Get("data"),
		amount:      rec.Get("valor"),
		description: rec.Get(descriptionValueDescriptionColumns...),
	}, descriptionValueDateLayout, models.TransactionKindIncome, SchemaDescriptionValue)
}

type rawRow struct {
	date        string
	amount      string
	description string
}

// normalizeRow applies the shared row rules. positiveKind is the kind a positive amount maps to.
func normalizeRow(rowNumber int, row rawRow, dateLayout, positiveKind, schema string) (*models.ImportCandidate, error) {
	if row.date == "" || row.amount == "" {
		return nil, ErrIncompleteRow
	}

	date, err := time.Parse(dateLayout, row.date)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidDate, row.date, err)
	}

	amount, err := ParseAmount(row.amount)
	if err != nil {
		return nil, err
	}
	if amount.IsZero() {
		return nil, ErrZeroAmount
	}

	kind := positiveKind
	if amount.IsNegative() {
		kind = oppositeKind(positiveKind)
	}

	description := row.description
	if description == "" {
		description = NoDescription
	}

	candidate := models.NewImportCandidate(rowNumber, date, description, amount, kind)
	candidate.Transfer = ClassifyTransfer(schema, description)
	if candidate.Transfer.IsLocked() {
		candidate.CategoryLabel = models.CategoryInternalTransfer
	}

	if installment, ok := ExtractInstallment(description); ok {
		candidate.SetInstallment(installment.Current, installment.Total)
	}

	return candidate, nil
}

// ParseAmount parses a statement amount, accepting a comma as decimal separator.
// Amounts are rounded half away from zero to cents, the precision of the ledger.
func ParseAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q: %v", ErrInvalidAmount, raw, err)
	}
	return amount.Round(2), nil
}

func oppositeKind(kind string) string {
	if kind == models.TransactionKindIncome {
		return models.TransactionKindExpense
	}
	return models.TransactionKindIncome
}

func hasHeader(headers []string, name string) bool {
	for _, h := range headers {
		if h == name {
			return true
		}
	}
	return false
}
