package validation

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"statement-importer/internal/importer"
	"statement-importer/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("account_kind", validateAccountKind)
	_ = v.RegisterValidation("transaction_kind", validateTransactionKind)
	_ = v.RegisterValidation("iso_date", validateISODate)
	_ = v.RegisterValidation("base64_payload", validateBase64Payload)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct using the configured rules
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// Custom validation functions

// validateAccountKind accepts the ledger account kinds
func validateAccountKind(fl validator.FieldLevel) bool {
	return models.IsValidAccountKind(strings.ToLower(fl.Field().String()))
}

// validateTransactionKind accepts income and expense
func validateTransactionKind(fl validator.FieldLevel) bool {
	return models.IsValidTransactionKind(strings.ToLower(fl.Field().String()))
}

// validateISODate accepts YYYY-MM-DD calendar dates
func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(models.DateLayout, fl.Field().String())
	return err == nil
}

// validateBase64Payload accepts anything the statement decoder can read.
// An upload that decodes to blank content is left for the importer to reject.
func validateBase64Payload(fl validator.FieldLevel) bool {
	payload := strings.TrimSpace(fl.Field().String())
	if payload == "" {
		return false
	}
	_, err := importer.DecodePayload(payload)
	return err == nil || errors.Is(err, importer.ErrEmptyFile)
}

// validatePositiveAmount validates that an amount is greater than 0.
// Decimal strings, ints and floats are accepted.
func validatePositiveAmount(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() > 0
	case reflect.Float32, reflect.Float64:
		return fl.Field().Float() > 0
	case reflect.String:
		amount, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
		return err == nil && amount.IsPositive()
	default:
		return false
	}
}
