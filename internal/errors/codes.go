package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Import error codes (IMPORT_*)
const (
	ImportUnrecognizedFormat ErrorCode = "IMPORT_001"
	ImportEmptyFile          ErrorCode = "IMPORT_002"
	ImportInvalidPayload     ErrorCode = "IMPORT_003"
	ImportNothingToImport    ErrorCode = "IMPORT_004"
	ImportInterrupted        ErrorCode = "IMPORT_005"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_007"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound       ErrorCode = "ACCOUNT_001"
	AccountInvalidID      ErrorCode = "ACCOUNT_002"
	AccountInvalidKind    ErrorCode = "ACCOUNT_003"
	AccountInvalidBalance ErrorCode = "ACCOUNT_004"
)

// Category error codes (CATEGORY_*)
const (
	CategoryInvalidKind ErrorCode = "CATEGORY_001"
	CategoryNotFound    ErrorCode = "CATEGORY_002"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionInvalidAmount ErrorCode = "TRANSACTION_002"
	TransactionInvalidType   ErrorCode = "TRANSACTION_006"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Import errors
	ImportUnrecognizedFormat: "Statement format not recognized. Expected date,title,amount or data,valor,descrição columns",
	ImportEmptyFile:          "Statement file is empty",
	ImportInvalidPayload:     "Statement content must be base64 encoded",
	ImportNothingToImport:    "Statement has no rows to import",
	ImportInterrupted:        "Import was interrupted before every row was written",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	// Account errors
	AccountNotFound:       "Account not found",
	AccountInvalidID:      "Invalid account ID format",
	AccountInvalidKind:    "Account kind must be checking, credit_card or investment",
	AccountInvalidBalance: "Opening balance cannot be negative for this account kind",

	// Category errors
	CategoryInvalidKind: "Category kind must be income or expense",
	CategoryNotFound:    "Category not found",

	// Transaction errors
	TransactionInvalidAmount: "Invalid transaction amount",
	TransactionInvalidType:   "Invalid transaction kind",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "Resource not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
