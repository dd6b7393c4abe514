package importer

import (
	"strings"

	"statement-importer/internal/models"
)

// transferPrefixes start descriptions of money moving between the user's own accounts
var transferPrefixes = []string{
	"payment received",
	"invoice payment",
	"pagamento recebido",
	"pagamento de fatura",
}

// ClassifyTransfer decides the transfer classification of a row.
// Card statements only flag the row. Checking statements also lock it, since the
// matching card statement already carries the real spending.
func ClassifyTransfer(schema, description string) models.TransferClassification {
	normalized := strings.ToLower(strings.TrimSpace(description))

	matched := false
	for _, prefix := range transferPrefixes {
		if strings.HasPrefix(normalized, prefix) {
			matched = true
			break
		}
	}
	if !matched {
		return models.TransferNone
	}

	if schema == SchemaDescriptionValue {
		return models.TransferFlaggedAndLocked
	}
	return models.TransferFlagged
}
