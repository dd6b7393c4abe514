package handlers

import (
	"fmt"
	"net/http"
	"time"

	"statement-importer/internal/dto"
	"statement-importer/internal/errors"
	"statement-importer/internal/services"

	"github.com/labstack/echo/v4"
)

const cacheTTL = 30 * time.Second

// TransactionHandler handles ledger listing requests
type TransactionHandler struct {
	accountService services.AccountServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(accountService services.AccountServiceInterface) *TransactionHandler {
	return &TransactionHandler{accountService: accountService}
}

// ListTransactions retrieves transactions with filtering and offset pagination
// @Summary List transactions
// @Description Retrieve imported and projected transactions, newest first
// @Tags Transactions
// @Produce json
// @Param account_id query string false "Filter by account (UUID)"
// @Param start_date query string false "Earliest date (YYYY-MM-DD)"
// @Param end_date query string false "Latest date (YYYY-MM-DD)"
// @Param kind query string false "income or expense"
// @Param tag query string false "Filter by tag"
// @Param limit query int false "Page size (default 50, max 500)"
// @Param offset query int false "Rows to skip"
// @Success 200 {object} dto.ListTransactionsResponse "Transactions with pagination"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid parameters"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	var query dto.TransactionListQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}

	if err := c.Validate(query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(validationDetails(err)...))
	}

	filters, err := query.ToFilters()
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	transactions, total, err := h.accountService.ListTransactions(c.Request().Context(), filters)
	if err != nil {
		return sendServiceError(c, err)
	}

	c.Response().Header().Set("Cache-Control", fmt.Sprintf("private, max-age=%d", int(cacheTTL.Seconds())))

	return c.JSON(http.StatusOK, dto.NewListTransactionsResponse(transactions, total, filters))
}
