package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"statement-importer/internal/dto"
	"statement-importer/internal/errors"
	"statement-importer/internal/models"
	"statement-importer/internal/services"
	"statement-importer/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionHandlerTestSuite struct {
	suite.Suite
	handler     *TransactionHandler
	echo        *echo.Echo
	accountID   uuid.UUID
	ctrl        *gomock.Controller
	mockService *service_mocks.MockAccountServiceInterface
}

func TestTransactionHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}

func (s *TransactionHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.accountID = uuid.New()
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockAccountServiceInterface(s.ctrl)
	s.handler = NewTransactionHandler(s.mockService)
}

func (s *TransactionHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TransactionHandlerTestSuite) get(target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func (s *TransactionHandlerTestSuite) sampleTransactions(n int) []models.Transaction {
	transactions := make([]models.Transaction, 0, n)
	for i := 0; i < n; i++ {
		transactions = append(transactions, models.Transaction{
			ID:          uuid.New(),
			AccountID:   s.accountID,
			Kind:        models.TransactionKindExpense,
			Description: gofakeit.Company(),
			Amount:      decimal.NewFromFloat(gofakeit.Price(1, 300)).Round(2),
			Date:        time.Date(2025, 3, i+1, 0, 0, 0, 0, time.UTC),
			Tags:        "food,weekend",
			Category:    &models.Category{ID: 3, Name: "Food"},
			CreatedAt:   time.Now(),
		})
	}
	return transactions
}

func (s *TransactionHandlerTestSuite) TestListTransactions_Filters() {
	s.mockService.EXPECT().
		ListTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filters models.TransactionFilters) ([]models.Transaction, int64, error) {
			s.Require().NotNil(filters.AccountID)
			s.Equal(s.accountID, *filters.AccountID)
			s.Equal("2025-03-01", filters.StartDate.Format(models.DateLayout))
			s.Equal("2025-03-31", filters.EndDate.Format(models.DateLayout))
			s.Equal(models.TransactionKindExpense, filters.Kind)
			s.Equal("food", filters.Tag)
			s.Equal(2, filters.Limit)
			s.Equal(0, filters.Offset)
			return s.sampleTransactions(2), 5, nil
		})

	c, rec := s.get("/api/v1/transactions?account_id=" + s.accountID.String() +
		"&start_date=2025-03-01&end_date=2025-03-31&kind=EXPENSE&tag=food&limit=2")
	s.Require().NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("private, max-age=30", rec.Header().Get("Cache-Control"))

	var resp dto.ListTransactionsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp.Transactions, 2)
	s.True(resp.Pagination.HasMore)
	s.Equal(int64(5), resp.Pagination.Total)
	s.Equal("Food", resp.Transactions[0].Category)
	s.Equal([]string{"food", "weekend"}, resp.Transactions[0].Tags)
	s.Equal("2025-03-01", resp.Transactions[0].Date)
}

func (s *TransactionHandlerTestSuite) TestListTransactions_DefaultPage() {
	s.mockService.EXPECT().
		ListTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filters models.TransactionFilters) ([]models.Transaction, int64, error) {
			s.Nil(filters.AccountID)
			s.Equal(50, filters.Limit)
			return []models.Transaction{}, 0, nil
		})

	c, rec := s.get("/api/v1/transactions")
	s.Require().NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ListTransactionsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.NotNil(resp.Transactions)
	s.False(resp.Pagination.HasMore)
}

func (s *TransactionHandlerTestSuite) TestListTransactions_InvalidQuery() {
	testCases := []struct {
		name         string
		query        string
		expectedCode errors.ErrorCode
	}{
		{"bad account id", "?account_id=acc-1", errors.ValidationGeneral},
		{"day first date", "?start_date=01/03/2025", errors.ValidationGeneral},
		{"unknown kind", "?kind=transfer", errors.ValidationGeneral},
		{"reversed range", "?start_date=2025-03-31&end_date=2025-03-01", errors.ValidationInvalidDate},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, rec := s.get("/api/v1/transactions" + tc.query)
			s.Require().NoError(s.handler.ListTransactions(c))
			s.Equal(http.StatusBadRequest, rec.Code)

			var resp ErrorResponse
			s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
			s.Equal(string(tc.expectedCode), resp.Error.Code)
		})
	}
}

func (s *TransactionHandlerTestSuite) TestListTransactions_UnknownAccount() {
	s.mockService.EXPECT().
		ListTransactions(gomock.Any(), gomock.Any()).
		Return(nil, int64(0), services.ErrAccountNotFound)

	c, rec := s.get("/api/v1/transactions?account_id=" + s.accountID.String())
	s.Require().NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusNotFound, rec.Code)
}
