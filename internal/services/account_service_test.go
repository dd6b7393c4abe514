package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"statement-importer/internal/models"
	"statement-importer/internal/repositories"
	"statement-importer/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// AccountServiceSuite defines the test suite for AccountServiceInterface
type AccountServiceSuite struct {
	suite.Suite
	ctx             context.Context
	ctrl            *gomock.Controller
	accountRepo     *repository_mocks.MockAccountRepositoryInterface
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	service         *accountService
	testAccountID   uuid.UUID
	testAccount     *models.Account
}

// SetupTest runs before each test in the suite
func (s *AccountServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.accountRepo = repository_mocks.NewMockAccountRepositoryInterface(s.ctrl)
	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.service = NewAccountService(s.accountRepo, s.transactionRepo, slog.Default()).(*accountService)

	s.testAccountID = uuid.New()
	s.testAccount = &models.Account{
		ID:             s.testAccountID,
		Name:           "Checking",
		Kind:           models.AccountKindChecking,
		OpeningBalance: decimal.RequireFromString("100.00"),
	}
}

// TearDownTest runs after each test in the suite
func (s *AccountServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestAccountServiceSuite runs the test suite
func TestAccountServiceSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceSuite))
}

func (s *AccountServiceSuite) TestCreateAccount() {
	s.accountRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(account *models.Account) error {
		s.Equal("Nubank", account.Name)
		s.Equal(models.AccountKindCreditCard, account.Kind)
		s.NotEqual(uuid.Nil, account.ID)
		return nil
	})

	account, err := s.service.CreateAccount(s.ctx, "  Nubank ", models.AccountKindCreditCard, decimal.RequireFromString("-350"))

	s.Require().NoError(err)
	s.True(account.OpeningBalance.Equal(decimal.RequireFromString("-350")))
}

func (s *AccountServiceSuite) TestCreateAccount_Validation() {
	testCases := []struct {
		name    string
		account string
		kind    string
		opening string
		wantErr error
	}{
		{"negative checking balance", "Checking", models.AccountKindChecking, "-1", ErrInvalidOpeningBalance},
		{"blank name", "   ", models.AccountKindChecking, "0", models.ErrAccountNameRequired},
		{"unknown kind", "Wallet", "savings", "0", models.ErrInvalidAccountKind},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.service.CreateAccount(s.ctx, tc.account, tc.kind, decimal.RequireFromString(tc.opening))
			s.ErrorIs(err, tc.wantErr)
		})
	}
}

func (s *AccountServiceSuite) TestGetAccount_NotFound() {
	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(nil, repositories.ErrAccountNotFound)

	account, err := s.service.GetAccount(s.ctx, s.testAccountID)

	s.Nil(account)
	s.ErrorIs(err, ErrAccountNotFound)
}

func (s *AccountServiceSuite) TestGetAccount_RepositoryError() {
	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(nil, errors.New("connection reset"))

	_, err := s.service.GetAccount(s.ctx, s.testAccountID)

	s.Error(err)
	s.NotErrorIs(err, ErrAccountNotFound)
	s.Contains(err.Error(), "failed to get account")
}

func (s *AccountServiceSuite) TestListAccounts() {
	accounts := []models.Account{*s.testAccount}
	s.accountRepo.EXPECT().List().Return(accounts, nil)

	result, err := s.service.ListAccounts(s.ctx)

	s.NoError(err)
	s.Equal(accounts, result)
}

func (s *AccountServiceSuite) TestGetBalance() {
	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(s.testAccount, nil)
	s.transactionRepo.EXPECT().SumByAccount(s.testAccountID).Return(decimal.RequireFromString("-45.50"), nil)

	balance, err := s.service.GetBalance(s.ctx, s.testAccountID)

	s.Require().NoError(err)
	s.True(decimal.RequireFromString("54.50").Equal(balance), "got %s", balance)
}

func (s *AccountServiceSuite) TestGetBalance_SumError() {
	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(s.testAccount, nil)
	s.transactionRepo.EXPECT().SumByAccount(s.testAccountID).Return(decimal.Zero, errors.New("timeout"))

	_, err := s.service.GetBalance(s.ctx, s.testAccountID)

	s.Error(err)
}

func (s *AccountServiceSuite) TestListTransactions() {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	filters := models.TransactionFilters{AccountID: &s.testAccountID, StartDate: &start, Limit: 10}
	transactions := []models.Transaction{{ID: uuid.New(), AccountID: s.testAccountID, Description: "Bakery"}}

	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(s.testAccount, nil)
	s.transactionRepo.EXPECT().GetWithFilters(filters).Return(transactions, int64(1), nil)

	result, total, err := s.service.ListTransactions(s.ctx, filters)

	s.NoError(err)
	s.Equal(int64(1), total)
	s.Equal(transactions, result)
}

func (s *AccountServiceSuite) TestListTransactions_UnknownAccount() {
	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(nil, repositories.ErrAccountNotFound)

	_, _, err := s.service.ListTransactions(s.ctx, models.TransactionFilters{AccountID: &s.testAccountID})

	s.ErrorIs(err, ErrAccountNotFound)
}

func (s *AccountServiceSuite) TestListTransactions_AllAccounts() {
	s.transactionRepo.EXPECT().GetWithFilters(models.TransactionFilters{}).Return([]models.Transaction{}, int64(0), nil)

	result, total, err := s.service.ListTransactions(s.ctx, models.TransactionFilters{})

	s.NoError(err)
	s.Empty(result)
	s.Zero(total)
}
