package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"statement-importer/internal/models"
	"statement-importer/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrAccountNotFound       = errors.New("account not found")
	ErrInvalidOpeningBalance = errors.New("opening balance cannot be negative for this account kind")
)

// accountService implements AccountServiceInterface interface
type accountService struct {
	accountRepo     repositories.AccountRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	logger          *slog.Logger
}

// NewAccountService creates an account service with balance and transaction listing support
func NewAccountService(
	accountRepo repositories.AccountRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	logger *slog.Logger,
) AccountServiceInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &accountService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

// CreateAccount creates a ledger account imports can target
func (s *accountService) CreateAccount(ctx context.Context, name, kind string, openingBalance decimal.Decimal) (*models.Account, error) {
	// Card balances start at zero or below; other accounts cannot start negative
	if kind != models.AccountKindCreditCard && openingBalance.IsNegative() {
		return nil, ErrInvalidOpeningBalance
	}

	account := &models.Account{
		ID:             uuid.New(),
		Name:           strings.TrimSpace(name),
		Kind:           kind,
		OpeningBalance: openingBalance,
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	if err := s.accountRepo.Create(account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.InfoContext(ctx, "Account created",
		"account_id", account.ID,
		"kind", account.Kind,
	)

	return account, nil
}

func (s *accountService) GetAccount(ctx context.Context, accountID uuid.UUID) (*models.Account, error) {
	account, err := s.accountRepo.GetByID(accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context) ([]models.Account, error) {
	accounts, err := s.accountRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// GetBalance returns the opening balance plus every income minus every expense
func (s *accountService) GetBalance(ctx context.Context, accountID uuid.UUID) (decimal.Decimal, error) {
	account, err := s.GetAccount(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}

	movement, err := s.transactionRepo.SumByAccount(accountID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to compute balance: %w", err)
	}

	return account.OpeningBalance.Add(movement), nil
}

// ListTransactions retrieves transactions, verifying the account first when the filter names one
func (s *accountService) ListTransactions(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	if filters.AccountID != nil {
		if _, err := s.GetAccount(ctx, *filters.AccountID); err != nil {
			return nil, 0, err
		}
	}

	transactions, total, err := s.transactionRepo.GetWithFilters(filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get transactions: %w", err)
	}

	return transactions, total, nil
}
