package repositories

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"statement-importer/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

const defaultTransactionPageSize = 50

// transactionRepository implements TransactionRepository interface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	transaction := &models.Transaction{ID: id}
	if err := r.db.Preload("Category").First(transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return transaction, nil
}

// GetWithFilters retrieves transactions with multiple filters
func (r *transactionRepository) GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	query := r.db.Model(&models.Transaction{})

	if filters.AccountID != nil {
		query = query.Where("account_id = ?", *filters.AccountID)
	}
	if filters.StartDate != nil {
		query = query.Where("date >= ?", models.NormalizeDate(*filters.StartDate))
	}
	if filters.EndDate != nil {
		query = query.Where("date <= ?", models.NormalizeDate(*filters.EndDate))
	}
	if filters.Kind != "" {
		query = query.Where("kind = ?", filters.Kind)
	}
	if filters.CategoryID != nil {
		query = query.Where("category_id = ?", *filters.CategoryID)
	}
	if filters.MinAmount != nil {
		query = query.Where("amount >= ?", *filters.MinAmount)
	}
	if filters.MaxAmount != nil {
		query = query.Where("amount <= ?", *filters.MaxAmount)
	}
	if filters.Tag != "" {
		query = query.Where("LOWER(tags) LIKE ?", "%"+strings.ToLower(filters.Tag)+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count filtered transactions: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = defaultTransactionPageSize
	}

	if err := query.Preload("Category").
		Offset(filters.Offset).Limit(limit).
		Order("date DESC, created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get filtered transactions: %w", err)
	}

	return transactions, total, nil
}

// ListForHistory loads every persisted transaction with its category.
// Ties on date are broken by creation time and then id so the order is stable.
func (r *transactionRepository) ListForHistory() ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Preload("Category").
		Order("date DESC, created_at DESC, id ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions for history: %w", err)
	}
	return transactions, nil
}

// ExistsExact reports whether a transaction with the same account, description, amount and date exists
func (r *transactionRepository) ExistsExact(accountID uuid.UUID, description string, amount decimal.Decimal, date time.Time) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Transaction{}).
		Where("account_id = ? AND description = ? AND amount = ? AND date = ?",
			accountID, description, amount, models.NormalizeDate(date)).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check duplicate transaction: %w", err)
	}
	return count > 0, nil
}

// FindSameDayAmount retrieves transactions sharing account, amount and date regardless of description
func (r *transactionRepository) FindSameDayAmount(accountID uuid.UUID, amount decimal.Decimal, date time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("account_id = ? AND amount = ? AND date = ?",
		accountID, amount, models.NormalizeDate(date)).
		Order("created_at ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to find same day transactions: %w", err)
	}
	return transactions, nil
}

// CountByImportBatch counts the transactions written by one import
func (r *transactionRepository) CountByImportBatch(batchID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Transaction{}).
		Where("import_batch_id = ?", batchID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count batch transactions: %w", err)
	}
	return count, nil
}

// SumByAccount returns the signed total of an account's transactions, income positive
func (r *transactionRepository) SumByAccount(accountID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.Decimal
	row := r.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(CASE WHEN kind = ? THEN amount ELSE -amount END), 0)", models.TransactionKindIncome).
		Where("account_id = ?", accountID).
		Row()
	if err := row.Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum account transactions: %w", err)
	}
	return sum, nil
}
