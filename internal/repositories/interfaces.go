package repositories

import (
	"time"

	"statement-importer/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountRepositoryInterface defines the contract for account repository operations
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	GetByID(id uuid.UUID) (*models.Account, error)
	List() ([]models.Account, error)
	Exists(id uuid.UUID) (bool, error)
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, int64, error)

	// ListForHistory returns every transaction with its category, most recent first
	ListForHistory() ([]models.Transaction, error)
	ExistsExact(accountID uuid.UUID, description string, amount decimal.Decimal, date time.Time) (bool, error)
	FindSameDayAmount(accountID uuid.UUID, amount decimal.Decimal, date time.Time) ([]models.Transaction, error)
	CountByImportBatch(batchID uuid.UUID) (int64, error)
	SumByAccount(accountID uuid.UUID) (decimal.Decimal, error)
}

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetByID(id uint) (*models.Category, error)
	GetByNameAndKind(name, kind string) (*models.Category, error)
	FindOrCreate(name, kind string) (*models.Category, error)
	List(kind string) ([]models.Category, error)
	SeedDefaults() (int, error)
}

// ImportBatchRepositoryInterface defines the contract for import batch bookkeeping
type ImportBatchRepositoryInterface interface {
	Create(batch *models.ImportBatch) error
	GetByID(id uuid.UUID) (*models.ImportBatch, error)
	MarkCompleted(batch *models.ImportBatch) error
	MarkFailed(batchID uuid.UUID, errorMessage string) error
	ListRecent(limit int) ([]models.ImportBatch, error)
	CountByStatus(status string) (int64, error)
}
