package services

import (
	"context"
	"time"

	"statement-importer/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ClassificationHistoryServiceInterface derives the per-description classification history
type ClassificationHistoryServiceInterface interface {
	// Build reads every persisted transaction and keeps the latest classification per description
	Build(ctx context.Context) (*models.ClassificationHistory, error)
}

// CategoryResolverInterface fills in the category and tags of import candidates
type CategoryResolverInterface interface {
	// Resolve mutates the candidate in place and reports what changed
	Resolve(candidate *models.ImportCandidate, history *models.ClassificationHistory) models.ResolutionResult

	// Rules returns the keyword table in evaluation order
	Rules() []models.KeywordRule
}

// DedupGuardInterface protects the ledger against importing the same row twice
type DedupGuardInterface interface {
	IsDuplicate(ctx context.Context, accountID uuid.UUID, candidate *models.ImportCandidate) (bool, error)
	NearDuplicates(ctx context.Context, accountID uuid.UUID, candidate *models.ImportCandidate) ([]models.PossibleDuplicate, error)
}

// InstallmentProjectorInterface synthesizes the remaining installments of a plan
type InstallmentProjectorInterface interface {
	Project(candidate *models.ImportCandidate) []*models.ImportCandidate
}

// ImportServiceInterface runs the statement import pipeline
type ImportServiceInterface interface {
	// Preview parses and classifies a statement without writing anything
	Preview(ctx context.Context, accountID uuid.UUID, fileName string, content []byte) (*models.ImportPreview, error)

	// Commit persists reviewed candidates, skipping duplicates and projecting installments
	Commit(ctx context.Context, accountID uuid.UUID, fileName, schema string, candidates []*models.ImportCandidate) (*models.ImportResult, error)

	// Import previews and commits a statement in one call
	Import(ctx context.Context, accountID uuid.UUID, fileName string, content []byte) (*models.ImportResult, error)

	ListBatches(ctx context.Context, limit int) ([]models.ImportBatch, error)
}

// AccountServiceInterface defines account-related business operations
type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, name, kind string, openingBalance decimal.Decimal) (*models.Account, error)
	GetAccount(ctx context.Context, accountID uuid.UUID) (*models.Account, error)
	ListAccounts(ctx context.Context) ([]models.Account, error)
	GetBalance(ctx context.Context, accountID uuid.UUID) (decimal.Decimal, error)
	ListTransactions(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, int64, error)
}

// CategoryServiceInterface exposes the category catalogue
type CategoryServiceInterface interface {
	ListCategories(ctx context.Context, kind string) ([]models.Category, error)
	SeedDefaults(ctx context.Context) (int, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type ImportLoggerInterface interface {
	LogImportStarted(ctx context.Context, batchID, accountID uuid.UUID, fileName, schema string, rows int)
	LogRowSkipped(ctx context.Context, batchID uuid.UUID, row int, description string, projected bool)
	LogRowFailed(ctx context.Context, batchID uuid.UUID, row int, errorMsg string)
	LogTransferFlagged(ctx context.Context, row int, description, classification string)
	LogPossibleDuplicate(ctx context.Context, batchID uuid.UUID, row int, description, existingDescription string, distance int)
	LogImportCompleted(ctx context.Context, batchID uuid.UUID, created, skipped, projected, failed int, durationMs int64)
	LogImportFailed(ctx context.Context, batchID uuid.UUID, errorMsg string, durationMs int64)
}
