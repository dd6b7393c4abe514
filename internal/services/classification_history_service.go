package services

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"statement-importer/internal/models"
	"statement-importer/internal/repositories"
)

type classificationHistoryService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

func NewClassificationHistoryService(
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) ClassificationHistoryServiceInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &classificationHistoryService{
		transactionRepo: transactionRepo,
		metrics:         metrics,
		logger:          logger,
	}
}

// Build keeps, per normalized description, the classification of the most recent transaction.
// Ties on date go to the latest created_at, then to the lowest id.
func (s *classificationHistoryService) Build(ctx context.Context) (*models.ClassificationHistory, error) {
	transactions, err := s.transactionRepo.ListForHistory()
	if err != nil {
		return nil, fmt.Errorf("failed to load classification history: %w", err)
	}

	slices.SortStableFunc(transactions, compareForHistory)

	history := models.NewClassificationHistory()
	for i := range transactions {
		tx := &transactions[i]
		history.Add(models.ClassificationHistoryEntry{
			Key:           tx.Description,
			CategoryLabel: categoryLabel(tx),
			Tags:          strings.TrimSpace(tx.Tags),
			Date:          tx.Date,
			TransactionID: tx.ID,
		})
	}

	s.metrics.RecordGauge(MetricHistorySize, float64(history.Len()), nil)
	s.logger.DebugContext(ctx, "Classification history built",
		"transactions", len(transactions),
		"entries", history.Len(),
	)

	return history, nil
}

func compareForHistory(a, b models.Transaction) int {
	if c := b.Date.Compare(a.Date); c != 0 {
		return c
	}
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return cmp.Compare(a.ID.String(), b.ID.String())
}

func categoryLabel(tx *models.Transaction) string {
	if tx.Category == nil || strings.TrimSpace(tx.Category.Name) == "" {
		return models.CategoryUncategorized
	}
	return tx.Category.Name
}
