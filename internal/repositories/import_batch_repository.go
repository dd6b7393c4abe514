package repositories

import (
	"errors"
	"fmt"
	"time"

	"statement-importer/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrImportBatchNotFound = errors.New("import batch not found")
)

const defaultBatchListLimit = 20

type importBatchRepository struct {
	db *gorm.DB
}

func NewImportBatchRepository(db *gorm.DB) ImportBatchRepositoryInterface {
	return &importBatchRepository{
		db: db,
	}
}

func (r *importBatchRepository) Create(batch *models.ImportBatch) error {
	if err := r.db.Create(batch).Error; err != nil {
		return fmt.Errorf("failed to create import batch: %w", err)
	}
	return nil
}

func (r *importBatchRepository) GetByID(id uuid.UUID) (*models.ImportBatch, error) {
	batch := &models.ImportBatch{ID: id}
	if err := r.db.First(batch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrImportBatchNotFound
		}
		return nil, fmt.Errorf("failed to get import batch: %w", err)
	}
	return batch, nil
}

// MarkCompleted stores the final counters of a batch
func (r *importBatchRepository) MarkCompleted(batch *models.ImportBatch) error {
	now := time.Now()
	result := r.db.Model(&models.ImportBatch{ID: batch.ID}).
		Updates(map[string]interface{}{
			"status":            models.ImportStatusCompleted,
			"row_count":         batch.RowCount,
			"created":           batch.Created,
			"skipped":           batch.Skipped,
			"projected":         batch.Projected,
			"failed":            batch.Failed,
			"projected_skipped": batch.ProjectedSkipped,
			"finished_at":       now,
			"updated_at":        now,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to mark import batch as completed: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrImportBatchNotFound
	}

	batch.Status = models.ImportStatusCompleted
	batch.FinishedAt = &now
	return nil
}

func (r *importBatchRepository) MarkFailed(batchID uuid.UUID, errorMessage string) error {
	now := time.Now()
	result := r.db.Model(&models.ImportBatch{ID: batchID}).
		Updates(map[string]interface{}{
			"status":        models.ImportStatusFailed,
			"error_message": errorMessage,
			"finished_at":   now,
			"updated_at":    now,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to mark import batch as failed: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrImportBatchNotFound
	}

	return nil
}

func (r *importBatchRepository) ListRecent(limit int) ([]models.ImportBatch, error) {
	if limit <= 0 {
		limit = defaultBatchListLimit
	}

	var batches []models.ImportBatch
	if err := r.db.Order("created_at DESC").
		Limit(limit).
		Find(&batches).Error; err != nil {
		return nil, fmt.Errorf("failed to list import batches: %w", err)
	}

	return batches, nil
}

func (r *importBatchRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.ImportBatch{}).
		Where("status = ?", status).
		Count(&count).Error

	if err != nil {
		return 0, fmt.Errorf("failed to count %s batches: %w", status, err)
	}

	return count, nil
}
