package services

import (
	"context"
	"fmt"
	"log/slog"

	"statement-importer/internal/models"
	"statement-importer/internal/repositories"
)

type categoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
	logger       *slog.Logger
}

// NewCategoryService creates a new CategoryServiceInterface instance
func NewCategoryService(categoryRepo repositories.CategoryRepositoryInterface, logger *slog.Logger) CategoryServiceInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &categoryService{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// ListCategories returns every category, or only those of one kind
func (s *categoryService) ListCategories(ctx context.Context, kind string) ([]models.Category, error) {
	if kind != "" && !models.IsValidTransactionKind(kind) {
		return nil, models.ErrInvalidCategoryKind
	}

	categories, err := s.categoryRepo.List(kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// SeedDefaults creates the built-in categories that are missing
func (s *categoryService) SeedDefaults(ctx context.Context) (int, error) {
	created, err := s.categoryRepo.SeedDefaults()
	if err != nil {
		return 0, fmt.Errorf("failed to seed categories: %w", err)
	}

	if created > 0 {
		s.logger.InfoContext(ctx, "Default categories created", "count", created)
	}
	return created, nil
}
