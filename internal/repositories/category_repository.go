package repositories

import (
	"errors"
	"fmt"
	"strings"

	"statement-importer/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
)

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &categoryRepository{
		db: db,
	}
}

func (r *categoryRepository) Create(category *models.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

func (r *categoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}

func (r *categoryRepository) GetByNameAndKind(name, kind string) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("name = ? AND kind = ?", strings.TrimSpace(name), kind).
		First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category by name: %w", err)
	}
	return &category, nil
}

// FindOrCreate returns the category for (name, kind), creating it with the default color when missing
func (r *categoryRepository) FindOrCreate(name, kind string) (*models.Category, error) {
	category := models.Category{
		Name:  strings.TrimSpace(name),
		Kind:  kind,
		Color: models.DefaultCategoryColor,
	}

	err := r.db.Where(models.Category{Name: category.Name, Kind: category.Kind}).
		FirstOrCreate(&category).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find or create category %q: %w", name, err)
	}
	return &category, nil
}

// List retrieves categories, optionally restricted to one kind
func (r *categoryRepository) List(kind string) ([]models.Category, error) {
	var categories []models.Category

	query := r.db.Model(&models.Category{})
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}

	if err := query.Order("kind ASC, name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// SeedDefaults inserts the default categories that are missing and returns how many were created
func (r *categoryRepository) SeedDefaults() (int, error) {
	created := 0
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, def := range models.DefaultCategories() {
			var count int64
			if err := tx.Model(&models.Category{}).
				Where("name = ? AND kind = ?", def.Name, def.Kind).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}

			category := def
			if err := tx.Create(&category).Error; err != nil {
				return err
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to seed default categories: %w", err)
	}
	return created, nil
}
