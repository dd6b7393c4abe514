package dto

import "statement-importer/internal/models"

// CategoryListQuery filters the category catalogue by kind
type CategoryListQuery struct {
	Kind string `query:"kind" validate:"omitempty,transaction_kind"`
}

// CategoryListResponse lists categories
type CategoryListResponse struct {
	Categories []models.Category `json:"categories"`
	Count      int               `json:"count"`
}

// SeedCategoriesResponse reports how many default categories were inserted
type SeedCategoriesResponse struct {
	Created int    `json:"created"`
	Message string `json:"message"`
}
