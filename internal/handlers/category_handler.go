package handlers

import (
	"fmt"
	"net/http"

	"statement-importer/internal/dto"
	"statement-importer/internal/errors"
	"statement-importer/internal/services"

	"github.com/labstack/echo/v4"
)

// CategoryHandler exposes the category catalogue
type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// ListCategories lists categories, optionally of one kind
// @Summary List categories
// @Tags Categories
// @Produce json
// @Param kind query string false "income or expense"
// @Success 200 {object} dto.CategoryListResponse "Categories"
// @Failure 400 {object} errors.ErrorResponse "CATEGORY_001 - Invalid kind"
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	var query dto.CategoryListQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}

	if err := c.Validate(query); err != nil {
		return SendError(c, errors.CategoryInvalidKind)
	}

	categories, err := h.categoryService.ListCategories(c.Request().Context(), query.Kind)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.CategoryListResponse{
		Categories: categories,
		Count:      len(categories),
	})
}

// SeedCategories inserts the default categories that are missing
// @Summary Seed default categories
// @Tags Categories
// @Produce json
// @Success 200 {object} dto.SeedCategoriesResponse "Seed result"
// @Router /categories/seed [post]
func (h *CategoryHandler) SeedCategories(c echo.Context) error {
	created, err := h.categoryService.SeedDefaults(c.Request().Context())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SeedCategoriesResponse{
		Created: created,
		Message: fmt.Sprintf("%d default categories created", created),
	})
}
