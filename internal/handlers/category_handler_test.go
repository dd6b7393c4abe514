package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"statement-importer/internal/dto"
	"statement-importer/internal/models"
	"statement-importer/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type CategoryHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockCategoryServiceInterface
	handler     *CategoryHandler
	echo        *echo.Echo
}

func TestCategoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(CategoryHandlerSuite))
}

func (s *CategoryHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockCategoryServiceInterface(s.ctrl)
	s.handler = NewCategoryHandler(s.mockService)
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
}

func (s *CategoryHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CategoryHandlerSuite) do(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func (s *CategoryHandlerSuite) TestListCategories_ByKind() {
	categories := []models.Category{
		{ID: 1, Name: gofakeit.ProductCategory(), Kind: models.CategoryKindIncome},
		{ID: 2, Name: models.CategoryInvestmentIncome, Kind: models.CategoryKindIncome},
	}
	s.mockService.EXPECT().ListCategories(gomock.Any(), models.CategoryKindIncome).Return(categories, nil)

	c, rec := s.do(http.MethodGet, "/api/v1/categories?kind=income")
	s.Require().NoError(s.handler.ListCategories(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.CategoryListResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(2, resp.Count)
	s.Equal(categories[0].Name, resp.Categories[0].Name)
}

func (s *CategoryHandlerSuite) TestListCategories_InvalidKind() {
	c, rec := s.do(http.MethodGet, "/api/v1/categories?kind=transfer")
	s.Require().NoError(s.handler.ListCategories(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "CATEGORY_001")
}

func (s *CategoryHandlerSuite) TestSeedCategories() {
	s.mockService.EXPECT().SeedDefaults(gomock.Any()).Return(5, nil)

	c, rec := s.do(http.MethodPost, "/api/v1/categories/seed")
	s.Require().NoError(s.handler.SeedCategories(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.SeedCategoriesResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(5, resp.Created)
	s.Equal("5 default categories created", resp.Message)
}

func (s *CategoryHandlerSuite) TestSeedCategories_Error() {
	s.mockService.EXPECT().SeedDefaults(gomock.Any()).Return(0, errors.New("failed to seed categories: disk full"))

	c, rec := s.do(http.MethodPost, "/api/v1/categories/seed")
	s.Require().NoError(s.handler.SeedCategories(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Body.String(), "disk full")
}
