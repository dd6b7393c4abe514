package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"statement-importer/internal/models"
	"statement-importer/internal/repositories/repository_mocks"
	"statement-importer/internal/services"
	"statement-importer/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type ClassificationHistoryServiceTestSuite struct {
	suite.Suite
	ctx             context.Context
	ctrl            *gomock.Controller
	service         services.ClassificationHistoryServiceInterface
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	metrics         *service_mocks.MockMetricsRecorderInterface
	baseDate        time.Time
}

func TestClassificationHistoryServiceSuite(t *testing.T) {
	suite.Run(t, new(ClassificationHistoryServiceTestSuite))
}

func (s *ClassificationHistoryServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.service = services.NewClassificationHistoryService(s.transactionRepo, s.metrics, nil)
	s.baseDate = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
}

func (s *ClassificationHistoryServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func historyTransaction(description, category, tags string, date, createdAt time.Time) models.Transaction {
	tx := models.Transaction{
		ID:          uuid.New(),
		Description: description,
		Tags:        tags,
		Date:        date,
		CreatedAt:   createdAt,
	}
	if category != "" {
		tx.Category = &models.Category{Name: category}
	}
	return tx
}

func (s *ClassificationHistoryServiceTestSuite) TestBuild_LatestDateWins() {
	older := historyTransaction("Uber", "Transport", "car", s.baseDate, s.baseDate)
	newer := historyTransaction("  UBER ", "Travel", "trip", s.baseDate.AddDate(0, 1, 0), s.baseDate)

	// Repository order is not trusted
	s.transactionRepo.EXPECT().ListForHistory().Return([]models.Transaction{older, newer}, nil).Times(1)
	s.metrics.EXPECT().RecordGauge(services.MetricHistorySize, float64(1), gomock.Nil()).Times(1)

	history, err := s.service.Build(s.ctx)

	s.Require().NoError(err)
	s.Equal(1, history.Len())
	entry, ok := history.Get("uber")
	s.Require().True(ok)
	s.Equal("Travel", entry.CategoryLabel)
	s.Equal("trip", entry.Tags)
	s.Equal(newer.ID, entry.TransactionID)
}

func (s *ClassificationHistoryServiceTestSuite) TestBuild_SameDateUsesLatestCreated() {
	first := historyTransaction("Pharmacy", "Health", "", s.baseDate, s.baseDate.Add(time.Hour))
	second := historyTransaction("pharmacy", "Family", "kids", s.baseDate, s.baseDate.Add(2*time.Hour))

	s.transactionRepo.EXPECT().ListForHistory().Return([]models.Transaction{first, second}, nil).Times(1)
	s.metrics.EXPECT().RecordGauge(services.MetricHistorySize, float64(1), gomock.Nil()).Times(1)

	history, err := s.service.Build(s.ctx)

	s.Require().NoError(err)
	entry, ok := history.Get("PHARMACY")
	s.Require().True(ok)
	s.Equal("Family", entry.CategoryLabel)
}

func (s *ClassificationHistoryServiceTestSuite) TestBuild_FullTieUsesLowestID() {
	a := historyTransaction("Bakery", "Food", "", s.baseDate, s.baseDate)
	b := historyTransaction("Bakery", "Snacks", "", s.baseDate, s.baseDate)
	a.ID = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	b.ID = uuid.MustParse("00000000-0000-0000-0000-000000000002")

	s.transactionRepo.EXPECT().ListForHistory().Return([]models.Transaction{b, a}, nil).Times(1)
	s.metrics.EXPECT().RecordGauge(services.MetricHistorySize, float64(1), gomock.Nil()).Times(1)

	history, err := s.service.Build(s.ctx)

	s.Require().NoError(err)
	entry, _ := history.Get("bakery")
	s.Equal("Food", entry.CategoryLabel)
}

func (s *ClassificationHistoryServiceTestSuite) TestBuild_EntriesOrderedByRecency() {
	txs := []models.Transaction{
		historyTransaction("Market", "Groceries", "", s.baseDate, s.baseDate),
		historyTransaction("Cinema", "Leisure", "", s.baseDate.AddDate(0, 0, 2), s.baseDate),
		historyTransaction("Gas", "", "  ", s.baseDate.AddDate(0, 0, 1), s.baseDate),
	}

	s.transactionRepo.EXPECT().ListForHistory().Return(txs, nil).Times(1)
	s.metrics.EXPECT().RecordGauge(services.MetricHistorySize, float64(3), gomock.Nil()).Times(1)

	history, err := s.service.Build(s.ctx)

	s.Require().NoError(err)
	entries := history.Entries()
	s.Require().Len(entries, 3)
	s.Equal("cinema", entries[0].Key)
	s.Equal("gas", entries[1].Key)
	s.Equal("market", entries[2].Key)

	s.Equal(models.CategoryUncategorized, entries[1].CategoryLabel)
	s.Equal("", entries[1].Tags)
}

func (s *ClassificationHistoryServiceTestSuite) TestBuild_RepositoryError() {
	s.transactionRepo.EXPECT().ListForHistory().Return(nil, errors.New("connection reset")).Times(1)

	history, err := s.service.Build(s.ctx)

	s.Error(err)
	s.Nil(history)
	s.Contains(err.Error(), "failed to load classification history")
}

func (s *ClassificationHistoryServiceTestSuite) TestBuild_Empty() {
	s.transactionRepo.EXPECT().ListForHistory().Return([]models.Transaction{}, nil).Times(1)
	s.metrics.EXPECT().RecordGauge(services.MetricHistorySize, float64(0), gomock.Nil()).Times(1)

	history, err := s.service.Build(s.ctx)

	s.Require().NoError(err)
	s.Equal(0, history.Len())
}
