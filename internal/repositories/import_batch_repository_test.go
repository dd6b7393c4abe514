package repositories

import (
	"testing"

	"statement-importer/internal/database"
	"statement-importer/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type ImportBatchRepositorySuite struct {
	suite.Suite
	db      *database.DB
	repo    ImportBatchRepositoryInterface
	account *models.Account
}

func (s *ImportBatchRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewImportBatchRepository(s.db.DB)
	s.account = database.CreateTestAccount(s.T(), s.db, "Checking", models.AccountKindChecking)
}

func (s *ImportBatchRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestImportBatchRepositorySuite(t *testing.T) {
	suite.Run(t, new(ImportBatchRepositorySuite))
}

func (s *ImportBatchRepositorySuite) TestCreateDefaults() {
	batch := &models.ImportBatch{AccountID: s.account.ID, FileName: "nubank.csv", Schema: "title_amount"}

	s.Require().NoError(s.repo.Create(batch))
	s.NotEqual(uuid.Nil, batch.ID)
	s.Equal(models.ImportStatusProcessing, batch.Status)
	s.False(batch.StartedAt.IsZero())
	s.False(batch.IsFinished())
}

func (s *ImportBatchRepositorySuite) TestMarkCompleted() {
	batch := &models.ImportBatch{AccountID: s.account.ID, FileName: "extrato.csv"}
	s.Require().NoError(s.repo.Create(batch))

	batch.RowCount = 10
	batch.Created = 6
	batch.Skipped = 3
	batch.Projected = 4
	batch.Failed = 1
	s.Require().NoError(s.repo.MarkCompleted(batch))
	s.True(batch.IsFinished())

	stored, err := s.repo.GetByID(batch.ID)
	s.Require().NoError(err)
	s.Equal(models.ImportStatusCompleted, stored.Status)
	s.Equal(6, stored.Created)
	s.Equal(3, stored.Skipped)
	s.Equal(4, stored.Projected)
	s.Equal(1, stored.Failed)
	s.NotNil(stored.FinishedAt)

	count, err := s.repo.CountByStatus(models.ImportStatusCompleted)
	s.NoError(err)
	s.Equal(int64(1), count)
}

func (s *ImportBatchRepositorySuite) TestMarkFailed() {
	batch := &models.ImportBatch{AccountID: s.account.ID}
	s.Require().NoError(s.repo.Create(batch))

	s.Require().NoError(s.repo.MarkFailed(batch.ID, "unrecognized statement format"))

	stored, err := s.repo.GetByID(batch.ID)
	s.Require().NoError(err)
	s.Equal(models.ImportStatusFailed, stored.Status)
	s.Equal("unrecognized statement format", stored.ErrorMessage)

	s.ErrorIs(s.repo.MarkFailed(uuid.New(), "x"), ErrImportBatchNotFound)
	s.ErrorIs(s.repo.MarkCompleted(&models.ImportBatch{ID: uuid.New()}), ErrImportBatchNotFound)

	_, err = s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrImportBatchNotFound)
}

func (s *ImportBatchRepositorySuite) TestListRecent() {
	for i := 0; i < 3; i++ {
		s.Require().NoError(s.repo.Create(&models.ImportBatch{AccountID: s.account.ID}))
	}

	batches, err := s.repo.ListRecent(2)
	s.Require().NoError(err)
	s.Len(batches, 2)

	batches, err = s.repo.ListRecent(0)
	s.Require().NoError(err)
	s.Len(batches, 3)
}
