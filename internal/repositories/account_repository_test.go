package repositories

import (
	"testing"

	"statement-importer/internal/database"
	"statement-importer/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// AccountRepositorySuite defines the test suite for AccountRepository
type AccountRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo AccountRepositoryInterface
}

// SetupTest runs before each test in the suite
func (s *AccountRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewAccountRepository(s.db.DB)
}

// TearDownTest runs after each test in the suite
func (s *AccountRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestAccountRepositorySuite(t *testing.T) {
	suite.Run(t, new(AccountRepositorySuite))
}

func (s *AccountRepositorySuite) TestCreate() {
	account := &models.Account{
		Name:           gofakeit.Company(),
		Kind:           models.AccountKindChecking,
		OpeningBalance: decimal.NewFromFloat(1000.00),
	}

	err := s.repo.Create(account)
	s.NoError(err)
	s.NotEqual(uuid.Nil, account.ID)
	s.NotZero(account.CreatedAt)
	s.NotZero(account.UpdatedAt)
}

func (s *AccountRepositorySuite) TestCreate_InvalidKind() {
	err := s.repo.Create(&models.Account{Name: "Savings", Kind: "savings"})
	s.ErrorIs(err, models.ErrInvalidAccountKind)
}

func (s *AccountRepositorySuite) TestGetByIDAndExists() {
	account := database.CreateTestAccount(s.T(), s.db, "Card", models.AccountKindCreditCard)

	found, err := s.repo.GetByID(account.ID)
	s.Require().NoError(err)
	s.Equal("Card", found.Name)
	s.True(found.IsCreditCard())

	exists, err := s.repo.Exists(account.ID)
	s.NoError(err)
	s.True(exists)

	_, err = s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrAccountNotFound)

	exists, err = s.repo.Exists(uuid.New())
	s.NoError(err)
	s.False(exists)
}

func (s *AccountRepositorySuite) TestList() {
	database.CreateTestAccount(s.T(), s.db, "Zeta Card", models.AccountKindCreditCard)
	database.CreateTestAccount(s.T(), s.db, "Alpha Checking", models.AccountKindChecking)

	accounts, err := s.repo.List()
	s.Require().NoError(err)
	s.Require().Len(accounts, 2)
	s.Equal("Alpha Checking", accounts[0].Name)
}
