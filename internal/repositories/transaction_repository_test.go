package repositories

import (
	"testing"
	"time"

	"finpulse-api/internal/database"
	"finpulse-api/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// TransactionRepositorySuite defines the test suite for TransactionRepository
type TransactionRepositorySuite struct {
	suite.Suite
	db     *database.DB
	repo   TransactionRepositoryInterface
	userID uuid.UUID
}

// SetupTest runs before each test in the suite
func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
	s.userID = uuid.New()
}

// TearDownTest runs after each test in the suite
func (s *TransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestTransactionRepositorySuite runs the test suite
func TestTransactionRepositorySuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

func (s *TransactionRepositorySuite) TestCreate() {
	txn := &models.Transaction{
		UserID:          s.userID,
		Amount:          decimal.RequireFromString("1299.50"),
		TransactionType: models.TransactionTypeDebit,
		RawDescription:  "SWIGGY ORDER 99812 UPI",
		Category:        "Food & Dining",
		CatMethod:       models.CatMethodModel,
		ConfidenceScore: 0.92,
	}

	err := s.repo.Create(txn)
	s.NoError(err)
	s.NotEqual(uuid.Nil, txn.ID)
	s.NotZero(txn.CreatedAt)
	s.NotZero(txn.TxnTimestamp)
}

func (s *TransactionRepositorySuite) TestCreate_InvalidType() {
	txn := &models.Transaction{
		UserID:          s.userID,
		Amount:          decimal.RequireFromString("100.00"),
		TransactionType: "transfer",
		RawDescription:  "some transfer",
	}

	err := s.repo.Create(txn)
	s.Error(err)
	s.ErrorIs(err, models.ErrInvalidTransactionType)
}

func (s *TransactionRepositorySuite) TestCreate_NonPositiveAmount() {
	txn := &models.Transaction{
		UserID:          s.userID,
		Amount:          decimal.Zero,
		TransactionType: models.TransactionTypeDebit,
		RawDescription:  "zero amount",
	}

	err := s.repo.Create(txn)
	s.Error(err)
	s.ErrorIs(err, models.ErrInvalidAmount)
}

func (s *TransactionRepositorySuite) TestCreate_DefaultsCategory() {
	txn := &models.Transaction{
		UserID:          s.userID,
		Amount:          decimal.RequireFromString("450.00"),
		TransactionType: models.TransactionTypeDebit,
		RawDescription:  gofakeit.CreditCardType() + " POS 4519",
	}

	err := s.repo.Create(txn)
	s.NoError(err)
	s.Equal(models.CategoryUncategorized, txn.Category)
}

func (s *TransactionRepositorySuite) TestGetByID() {
	created := database.CreateTestTransaction(s.T(), s.db, s.userID, "1299.50", models.TransactionTypeDebit)

	found, err := s.repo.GetByID(created.ID)
	s.NoError(err)
	s.Equal(created.ID, found.ID)
	s.True(created.Amount.Equal(found.Amount))
}

func (s *TransactionRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestGetWithFilters_ByCategory() {
	database.CreateTestTransaction(s.T(), s.db, s.userID, "500.00", models.TransactionTypeDebit)
	other := &models.Transaction{
		UserID:          s.userID,
		Amount:          decimal.RequireFromString("1500.00"),
		TransactionType: models.TransactionTypeDebit,
		RawDescription:  "UBER TRIP 8812",
		Category:        "Transport",
	}
	s.NoError(s.repo.Create(other))

	results, total, err := s.repo.GetWithFilters(models.TransactionFilters{
		UserID:   s.userID,
		Category: "Transport",
		Limit:    10,
	})
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Len(results, 1)
	s.Equal("Transport", results[0].Category)
}

func (s *TransactionRepositorySuite) TestGetWithFilters_AnomalousOnly() {
	normal := database.CreateTestTransaction(s.T(), s.db, s.userID, "500.00", models.TransactionTypeDebit)
	flagged := database.CreateTestTransaction(s.T(), s.db, s.userID, "90000.00", models.TransactionTypeDebit)
	s.NoError(s.repo.MarkAnomalous(flagged.ID, 0.95))

	anomalous := true
	results, total, err := s.repo.GetWithFilters(models.TransactionFilters{
		UserID:      s.userID,
		IsAnomalous: &anomalous,
		Limit:       10,
	})
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Len(results, 1)
	s.Equal(flagged.ID, results[0].ID)
	s.NotEqual(normal.ID, results[0].ID)
}

func (s *TransactionRepositorySuite) TestGetWithFilters_Pagination() {
	for i := 0; i < 5; i++ {
		database.CreateTestTransaction(s.T(), s.db, s.userID, "100.00", models.TransactionTypeDebit)
	}

	results, total, err := s.repo.GetWithFilters(models.TransactionFilters{
		UserID: s.userID,
		Offset: 2,
		Limit:  2,
	})
	s.NoError(err)
	s.Equal(int64(5), total)
	s.Len(results, 2)
}

func (s *TransactionRepositorySuite) TestGetByDateRange() {
	old := &models.Transaction{
		UserID:          s.userID,
		Amount:          decimal.RequireFromString("200.00"),
		TransactionType: models.TransactionTypeDebit,
		RawDescription:  gofakeit.Company() + " PURCHASE",
		TxnTimestamp:    time.Now().UTC().AddDate(0, -4, 0),
	}
	s.NoError(s.repo.Create(old))
	recent := database.CreateTestTransaction(s.T(), s.db, s.userID, "300.00", models.TransactionTypeDebit)

	start := time.Now().UTC().AddDate(0, -1, 0)
	end := time.Now().UTC().Add(time.Hour)

	results, err := s.repo.GetByDateRange(s.userID, start, end)
	s.NoError(err)
	s.Len(results, 1)
	s.Equal(recent.ID, results[0].ID)
}

func (s *TransactionRepositorySuite) TestUpdateCategory() {
	txn := database.CreateTestTransaction(s.T(), s.db, s.userID, "1299.50", models.TransactionTypeDebit)

	err := s.repo.UpdateCategory(txn.ID, "Groceries")
	s.NoError(err)

	updated, err := s.repo.GetByID(txn.ID)
	s.NoError(err)
	s.Equal("Groceries", updated.Category)
	// Original signals survive a manual correction
	s.Equal(txn.ConfidenceScore, updated.ConfidenceScore)
	s.Equal(txn.CatMethod, updated.CatMethod)
}

func (s *TransactionRepositorySuite) TestUpdateCategory_NotFound() {
	err := s.repo.UpdateCategory(uuid.New(), "Groceries")
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestMarkAnomalous() {
	txn := database.CreateTestTransaction(s.T(), s.db, s.userID, "90000.00", models.TransactionTypeDebit)

	err := s.repo.MarkAnomalous(txn.ID, 0.97)
	s.NoError(err)

	updated, err := s.repo.GetByID(txn.ID)
	s.NoError(err)
	s.True(updated.IsAnomalous)
	s.NotNil(updated.AnomalyScore)
	s.InDelta(0.97, *updated.AnomalyScore, 0.0001)
}

func (s *TransactionRepositorySuite) TestGetRecentByUserID() {
	for i := 0; i < 4; i++ {
		database.CreateTestTransaction(s.T(), s.db, s.userID, "100.00", models.TransactionTypeDebit)
	}

	results, err := s.repo.GetRecentByUserID(s.userID, 3)
	s.NoError(err)
	s.Len(results, 3)
}
