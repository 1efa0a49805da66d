package repositories

import (
	"testing"
	"time"

	"finpulse-api/internal/database"
	"finpulse-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// BudgetProfileRepositorySuite defines the test suite for BudgetProfileRepository
type BudgetProfileRepositorySuite struct {
	suite.Suite
	db     *database.DB
	repo   BudgetProfileRepositoryInterface
	userID uuid.UUID
}

// SetupTest runs before each test in the suite
func (s *BudgetProfileRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewBudgetProfileRepository(s.db.DB)
	s.userID = uuid.New()
}

// TearDownTest runs after each test in the suite
func (s *BudgetProfileRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestBudgetProfileRepositorySuite runs the test suite
func TestBudgetProfileRepositorySuite(t *testing.T) {
	suite.Run(t, new(BudgetProfileRepositorySuite))
}

func (s *BudgetProfileRepositorySuite) TestUpsert_CreatesFirstProfile() {
	profile := &models.BudgetProfile{
		UserID:               s.userID,
		NeedsRatio:           0.5,
		WantsRatio:           0.3,
		SavingsRatio:         0.2,
		BaselineExpense:      decimal.RequireFromString("42000.00"),
		ExpenseVolatility:    decimal.RequireFromString("0.18"),
		AvgMonthlySurplus:    decimal.RequireFromString("18000.00"),
		SafeInvestableAmount: decimal.RequireFromString("9000.00"),
		ComputedAt:           time.Now().UTC(),
	}

	s.NoError(s.repo.Upsert(profile))
	s.NotEqual(uuid.Nil, profile.ID)

	stored, err := s.repo.GetByUserID(s.userID)
	s.NoError(err)
	s.True(stored.AvgMonthlySurplus.Equal(decimal.RequireFromString("18000.00")))
}

func (s *BudgetProfileRepositorySuite) TestUpsert_OverwritesExisting() {
	database.CreateTestProfile(s.T(), s.db, s.userID, "18000.00", "42000.00", "0.18", "9000.00")

	recomputed := &models.BudgetProfile{
		UserID:               s.userID,
		NeedsRatio:           0.55,
		WantsRatio:           0.25,
		SavingsRatio:         0.2,
		BaselineExpense:      decimal.RequireFromString("45000.00"),
		ExpenseVolatility:    decimal.RequireFromString("0.22"),
		AvgMonthlySurplus:    decimal.RequireFromString("15000.00"),
		SafeInvestableAmount: decimal.RequireFromString("7500.00"),
		ComputedAt:           time.Now().UTC(),
	}

	s.NoError(s.repo.Upsert(recomputed))

	stored, err := s.repo.GetByUserID(s.userID)
	s.NoError(err)
	s.True(stored.AvgMonthlySurplus.Equal(decimal.RequireFromString("15000.00")))
	s.InDelta(0.55, stored.NeedsRatio, 0.0001)

	// Still a single row per user
	var count int64
	s.NoError(s.db.DB.Model(&models.BudgetProfile{}).Where("user_id = ?", s.userID).Count(&count).Error)
	s.Equal(int64(1), count)
}

func (s *BudgetProfileRepositorySuite) TestGetByUserID_NotFound() {
	_, err := s.repo.GetByUserID(uuid.New())
	s.ErrorIs(err, ErrProfileNotFound)
}
