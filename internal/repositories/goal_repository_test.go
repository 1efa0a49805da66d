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

// GoalRepositorySuite defines the test suite for GoalRepository
type GoalRepositorySuite struct {
	suite.Suite
	db     *database.DB
	repo   GoalRepositoryInterface
	userID uuid.UUID
}

// SetupTest runs before each test in the suite
func (s *GoalRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewGoalRepository(s.db.DB)
	s.userID = uuid.New()
}

// TearDownTest runs after each test in the suite
func (s *GoalRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestGoalRepositorySuite runs the test suite
func TestGoalRepositorySuite(t *testing.T) {
	suite.Run(t, new(GoalRepositorySuite))
}

func (s *GoalRepositorySuite) TestCreate() {
	goal := &models.Goal{
		UserID:       s.userID,
		GoalName:     "Europe Trip",
		TargetAmount: decimal.RequireFromString("150000.00"),
		Deadline:     time.Now().UTC().AddDate(1, 0, 0),
	}

	err := s.repo.Create(goal)
	s.NoError(err)
	s.NotEqual(uuid.Nil, goal.ID)
	s.Equal(models.GoalStatusActive, goal.Status)
}

func (s *GoalRepositorySuite) TestCreate_NonPositiveTarget() {
	goal := &models.Goal{
		UserID:       s.userID,
		GoalName:     "Broken",
		TargetAmount: decimal.Zero,
		Deadline:     time.Now().UTC().AddDate(1, 0, 0),
	}

	err := s.repo.Create(goal)
	s.Error(err)
	s.ErrorIs(err, models.ErrInvalidGoalTarget)
}

func (s *GoalRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrGoalNotFound)
}

func (s *GoalRepositorySuite) TestGetByUserID_OrderedByDeadline() {
	later := database.CreateTestGoal(s.T(), s.db, s.userID, "100000.00", "0.00", time.Now().UTC().AddDate(2, 0, 0))
	sooner := database.CreateTestGoal(s.T(), s.db, s.userID, "50000.00", "0.00", time.Now().UTC().AddDate(0, 6, 0))

	goals, err := s.repo.GetByUserID(s.userID)
	s.NoError(err)
	s.Len(goals, 2)
	s.Equal(sooner.ID, goals[0].ID)
	s.Equal(later.ID, goals[1].ID)
}

func (s *GoalRepositorySuite) TestUpdate_Progress() {
	goal := database.CreateTestGoal(s.T(), s.db, s.userID, "100000.00", "20000.00", time.Now().UTC().AddDate(1, 0, 0))

	goal.CurrentAmount = decimal.RequireFromString("45000.00")
	score := 0.72
	goal.FeasibilityScore = &score
	s.NoError(s.repo.Update(goal))

	stored, err := s.repo.GetByID(goal.ID)
	s.NoError(err)
	s.True(stored.CurrentAmount.Equal(decimal.RequireFromString("45000.00")))
	s.NotNil(stored.FeasibilityScore)
	s.InDelta(0.72, *stored.FeasibilityScore, 0.0001)
}

func (s *GoalRepositorySuite) TestUpdate_StatusCompleted() {
	goal := database.CreateTestGoal(s.T(), s.db, s.userID, "100000.00", "100000.00", time.Now().UTC().AddDate(1, 0, 0))

	goal.Status = models.GoalStatusCompleted
	s.NoError(s.repo.Update(goal))

	stored, err := s.repo.GetByID(goal.ID)
	s.NoError(err)
	s.Equal(models.GoalStatusCompleted, stored.Status)
}

func (s *GoalRepositorySuite) TestDelete() {
	goal := database.CreateTestGoal(s.T(), s.db, s.userID, "100000.00", "0.00", time.Now().UTC().AddDate(1, 0, 0))

	s.NoError(s.repo.Delete(goal.ID))

	_, err := s.repo.GetByID(goal.ID)
	s.ErrorIs(err, ErrGoalNotFound)
}
