package repositories

import (
	"testing"

	"finpulse-api/internal/database"
	"finpulse-api/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// CategoryFeedbackRepositorySuite defines the test suite for CategoryFeedbackRepository
type CategoryFeedbackRepositorySuite struct {
	suite.Suite
	db     *database.DB
	repo   CategoryFeedbackRepositoryInterface
	userID uuid.UUID
}

// SetupTest runs before each test in the suite
func (s *CategoryFeedbackRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewCategoryFeedbackRepository(s.db.DB)
	s.userID = uuid.New()
}

// TearDownTest runs after each test in the suite
func (s *CategoryFeedbackRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestCategoryFeedbackRepositorySuite runs the test suite
func TestCategoryFeedbackRepositorySuite(t *testing.T) {
	suite.Run(t, new(CategoryFeedbackRepositorySuite))
}

func (s *CategoryFeedbackRepositorySuite) TestCreate() {
	txn := database.CreateTestTransaction(s.T(), s.db, s.userID, "1299.50", models.TransactionTypeDebit)

	feedback := &models.CategoryFeedback{
		UserID:        s.userID,
		TransactionID: txn.ID,
		OldCategory:   "Food & Dining",
		NewCategory:   "Groceries",
	}

	err := s.repo.Create(feedback)
	s.NoError(err)
	s.NotEqual(uuid.Nil, feedback.ID)
}

func (s *CategoryFeedbackRepositorySuite) TestCreate_MissingNewCategory() {
	feedback := &models.CategoryFeedback{
		UserID:        s.userID,
		TransactionID: uuid.New(),
		OldCategory:   "Food & Dining",
	}

	err := s.repo.Create(feedback)
	s.Error(err)
}

func (s *CategoryFeedbackRepositorySuite) TestGetByUserID() {
	txn := database.CreateTestTransaction(s.T(), s.db, s.userID, "1299.50", models.TransactionTypeDebit)

	for _, category := range []string{"Groceries", "Transport", "Entertainment"} {
		s.NoError(s.repo.Create(&models.CategoryFeedback{
			UserID:        s.userID,
			TransactionID: txn.ID,
			OldCategory:   "Food & Dining",
			NewCategory:   category,
		}))
	}

	feedback, err := s.repo.GetByUserID(s.userID, 2)
	s.NoError(err)
	s.Len(feedback, 2)
}
