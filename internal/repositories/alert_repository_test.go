package repositories

import (
	"testing"

	"finpulse-api/internal/database"
	"finpulse-api/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// AlertRepositorySuite defines the test suite for AlertRepository
type AlertRepositorySuite struct {
	suite.Suite
	db     *database.DB
	repo   AlertRepositoryInterface
	userID uuid.UUID
}

// SetupTest runs before each test in the suite
func (s *AlertRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewAlertRepository(s.db.DB)
	s.userID = uuid.New()
}

// TearDownTest runs after each test in the suite
func (s *AlertRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestAlertRepositorySuite runs the test suite
func TestAlertRepositorySuite(t *testing.T) {
	suite.Run(t, new(AlertRepositorySuite))
}

func (s *AlertRepositorySuite) createAlert(alertType, severity, category string) *models.Alert {
	alert := &models.Alert{
		UserID:    s.userID,
		AlertType: alertType,
		Severity:  severity,
		Category:  category,
		Message:   "test alert",
	}
	s.NoError(s.repo.Create(alert))
	return alert
}

func (s *AlertRepositorySuite) TestCreate() {
	txnID := uuid.New()
	alert := &models.Alert{
		UserID:        s.userID,
		TransactionID: &txnID,
		AlertType:     models.AlertTypeAnomaly,
		Severity:      models.AlertSeverityHigh,
		Message:       "Unusual transaction of 90000.00 detected",
	}

	err := s.repo.Create(alert)
	s.NoError(err)
	s.NotEqual(uuid.Nil, alert.ID)
	s.Equal(models.AlertStatusActive, alert.Status)
}

func (s *AlertRepositorySuite) TestCreate_InvalidSeverity() {
	alert := &models.Alert{
		UserID:    s.userID,
		AlertType: models.AlertTypeAnomaly,
		Severity:  "urgent",
		Message:   "bad severity",
	}

	err := s.repo.Create(alert)
	s.Error(err)
	s.ErrorIs(err, models.ErrInvalidAlertSeverity)
}

func (s *AlertRepositorySuite) TestGetByUserID_FilterByStatus() {
	active := s.createAlert(models.AlertTypeAnomaly, models.AlertSeverityHigh, "")
	resolved := s.createAlert(models.AlertTypeBudgetWarning, models.AlertSeverityMedium, "Transport")
	s.NoError(resolved.Resolve())
	s.NoError(s.repo.Update(resolved))

	alerts, err := s.repo.GetByUserID(s.userID, models.AlertStatusActive, "")
	s.NoError(err)
	s.Len(alerts, 1)
	s.Equal(active.ID, alerts[0].ID)
}

func (s *AlertRepositorySuite) TestGetByUserID_FilterByType() {
	s.createAlert(models.AlertTypeAnomaly, models.AlertSeverityHigh, "")
	s.createAlert(models.AlertTypeBudgetWarning, models.AlertSeverityMedium, "Transport")

	alerts, err := s.repo.GetByUserID(s.userID, "", models.AlertTypeBudgetWarning)
	s.NoError(err)
	s.Len(alerts, 1)
	s.Equal(models.AlertTypeBudgetWarning, alerts[0].AlertType)
}

func (s *AlertRepositorySuite) TestHasActiveBudgetWarning() {
	s.createAlert(models.AlertTypeBudgetWarning, models.AlertSeverityMedium, "Food & Dining")

	exists, err := s.repo.HasActiveBudgetWarning(s.userID, "Food & Dining")
	s.NoError(err)
	s.True(exists)

	exists, err = s.repo.HasActiveBudgetWarning(s.userID, "Transport")
	s.NoError(err)
	s.False(exists)
}

func (s *AlertRepositorySuite) TestHasActiveBudgetWarning_ResolvedDoesNotCount() {
	alert := s.createAlert(models.AlertTypeBudgetWarning, models.AlertSeverityMedium, "Food & Dining")
	s.NoError(alert.Resolve())
	s.NoError(s.repo.Update(alert))

	exists, err := s.repo.HasActiveBudgetWarning(s.userID, "Food & Dining")
	s.NoError(err)
	s.False(exists)
}

func (s *AlertRepositorySuite) TestUpdate_Resolve() {
	alert := s.createAlert(models.AlertTypeAnomaly, models.AlertSeverityHigh, "")

	s.NoError(alert.Resolve())
	s.NoError(s.repo.Update(alert))

	stored, err := s.repo.GetByID(alert.ID)
	s.NoError(err)
	s.Equal(models.AlertStatusResolved, stored.Status)
	s.NotNil(stored.ResolvedAt)
}

func (s *AlertRepositorySuite) TestResolve_AlreadyResolved() {
	alert := s.createAlert(models.AlertTypeAnomaly, models.AlertSeverityHigh, "")
	s.NoError(alert.Resolve())

	err := alert.Resolve()
	s.ErrorIs(err, models.ErrAlertAlreadyResolved)
}

func (s *AlertRepositorySuite) TestCountActiveBySeverity() {
	s.createAlert(models.AlertTypeAnomaly, models.AlertSeverityHigh, "")
	s.createAlert(models.AlertTypeAnomaly, models.AlertSeverityHigh, "")
	s.createAlert(models.AlertTypeBudgetWarning, models.AlertSeverityMedium, "Transport")

	counts, err := s.repo.CountActiveBySeverity(s.userID)
	s.NoError(err)
	s.Equal(int64(2), counts[models.AlertSeverityHigh])
	s.Equal(int64(1), counts[models.AlertSeverityMedium])
}
