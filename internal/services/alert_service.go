package services

import (
	"context"

	"finpulse-api/internal/models"
	"finpulse-api/internal/notify"
	"finpulse-api/internal/repositories"

	"github.com/google/uuid"
)

// AlertService implements AlertServiceInterface. Alert persistence and
// notification delivery are independent: a failed delivery is logged and
// never rolls back the stored alert.
type AlertService struct {
	alertRepo   repositories.AlertRepositoryInterface
	notifier    notify.NotifierInterface
	pipelineLog PipelineLoggerInterface
	metrics     MetricsRecorderInterface
}

// NewAlertService creates a new alert service
func NewAlertService(
	alertRepo repositories.AlertRepositoryInterface,
	notifier notify.NotifierInterface,
	pipelineLog PipelineLoggerInterface,
	metrics MetricsRecorderInterface,
) AlertServiceInterface {
	return &AlertService{
		alertRepo:   alertRepo,
		notifier:    notifier,
		pipelineLog: pipelineLog,
		metrics:     metrics,
	}
}

// Raise persists the alert and dispatches notifications for it
func (s *AlertService) Raise(ctx context.Context, alert *models.Alert) (*models.Alert, error) {
	if err := s.alertRepo.Create(alert); err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter("alert.raised", map[string]string{
		"alert_type": alert.AlertType,
		"severity":   alert.Severity,
	})
	s.pipelineLog.LogAlertRaised(ctx, alert.ID, alert.AlertType, alert.Severity)

	s.dispatch(ctx, alert)

	return alert, nil
}

// dispatch routes the alert to notification channels. All severities get a
// push; high and critical also get an email.
func (s *AlertService) dispatch(ctx context.Context, alert *models.Alert) {
	userID := alert.UserID.String()

	if err := s.notifier.SendPush(ctx, userID, alertTitle(alert), alert.Message); err != nil {
		s.pipelineLog.LogNotificationFailed(ctx, alert.ID, "push", err.Error())
	}

	if alert.RequiresImmediateNotification() {
		if err := s.notifier.SendEmail(ctx, userID, alertTitle(alert), alert.Message); err != nil {
			s.pipelineLog.LogNotificationFailed(ctx, alert.ID, "email", err.Error())
		}
	}
}

// List retrieves a user's alerts with optional status and type filters
func (s *AlertService) List(userID uuid.UUID, status, alertType string) ([]models.Alert, error) {
	return s.alertRepo.GetByUserID(userID, status, alertType)
}

// Resolve transitions an alert from active to resolved
func (s *AlertService) Resolve(ctx context.Context, userID, alertID uuid.UUID) (*models.Alert, error) {
	alert, err := s.alertRepo.GetByID(alertID)
	if err != nil {
		return nil, err
	}
	if alert.UserID != userID {
		return nil, repositories.ErrAlertNotFound
	}

	if err := alert.Resolve(); err != nil {
		return nil, err
	}

	if err := s.alertRepo.Update(alert); err != nil {
		return nil, err
	}

	return alert, nil
}

// CountActiveHigh returns the number of currently active high severity
// alerts for a user. Feeds the investment readiness gate.
func (s *AlertService) CountActiveHigh(userID uuid.UUID) (int64, error) {
	counts, err := s.alertRepo.CountActiveBySeverity(userID)
	if err != nil {
		return 0, err
	}
	return counts[models.AlertSeverityHigh], nil
}

func alertTitle(alert *models.Alert) string {
	switch alert.AlertType {
	case models.AlertTypeAnomaly:
		return "Unusual transaction detected"
	case models.AlertTypeBudgetWarning:
		return "Budget warning"
	default:
		return "Alert"
	}
}
