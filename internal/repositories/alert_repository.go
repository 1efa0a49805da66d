package repositories

import (
	"errors"
	"fmt"

	"finpulse-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrAlertNotFound = errors.New("alert not found")
)

// alertRepository implements AlertRepositoryInterface
type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository creates a new alert repository
func NewAlertRepository(db *gorm.DB) AlertRepositoryInterface {
	return &alertRepository{
		db: db,
	}
}

// Create creates a new alert
func (r *alertRepository) Create(alert *models.Alert) error {
	if err := r.db.Create(alert).Error; err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}
	return nil
}

// GetByID retrieves an alert by ID
func (r *alertRepository) GetByID(id uuid.UUID) (*models.Alert, error) {
	alert := &models.Alert{ID: id}
	if err := r.db.First(alert).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAlertNotFound
		}
		return nil, fmt.Errorf("failed to get alert: %w", err)
	}
	return alert, nil
}

// GetByUserID retrieves alerts for a user, optionally filtered by status
// and alert type, newest first
func (r *alertRepository) GetByUserID(userID uuid.UUID, status, alertType string) ([]models.Alert, error) {
	var alerts []models.Alert

	query := r.db.Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if alertType != "" {
		query = query.Where("alert_type = ?", alertType)
	}

	if err := query.Order("created_at DESC").Find(&alerts).Error; err != nil {
		return nil, fmt.Errorf("failed to get alerts: %w", err)
	}
	return alerts, nil
}

// HasActiveBudgetWarning reports whether an unresolved budget warning
// already exists for the user and category. Used to suppress duplicate
// warnings while one is still active.
func (r *alertRepository) HasActiveBudgetWarning(userID uuid.UUID, category string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Alert{}).
		Where("user_id = ? AND category = ? AND alert_type = ? AND status = ?",
			userID, category, models.AlertTypeBudgetWarning, models.AlertStatusActive).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check active budget warnings: %w", err)
	}
	return count > 0, nil
}

// Update persists alert state changes
func (r *alertRepository) Update(alert *models.Alert) error {
	result := r.db.Model(alert).Updates(map[string]interface{}{
		"status":      alert.Status,
		"resolved_at": alert.ResolvedAt,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update alert: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAlertNotFound
	}
	return nil
}

// CountActiveBySeverity returns the number of active alerts per severity
func (r *alertRepository) CountActiveBySeverity(userID uuid.UUID) (map[string]int64, error) {
	type severityCount struct {
		Severity string
		Count    int64
	}

	var rows []severityCount
	if err := r.db.Model(&models.Alert{}).
		Select("severity, COUNT(*) as count").
		Where("user_id = ? AND status = ?", userID, models.AlertStatusActive).
		Group("severity").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count alerts by severity: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Severity] = row.Count
	}
	return counts, nil
}
