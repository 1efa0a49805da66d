package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AlertTypeAnomaly       = "anomaly"
	AlertTypeBudgetWarning = "budget_warning"

	AlertSeverityLow      = "low"
	AlertSeverityMedium   = "medium"
	AlertSeverityHigh     = "high"
	AlertSeverityCritical = "critical"

	AlertStatusActive   = "active"
	AlertStatusResolved = "resolved"
)

var (
	ErrInvalidAlertType     = errors.New("invalid alert type")
	ErrInvalidAlertSeverity = errors.New("invalid alert severity")
	ErrAlertAlreadyResolved = errors.New("alert is already resolved")
)

// Alert is a user-facing warning raised by the ingestion pipeline.
// Anomaly alerts reference the transaction that triggered them; budget
// warnings carry the budget category instead, since no single transaction
// owns a threshold crossing.
type Alert struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	TransactionID *uuid.UUID `gorm:"type:uuid;index" json:"transaction_id,omitempty"`
	AlertType     string     `gorm:"type:varchar(30);not null" json:"alert_type"`
	Severity      string     `gorm:"type:varchar(20);not null" json:"severity"`
	Status        string     `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	Category      string     `gorm:"type:varchar(50)" json:"category,omitempty"`
	Message       string     `gorm:"type:text;not null" json:"message"`
	CreatedAt     time.Time  `gorm:"not null;index" json:"created_at"`
	ResolvedAt    *time.Time `json:"resolved_at,omitempty"`
}

// BeforeCreate hook for Alert
func (a *Alert) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = AlertStatusActive
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	return a.Validate()
}

// Validate validates the alert fields
func (a *Alert) Validate() error {
	if a.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if !IsValidAlertType(a.AlertType) {
		return ErrInvalidAlertType
	}
	if !IsValidAlertSeverity(a.Severity) {
		return ErrInvalidAlertSeverity
	}
	if a.Message == "" {
		return errors.New("alert message is required")
	}
	return nil
}

// IsActive returns true while the alert has not been resolved
func (a *Alert) IsActive() bool {
	return a.Status == AlertStatusActive
}

// Resolve marks the alert resolved
func (a *Alert) Resolve() error {
	if !a.IsActive() {
		return ErrAlertAlreadyResolved
	}
	now := time.Now().UTC()
	a.Status = AlertStatusResolved
	a.ResolvedAt = &now
	return nil
}

// RequiresImmediateNotification reports whether the severity warrants a
// synchronous email-equivalent notification in addition to push.
func (a *Alert) RequiresImmediateNotification() bool {
	return a.Severity == AlertSeverityHigh || a.Severity == AlertSeverityCritical
}

// TableName returns the table name for Alert
func (a *Alert) TableName() string {
	return "alerts"
}

// IsValidAlertType checks if the alert type is valid
func IsValidAlertType(alertType string) bool {
	switch alertType {
	case AlertTypeAnomaly, AlertTypeBudgetWarning:
		return true
	default:
		return false
	}
}

// IsValidAlertSeverity checks if the severity is valid
func IsValidAlertSeverity(severity string) bool {
	switch severity {
	case AlertSeverityLow, AlertSeverityMedium, AlertSeverityHigh, AlertSeverityCritical:
		return true
	default:
		return false
	}
}

// IsValidAlertStatus checks if the status is valid
func IsValidAlertStatus(status string) bool {
	switch status {
	case AlertStatusActive, AlertStatusResolved:
		return true
	default:
		return false
	}
}
