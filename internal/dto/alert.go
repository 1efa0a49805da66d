package dto

import (
	"time"

	"finpulse-api/internal/models"
)

// AlertFilters contains filtering options for alert list queries
type AlertFilters struct {
	Status string `query:"status" validate:"omitempty,alert_status"`
	Type   string `query:"type" validate:"omitempty,oneof=anomaly budget_warning"`
}

// AlertResponse is the alert as returned by the API
type AlertResponse struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	TransactionID string     `json:"transaction_id,omitempty"`
	AlertType     string     `json:"alert_type"`
	Severity      string     `json:"severity"`
	Status        string     `json:"status"`
	Category      string     `json:"category,omitempty"`
	Message       string     `json:"message"`
	CreatedAt     time.Time  `json:"created_at"`
	ResolvedAt    *time.Time `json:"resolved_at,omitempty"`
}

// ListAlertsResponse is the alert collection for a user
type ListAlertsResponse struct {
	Alerts []AlertResponse `json:"alerts"`
}

// ToAlertResponse maps an alert model to its API representation
func ToAlertResponse(a *models.Alert) AlertResponse {
	resp := AlertResponse{
		ID:         a.ID.String(),
		UserID:     a.UserID.String(),
		AlertType:  a.AlertType,
		Severity:   a.Severity,
		Status:     a.Status,
		Category:   a.Category,
		Message:    a.Message,
		CreatedAt:  a.CreatedAt,
		ResolvedAt: a.ResolvedAt,
	}
	if a.TransactionID != nil {
		resp.TransactionID = a.TransactionID.String()
	}
	return resp
}
