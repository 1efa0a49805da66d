package handlers

import (
	stderrors "errors"
	"net/http"

	"finpulse-api/internal/dto"
	"finpulse-api/internal/errors"
	"finpulse-api/internal/models"
	"finpulse-api/internal/repositories"
	"finpulse-api/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AlertHandler handles alert HTTP requests
type AlertHandler struct {
	alertService services.AlertServiceInterface
}

// NewAlertHandler creates a new alert handler
func NewAlertHandler(alertService services.AlertServiceInterface) *AlertHandler {
	return &AlertHandler{
		alertService: alertService,
	}
}

// ListAlerts retrieves the caller's alerts, newest first
//
// Method: GET /api/v1/alerts
// Authentication: Required (JWT)
//
// Query parameters:
//   - status: "active" or "resolved"
//   - type: "anomaly" or "budget_warning"
//
// Success Response: 200 OK with the matching alerts
func (h *AlertHandler) ListAlerts(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var filters dto.AlertFilters
	if err := c.Bind(&filters); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&filters); err != nil {
		return err
	}

	alerts, err := h.alertService.List(userID, filters.Status, filters.Type)
	if err != nil {
		return SendSystemError(c, err)
	}

	responses := make([]dto.AlertResponse, 0, len(alerts))
	for i := range alerts {
		responses = append(responses, dto.ToAlertResponse(&alerts[i]))
	}

	return c.JSON(http.StatusOK, dto.ListAlertsResponse{Alerts: responses})
}

// ResolveAlert marks an active alert as resolved
//
// Method: PATCH /api/v1/alerts/:id/resolve
// Authentication: Required (JWT)
//
// Success Response: 200 OK with the resolved alert
//
// Error Responses:
//   - 404: Alert not found or owned by another user
//   - 409: Alert already resolved
func (h *AlertHandler) ResolveAlert(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Alert ID must be a valid UUID"))
	}

	alert, err := h.alertService.Resolve(c.Request().Context(), userID, alertID)
	if err != nil {
		switch {
		case stderrors.Is(err, repositories.ErrAlertNotFound):
			return SendError(c, errors.AlertNotFound)
		case stderrors.Is(err, models.ErrAlertAlreadyResolved):
			return SendError(c, errors.AlertAlreadyResolved)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, dto.ToAlertResponse(alert))
}
