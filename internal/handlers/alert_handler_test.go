package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"finpulse-api/internal/dto"
	"finpulse-api/internal/models"
	"finpulse-api/internal/repositories"
	"finpulse-api/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type AlertHandlerTestSuite struct {
	suite.Suite
	handler   *AlertHandler
	echo      *echo.Echo
	userID    uuid.UUID
	ctrl      *gomock.Controller
	mockAlert *service_mocks.MockAlertServiceInterface
}

func TestAlertHandlerSuite(t *testing.T) {
	suite.Run(t, new(AlertHandlerTestSuite))
}

func (s *AlertHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.userID = uuid.New()
	s.ctrl = gomock.NewController(s.T())
	s.mockAlert = service_mocks.NewMockAlertServiceInterface(s.ctrl)
	s.handler = NewAlertHandler(s.mockAlert)
}

func (s *AlertHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AlertHandlerTestSuite) newContext(url string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)
	return c, rec
}

func (s *AlertHandlerTestSuite) sampleAlert(alertType, severity string) models.Alert {
	return models.Alert{
		ID:        uuid.New(),
		UserID:    s.userID,
		AlertType: alertType,
		Severity:  severity,
		Status:    models.AlertStatusActive,
		Message:   "Unusual transaction detected",
		CreatedAt: time.Now(),
	}
}

func (s *AlertHandlerTestSuite) TestListAlerts_Success() {
	alerts := []models.Alert{
		s.sampleAlert(models.AlertTypeAnomaly, models.AlertSeverityHigh),
		s.sampleAlert(models.AlertTypeBudgetWarning, models.AlertSeverityMedium),
	}

	s.mockAlert.EXPECT().List(s.userID, "", "").Return(alerts, nil)

	c, rec := s.newContext("/api/v1/alerts")

	s.NoError(s.handler.ListAlerts(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ListAlertsResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Len(response.Alerts, 2)
}

func (s *AlertHandlerTestSuite) TestListAlerts_FiltersAreForwarded() {
	s.mockAlert.EXPECT().
		List(s.userID, models.AlertStatusActive, models.AlertTypeAnomaly).
		Return([]models.Alert{}, nil)

	c, rec := s.newContext("/api/v1/alerts?status=active&type=anomaly")

	s.NoError(s.handler.ListAlerts(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AlertHandlerTestSuite) TestListAlerts_InvalidStatus() {
	c, _ := s.newContext("/api/v1/alerts?status=open")

	// alert_status validation rejects the value before the service is reached
	s.Error(s.handler.ListAlerts(c))
}

func (s *AlertHandlerTestSuite) TestListAlerts_InvalidType() {
	c, _ := s.newContext("/api/v1/alerts?type=fraud")

	s.Error(s.handler.ListAlerts(c))
}

func (s *AlertHandlerTestSuite) TestResolveAlert_Success() {
	alert := s.sampleAlert(models.AlertTypeAnomaly, models.AlertSeverityHigh)
	alert.Status = models.AlertStatusResolved
	resolvedAt := time.Now()
	alert.ResolvedAt = &resolvedAt

	s.mockAlert.EXPECT().
		Resolve(gomock.Any(), s.userID, alert.ID).
		Return(&alert, nil)

	req := httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/api/v1/alerts/%s/resolve", alert.ID), nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)
	c.SetParamNames("id")
	c.SetParamValues(alert.ID.String())

	s.NoError(s.handler.ResolveAlert(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.AlertResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(models.AlertStatusResolved, response.Status)
	s.NotNil(response.ResolvedAt)
}

func (s *AlertHandlerTestSuite) TestResolveAlert_AlreadyResolved() {
	alertID := uuid.New()

	s.mockAlert.EXPECT().
		Resolve(gomock.Any(), s.userID, alertID).
		Return(nil, models.ErrAlertAlreadyResolved)

	req := httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/api/v1/alerts/%s/resolve", alertID), nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)
	c.SetParamNames("id")
	c.SetParamValues(alertID.String())

	s.NoError(s.handler.ResolveAlert(c))
	s.Equal(http.StatusConflict, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("ALERT_002", response.Error.Code)
}

func (s *AlertHandlerTestSuite) TestResolveAlert_NotFound() {
	alertID := uuid.New()

	s.mockAlert.EXPECT().
		Resolve(gomock.Any(), s.userID, alertID).
		Return(nil, repositories.ErrAlertNotFound)

	req := httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/api/v1/alerts/%s/resolve", alertID), nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)
	c.SetParamNames("id")
	c.SetParamValues(alertID.String())

	s.NoError(s.handler.ResolveAlert(c))
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *AlertHandlerTestSuite) TestResolveAlert_InvalidID() {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/alerts/not-a-uuid/resolve", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	s.NoError(s.handler.ResolveAlert(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}
