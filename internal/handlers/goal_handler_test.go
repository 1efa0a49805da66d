package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"finpulse-api/internal/dto"
	"finpulse-api/internal/models"
	"finpulse-api/internal/repositories"
	"finpulse-api/internal/services"
	"finpulse-api/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type GoalHandlerTestSuite struct {
	suite.Suite
	handler  *GoalHandler
	echo     *echo.Echo
	userID   uuid.UUID
	ctrl     *gomock.Controller
	mockGoal *service_mocks.MockGoalServiceInterface
}

func TestGoalHandlerSuite(t *testing.T) {
	suite.Run(t, new(GoalHandlerTestSuite))
}

func (s *GoalHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.userID = uuid.New()
	s.ctrl = gomock.NewController(s.T())
	s.mockGoal = service_mocks.NewMockGoalServiceInterface(s.ctrl)
	s.handler = NewGoalHandler(s.mockGoal)
}

func (s *GoalHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *GoalHandlerTestSuite) newJSONContext(method, url, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, url, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)
	return c, rec
}

func (s *GoalHandlerTestSuite) sampleGoal() *models.Goal {
	return &models.Goal{
		ID:            uuid.New(),
		UserID:        s.userID,
		GoalName:      "Goa trip",
		TargetAmount:  decimal.RequireFromString("50000.00"),
		CurrentAmount: decimal.RequireFromString("12500.00"),
		Deadline:      time.Now().AddDate(0, 6, 0),
		Status:        models.GoalStatusActive,
		CreatedAt:     time.Now(),
	}
}

func (s *GoalHandlerTestSuite) TestCreateGoal_Success() {
	goal := s.sampleGoal()

	s.mockGoal.EXPECT().
		Create(gomock.Any(), s.userID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, req dto.CreateGoalRequest) (*models.Goal, error) {
			s.Equal("Goa trip", req.GoalName)
			s.Equal("50000.00", req.TargetAmount)
			return goal, nil
		})

	body := `{"goal_name":"Goa trip","target_amount":"50000.00","deadline":"2027-03-01"}`
	c, rec := s.newJSONContext(http.MethodPost, "/api/v1/goals", body)

	s.NoError(s.handler.CreateGoal(c))
	s.Equal(http.StatusCreated, rec.Code)

	var response dto.GoalResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(goal.ID.String(), response.ID)
	s.Equal("37500.00", response.Remaining)
	s.InDelta(25.0, response.ProgressPercent, 0.001)
}

func (s *GoalHandlerTestSuite) TestCreateGoal_PastDeadline() {
	s.mockGoal.EXPECT().
		Create(gomock.Any(), s.userID, gomock.Any()).
		Return(nil, services.ErrPastDeadline)

	body := `{"goal_name":"Goa trip","target_amount":"50000.00","deadline":"2020-01-01"}`
	c, rec := s.newJSONContext(http.MethodPost, "/api/v1/goals", body)

	s.NoError(s.handler.CreateGoal(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("GOAL_003", response.Error.Code)
}

func (s *GoalHandlerTestSuite) TestCreateGoal_InvalidTarget() {
	s.mockGoal.EXPECT().
		Create(gomock.Any(), s.userID, gomock.Any()).
		Return(nil, models.ErrInvalidGoalTarget)

	body := `{"goal_name":"Goa trip","target_amount":"0","deadline":"2027-03-01"}`
	c, rec := s.newJSONContext(http.MethodPost, "/api/v1/goals", body)

	s.NoError(s.handler.CreateGoal(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("GOAL_002", response.Error.Code)
}

func (s *GoalHandlerTestSuite) TestListGoals_Success() {
	goals := []models.Goal{*s.sampleGoal()}

	s.mockGoal.EXPECT().List(s.userID).Return(goals, nil)

	c, rec := s.newJSONContext(http.MethodGet, "/api/v1/goals", "")

	s.NoError(s.handler.ListGoals(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ListGoalsResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Len(response.Goals, 1)
}

func (s *GoalHandlerTestSuite) TestContributeToGoal_Success() {
	goal := s.sampleGoal()
	goal.CurrentAmount = decimal.RequireFromString("17500.00")

	s.mockGoal.EXPECT().
		Contribute(gomock.Any(), s.userID, goal.ID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _, _ uuid.UUID, amount decimal.Decimal) (*models.Goal, error) {
			s.True(amount.Equal(decimal.RequireFromString("5000.00")))
			return goal, nil
		})

	c, rec := s.newJSONContext(http.MethodPost,
		fmt.Sprintf("/api/v1/goals/%s/contributions", goal.ID), `{"amount":"5000.00"}`)
	c.SetParamNames("id")
	c.SetParamValues(goal.ID.String())

	s.NoError(s.handler.ContributeToGoal(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.GoalResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("17500.00", response.CurrentAmount)
}

func (s *GoalHandlerTestSuite) TestContributeToGoal_NonDecimalAmount() {
	goalID := uuid.New()

	c, rec := s.newJSONContext(http.MethodPost,
		fmt.Sprintf("/api/v1/goals/%s/contributions", goalID), `{"amount":"lots"}`)
	c.SetParamNames("id")
	c.SetParamValues(goalID.String())

	s.NoError(s.handler.ContributeToGoal(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *GoalHandlerTestSuite) TestContributeToGoal_NotFound() {
	goalID := uuid.New()

	s.mockGoal.EXPECT().
		Contribute(gomock.Any(), s.userID, goalID, gomock.Any()).
		Return(nil, repositories.ErrGoalNotFound)

	c, rec := s.newJSONContext(http.MethodPost,
		fmt.Sprintf("/api/v1/goals/%s/contributions", goalID), `{"amount":"5000.00"}`)
	c.SetParamNames("id")
	c.SetParamValues(goalID.String())

	s.NoError(s.handler.ContributeToGoal(c))
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *GoalHandlerTestSuite) TestDeleteGoal_Success() {
	goalID := uuid.New()

	s.mockGoal.EXPECT().Delete(gomock.Any(), s.userID, goalID).Return(nil)

	c, rec := s.newJSONContext(http.MethodDelete, fmt.Sprintf("/api/v1/goals/%s", goalID), "")
	c.SetParamNames("id")
	c.SetParamValues(goalID.String())

	s.NoError(s.handler.DeleteGoal(c))
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *GoalHandlerTestSuite) TestGetGoalInsights_Success() {
	insights := &dto.GoalInsightsResponse{
		ProfileComplete: true,
		Insights: []dto.GoalInsight{
			{
				GoalID:          uuid.NewString(),
				GoalName:        "Goa trip",
				Remaining:       "37500.00",
				DaysLeft:        120,
				MonthlyRequired: "9375.00",
				ProgressPercent: 25.0,
				OnTrack:         true,
			},
		},
	}

	s.mockGoal.EXPECT().Insights(gomock.Any(), s.userID).Return(insights, nil)

	c, rec := s.newJSONContext(http.MethodGet, "/api/v1/goals/insights", "")

	s.NoError(s.handler.GetGoalInsights(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.GoalInsightsResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.True(response.ProfileComplete)
	s.Len(response.Insights, 1)
	s.True(response.Insights[0].OnTrack)
}

func (s *GoalHandlerTestSuite) TestGetGoalInsights_NoProfile() {
	insights := &dto.GoalInsightsResponse{
		ProfileComplete: false,
		Insights:        []dto.GoalInsight{},
	}

	s.mockGoal.EXPECT().Insights(gomock.Any(), s.userID).Return(insights, nil)

	c, rec := s.newJSONContext(http.MethodGet, "/api/v1/goals/insights", "")

	s.NoError(s.handler.GetGoalInsights(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.GoalInsightsResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.False(response.ProfileComplete)
	s.Empty(response.Insights)
}
