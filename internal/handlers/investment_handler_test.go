package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"finpulse-api/internal/dto"
	"finpulse-api/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type InvestmentHandlerTestSuite struct {
	suite.Suite
	handler        *InvestmentHandler
	echo           *echo.Echo
	userID         uuid.UUID
	ctrl           *gomock.Controller
	mockInvestment *service_mocks.MockInvestmentServiceInterface
}

func TestInvestmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(InvestmentHandlerTestSuite))
}

func (s *InvestmentHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.userID = uuid.New()
	s.ctrl = gomock.NewController(s.T())
	s.mockInvestment = service_mocks.NewMockInvestmentServiceInterface(s.ctrl)
	s.handler = NewInvestmentHandler(s.mockInvestment)
}

func (s *InvestmentHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *InvestmentHandlerTestSuite) newContext(url string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)
	return c, rec
}

func (s *InvestmentHandlerTestSuite) TestGetReadiness_Ready() {
	readiness := &dto.InvestmentReadinessResponse{
		Ready: true,
		Gates: []dto.GateResult{
			{Name: "emergency_fund", Passed: true},
			{Name: "positive_surplus", Passed: true},
			{Name: "stable_expenses", Passed: true},
			{Name: "no_high_alerts", Passed: true},
		},
		SafeAmount: "12500.00",
	}

	s.mockInvestment.EXPECT().Readiness(s.userID).Return(readiness, nil)

	c, rec := s.newContext("/api/v1/investments/readiness")

	s.NoError(s.handler.GetReadiness(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.InvestmentReadinessResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.True(response.Ready)
	s.Len(response.Gates, 4)
	s.Equal("12500.00", response.SafeAmount)
}

func (s *InvestmentHandlerTestSuite) TestGetReadiness_NotReady() {
	readiness := &dto.InvestmentReadinessResponse{
		Ready: false,
		Gates: []dto.GateResult{
			{Name: "emergency_fund", Passed: false, Reason: "surplus does not cover the emergency fund line"},
			{Name: "positive_surplus", Passed: true},
			{Name: "stable_expenses", Passed: true},
			{Name: "no_high_alerts", Passed: true},
		},
		SafeAmount: "0.00",
	}

	s.mockInvestment.EXPECT().Readiness(s.userID).Return(readiness, nil)

	c, rec := s.newContext("/api/v1/investments/readiness")

	s.NoError(s.handler.GetReadiness(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.InvestmentReadinessResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.False(response.Ready)
	s.NotEmpty(response.Gates[0].Reason)
}

func (s *InvestmentHandlerTestSuite) TestGetReadiness_ServiceFailure() {
	s.mockInvestment.EXPECT().Readiness(s.userID).Return(nil, fmt.Errorf("db down"))

	c, rec := s.newContext("/api/v1/investments/readiness")

	s.NoError(s.handler.GetReadiness(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
}

func (s *InvestmentHandlerTestSuite) TestGetRecommendations_Ready() {
	recommendations := &dto.InvestmentReadinessResponse{
		Ready:      true,
		SafeAmount: "12500.00",
		Recommendations: []dto.AssetAllocation{
			{AssetClass: "index_funds", Percent: 50, Amount: "6250.00"},
			{AssetClass: "debt_funds", Percent: 30, Amount: "3750.00"},
			{AssetClass: "gold", Percent: 10, Amount: "1250.00"},
			{AssetClass: "cash_equivalents", Percent: 10, Amount: "1250.00"},
		},
	}

	s.mockInvestment.EXPECT().Recommendations(s.userID).Return(recommendations, nil)

	c, rec := s.newContext("/api/v1/investments/recommendations")

	s.NoError(s.handler.GetRecommendations(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.InvestmentReadinessResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Len(response.Recommendations, 4)
	s.Equal("index_funds", response.Recommendations[0].AssetClass)
}

func (s *InvestmentHandlerTestSuite) TestGetRecommendations_NotReadyHasNoAllocations() {
	recommendations := &dto.InvestmentReadinessResponse{
		Ready:      false,
		SafeAmount: "0.00",
	}

	s.mockInvestment.EXPECT().Recommendations(s.userID).Return(recommendations, nil)

	c, rec := s.newContext("/api/v1/investments/recommendations")

	s.NoError(s.handler.GetRecommendations(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.InvestmentReadinessResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Empty(response.Recommendations)
}

func (s *InvestmentHandlerTestSuite) TestGetReadiness_Unauthorized() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/investments/readiness", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.GetReadiness(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}
