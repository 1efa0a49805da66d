package handlers

import (
	"net/http"

	"finpulse-api/internal/errors"
	"finpulse-api/internal/services"

	"github.com/labstack/echo/v4"
)

// InvestmentHandler handles investment readiness HTTP requests
type InvestmentHandler struct {
	investmentService services.InvestmentServiceInterface
}

// NewInvestmentHandler creates a new investment handler
func NewInvestmentHandler(investmentService services.InvestmentServiceInterface) *InvestmentHandler {
	return &InvestmentHandler{
		investmentService: investmentService,
	}
}

// GetReadiness evaluates the hard gates that must all pass before any
// investment amount is surfaced
//
// Method: GET /api/v1/investments/readiness
// Authentication: Required (JWT)
//
// Success Response: 200 OK
//   - ready: Whether every gate passed
//   - gates: Per-gate pass/fail with reasons
//   - safe_amount: Investable amount, only present when ready
//
// A missing budget profile is not an error, it reports as not ready
// with every gate failed.
func (h *InvestmentHandler) GetReadiness(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	readiness, err := h.investmentService.Readiness(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, readiness)
}

// GetRecommendations returns the readiness verdict plus a conservative
// allocation split of the safe amount when the caller is ready
//
// Method: GET /api/v1/investments/recommendations
// Authentication: Required (JWT)
func (h *InvestmentHandler) GetRecommendations(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	recommendations, err := h.investmentService.Recommendations(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, recommendations)
}
