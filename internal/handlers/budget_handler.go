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

// BudgetHandler handles budget-related HTTP requests
type BudgetHandler struct {
	budgetService services.BudgetServiceInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetService services.BudgetServiceInterface) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
	}
}

// CreateBudget creates a per-category spending budget
//
// Method: POST /api/v1/budgets
// Authentication: Required (JWT)
//
// Request body:
//   - category: Spending category the budget watches
//   - limit_amount: Decimal string, must be positive
//   - period: "weekly", "monthly" or "yearly" (defaults to monthly)
//
// Success Response: 201 Created with the budget
//
// Error Responses:
//   - 400: Invalid limit or period
//   - 401: Unauthorized (missing JWT)
//   - 409: An active budget for this category already exists
func (h *BudgetHandler) CreateBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if req.Period == "" {
		req.Period = models.BudgetPeriodMonthly
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	budget, err := h.budgetService.Create(c.Request().Context(), userID, req)
	if err != nil {
		return h.handleBudgetError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.ToBudgetResponse(budget))
}

// ListBudgets retrieves all budgets for the caller
//
// Method: GET /api/v1/budgets
// Authentication: Required (JWT)
func (h *BudgetHandler) ListBudgets(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	budgets, err := h.budgetService.List(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	responses := make([]dto.BudgetResponse, 0, len(budgets))
	for i := range budgets {
		responses = append(responses, dto.ToBudgetResponse(&budgets[i]))
	}

	return c.JSON(http.StatusOK, dto.ListBudgetsResponse{Budgets: responses})
}

// UpdateBudget adjusts a budget's limit, period or active state
//
// Method: PATCH /api/v1/budgets/:id
// Authentication: Required (JWT)
func (h *BudgetHandler) UpdateBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	budgetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Budget ID must be a valid UUID"))
	}

	var req dto.UpdateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	budget, err := h.budgetService.Update(c.Request().Context(), userID, budgetID, req)
	if err != nil {
		return h.handleBudgetError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}

// DeleteBudget removes a budget
//
// Method: DELETE /api/v1/budgets/:id
// Authentication: Required (JWT)
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	budgetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Budget ID must be a valid UUID"))
	}

	if err := h.budgetService.Delete(c.Request().Context(), userID, budgetID); err != nil {
		return h.handleBudgetError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetSavingsEstimate derives a monthly savings estimate from the caller's
// budget profile
//
// Method: GET /api/v1/budgets/savings
// Authentication: Required (JWT)
//
// Error Responses:
//   - 404: No budget profile computed yet
func (h *BudgetHandler) GetSavingsEstimate(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	estimate, err := h.budgetService.SavingsEstimate(userID)
	if err != nil {
		if stderrors.Is(err, repositories.ErrProfileNotFound) {
			return SendError(c, errors.ProfileNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, estimate)
}

func (h *BudgetHandler) handleBudgetError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, repositories.ErrBudgetNotFound):
		return SendError(c, errors.BudgetNotFound)
	case stderrors.Is(err, repositories.ErrBudgetDuplicate):
		return SendError(c, errors.BudgetDuplicate)
	case stderrors.Is(err, models.ErrInvalidBudgetLimit):
		return SendError(c, errors.BudgetInvalidLimit)
	case stderrors.Is(err, models.ErrInvalidBudgetPeriod):
		return SendError(c, errors.BudgetInvalidPeriod)
	case stderrors.Is(err, services.ErrInvalidBudgetPayload):
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	default:
		return SendSystemError(c, err)
	}
}
