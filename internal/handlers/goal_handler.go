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
	"github.com/shopspring/decimal"
)

// GoalHandler handles savings goal HTTP requests
type GoalHandler struct {
	goalService services.GoalServiceInterface
}

// NewGoalHandler creates a new goal handler
func NewGoalHandler(goalService services.GoalServiceInterface) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

// CreateGoal creates a savings goal
//
// Method: POST /api/v1/goals
// Authentication: Required (JWT)
//
// Request body:
//   - goal_name: Display name for the goal
//   - target_amount: Decimal string, must be positive
//   - deadline: RFC 3339 or YYYY-MM-DD, must be in the future
//
// Success Response: 201 Created with the goal
func (h *GoalHandler) CreateGoal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateGoalRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	goal, err := h.goalService.Create(c.Request().Context(), userID, req)
	if err != nil {
		return h.handleGoalError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.ToGoalResponse(goal))
}

// ListGoals retrieves all goals for the caller
//
// Method: GET /api/v1/goals
// Authentication: Required (JWT)
func (h *GoalHandler) ListGoals(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	goals, err := h.goalService.List(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	responses := make([]dto.GoalResponse, 0, len(goals))
	for i := range goals {
		responses = append(responses, dto.ToGoalResponse(&goals[i]))
	}

	return c.JSON(http.StatusOK, dto.ListGoalsResponse{Goals: responses})
}

// ContributeToGoal records progress toward a goal
//
// Method: POST /api/v1/goals/:id/contributions
// Authentication: Required (JWT)
//
// Request body:
//   - amount: Decimal string, must be positive
//
// Success Response: 200 OK with the updated goal. Status flips to
// completed once the target is reached.
func (h *GoalHandler) ContributeToGoal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Goal ID must be a valid UUID"))
	}

	var req dto.ContributeGoalRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("amount must be a decimal string"))
	}

	goal, err := h.goalService.Contribute(c.Request().Context(), userID, goalID, amount)
	if err != nil {
		return h.handleGoalError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ToGoalResponse(goal))
}

// DeleteGoal removes a goal
//
// Method: DELETE /api/v1/goals/:id
// Authentication: Required (JWT)
func (h *GoalHandler) DeleteGoal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Goal ID must be a valid UUID"))
	}

	if err := h.goalService.Delete(c.Request().Context(), userID, goalID); err != nil {
		return h.handleGoalError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetGoalInsights computes feasibility insights for every active goal
//
// Method: GET /api/v1/goals/insights
// Authentication: Required (JWT)
//
// Success Response: 200 OK. When no budget profile exists the response
// carries profile_complete=false and an empty insight list.
func (h *GoalHandler) GetGoalInsights(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	insights, err := h.goalService.Insights(c.Request().Context(), userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, insights)
}

func (h *GoalHandler) handleGoalError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, repositories.ErrGoalNotFound):
		return SendError(c, errors.GoalNotFound)
	case stderrors.Is(err, services.ErrPastDeadline):
		return SendError(c, errors.GoalPastDeadline)
	case stderrors.Is(err, models.ErrInvalidGoalTarget):
		return SendError(c, errors.GoalInvalidTarget)
	case stderrors.Is(err, services.ErrInvalidGoalPayload):
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	default:
		return SendSystemError(c, err)
	}
}
