package dto

import (
	"time"

	"finpulse-api/internal/models"
)

// CreateBudgetRequest is the payload for creating a per-category budget
type CreateBudgetRequest struct {
	Category    string `json:"category" validate:"required,min=1,max=50"`
	LimitAmount string `json:"limit_amount" validate:"required"`
	Period      string `json:"period" validate:"omitempty,budget_period"`
}

// UpdateBudgetRequest is the payload for adjusting a budget's limit or state
type UpdateBudgetRequest struct {
	LimitAmount string `json:"limit_amount" validate:"omitempty"`
	Period      string `json:"period" validate:"omitempty,budget_period"`
	IsActive    *bool  `json:"is_active"`
}

// BudgetResponse is the budget as returned by the API
type BudgetResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Category    string    `json:"category"`
	LimitAmount string    `json:"limit_amount"`
	SpentAmount string    `json:"spent_amount"`
	Utilization float64   `json:"utilization"`
	Period      string    `json:"period"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListBudgetsResponse is the budget collection for a user
type ListBudgetsResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// SavingsEstimateResponse is the profile-derived monthly savings estimate
type SavingsEstimateResponse struct {
	AvgMonthlySurplus    string  `json:"avg_monthly_surplus"`
	SavingsRatio         float64 `json:"savings_ratio"`
	EstimatedMonthlySave string  `json:"estimated_monthly_save"`
	SafeInvestableAmount string  `json:"safe_investable_amount"`
}

// ToBudgetResponse maps a budget model to its API representation
func ToBudgetResponse(b *models.Budget) BudgetResponse {
	return BudgetResponse{
		ID:          b.ID.String(),
		UserID:      b.UserID.String(),
		Category:    b.Category,
		LimitAmount: b.LimitAmount.StringFixed(2),
		SpentAmount: b.SpentAmount.StringFixed(2),
		Utilization: b.UtilizationRatio(),
		Period:      b.Period,
		IsActive:    b.IsActive,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
