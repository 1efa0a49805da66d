package dto

import (
	"time"

	"finpulse-api/internal/models"
)

// ProfileResponse is the derived budget profile as returned by the API
type ProfileResponse struct {
	UserID               string    `json:"user_id"`
	NeedsRatio           float64   `json:"needs_ratio"`
	WantsRatio           float64   `json:"wants_ratio"`
	SavingsRatio         float64   `json:"savings_ratio"`
	BaselineExpense      string    `json:"baseline_expense"`
	ExpenseVolatility    string    `json:"expense_volatility"`
	AvgMonthlySurplus    string    `json:"avg_monthly_surplus"`
	SafeInvestableAmount string    `json:"safe_investable_amount"`
	ComputedAt           time.Time `json:"computed_at"`
}

// ToProfileResponse maps a profile model to its API representation
func ToProfileResponse(p *models.BudgetProfile) ProfileResponse {
	return ProfileResponse{
		UserID:               p.UserID.String(),
		NeedsRatio:           p.NeedsRatio,
		WantsRatio:           p.WantsRatio,
		SavingsRatio:         p.SavingsRatio,
		BaselineExpense:      p.BaselineExpense.StringFixed(2),
		ExpenseVolatility:    p.ExpenseVolatility.StringFixed(2),
		AvgMonthlySurplus:    p.AvgMonthlySurplus.StringFixed(2),
		SafeInvestableAmount: p.SafeInvestableAmount.StringFixed(2),
		ComputedAt:           p.ComputedAt,
	}
}
