package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetProfile is the per-user financial posture derived from transaction
// history. It is a read-only input to goal feasibility and investment
// readiness; only the profile builder writes it.
//
// The three ratios describe how surplus-adjusted income splits between
// needs, wants and savings. They should sum to 1.0 but this is not
// strictly enforced, matching how upstream profile sources behave.
type BudgetProfile struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID               uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	NeedsRatio           float64         `gorm:"not null;default:0" json:"needs_ratio"`
	WantsRatio           float64         `gorm:"not null;default:0" json:"wants_ratio"`
	SavingsRatio         float64         `gorm:"not null;default:0" json:"savings_ratio"`
	BaselineExpense      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"baseline_expense"`
	ExpenseVolatility    decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"expense_volatility"`
	AvgMonthlySurplus    decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"avg_monthly_surplus"`
	SafeInvestableAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"safe_investable_amount"`
	ComputedAt           time.Time       `gorm:"not null" json:"computed_at"`
	CreatedAt            time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt            time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for BudgetProfile
func (p *BudgetProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.ComputedAt.IsZero() {
		p.ComputedAt = time.Now().UTC()
	}
	return p.Validate()
}

// BeforeUpdate hook for BudgetProfile
func (p *BudgetProfile) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now().UTC()
	return nil
}

// Validate validates the profile fields
func (p *BudgetProfile) Validate() error {
	if p.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	for _, ratio := range []float64{p.NeedsRatio, p.WantsRatio, p.SavingsRatio} {
		if ratio < 0 || ratio > 1 {
			return errors.New("profile ratios must be between 0 and 1")
		}
	}
	return nil
}

// TableName returns the table name for BudgetProfile
func (p *BudgetProfile) TableName() string {
	return "budget_profiles"
}
