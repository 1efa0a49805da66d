package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	BudgetPeriodWeekly  = "weekly"
	BudgetPeriodMonthly = "monthly"
	BudgetPeriodYearly  = "yearly"
)

var (
	ErrInvalidBudgetLimit  = errors.New("budget limit must be positive")
	ErrInvalidBudgetPeriod = errors.New("invalid budget period")
	ErrNegativeSpent       = errors.New("budget spent amount cannot be negative")
)

// Budget tracks cumulative spend against a per-category limit for one user.
// SpentAmount is only ever mutated through BudgetRepository.IncrementSpent,
// which serializes concurrent debits at the row level.
type Budget struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_budgets_user_category" json:"user_id"`
	Category    string          `gorm:"type:varchar(50);not null;index:idx_budgets_user_category" json:"category"`
	LimitAmount decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"limit_amount"`
	SpentAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"spent_amount"`
	Period      string          `gorm:"type:varchar(20);not null;default:'monthly'" json:"period"`
	IsActive    bool            `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Budget
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.Period == "" {
		b.Period = BudgetPeriodMonthly
	}
	return b.Validate()
}

// BeforeUpdate hook for Budget
func (b *Budget) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = time.Now().UTC()
	return nil
}

// Validate validates the budget fields
func (b *Budget) Validate() error {
	if b.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if b.Category == "" {
		return errors.New("budget category is required")
	}
	if b.LimitAmount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidBudgetLimit
	}
	if b.SpentAmount.IsNegative() {
		return ErrNegativeSpent
	}
	if !IsValidBudgetPeriod(b.Period) {
		return ErrInvalidBudgetPeriod
	}
	return nil
}

// UtilizationRatio returns spent/limit as a float in [0, +inf)
func (b *Budget) UtilizationRatio() float64 {
	if b.LimitAmount.IsZero() {
		return 0
	}
	ratio, _ := b.SpentAmount.Div(b.LimitAmount).Float64()
	return ratio
}

// IsOverLimit returns true when cumulative spend exceeds the limit
func (b *Budget) IsOverLimit() bool {
	return b.SpentAmount.GreaterThan(b.LimitAmount)
}

// TableName returns the table name for Budget
func (b *Budget) TableName() string {
	return "budgets"
}

// IsValidBudgetPeriod checks if the budget period is valid
func IsValidBudgetPeriod(period string) bool {
	switch period {
	case BudgetPeriodWeekly, BudgetPeriodMonthly, BudgetPeriodYearly:
		return true
	default:
		return false
	}
}
