package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
)

var (
	ErrInvalidGoalTarget  = errors.New("goal target amount must be positive")
	ErrNegativeGoalAmount = errors.New("goal current amount cannot be negative")
)

// Goal is a savings target with a deadline. Feasibility is recomputed on
// read from the user's budget profile; status flips to completed once the
// accumulated amount reaches the target.
type Goal struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID           uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	GoalName         string          `gorm:"type:varchar(100);not null" json:"goal_name"`
	TargetAmount     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"target_amount"`
	CurrentAmount    decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"current_amount"`
	Deadline         time.Time       `gorm:"not null" json:"deadline"`
	Status           string          `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	FeasibilityScore *float64        `json:"feasibility_score,omitempty"`
	CreatedAt        time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Goal
func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	if g.Status == "" {
		g.Status = GoalStatusActive
	}
	return g.Validate()
}

// BeforeUpdate hook for Goal
func (g *Goal) BeforeUpdate(tx *gorm.DB) error {
	g.UpdatedAt = time.Now().UTC()
	return nil
}

// Validate validates the goal fields
func (g *Goal) Validate() error {
	if g.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if g.GoalName == "" {
		return errors.New("goal name is required")
	}
	if g.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidGoalTarget
	}
	if g.CurrentAmount.IsNegative() {
		return ErrNegativeGoalAmount
	}
	return nil
}

// Remaining returns the amount still needed to reach the target, never negative
func (g *Goal) Remaining() decimal.Decimal {
	remaining := g.TargetAmount.Sub(g.CurrentAmount)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// IsReached returns true once the accumulated amount covers the target
func (g *Goal) IsReached() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// DaysLeft returns the whole days until the deadline, rounded up.
// Past deadlines yield zero or negative values.
func (g *Goal) DaysLeft(now time.Time) int {
	hours := g.Deadline.Sub(now).Hours()
	days := int(hours / 24)
	if hours > float64(days)*24 {
		days++
	}
	return days
}

// ProgressPercent returns current/target as a percentage
func (g *Goal) ProgressPercent() float64 {
	if g.TargetAmount.IsZero() {
		return 0
	}
	pct, _ := g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)).Float64()
	return pct
}

// TableName returns the table name for Goal
func (g *Goal) TableName() string {
	return "goals"
}
