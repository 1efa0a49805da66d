package repositories

import (
	"errors"
	"fmt"
	"time"

	"finpulse-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrProfileNotFound = errors.New("budget profile not found")
)

// budgetProfileRepository implements BudgetProfileRepositoryInterface
type budgetProfileRepository struct {
	db *gorm.DB
}

// NewBudgetProfileRepository creates a new budget profile repository
func NewBudgetProfileRepository(db *gorm.DB) BudgetProfileRepositoryInterface {
	return &budgetProfileRepository{
		db: db,
	}
}

// GetByUserID retrieves the profile for a user
func (r *budgetProfileRepository) GetByUserID(userID uuid.UUID) (*models.BudgetProfile, error) {
	var profile models.BudgetProfile
	if err := r.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get budget profile: %w", err)
	}
	return &profile, nil
}

// Upsert creates the profile on first computation and overwrites it on
// every recomputation after that. One row per user.
func (r *budgetProfileRepository) Upsert(profile *models.BudgetProfile) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.BudgetProfile
		err := tx.Where("user_id = ?", profile.UserID).First(&existing).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := tx.Create(profile).Error; err != nil {
				return fmt.Errorf("failed to create budget profile: %w", err)
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to get budget profile for upsert: %w", err)
		}

		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt

		updates := map[string]interface{}{
			"needs_ratio":            profile.NeedsRatio,
			"wants_ratio":            profile.WantsRatio,
			"savings_ratio":          profile.SavingsRatio,
			"baseline_expense":       profile.BaselineExpense,
			"expense_volatility":     profile.ExpenseVolatility,
			"avg_monthly_surplus":    profile.AvgMonthlySurplus,
			"safe_investable_amount": profile.SafeInvestableAmount,
			"computed_at":            profile.ComputedAt,
			"updated_at":             time.Now().UTC(),
		}
		if err := tx.Model(&existing).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update budget profile: %w", err)
		}
		return nil
	})
}
