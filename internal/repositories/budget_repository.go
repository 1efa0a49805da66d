package repositories

import (
	"errors"
	"fmt"

	"finpulse-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrBudgetNotFound  = errors.New("budget not found")
	ErrBudgetDuplicate = errors.New("active budget already exists for category")
)

// budgetRepository implements BudgetRepositoryInterface
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{
		db: db,
	}
}

// Create creates a new budget, rejecting a second active budget for the
// same user and category.
func (r *budgetRepository) Create(budget *models.Budget) error {
	var count int64
	if err := r.db.Model(&models.Budget{}).
		Where("user_id = ? AND category = ? AND is_active = ?", budget.UserID, budget.Category, true).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check existing budgets: %w", err)
	}
	if count > 0 && budget.IsActive {
		return ErrBudgetDuplicate
	}

	if err := r.db.Create(budget).Error; err != nil {
		return fmt.Errorf("failed to create budget: %w", err)
	}
	return nil
}

// GetByID retrieves a budget by ID
func (r *budgetRepository) GetByID(id uuid.UUID) (*models.Budget, error) {
	budget := &models.Budget{ID: id}
	if err := r.db.First(budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return budget, nil
}

// GetByUserID retrieves all budgets for a user
func (r *budgetRepository) GetByUserID(userID uuid.UUID) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to get budgets: %w", err)
	}
	return budgets, nil
}

// GetActiveByUserAndCategory retrieves the active budget matching a user and
// category. Oldest wins when duplicates slipped in before the uniqueness
// check existed.
func (r *budgetRepository) GetActiveByUserAndCategory(userID uuid.UUID, category string) (*models.Budget, error) {
	var budget models.Budget
	if err := r.db.Where("user_id = ? AND category = ? AND is_active = ?", userID, category, true).
		Order("created_at ASC").
		First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget by category: %w", err)
	}
	return &budget, nil
}

// Update persists budget field changes
func (r *budgetRepository) Update(budget *models.Budget) error {
	result := r.db.Model(budget).Updates(map[string]interface{}{
		"limit_amount": budget.LimitAmount,
		"period":       budget.Period,
		"is_active":    budget.IsActive,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}
	return nil
}

// Delete removes a budget
func (r *budgetRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Budget{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}
	return nil
}

// IncrementSpent atomically adds amount to the budget's cumulative spend
// and returns the updated row. The row is locked for the duration of the
// transaction so concurrent debits serialize instead of losing updates.
func (r *budgetRepository) IncrementSpent(budgetID uuid.UUID, amount decimal.Decimal) (*models.Budget, error) {
	var budget models.Budget

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Set("gorm:query_option", "FOR UPDATE").
			Where("id = ?", budgetID).
			First(&budget).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBudgetNotFound
			}
			return fmt.Errorf("failed to lock budget: %w", err)
		}

		budget.SpentAmount = budget.SpentAmount.Add(amount)

		if err := tx.Model(&budget).Update("spent_amount", budget.SpentAmount).Error; err != nil {
			return fmt.Errorf("failed to update spent amount: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &budget, nil
}
