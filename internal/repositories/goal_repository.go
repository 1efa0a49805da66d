package repositories

import (
	"errors"
	"fmt"

	"finpulse-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

// goalRepository implements GoalRepositoryInterface
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository
func NewGoalRepository(db *gorm.DB) GoalRepositoryInterface {
	return &goalRepository{
		db: db,
	}
}

// Create creates a new goal
func (r *goalRepository) Create(goal *models.Goal) error {
	if err := r.db.Create(goal).Error; err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}
	return nil
}

// GetByID retrieves a goal by ID
func (r *goalRepository) GetByID(id uuid.UUID) (*models.Goal, error) {
	goal := &models.Goal{ID: id}
	if err := r.db.First(goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	return goal, nil
}

// GetByUserID retrieves all goals for a user
func (r *goalRepository) GetByUserID(userID uuid.UUID) ([]models.Goal, error) {
	var goals []models.Goal
	if err := r.db.Where("user_id = ?", userID).
		Order("deadline ASC").
		Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("failed to get goals: %w", err)
	}
	return goals, nil
}

// Update persists goal field changes
func (r *goalRepository) Update(goal *models.Goal) error {
	result := r.db.Model(goal).Updates(map[string]interface{}{
		"current_amount":    goal.CurrentAmount,
		"status":            goal.Status,
		"feasibility_score": goal.FeasibilityScore,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update goal: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGoalNotFound
	}
	return nil
}

// Delete removes a goal
func (r *goalRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Goal{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete goal: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGoalNotFound
	}
	return nil
}
