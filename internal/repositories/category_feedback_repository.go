package repositories

import (
	"fmt"

	"finpulse-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// categoryFeedbackRepository implements CategoryFeedbackRepositoryInterface
type categoryFeedbackRepository struct {
	db *gorm.DB
}

// NewCategoryFeedbackRepository creates a new category feedback repository
func NewCategoryFeedbackRepository(db *gorm.DB) CategoryFeedbackRepositoryInterface {
	return &categoryFeedbackRepository{
		db: db,
	}
}

// Create records a manual category correction
func (r *categoryFeedbackRepository) Create(feedback *models.CategoryFeedback) error {
	if err := r.db.Create(feedback).Error; err != nil {
		return fmt.Errorf("failed to create category feedback: %w", err)
	}
	return nil
}

// GetByUserID retrieves a user's correction history, newest first
func (r *categoryFeedbackRepository) GetByUserID(userID uuid.UUID, limit int) ([]models.CategoryFeedback, error) {
	var feedback []models.CategoryFeedback
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&feedback).Error; err != nil {
		return nil, fmt.Errorf("failed to get category feedback: %w", err)
	}
	return feedback, nil
}
