package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryFeedback records a user's manual category correction. The
// transaction's original confidence score and categorization method are
// left untouched; the correction history lives here so the scoring oracle
// can be retrained on it later.
type CategoryFeedback struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	TransactionID uuid.UUID `gorm:"type:uuid;not null;index" json:"transaction_id"`
	OldCategory   string    `gorm:"type:varchar(50);not null" json:"old_category"`
	NewCategory   string    `gorm:"type:varchar(50);not null" json:"new_category"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for CategoryFeedback
func (f *CategoryFeedback) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return f.Validate()
}

// Validate validates the feedback fields
func (f *CategoryFeedback) Validate() error {
	if f.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if f.TransactionID == uuid.Nil {
		return errors.New("transaction ID is required")
	}
	if f.NewCategory == "" {
		return errors.New("new category is required")
	}
	return nil
}

// TableName returns the table name for CategoryFeedback
func (f *CategoryFeedback) TableName() string {
	return "category_feedback"
}
