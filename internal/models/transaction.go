package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeCredit = "credit"
	TransactionTypeDebit  = "debit"

	CategoryUncategorized = "Uncategorized"

	// CatMethodFallback marks transactions categorized without the scoring
	// oracle (oracle unavailable or timed out).
	CatMethodFallback = "fallback"
	CatMethodModel    = "model"
	CatMethodRules    = "rules"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
	ErrMissingDescription     = errors.New("transaction raw description is required")
)

// Transaction represents a single ingested financial transaction enriched
// with categorization and anomaly signals.
type Transaction struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID           uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	AccountID        *uuid.UUID      `gorm:"type:uuid;index" json:"account_id,omitempty"`
	MerchantID       *uuid.UUID      `gorm:"type:uuid" json:"merchant_id,omitempty"`
	Amount           decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	TransactionType  string          `gorm:"type:varchar(20);not null" json:"transaction_type"`
	Category         string          `gorm:"type:varchar(50);index" json:"category"`
	Subcategory      string          `gorm:"type:varchar(50)" json:"subcategory,omitempty"`
	RawDescription   string          `gorm:"type:text;not null" json:"raw_description"`
	CleanDescription string          `gorm:"type:text" json:"clean_description,omitempty"`
	ConfidenceScore  float64         `gorm:"not null;default:0" json:"confidence_score"`
	CatMethod        string          `gorm:"type:varchar(30)" json:"cat_method"`
	IsAnomalous      bool            `gorm:"not null;default:false" json:"is_anomalous"`
	AnomalyScore     *float64        `json:"anomaly_score,omitempty"`
	TxnTimestamp     time.Time       `gorm:"not null;index" json:"txn_timestamp"`
	CreatedAt        time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now().UTC()
	if t.TxnTimestamp.IsZero() {
		t.TxnTimestamp = now
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}
	if t.Category == "" {
		t.Category = CategoryUncategorized
	}

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now().UTC()
	return nil
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if !IsValidTransactionType(t.TransactionType) {
		return ErrInvalidTransactionType
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if t.RawDescription == "" {
		return ErrMissingDescription
	}

	if t.ConfidenceScore < 0 || t.ConfidenceScore > 1 {
		return errors.New("confidence score must be between 0 and 1")
	}

	return nil
}

// IsDebit returns true for spend-side transactions
func (t *Transaction) IsDebit() bool {
	return t.TransactionType == TransactionTypeDebit
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeCredit, TransactionTypeDebit:
		return true
	default:
		return false
	}
}
