package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionFilters contains the filter set for transaction list queries
type TransactionFilters struct {
	UserID      uuid.UUID
	Category    string
	Type        string
	IsAnomalous *bool
	StartDate   *time.Time
	EndDate     *time.Time
	MinAmount   *decimal.Decimal
	MaxAmount   *decimal.Decimal
	Offset      int
	Limit       int
}
