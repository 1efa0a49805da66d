package dto

import (
	"time"

	"finpulse-api/internal/models"
)

// IngestTransactionRequest is the payload for submitting a raw transaction
// to the ingestion pipeline. Amounts travel as strings to avoid float
// precision loss in JSON.
type IngestTransactionRequest struct {
	AccountID      string `json:"account_id" validate:"omitempty,uuid"`
	MerchantID     string `json:"merchant_id" validate:"omitempty,uuid"`
	Amount         string `json:"amount" validate:"required"`
	Type           string `json:"type" validate:"required,txn_type"`
	RawDescription string `json:"raw_description" validate:"required,min=1,max=500"`
	Timestamp      string `json:"timestamp" validate:"omitempty"`
}

// TransactionFilters contains filtering options for transaction list queries
type TransactionFilters struct {
	StartDate   *time.Time `query:"start_date"`
	EndDate     *time.Time `query:"end_date"`
	Category    string     `query:"category"`
	Type        string     `query:"type" validate:"omitempty,txn_type"`
	IsAnomalous *bool      `query:"is_anomalous"`
	MinAmount   string     `query:"min_amount"`
	MaxAmount   string     `query:"max_amount"`
	Offset      int        `query:"offset" validate:"omitempty,min=0"`
	Limit       int        `query:"limit" validate:"omitempty,min=1,max=200"`
}

// RecategorizeRequest is the payload for a manual category correction
type RecategorizeRequest struct {
	Category string `json:"category" validate:"required,min=1,max=50"`
}

// TransactionResponse is the enriched transaction as returned by the API
type TransactionResponse struct {
	ID               string     `json:"id"`
	UserID           string     `json:"user_id"`
	AccountID        string     `json:"account_id,omitempty"`
	Amount           string     `json:"amount"`
	Type             string     `json:"type"`
	Category         string     `json:"category"`
	Subcategory      string     `json:"subcategory,omitempty"`
	RawDescription   string     `json:"raw_description"`
	CleanDescription string     `json:"clean_description,omitempty"`
	ConfidenceScore  float64    `json:"confidence_score"`
	CatMethod        string     `json:"cat_method"`
	IsAnomalous      bool       `json:"is_anomalous"`
	AnomalyScore     *float64   `json:"anomaly_score,omitempty"`
	Timestamp        time.Time  `json:"timestamp"`
	CreatedAt        time.Time  `json:"created_at"`
}

// IngestTransactionResponse wraps the stored transaction together with any
// alerts the pipeline raised while processing it.
type IngestTransactionResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Alerts      []AlertResponse     `json:"alerts"`
}

// ListTransactionsResponse is the paginated transaction list
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   PaginationInfo        `json:"pagination"`
}

// PaginationInfo contains pagination metadata
type PaginationInfo struct {
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
	Total  int64 `json:"total"`
}

// ToTransactionResponse maps a transaction model to its API representation
func ToTransactionResponse(t *models.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:               t.ID.String(),
		UserID:           t.UserID.String(),
		Amount:           t.Amount.StringFixed(2),
		Type:             t.TransactionType,
		Category:         t.Category,
		Subcategory:      t.Subcategory,
		RawDescription:   t.RawDescription,
		CleanDescription: t.CleanDescription,
		ConfidenceScore:  t.ConfidenceScore,
		CatMethod:        t.CatMethod,
		IsAnomalous:      t.IsAnomalous,
		AnomalyScore:     t.AnomalyScore,
		Timestamp:        t.TxnTimestamp,
		CreatedAt:        t.CreatedAt,
	}
	if t.AccountID != nil {
		resp.AccountID = t.AccountID.String()
	}
	return resp
}
