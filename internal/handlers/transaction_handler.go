package handlers

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"finpulse-api/internal/dto"
	"finpulse-api/internal/errors"
	"finpulse-api/internal/models"
	"finpulse-api/internal/repositories"
	"finpulse-api/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 200
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	ingestionService services.IngestionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(ingestionService services.IngestionServiceInterface) *TransactionHandler {
	return &TransactionHandler{
		ingestionService: ingestionService,
	}
}

// IngestTransaction runs a raw transaction through the processing pipeline
//
// Method: POST /api/v1/transactions
// Authentication: Required (JWT)
//
// Request body:
//   - account_id: UUID of the source account (optional)
//   - merchant_id: UUID of the merchant (optional)
//   - amount: Decimal string, must be positive
//   - type: "credit" or "debit"
//   - raw_description: Original bank statement text
//   - timestamp: RFC 3339 timestamp (optional, defaults to receipt time)
//
// Success Response: 201 Created
//   - transaction: The stored, categorized transaction
//   - alerts: Alerts raised while processing (anomaly, budget warnings)
//
// Error Responses:
//   - 400: Invalid payload (amount, type, UUIDs, timestamp)
//   - 401: Unauthorized (missing JWT)
//   - 500: Transaction could not be persisted
func (h *TransactionHandler) IngestTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.IngestTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	txn, alerts, err := h.ingestionService.Ingest(c.Request().Context(), userID, req)
	if err != nil {
		return h.handleIngestError(c, err)
	}

	alertResponses := make([]dto.AlertResponse, 0, len(alerts))
	for i := range alerts {
		alertResponses = append(alertResponses, dto.ToAlertResponse(&alerts[i]))
	}

	return c.JSON(http.StatusCreated, dto.IngestTransactionResponse{
		Transaction: dto.ToTransactionResponse(txn),
		Alerts:      alertResponses,
	})
}

// ListTransactions retrieves paginated transaction history with filtering
//
// Method: GET /api/v1/transactions
// Authentication: Required (JWT)
//
// Query parameters:
//   - start_date, end_date: YYYY-MM-DD window
//   - category: Category filter
//   - type: "credit" or "debit"
//   - is_anomalous: "true" or "false"
//   - min_amount, max_amount: Decimal bounds
//   - offset, limit: Pagination (limit max 200)
//
// Success Response: 200 OK with transactions and pagination metadata
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	filters, err := parseTransactionFilters(c)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	transactions, total, err := h.ingestionService.List(userID, filters)
	if err != nil {
		return SendSystemError(c, err)
	}

	responses := make([]dto.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		responses = append(responses, dto.ToTransactionResponse(&transactions[i]))
	}

	return c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: responses,
		Pagination: dto.PaginationInfo{
			Offset: filters.Offset,
			Limit:  filters.Limit,
			Total:  total,
		},
	})
}

// RecategorizeTransaction applies a manual category correction
//
// Method: PATCH /api/v1/transactions/:id/category
// Authentication: Required (JWT)
//
// Request body:
//   - category: The corrected category name
//
// Success Response: 200 OK with the updated transaction. The correction
// is recorded as feedback; confidence score and method stay intact.
//
// Error Responses:
//   - 400: Invalid transaction ID or category
//   - 401: Unauthorized (missing JWT)
//   - 404: Transaction not found or owned by another user
func (h *TransactionHandler) RecategorizeTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Transaction ID must be a valid UUID"))
	}

	var req dto.RecategorizeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	txn, err := h.ingestionService.Recategorize(c.Request().Context(), userID, transactionID, req.Category)
	if err != nil {
		if stderrors.Is(err, repositories.ErrTransactionNotFound) {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

func (h *TransactionHandler) handleIngestError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, models.ErrInvalidAmount):
		return SendError(c, errors.TransactionInvalidAmount)
	case stderrors.Is(err, models.ErrInvalidTransactionType):
		return SendError(c, errors.TransactionInvalidType)
	case stderrors.Is(err, services.ErrInvalidIngestPayload):
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	default:
		return SendSystemError(c, err)
	}
}

// parseTransactionFilters parses and validates transaction filter parameters
func parseTransactionFilters(c echo.Context) (dto.TransactionFilters, error) {
	filters := dto.TransactionFilters{
		Offset: getIntParam(c, "offset", 0),
		Limit:  defaultPageLimit,
	}
	if filters.Offset < 0 {
		return filters, fmt.Errorf("offset must not be negative")
	}

	if limitStr := c.QueryParam("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			return filters, fmt.Errorf("limit must be a positive integer")
		}
		if limit > maxPageLimit {
			limit = maxPageLimit
		}
		filters.Limit = limit
	}

	if startDateStr := c.QueryParam("start_date"); startDateStr != "" {
		startDate, err := time.Parse("2006-01-02", startDateStr)
		if err != nil {
			return filters, fmt.Errorf("invalid start_date format, use YYYY-MM-DD")
		}
		filters.StartDate = &startDate
	}

	if endDateStr := c.QueryParam("end_date"); endDateStr != "" {
		endDate, err := time.Parse("2006-01-02", endDateStr)
		if err != nil {
			return filters, fmt.Errorf("invalid end_date format, use YYYY-MM-DD")
		}
		// Set to end of day
		endOfDay := endDate.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		filters.EndDate = &endOfDay
	}

	if txnType := c.QueryParam("type"); txnType != "" {
		if !models.IsValidTransactionType(txnType) {
			return filters, fmt.Errorf("invalid type, must be 'credit' or 'debit'")
		}
		filters.Type = txnType
	}

	if anomalousStr := c.QueryParam("is_anomalous"); anomalousStr != "" {
		anomalous, err := strconv.ParseBool(anomalousStr)
		if err != nil {
			return filters, fmt.Errorf("invalid is_anomalous, must be 'true' or 'false'")
		}
		filters.IsAnomalous = &anomalous
	}

	filters.Category = c.QueryParam("category")
	filters.MinAmount = c.QueryParam("min_amount")
	filters.MaxAmount = c.QueryParam("max_amount")

	return filters, nil
}
