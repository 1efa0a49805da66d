package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"finpulse-api/internal/dto"
	"finpulse-api/internal/models"
	"finpulse-api/internal/oracle"
	"finpulse-api/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidIngestPayload = errors.New("invalid transaction payload")
)

// IngestionService implements IngestionServiceInterface. It orchestrates
// the pipeline for a single transaction: scoring, persistence, anomaly
// evaluation and budget tracking, in that order. Only the persistence of
// the transaction itself is fatal; every downstream step degrades.
type IngestionService struct {
	txnRepo       repositories.TransactionRepositoryInterface
	feedbackRepo  repositories.CategoryFeedbackRepositoryInterface
	oracleClient  oracle.ClientInterface
	anomalyGate   AnomalyGateInterface
	budgetTracker BudgetTrackerInterface
	pipelineLog   PipelineLoggerInterface
	metrics       MetricsRecorderInterface
}

// NewIngestionService creates a new ingestion service
func NewIngestionService(
	txnRepo repositories.TransactionRepositoryInterface,
	feedbackRepo repositories.CategoryFeedbackRepositoryInterface,
	oracleClient oracle.ClientInterface,
	anomalyGate AnomalyGateInterface,
	budgetTracker BudgetTrackerInterface,
	pipelineLog PipelineLoggerInterface,
	metrics MetricsRecorderInterface,
) IngestionServiceInterface {
	return &IngestionService{
		txnRepo:       txnRepo,
		feedbackRepo:  feedbackRepo,
		oracleClient:  oracleClient,
		anomalyGate:   anomalyGate,
		budgetTracker: budgetTracker,
		pipelineLog:   pipelineLog,
		metrics:       metrics,
	}
}

// Ingest processes a raw transaction through the full pipeline and returns
// the persisted transaction together with any alerts raised while
// processing it.
func (s *IngestionService) Ingest(ctx context.Context, userID uuid.UUID, req dto.IngestTransactionRequest) (*models.Transaction, []models.Alert, error) {
	start := time.Now()
	s.pipelineLog.LogIngestStarted(ctx, userID)

	txn, err := s.buildTransaction(userID, req)
	if err != nil {
		s.pipelineLog.LogIngestFailed(ctx, userID, err.Error())
		return nil, nil, err
	}

	s.categorize(ctx, txn)

	if err := s.txnRepo.Create(txn); err != nil {
		s.pipelineLog.LogIngestFailed(ctx, userID, err.Error())
		s.metrics.IncrementCounter("ingest.processed.failed", map[string]string{
			"cat_method": txn.CatMethod,
		})
		return nil, nil, err
	}

	var alerts []models.Alert

	// Anomaly evaluation runs before the caller sees the result, so the
	// returned transaction reflects any anomaly mutation.
	anomalyAlert, err := s.anomalyGate.Evaluate(ctx, txn)
	if err != nil {
		s.pipelineLog.LogIngestFailed(ctx, userID, fmt.Sprintf("anomaly evaluation: %v", err))
	}
	if anomalyAlert != nil {
		alerts = append(alerts, *anomalyAlert)
	}

	if txn.IsDebit() {
		budgetAlert, err := s.budgetTracker.ApplyDebit(ctx, userID, txn.Category, txn.Amount)
		if err != nil {
			s.pipelineLog.LogIngestFailed(ctx, userID, fmt.Sprintf("budget tracking: %v", err))
		}
		if budgetAlert != nil {
			alerts = append(alerts, *budgetAlert)
		}
	}

	s.metrics.IncrementCounter("ingest.processed.success", map[string]string{
		"cat_method": txn.CatMethod,
	})
	s.metrics.RecordProcessingTime("ingest.processing", time.Since(start))
	s.pipelineLog.LogIngestCompleted(ctx, txn.ID, time.Since(start).Milliseconds())

	return txn, alerts, nil
}

// List retrieves a user's transactions matching the filter set
func (s *IngestionService) List(userID uuid.UUID, filters dto.TransactionFilters) ([]models.Transaction, int64, error) {
	modelFilters := models.TransactionFilters{
		UserID:    userID,
		Category:  filters.Category,
		Type:      filters.Type,
		StartDate: filters.StartDate,
		EndDate:   filters.EndDate,
		Offset:    filters.Offset,
		Limit:     filters.Limit,
	}
	modelFilters.IsAnomalous = filters.IsAnomalous

	if filters.MinAmount != "" {
		if min, err := decimal.NewFromString(filters.MinAmount); err == nil {
			modelFilters.MinAmount = &min
		}
	}
	if filters.MaxAmount != "" {
		if max, err := decimal.NewFromString(filters.MaxAmount); err == nil {
			modelFilters.MaxAmount = &max
		}
	}

	return s.txnRepo.GetWithFilters(modelFilters)
}

// Recategorize applies a user's manual category correction. The correction
// is recorded as feedback; the transaction's original confidence score and
// categorization method stay intact.
func (s *IngestionService) Recategorize(ctx context.Context, userID, transactionID uuid.UUID, category string) (*models.Transaction, error) {
	txn, err := s.txnRepo.GetByID(transactionID)
	if err != nil {
		return nil, err
	}
	if txn.UserID != userID {
		return nil, repositories.ErrTransactionNotFound
	}

	feedback := &models.CategoryFeedback{
		UserID:        userID,
		TransactionID: txn.ID,
		OldCategory:   txn.Category,
		NewCategory:   category,
	}
	if err := s.feedbackRepo.Create(feedback); err != nil {
		return nil, err
	}

	if err := s.txnRepo.UpdateCategory(txn.ID, category); err != nil {
		return nil, err
	}

	txn.Category = category
	return txn, nil
}

func (s *IngestionService) buildTransaction(userID uuid.UUID, req dto.IngestTransactionRequest) (*models.Transaction, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: amount %q is not a decimal", ErrInvalidIngestPayload, req.Amount)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, models.ErrInvalidAmount
	}

	txn := &models.Transaction{
		UserID:          userID,
		Amount:          amount,
		TransactionType: req.Type,
		RawDescription:  req.RawDescription,
	}

	if req.AccountID != "" {
		accountID, err := uuid.Parse(req.AccountID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid account id", ErrInvalidIngestPayload)
		}
		txn.AccountID = &accountID
	}
	if req.MerchantID != "" {
		merchantID, err := uuid.Parse(req.MerchantID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid merchant id", ErrInvalidIngestPayload)
		}
		txn.MerchantID = &merchantID
	}
	if req.Timestamp != "" {
		ts, err := time.Parse(time.RFC3339, req.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("%w: timestamp must be RFC3339", ErrInvalidIngestPayload)
		}
		txn.TxnTimestamp = ts.UTC()
	}

	return txn, nil
}

// categorize enriches the transaction with the oracle's verdict, falling
// back to uncategorized defaults when the oracle is unavailable. Ingestion
// never fails on a scoring failure.
func (s *IngestionService) categorize(ctx context.Context, txn *models.Transaction) {
	result, err := s.oracleClient.Categorize(ctx, oracle.CategorizeRequest{
		UserID:         txn.UserID.String(),
		RawDescription: txn.RawDescription,
		Amount:         txn.Amount.StringFixed(2),
		Type:           txn.TransactionType,
	})
	if err != nil {
		s.pipelineLog.LogOracleFallback(ctx, "categorize", err.Error())
		s.metrics.IncrementCounter("oracle.fallback", map[string]string{
			"endpoint": "categorize",
		})
		txn.Category = models.CategoryUncategorized
		txn.ConfidenceScore = 0
		txn.CatMethod = models.CatMethodFallback
		return
	}

	s.metrics.IncrementCounter("oracle.request", map[string]string{
		"endpoint": "categorize",
		"outcome":  "success",
	})
	txn.Category = result.Category
	txn.Subcategory = result.Subcategory
	txn.CleanDescription = result.CleanDescription
	txn.ConfidenceScore = result.Confidence
	txn.CatMethod = result.Method
}
