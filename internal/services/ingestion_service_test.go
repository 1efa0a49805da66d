package services

import (
	"context"
	"errors"
	"testing"

	"finpulse-api/internal/dto"
	"finpulse-api/internal/models"
	"finpulse-api/internal/oracle"
	"finpulse-api/internal/oracle/oracle_mocks"
	"finpulse-api/internal/repositories"
	"finpulse-api/internal/repositories/repository_mocks"
	"finpulse-api/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ingestionFixture struct {
	ctrl          *gomock.Controller
	txnRepo       *repository_mocks.MockTransactionRepositoryInterface
	feedbackRepo  *repository_mocks.MockCategoryFeedbackRepositoryInterface
	oracleClient  *oracle_mocks.MockClientInterface
	anomalyGate   *service_mocks.MockAnomalyGateInterface
	budgetTracker *service_mocks.MockBudgetTrackerInterface
	metrics       *stubMetrics
	service       IngestionServiceInterface
}

func newIngestionFixture(t *testing.T) *ingestionFixture {
	ctrl := gomock.NewController(t)

	f := &ingestionFixture{
		ctrl:          ctrl,
		txnRepo:       repository_mocks.NewMockTransactionRepositoryInterface(ctrl),
		feedbackRepo:  repository_mocks.NewMockCategoryFeedbackRepositoryInterface(ctrl),
		oracleClient:  oracle_mocks.NewMockClientInterface(ctrl),
		anomalyGate:   service_mocks.NewMockAnomalyGateInterface(ctrl),
		budgetTracker: service_mocks.NewMockBudgetTrackerInterface(ctrl),
		metrics:       newStubMetrics(),
	}

	f.service = NewIngestionService(
		f.txnRepo,
		f.feedbackRepo,
		f.oracleClient,
		f.anomalyGate,
		f.budgetTracker,
		newTestPipelineLogger(),
		f.metrics,
	)
	return f
}

func TestIngest_Success(t *testing.T) {
	f := newIngestionFixture(t)
	defer f.ctrl.Finish()

	userID := uuid.New()
	req := dto.IngestTransactionRequest{
		Amount:         "420.50",
		Type:           models.TransactionTypeDebit,
		RawDescription: "SWIGGY ORDER 99812 UPI",
		Timestamp:      "2026-08-14T12:30:00Z",
	}

	f.oracleClient.EXPECT().Categorize(gomock.Any(), gomock.Any()).Return(&oracle.CategorizeResult{
		Category:         "Food & Dining",
		Subcategory:      "Delivery",
		CleanDescription: "Swiggy",
		Confidence:       0.94,
		Method:           models.CatMethodModel,
	}, nil)
	f.txnRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(txn *models.Transaction) error {
		txn.ID = uuid.New()
		return nil
	})
	f.anomalyGate.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(nil, nil)
	f.budgetTracker.EXPECT().ApplyDebit(gomock.Any(), userID, "Food & Dining", gomock.Any()).Return(nil, nil)

	txn, alerts, err := f.service.Ingest(context.Background(), userID, req)

	require.NoError(t, err)
	assert.Equal(t, "Food & Dining", txn.Category)
	assert.Equal(t, "Delivery", txn.Subcategory)
	assert.Equal(t, "Swiggy", txn.CleanDescription)
	assert.Equal(t, 0.94, txn.ConfidenceScore)
	assert.Equal(t, models.CatMethodModel, txn.CatMethod)
	assert.Empty(t, alerts)
	assert.Equal(t, 1, f.metrics.count("ingest.processed.success"))
}

func TestIngest_OracleDownFallsBackToUncategorized(t *testing.T) {
	f := newIngestionFixture(t)
	defer f.ctrl.Finish()

	userID := uuid.New()
	req := dto.IngestTransactionRequest{
		Amount:         "89.00",
		Type:           models.TransactionTypeDebit,
		RawDescription: "POS 44123 UNKNOWN MERCHANT",
	}

	f.oracleClient.EXPECT().Categorize(gomock.Any(), gomock.Any()).Return(nil, oracle.ErrOracleUnavailable)
	f.txnRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(txn *models.Transaction) error {
		txn.ID = uuid.New()
		return nil
	})
	f.anomalyGate.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(nil, nil)
	f.budgetTracker.EXPECT().ApplyDebit(gomock.Any(), userID, models.CategoryUncategorized, gomock.Any()).Return(nil, nil)

	txn, _, err := f.service.Ingest(context.Background(), userID, req)

	require.NoError(t, err)
	assert.Equal(t, models.CategoryUncategorized, txn.Category)
	assert.Zero(t, txn.ConfidenceScore)
	assert.Equal(t, models.CatMethodFallback, txn.CatMethod)
	assert.Equal(t, 1, f.metrics.count("oracle.fallback"))
}

func TestIngest_PersistenceFailureIsFatal(t *testing.T) {
	f := newIngestionFixture(t)
	defer f.ctrl.Finish()

	req := dto.IngestTransactionRequest{
		Amount:         "100.00",
		Type:           models.TransactionTypeDebit,
		RawDescription: "ATM WDL",
	}

	f.oracleClient.EXPECT().Categorize(gomock.Any(), gomock.Any()).Return(nil, oracle.ErrOracleUnavailable)
	f.txnRepo.EXPECT().Create(gomock.Any()).Return(errors.New("connection reset"))

	txn, alerts, err := f.service.Ingest(context.Background(), uuid.New(), req)

	require.Error(t, err)
	assert.Nil(t, txn)
	assert.Nil(t, alerts)
	assert.Equal(t, 1, f.metrics.count("ingest.processed.failed"))
}

func TestIngest_CollectsAnomalyAndBudgetAlerts(t *testing.T) {
	f := newIngestionFixture(t)
	defer f.ctrl.Finish()

	userID := uuid.New()
	req := dto.IngestTransactionRequest{
		Amount:         "48000.00",
		Type:           models.TransactionTypeDebit,
		RawDescription: "EMI PREPAYMENT",
	}

	anomalyAlert := models.Alert{ID: uuid.New(), AlertType: models.AlertTypeAnomaly, Severity: models.AlertSeverityHigh}
	budgetAlert := models.Alert{ID: uuid.New(), AlertType: models.AlertTypeBudgetWarning, Severity: models.AlertSeverityMedium}

	f.oracleClient.EXPECT().Categorize(gomock.Any(), gomock.Any()).Return(&oracle.CategorizeResult{
		Category: "EMI & Loans", Confidence: 0.88, Method: models.CatMethodModel,
	}, nil)
	f.txnRepo.EXPECT().Create(gomock.Any()).Return(nil)
	f.anomalyGate.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(&anomalyAlert, nil)
	f.budgetTracker.EXPECT().ApplyDebit(gomock.Any(), userID, "EMI & Loans", gomock.Any()).Return(&budgetAlert, nil)

	_, alerts, err := f.service.Ingest(context.Background(), userID, req)

	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, models.AlertTypeAnomaly, alerts[0].AlertType)
	assert.Equal(t, models.AlertTypeBudgetWarning, alerts[1].AlertType)
}

func TestIngest_DownstreamFailuresDoNotFailIngestion(t *testing.T) {
	f := newIngestionFixture(t)
	defer f.ctrl.Finish()

	userID := uuid.New()
	req := dto.IngestTransactionRequest{
		Amount:         "500.00",
		Type:           models.TransactionTypeDebit,
		RawDescription: "GROFERS 112",
	}

	f.oracleClient.EXPECT().Categorize(gomock.Any(), gomock.Any()).Return(&oracle.CategorizeResult{
		Category: "Groceries", Confidence: 0.91, Method: models.CatMethodModel,
	}, nil)
	f.txnRepo.EXPECT().Create(gomock.Any()).Return(nil)
	f.anomalyGate.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(nil, errors.New("anomaly store down"))
	f.budgetTracker.EXPECT().ApplyDebit(gomock.Any(), userID, "Groceries", gomock.Any()).Return(nil, errors.New("budget store down"))

	txn, alerts, err := f.service.Ingest(context.Background(), userID, req)

	require.NoError(t, err)
	assert.NotNil(t, txn)
	assert.Empty(t, alerts)
}

func TestIngest_CreditSkipsBudgetTracking(t *testing.T) {
	f := newIngestionFixture(t)
	defer f.ctrl.Finish()

	req := dto.IngestTransactionRequest{
		Amount:         "85000.00",
		Type:           models.TransactionTypeCredit,
		RawDescription: "SALARY AUG",
	}

	f.oracleClient.EXPECT().Categorize(gomock.Any(), gomock.Any()).Return(&oracle.CategorizeResult{
		Category: "Salary", Confidence: 0.99, Method: models.CatMethodRules,
	}, nil)
	f.txnRepo.EXPECT().Create(gomock.Any()).Return(nil)
	f.anomalyGate.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(nil, nil)
	// No ApplyDebit expectation: credits must not touch budgets.

	_, _, err := f.service.Ingest(context.Background(), uuid.New(), req)
	require.NoError(t, err)
}

func TestIngest_RejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name string
		req  dto.IngestTransactionRequest
	}{
		{"non-decimal amount", dto.IngestTransactionRequest{Amount: "lots", Type: models.TransactionTypeDebit, RawDescription: "x"}},
		{"zero amount", dto.IngestTransactionRequest{Amount: "0", Type: models.TransactionTypeDebit, RawDescription: "x"}},
		{"negative amount", dto.IngestTransactionRequest{Amount: "-10.00", Type: models.TransactionTypeDebit, RawDescription: "x"}},
		{"bad account id", dto.IngestTransactionRequest{Amount: "10.00", Type: models.TransactionTypeDebit, RawDescription: "x", AccountID: "not-a-uuid"}},
		{"bad timestamp", dto.IngestTransactionRequest{Amount: "10.00", Type: models.TransactionTypeDebit, RawDescription: "x", Timestamp: "14-08-2026"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newIngestionFixture(t)
			defer f.ctrl.Finish()

			txn, _, err := f.service.Ingest(context.Background(), uuid.New(), tt.req)
			assert.Error(t, err)
			assert.Nil(t, txn)
		})
	}
}

func TestRecategorize_RecordsFeedbackAndKeepsScore(t *testing.T) {
	f := newIngestionFixture(t)
	defer f.ctrl.Finish()

	userID := uuid.New()
	txnID := uuid.New()
	stored := &models.Transaction{
		ID:              txnID,
		UserID:          userID,
		Category:        "Shopping",
		ConfidenceScore: 0.67,
		CatMethod:       models.CatMethodModel,
	}

	f.txnRepo.EXPECT().GetByID(txnID).Return(stored, nil)
	f.feedbackRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(fb *models.CategoryFeedback) error {
		assert.Equal(t, "Shopping", fb.OldCategory)
		assert.Equal(t, "Groceries", fb.NewCategory)
		assert.Equal(t, txnID, fb.TransactionID)
		return nil
	})
	f.txnRepo.EXPECT().UpdateCategory(txnID, "Groceries").Return(nil)

	txn, err := f.service.Recategorize(context.Background(), userID, txnID, "Groceries")

	require.NoError(t, err)
	assert.Equal(t, "Groceries", txn.Category)
	assert.Equal(t, 0.67, txn.ConfidenceScore)
	assert.Equal(t, models.CatMethodModel, txn.CatMethod)
}

func TestRecategorize_OtherUsersTransactionLooksMissing(t *testing.T) {
	f := newIngestionFixture(t)
	defer f.ctrl.Finish()

	txnID := uuid.New()
	f.txnRepo.EXPECT().GetByID(txnID).Return(&models.Transaction{
		ID:     txnID,
		UserID: uuid.New(),
	}, nil)

	_, err := f.service.Recategorize(context.Background(), uuid.New(), txnID, "Groceries")
	assert.ErrorIs(t, err, repositories.ErrTransactionNotFound)
}
