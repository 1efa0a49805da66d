package services

import (
	"context"
	"time"

	"finpulse-api/internal/dto"
	"finpulse-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=service_mocks/mocks.go -package=service_mocks

// IngestionServiceInterface orchestrates the transaction processing pipeline
type IngestionServiceInterface interface {
	Ingest(ctx context.Context, userID uuid.UUID, req dto.IngestTransactionRequest) (*models.Transaction, []models.Alert, error)
	List(userID uuid.UUID, filters dto.TransactionFilters) ([]models.Transaction, int64, error)
	Recategorize(ctx context.Context, userID, transactionID uuid.UUID, category string) (*models.Transaction, error)
}

// AnomalyGateInterface decides whether a transaction warrants an anomaly alert
type AnomalyGateInterface interface {
	Evaluate(ctx context.Context, txn *models.Transaction) (*models.Alert, error)
}

// BudgetTrackerInterface applies debit spend to the matching active budget
type BudgetTrackerInterface interface {
	ApplyDebit(ctx context.Context, userID uuid.UUID, category string, amount decimal.Decimal) (*models.Alert, error)
}

// AlertServiceInterface persists alerts and routes them to notification channels
type AlertServiceInterface interface {
	Raise(ctx context.Context, alert *models.Alert) (*models.Alert, error)
	List(userID uuid.UUID, status, alertType string) ([]models.Alert, error)
	Resolve(ctx context.Context, userID, alertID uuid.UUID) (*models.Alert, error)
	CountActiveHigh(userID uuid.UUID) (int64, error)
}

// BudgetServiceInterface defines budget CRUD and the savings estimate
type BudgetServiceInterface interface {
	Create(ctx context.Context, userID uuid.UUID, req dto.CreateBudgetRequest) (*models.Budget, error)
	List(userID uuid.UUID) ([]models.Budget, error)
	Update(ctx context.Context, userID, budgetID uuid.UUID, req dto.UpdateBudgetRequest) (*models.Budget, error)
	Delete(ctx context.Context, userID, budgetID uuid.UUID) error
	SavingsEstimate(userID uuid.UUID) (*dto.SavingsEstimateResponse, error)
}

// GoalServiceInterface defines goal CRUD, contributions and feasibility insights
type GoalServiceInterface interface {
	Create(ctx context.Context, userID uuid.UUID, req dto.CreateGoalRequest) (*models.Goal, error)
	List(userID uuid.UUID) ([]models.Goal, error)
	Contribute(ctx context.Context, userID, goalID uuid.UUID, amount decimal.Decimal) (*models.Goal, error)
	Delete(ctx context.Context, userID, goalID uuid.UUID) error
	Insights(ctx context.Context, userID uuid.UUID) (*dto.GoalInsightsResponse, error)
}

// InvestmentServiceInterface evaluates the investment readiness hard gates
type InvestmentServiceInterface interface {
	Readiness(userID uuid.UUID) (*dto.InvestmentReadinessResponse, error)
	Recommendations(userID uuid.UUID) (*dto.InvestmentReadinessResponse, error)
}

// ProfileServiceInterface builds and serves the per-user budget profile
type ProfileServiceInterface interface {
	Get(userID uuid.UUID) (*models.BudgetProfile, error)
	Rebuild(ctx context.Context, userID uuid.UUID) (*models.BudgetProfile, error)
}

// MetricsRecorderInterface defines the contract for recording metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// PipelineLoggerInterface defines structured pipeline event logging
type PipelineLoggerInterface interface {
	LogIngestStarted(ctx context.Context, userID uuid.UUID)
	LogIngestCompleted(ctx context.Context, transactionID uuid.UUID, durationMs int64)
	LogIngestFailed(ctx context.Context, userID uuid.UUID, errorMsg string)
	LogOracleFallback(ctx context.Context, endpoint string, errorMsg string)
	LogAnomalyFlagged(ctx context.Context, transactionID uuid.UUID, score float64, severity string)
	LogBudgetThresholdCrossed(ctx context.Context, budgetID uuid.UUID, category string, utilization float64, severity string)
	LogAlertRaised(ctx context.Context, alertID uuid.UUID, alertType, severity string)
	LogNotificationFailed(ctx context.Context, alertID uuid.UUID, channel string, errorMsg string)
	LogProfileRebuilt(ctx context.Context, userID uuid.UUID, months int)
}
