package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type PipelineLogger struct {
	logger *slog.Logger
}

func NewPipelineLogger(logger *slog.Logger) PipelineLoggerInterface {
	return &PipelineLogger{
		logger: logger,
	}
}

func (pl *PipelineLogger) LogIngestStarted(ctx context.Context, userID uuid.UUID) {
	pl.logger.InfoContext(ctx, "transaction ingest started",
		slog.String("event_type", "ingest_started"),
		slog.String("user_id", userID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (pl *PipelineLogger) LogIngestCompleted(ctx context.Context, transactionID uuid.UUID, durationMs int64) {
	pl.logger.InfoContext(ctx, "transaction ingest completed",
		slog.String("event_type", "ingest_completed"),
		slog.String("transaction_id", transactionID.String()),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (pl *PipelineLogger) LogIngestFailed(ctx context.Context, userID uuid.UUID, errorMsg string) {
	pl.logger.WarnContext(ctx, "transaction ingest failed",
		slog.String("event_type", "ingest_failed"),
		slog.String("user_id", userID.String()),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (pl *PipelineLogger) LogOracleFallback(ctx context.Context, endpoint string, errorMsg string) {
	pl.logger.WarnContext(ctx, "scoring oracle fallback",
		slog.String("event_type", "oracle_fallback"),
		slog.String("endpoint", endpoint),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (pl *PipelineLogger) LogAnomalyFlagged(ctx context.Context, transactionID uuid.UUID, score float64, severity string) {
	pl.logger.InfoContext(ctx, "anomaly flagged",
		slog.String("event_type", "anomaly_flagged"),
		slog.String("transaction_id", transactionID.String()),
		slog.Float64("score", score),
		slog.String("severity", severity),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (pl *PipelineLogger) LogBudgetThresholdCrossed(ctx context.Context, budgetID uuid.UUID, category string, utilization float64, severity string) {
	pl.logger.InfoContext(ctx, "budget threshold crossed",
		slog.String("event_type", "budget_threshold_crossed"),
		slog.String("budget_id", budgetID.String()),
		slog.String("category", category),
		slog.Float64("utilization", utilization),
		slog.String("severity", severity),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (pl *PipelineLogger) LogAlertRaised(ctx context.Context, alertID uuid.UUID, alertType, severity string) {
	pl.logger.InfoContext(ctx, "alert raised",
		slog.String("event_type", "alert_raised"),
		slog.String("alert_id", alertID.String()),
		slog.String("alert_type", alertType),
		slog.String("severity", severity),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (pl *PipelineLogger) LogNotificationFailed(ctx context.Context, alertID uuid.UUID, channel string, errorMsg string) {
	pl.logger.WarnContext(ctx, "notification delivery failed",
		slog.String("event_type", "notification_failed"),
		slog.String("alert_id", alertID.String()),
		slog.String("channel", channel),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (pl *PipelineLogger) LogProfileRebuilt(ctx context.Context, userID uuid.UUID, months int) {
	pl.logger.InfoContext(ctx, "budget profile rebuilt",
		slog.String("event_type", "profile_rebuilt"),
		slog.String("user_id", userID.String()),
		slog.Int("months", months),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value("correlation_id").(string); ok {
		return correlationID
	}

	if requestID, ok := ctx.Value("request_id").(string); ok {
		return requestID
	}

	return ""
}
