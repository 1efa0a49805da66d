package services

import (
	"context"
	"fmt"
	"time"

	"finpulse-api/internal/models"
	"finpulse-api/internal/oracle"
	"finpulse-api/internal/repositories"
)

// AnomalyGate implements AnomalyGateInterface. The gate fails open: when
// the oracle is unreachable a transaction is treated as normal rather
// than blocking ingestion.
type AnomalyGate struct {
	oracleClient oracle.ClientInterface
	txnRepo      repositories.TransactionRepositoryInterface
	alertService AlertServiceInterface
	pipelineLog  PipelineLoggerInterface
	metrics      MetricsRecorderInterface
	highScore    float64
}

// NewAnomalyGate creates a new anomaly gate. highScore is the threshold
// above which an anomaly is escalated from medium to high severity.
func NewAnomalyGate(
	oracleClient oracle.ClientInterface,
	txnRepo repositories.TransactionRepositoryInterface,
	alertService AlertServiceInterface,
	pipelineLog PipelineLoggerInterface,
	metrics MetricsRecorderInterface,
	highScore float64,
) AnomalyGateInterface {
	return &AnomalyGate{
		oracleClient: oracleClient,
		txnRepo:      txnRepo,
		alertService: alertService,
		pipelineLog:  pipelineLog,
		metrics:      metrics,
		highScore:    highScore,
	}
}

// Evaluate scores the transaction for anomalies and, when flagged, marks
// the stored row and raises an anomaly alert. Each transaction is
// evaluated at most once; an already-anomalous transaction is skipped.
func (g *AnomalyGate) Evaluate(ctx context.Context, txn *models.Transaction) (*models.Alert, error) {
	if txn.IsAnomalous {
		return nil, nil
	}

	result, err := g.oracleClient.ScoreAnomaly(ctx, oracle.AnomalyRequest{
		UserID:    txn.UserID.String(),
		Amount:    txn.Amount.StringFixed(2),
		Category:  txn.Category,
		Type:      txn.TransactionType,
		Timestamp: txn.TxnTimestamp.Format(time.RFC3339),
	})
	if err != nil {
		g.pipelineLog.LogOracleFallback(ctx, "anomaly", err.Error())
		g.metrics.IncrementCounter("oracle.fallback", map[string]string{
			"endpoint": "anomaly",
		})
		return nil, nil
	}

	g.metrics.IncrementCounter("oracle.request", map[string]string{
		"endpoint": "anomaly",
		"outcome":  "success",
	})

	if !result.IsAnomalous {
		return nil, nil
	}

	if err := g.txnRepo.MarkAnomalous(txn.ID, result.Score); err != nil {
		return nil, fmt.Errorf("failed to persist anomaly flag: %w", err)
	}

	score := result.Score
	txn.IsAnomalous = true
	txn.AnomalyScore = &score

	severity := models.AlertSeverityMedium
	if result.Score > g.highScore {
		severity = models.AlertSeverityHigh
	}

	g.pipelineLog.LogAnomalyFlagged(ctx, txn.ID, result.Score, severity)

	txnID := txn.ID
	alert := &models.Alert{
		UserID:        txn.UserID,
		TransactionID: &txnID,
		AlertType:     models.AlertTypeAnomaly,
		Severity:      severity,
		Message:       anomalyMessage(txn, result),
	}

	raised, err := g.alertService.Raise(ctx, alert)
	if err != nil {
		return nil, fmt.Errorf("failed to raise anomaly alert: %w", err)
	}

	return raised, nil
}

func anomalyMessage(txn *models.Transaction, result *oracle.AnomalyResult) string {
	msg := fmt.Sprintf("Unusual %s of %s detected in %s",
		txn.TransactionType, txn.Amount.StringFixed(2), txn.Category)
	if result.Reason != "" {
		msg += ": " + result.Reason
	}
	return msg
}
