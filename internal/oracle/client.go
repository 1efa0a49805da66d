package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"finpulse-api/internal/config"
	"finpulse-api/internal/models"
)

var (
	// ErrOracleUnavailable covers timeouts, transport failures, non-200
	// responses and an open circuit breaker. Callers degrade to fallback
	// behavior instead of failing ingestion.
	ErrOracleUnavailable = errors.New("scoring oracle unavailable")
)

//go:generate mockgen -source=client.go -destination=oracle_mocks/mocks.go -package=oracle_mocks

// ClientInterface defines the contract for the external scoring oracle
type ClientInterface interface {
	Categorize(ctx context.Context, req CategorizeRequest) (*CategorizeResult, error)
	ScoreAnomaly(ctx context.Context, req AnomalyRequest) (*AnomalyResult, error)
	BreakerState() models.CircuitBreakerState
}

// CategorizeRequest is the payload sent to the oracle's categorization endpoint
type CategorizeRequest struct {
	UserID         string `json:"user_id"`
	RawDescription string `json:"raw_description"`
	Amount         string `json:"amount"`
	Type           string `json:"type"`
}

// CategorizeResult is the oracle's categorization verdict
type CategorizeResult struct {
	Category         string  `json:"category"`
	Subcategory      string  `json:"subcategory,omitempty"`
	CleanDescription string  `json:"clean_description,omitempty"`
	Confidence       float64 `json:"confidence"`
	Method           string  `json:"method"`
}

// AnomalyRequest is the payload sent to the oracle's anomaly endpoint
type AnomalyRequest struct {
	UserID    string `json:"user_id"`
	Amount    string `json:"amount"`
	Category  string `json:"category"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
}

// AnomalyResult is the oracle's anomaly verdict
type AnomalyResult struct {
	IsAnomalous bool    `json:"is_anomalous"`
	Score       float64 `json:"score"`
	Reason      string  `json:"reason,omitempty"`
}

// client is the HTTP implementation of ClientInterface
type client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *CircuitBreaker
	logger     *slog.Logger
}

// NewClient creates a scoring oracle client with a circuit breaker sized
// from config
func NewClient(cfg *config.OracleConfig, logger *slog.Logger) ClientInterface {
	breakerConfig := DefaultCircuitBreakerConfig()
	if cfg.MaxFailures > 0 {
		breakerConfig.MaxFailures = cfg.MaxFailures
	}
	if cfg.BreakerCooldown > 0 {
		breakerConfig.ResetTimeout = cfg.BreakerCooldown
	}

	return &client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		breaker: NewCircuitBreaker(breakerConfig),
		logger:  logger,
	}
}

// Categorize asks the oracle to categorize a raw transaction description
func (c *client) Categorize(ctx context.Context, req CategorizeRequest) (*CategorizeResult, error) {
	var result CategorizeResult
	if err := c.post(ctx, "/v1/categorize", req, &result); err != nil {
		return nil, err
	}
	if result.Confidence < 0 || result.Confidence > 1 {
		c.logger.Warn("oracle returned out of range confidence",
			"confidence", result.Confidence)
		return nil, fmt.Errorf("%w: confidence out of range", ErrOracleUnavailable)
	}
	return &result, nil
}

// ScoreAnomaly asks the oracle to score a transaction for anomalies
func (c *client) ScoreAnomaly(ctx context.Context, req AnomalyRequest) (*AnomalyResult, error) {
	var result AnomalyResult
	if err := c.post(ctx, "/v1/anomaly", req, &result); err != nil {
		return nil, err
	}
	if result.Score < 0 || result.Score > 1 {
		c.logger.Warn("oracle returned out of range anomaly score",
			"score", result.Score)
		return nil, fmt.Errorf("%w: anomaly score out of range", ErrOracleUnavailable)
	}
	return &result, nil
}

// BreakerState exposes the circuit breaker state for health reporting
func (c *client) BreakerState() models.CircuitBreakerState {
	return c.breaker.GetState()
}

func (c *client) post(ctx context.Context, path string, payload, result interface{}) error {
	if c.breaker.IsOpen() {
		return fmt.Errorf("%w: %s", ErrOracleUnavailable, ErrCircuitBreakerOpen)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal oracle request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build oracle request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.breaker.RecordFailure()
		c.logger.Warn("oracle request failed",
			"path", path,
			"error", err)
		return fmt.Errorf("%w: %v", ErrOracleUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.breaker.RecordFailure()
		c.logger.Warn("oracle returned non-200 status",
			"path", path,
			"status", resp.StatusCode)
		return fmt.Errorf("%w: status %d", ErrOracleUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		c.breaker.RecordFailure()
		return fmt.Errorf("%w: malformed response: %v", ErrOracleUnavailable, err)
	}

	c.breaker.RecordSuccess()
	return nil
}
