package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"finpulse-api/internal/config"
)

//go:generate mockgen -source=notifier.go -destination=notify_mocks/mocks.go -package=notify_mocks

// NotifierInterface defines the contract for the notification gateway.
// Delivery is best effort: alert persistence never depends on it.
type NotifierInterface interface {
	SendPush(ctx context.Context, userID, title, body string) error
	SendEmail(ctx context.Context, userID, subject, body string) error
}

type pushPayload struct {
	UserID string `json:"user_id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

type emailPayload struct {
	UserID  string `json:"user_id"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// notifier is the HTTP implementation of NotifierInterface
type notifier struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewNotifier creates a notification gateway client
func NewNotifier(cfg *config.NotifierConfig, logger *slog.Logger) NotifierInterface {
	return &notifier{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// SendPush delivers a push notification through the gateway
func (n *notifier) SendPush(ctx context.Context, userID, title, body string) error {
	return n.post(ctx, "/v1/push", pushPayload{
		UserID: userID,
		Title:  title,
		Body:   body,
	})
}

// SendEmail delivers an email notification through the gateway
func (n *notifier) SendEmail(ctx context.Context, userID, subject, body string) error {
	return n.post(ctx, "/v1/email", emailPayload{
		UserID:  userID,
		Subject: subject,
		Body:    body,
	})
}

func (n *notifier) post(ctx context.Context, path string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		n.logger.Warn("notification delivery failed",
			"path", path,
			"error", err)
		return fmt.Errorf("notification delivery failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		n.logger.Warn("notification gateway rejected request",
			"path", path,
			"status", resp.StatusCode)
		return fmt.Errorf("notification gateway returned status %d", resp.StatusCode)
	}

	return nil
}
