package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"workclock-backend/internal/config"
	"workclock-backend/internal/logger"
)

// Notification is one user-facing message emitted after a mutation.
type Notification struct {
	Type    string `json:"type"` // "success" or "error"
	Message string `json:"message"`
}

// Notifier delivers notifications. Delivery is best effort: a failed send is
// logged and never fails the calling operation.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// NewNotifier returns the webhook notifier when one is configured, otherwise
// a no-op sink.
func NewNotifier(cfg *config.Config) Notifier {
	if cfg.NotifyWebhookURL == "" {
		return NoopNotifier{}
	}
	return NewWebhookNotifier(cfg.NotifyWebhookURL)
}

// NoopNotifier discards all notifications.
type NoopNotifier struct{}

func (NoopNotifier) Notify(ctx context.Context, n Notification) {}

// WebhookNotifier posts notifications to a configured webhook.
type WebhookNotifier struct {
	url        string
	httpClient *http.Client
	log        *logger.Logger
}

// NewWebhookNotifier creates a new webhook notifier
func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{
		url:        url,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		log:        logger.WithComponent("notifier"),
	}
}

// Notify posts the notification. Errors are logged, not returned.
func (s *WebhookNotifier) Notify(ctx context.Context, n Notification) {
	payload, err := json.Marshal(n)
	if err != nil {
		s.log.WithField("error", err).Warn("Failed to encode notification")
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		s.log.WithField("error", err).Warn("Failed to create notification request")
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.log.WithField("error", err).Warn("Notification delivery failed")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.log.WithField("status", resp.StatusCode).Warn("Notification rejected by webhook")
	}
}
