package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/the88gb/influencer-dashboard-backend/internal/models"
)

// ErrPostURLRequired is returned when no post URL is supplied.
var ErrPostURLRequired = errors.New("post URL is required")

// ErrWebhookTimeout is returned when the external metrics call exceeds the
// configured timeout. Distinguished from other transport failures.
var ErrWebhookTimeout = errors.New("webhook request timed out")

// WebhookStatusError reports a non-success HTTP status from the external
// metrics webhook.
type WebhookStatusError struct {
	StatusCode int
}

func (e *WebhookStatusError) Error() string {
	return fmt.Sprintf("webhook request failed: %d", e.StatusCode)
}

// MetricsService proxies post-metric fetches to the external webhook and
// normalizes its ad hoc response into the fixed PostMetrics shape.
type MetricsService struct {
	webhookURL string
	client     *http.Client
}

func NewMetricsService(webhookURL string, timeout time.Duration) *MetricsService {
	return &MetricsService{
		webhookURL: webhookURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchPostMetrics forwards the post URL to the webhook and returns the
// normalized metrics. The call is never retried; a timeout aborts it.
func (s *MetricsService) FetchPostMetrics(postURL string) (*models.PostMetrics, error) {
	if postURL == "" {
		return nil, ErrPostURLRequired
	}

	requestURL := fmt.Sprintf("%s?postUrl=%s", s.webhookURL, url.QueryEscape(postURL))
	resp, err := s.client.Get(requestURL)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Timeout() {
			logrus.Errorf("Webhook request timed out for %s", postURL)
			return nil, ErrWebhookTimeout
		}
		return nil, fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		logrus.Errorf("Webhook request failed with status %d: %s", resp.StatusCode, string(body))
		return nil, &WebhookStatusError{StatusCode: resp.StatusCode}
	}

	var payload interface{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode webhook response: %w", err)
	}
	return normalizeMetrics(payload), nil
}

// normalizeMetrics unwraps the webhook payload, which may be a single object
// or a one-element sequence, into the fixed metrics shape.
func normalizeMetrics(payload interface{}) *models.PostMetrics {
	var raw map[string]interface{}
	switch v := payload.(type) {
	case []interface{}:
		if len(v) > 0 {
			raw, _ = v[0].(map[string]interface{})
		}
	case map[string]interface{}:
		raw = v
	}

	return &models.PostMetrics{
		Likes:    intField(raw, "likesCount"),
		Comments: intField(raw, "commentsCount"),
		Views:    intField(raw, "videoPlayCount"),
		Name:     stringField(raw, "ownerFullName"),
		Username: stringField(raw, "ownerUsername"),
	}
}

func intField(m map[string]interface{}, key string) int {
	if m == nil {
		return 0
	}
	if v, ok := m[key].(float64); ok {
		return int(v)
	}
	return 0
}

func stringField(m map[string]interface{}, key string) string {
	if m == nil {
		return ""
	}
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}
