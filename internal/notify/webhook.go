package notify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"dogwalking/internal/platform/httpclient"
)

// WebhookSink hace POST del Message como JSON.
type WebhookSink struct {
	path   string
	client *httpclient.Client
}

// NewWebhookSink separa rawURL en base (scheme+host) y path para el cliente HTTP.
func NewWebhookSink(rawURL string, timeout time.Duration) (*WebhookSink, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("notify: webhook url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, errors.New("notify: webhook url must be absolute http(s)")
	}

	c, err := httpclient.NewWithBaseURL(u.Scheme+"://"+u.Host, timeout)
	if err != nil {
		return nil, fmt.Errorf("notify: webhook url: %w", err)
	}
	c.Retries = 2
	return &WebhookSink{path: u.RequestURI(), client: c}, nil
}

func (s *WebhookSink) Publish(ctx context.Context, m Message) error {
	err := s.client.DoJSON(ctx, http.MethodPost, s.path, map[string]string{
		"X-Notification-Kind": string(m.Kind),
	}, m, nil)
	if err != nil {
		return fmt.Errorf("notify: webhook: %w", err)
	}
	return nil
}

func (s *WebhookSink) Close() error { return nil }
