package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/tribelet/kit-service/internal/domain/model"
)

// OrderNotifier delivers a placed order to the fulfillment side.
type OrderNotifier interface {
	NotifyOrder(ctx context.Context, order *model.OrderPayload) error
}

// HTTPOrderNotifier posts order payloads as JSON to a configured endpoint.
type HTTPOrderNotifier struct {
	endpoint string
	client   *http.Client
}

// NewHTTPOrderNotifier creates a notifier posting to endpoint. Returns
// nil when no endpoint is configured, which callers treat as "no
// notification".
func NewHTTPOrderNotifier(endpoint string, timeout time.Duration) *HTTPOrderNotifier {
	if endpoint == "" {
		return nil
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPOrderNotifier{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// NotifyOrder posts the order payload. Any non-2xx response is an error.
func (n *HTTPOrderNotifier) NotifyOrder(ctx context.Context, order *model.OrderPayload) error {
	body, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("marshal order payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build order notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("post order notification: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("order notification returned status %d", resp.StatusCode)
	}
	return nil
}
