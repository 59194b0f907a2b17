// Package transport delivers signal batches to an ingest endpoint over
// HTTP POST.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/signalbeam/signalbeam/pkg/signal"
)

// Transport defines the interface for delivering signals. The body is
// always a JSON array, even for a single signal; the ingest contract is
// batch-shaped and the client simply sends one-element batches.
type Transport interface {
	Send(ctx context.Context, endpoint string, signals []signal.Signal) error
}

// HTTPTransport implements Transport using net/http.
type HTTPTransport struct {
	client *http.Client
}

// NewHTTP creates an HTTP transport. The request timeout lives here;
// the client layer above imposes none of its own.
func NewHTTP() *HTTPTransport {
	return &HTTPTransport{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewHTTPWithClient creates an HTTP transport around an existing
// http.Client (custom TLS, proxies, js/wasm fetch round-trippers).
func NewHTTPWithClient(client *http.Client) *HTTPTransport {
	return &HTTPTransport{client: client}
}

// Send POSTs the signals to endpoint as a JSON array and succeeds only
// on a 2xx response.
func (t *HTTPTransport) Send(ctx context.Context, endpoint string, signals []signal.Signal) error {
	if len(signals) == 0 {
		return nil
	}

	body, err := json.Marshal(signals)
	if err != nil {
		return fmt.Errorf("failed to marshal signals: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	return nil
}
