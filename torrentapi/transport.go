package torrentapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 30 * time.Second

// Transport sends a GET request with an ordered query and returns the body text
type Transport interface {
	Get(ctx context.Context, endpoint string, query Query, userAgent string) ([]byte, error)
}

// HTTPTransport is the net/http implementation of Transport
type HTTPTransport struct {
	client *http.Client
}

// NewHTTPTransport wraps an http.Client. A nil client gets the default 30s timeout.
func NewHTTPTransport(client *http.Client) *HTTPTransport {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &HTTPTransport{client: client}
}

// Get performs the request. The body is returned for any status code since
// the API reports its errors in-body.
func (t *HTTPTransport) Get(ctx context.Context, endpoint string, query Query, userAgent string) ([]byte, error) {
	requestURL := endpoint
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, &TransportError{Endpoint: endpoint, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, &TransportError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Endpoint: endpoint, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	return body, nil
}
