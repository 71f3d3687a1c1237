// Package api implements the client for the fleet backend REST API. All calls
// carry a bearer token; a 401 response triggers one transparent token refresh
// and retry before the failure propagates.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// TokenSource supplies bearer tokens and can mint a fresh one when the
// current token is rejected.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
	Refresh(ctx context.Context) (string, error)
}

// StaticToken is a TokenSource with a fixed token and no refresh path.
// Refresh returns the same token, so a 401 retry fails fast.
type StaticToken string

func (s StaticToken) Token(ctx context.Context) (string, error)   { return string(s), nil }
func (s StaticToken) Refresh(ctx context.Context) (string, error) { return string(s), nil }

// Client talks to the fleet backend.
type Client struct {
	cfg      Config
	http     *http.Client
	tokens   TokenSource
	observer Observer
}

// NewClient creates a backend client. A nil observer defaults to NoopObserver.
func NewClient(cfg Config, tokens TokenSource, observer Observer) *Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		tokens:   tokens,
		observer: observer,
	}
}

// do performs one authenticated request, retrying transport failures up to
// MaxRetries and refreshing the token once on 401. Request and response
// bodies are JSON; out may be nil to discard the body.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("acquiring token: %w", err)
	}

	status, err := c.doOnce(ctx, method, path, token, body, out)
	for attempt := 0; attempt < c.cfg.MaxRetries && err != nil && isConnectionError(err); attempt++ {
		status, err = c.doOnce(ctx, method, path, token, body, out)
	}
	if status == http.StatusUnauthorized {
		token, refreshErr := c.tokens.Refresh(ctx)
		if refreshErr != nil {
			err = fmt.Errorf("refreshing token: %w", refreshErr)
		} else {
			status, err = c.doOnce(ctx, method, path, token, body, out)
			if status == http.StatusUnauthorized {
				err = ErrUnauthorized
			}
		}
	}

	event := CallEvent{
		Method:    method,
		Path:      path,
		Status:    status,
		LatencyMs: time.Since(start).Milliseconds(),
	}
	if err != nil {
		event.Err = err.Error()
	}
	c.observer.OnCallComplete(event)

	if err != nil && isConnectionError(err) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return err
}

// doOnce performs a single HTTP round trip. Returns the status code (0 when
// the request never completed) alongside any error.
func (c *Client) doOnce(ctx context.Context, method, path, token string, body any, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reader)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return resp.StatusCode, ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, &StatusError{
			Status:  resp.StatusCode,
			Message: extractMessage(respBody),
		}
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return resp.StatusCode, fmt.Errorf("decoding response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

// extractMessage pulls a human-readable message out of an error body,
// best-effort: {"message": ...} then {"error": ...} then the raw body.
func extractMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	if len(body) > 200 {
		body = body[:200]
	}
	return string(body)
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}
