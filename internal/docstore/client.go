// Package docstore reads the small per-user document store the backend keeps
// for daily duty records. The client only needs one read path: the last
// clock-out, which feeds the rest check at clock-in time. Writes happen
// server-side.
package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/fleetops/driverlog/internal/api"
)

// ErrNoRecord indicates the user has no duty record yet (first shift).
var ErrNoRecord = errors.New("no duty record")

// DayRecord is one per-user, per-calendar-date document.
type DayRecord struct {
	UserID       string     `json:"user_id"`
	Date         string     `json:"date"` // YYYY-MM-DD
	ClockOutTime *time.Time `json:"clock_out_time"`
	BreakMinutes int        `json:"break_minutes"`
}

// Client fetches duty records.
type Client interface {
	// LatestRecord returns the most recent day record for a user, or
	// ErrNoRecord.
	LatestRecord(ctx context.Context, userID string) (*DayRecord, error)
}

type httpClient struct {
	cfg    api.Config
	http   *http.Client
	tokens api.TokenSource
}

// NewHTTPClient creates a Client over the document store's HTTP API.
func NewHTTPClient(cfg api.Config, tokens api.TokenSource) Client {
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		tokens: tokens,
	}
}

func (c *httpClient) LatestRecord(ctx context.Context, userID string) (*DayRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	path := c.cfg.DocstoreURL + "/records/" + url.PathEscape(userID) + "/latest"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquiring token: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("document store: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNoRecord
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("document store returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	var rec DayRecord
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, fmt.Errorf("decoding day record: %w", err)
	}
	return &rec, nil
}
