// Package auth implements the identity-provider client and the PIN unlock
// path over the locally cached user.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/fleetops/driverlog/internal/api"
)

// Session is the result of a successful sign-in: an identity plus a token
// pair. Tokens are opaque bearer strings minted by the provider.
type Session struct {
	UID          string `json:"uid"`
	Email        string `json:"email"`
	DisplayName  string `json:"display_name"`
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

// Provider authenticates drivers against the identity service.
type Provider interface {
	SignIn(ctx context.Context, email, password string) (*Session, error)
	Refresh(ctx context.Context, refreshToken string) (*Session, error)
}

// httpProvider implements Provider over the identity service's HTTP API.
type httpProvider struct {
	cfg  api.Config
	http *http.Client
}

// NewHTTPProvider creates a Provider that talks to the configured identity
// service.
func NewHTTPProvider(cfg api.Config) Provider {
	return &httpProvider{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
	}
}

func (p *httpProvider) SignIn(ctx context.Context, email, password string) (*Session, error) {
	return p.post(ctx, "/v1/signin", map[string]string{
		"email":    email,
		"password": password,
	})
}

func (p *httpProvider) Refresh(ctx context.Context, refreshToken string) (*Session, error) {
	return p.post(ctx, "/v1/token/refresh", map[string]string{
		"refresh_token": refreshToken,
	})
}

func (p *httpProvider) post(ctx context.Context, path string, body map[string]string) (*Session, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(p.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.AuthURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity service: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	// Credential and token failures get one generic, non-enumerating reason.
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusBadRequest {
		return nil, ErrInvalidCredentials
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("identity service returned status %d", resp.StatusCode)
	}

	var s Session
	if err := json.Unmarshal(respBody, &s); err != nil {
		return nil, fmt.Errorf("decoding session: %w", err)
	}
	if s.UID == "" {
		return nil, fmt.Errorf("identity service returned no uid")
	}
	return &s, nil
}
