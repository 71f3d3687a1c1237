package auth

import (
	"context"
	"fmt"
	"sync"

	"github.com/fleetops/driverlog/internal/repository"
)

// CachedTokenSource adapts a Provider + the cached user's refresh token into
// an api.TokenSource. Refresh swaps the in-memory token and persists the
// rotated refresh token back to the local cache.
type CachedTokenSource struct {
	mu       sync.Mutex
	token    string
	provider Provider
	users    repository.UserRepo
}

// NewCachedTokenSource seeds a token source with the current bearer token.
func NewCachedTokenSource(token string, provider Provider, users repository.UserRepo) *CachedTokenSource {
	return &CachedTokenSource{token: token, provider: provider, users: users}
}

func (c *CachedTokenSource) Token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token == "" {
		return "", fmt.Errorf("no active session: %w", ErrInvalidCredentials)
	}
	return c.token, nil
}

func (c *CachedTokenSource) Refresh(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	u, err := c.users.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("loading cached user: %w", err)
	}
	sess, err := c.provider.Refresh(ctx, u.RefreshToken)
	if err != nil {
		return "", err
	}

	c.token = sess.Token
	if sess.RefreshToken != "" && sess.RefreshToken != u.RefreshToken {
		u.RefreshToken = sess.RefreshToken
		if err := c.users.Upsert(ctx, u); err != nil {
			return "", fmt.Errorf("persisting rotated refresh token: %w", err)
		}
	}
	return c.token, nil
}
