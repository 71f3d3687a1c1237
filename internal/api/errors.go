package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized indicates the bearer token was rejected even after the
	// transparent refresh-and-retry.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnavailable indicates the backend is unreachable.
	ErrUnavailable = errors.New("backend unavailable")
)

// StatusError carries a non-2xx backend response with its best-effort
// extracted message.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.Status)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.Status, e.Message)
}
