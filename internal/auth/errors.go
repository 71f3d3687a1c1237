package auth

import "errors"

var (
	// ErrInvalidCredentials is the generic sign-in failure surfaced for bad
	// email/password and rejected refresh tokens alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrPINMismatch indicates a PIN unlock attempt that did not match the
	// cached digest. Recoverable by user correction.
	ErrPINMismatch = errors.New("pin mismatch")

	// ErrNoCachedUser indicates a PIN unlock with no cached user to unlock.
	ErrNoCachedUser = errors.New("no cached user")
)
