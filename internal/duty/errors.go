package duty

import (
	"errors"
	"fmt"
)

// ErrInsufficientRest is the match target for rest-policy warnings.
var ErrInsufficientRest = errors.New("insufficient rest")

// InsufficientRestError is the blocking warning surfaced when the gap since
// the last clock-out is under the minimum. Not a hard failure: callers may
// retry ClockIn with AcknowledgeRest once the driver explicitly overrides.
type InsufficientRestError struct {
	Hours float64
}

func (e *InsufficientRestError) Error() string {
	return fmt.Sprintf("insufficient rest: %.1f hours since last shift", e.Hours)
}

func (e *InsufficientRestError) Is(target error) bool {
	return target == ErrInsufficientRest
}

// ErrNoOpenSession indicates an operation that needs an open duty session.
var ErrNoOpenSession = errors.New("no open duty session")
