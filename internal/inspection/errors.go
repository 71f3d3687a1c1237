package inspection

import "errors"

var (
	// ErrStepIncomplete indicates an advance was attempted past a gated step
	// whose validation predicate does not pass.
	ErrStepIncomplete = errors.New("step incomplete")

	// ErrUnknownFormat indicates an unrecognized wire format selector.
	ErrUnknownFormat = errors.New("unknown wire format")
)
