package domain

import "errors"

var (
	// ErrAlreadyOnBreak indicates StartBreak was called with a break open.
	ErrAlreadyOnBreak = errors.New("already on break")

	// ErrNotOnBreak indicates EndBreak was called with no break open.
	ErrNotOnBreak = errors.New("not on break")

	// ErrOnBreak indicates an operation that is invalid while on break.
	ErrOnBreak = errors.New("on break")

	// ErrOffDuty indicates an operation that is invalid while off duty.
	ErrOffDuty = errors.New("off duty")

	// ErrAlreadyOffDuty indicates GoOffDuty was called while already off duty.
	ErrAlreadyOffDuty = errors.New("already off duty")

	// ErrNotOffDuty indicates GoOnDuty was called while not off duty.
	ErrNotOffDuty = errors.New("not off duty")

	// ErrOpenBreak indicates a session close was attempted with a break open.
	ErrOpenBreak = errors.New("session has an open break")

	// ErrSessionClosed indicates a mutation on a completed session.
	ErrSessionClosed = errors.New("session already completed")
)
