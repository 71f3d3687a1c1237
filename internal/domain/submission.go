package domain

import "time"

// PendingSubmission is the durable record of an in-flight inspection
// submission. The three backend calls (inspection POST, schedule PATCH,
// clock-out) are sequential and not transactional; Phase records the next
// call still owed so an interrupted sequence can be re-driven on the next
// start-up with the same idempotency key.
type PendingSubmission struct {
	ID             string
	IdempotencyKey string
	UserID         string
	ScheduleID     string
	SessionID      string
	Kind           FlowKind
	Payload        []byte // encoded aggregate, exactly as first submitted
	Phase          SubmissionPhase
	CreatedAt      time.Time
}
