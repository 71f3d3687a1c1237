// Package submit drives the end-of-shift submission sequence: inspection
// POST, schedule completion, clock-out. The three backend calls are
// sequential and not transactional, so every submission is journaled
// locally with the phase still owed; an interrupted sequence is re-driven
// from that phase on the next start-up with its original payload.
package submit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/fleetops/driverlog/internal/domain"
	"github.com/fleetops/driverlog/internal/inspection"
	"github.com/fleetops/driverlog/internal/repository"
	"github.com/google/uuid"
)

// InspectionAPI is the slice of the backend client the boundary needs.
type InspectionAPI interface {
	SubmitInspection(ctx context.Context, payload map[string]any) error
	CompleteSchedule(ctx context.Context, scheduleID string) error
}

// SessionCloser closes the duty session once the backend calls settle.
type SessionCloser interface {
	ClockOut(ctx context.Context, session *domain.DutySession) error
}

// Boundary sequences a finalized inspection through its three backend calls
// and journals progress so a partial failure never repeats a completed call.
type Boundary struct {
	api      InspectionAPI
	duty     SessionCloser
	subs     repository.SubmissionRepo
	sessions repository.SessionRepo
	log      *log.Logger
}

// NewBoundary wires a submission boundary. A nil logger discards the
// reconciliation warnings.
func NewBoundary(api InspectionAPI, duty SessionCloser, subs repository.SubmissionRepo, sessions repository.SessionRepo, logger *log.Logger) *Boundary {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Boundary{api: api, duty: duty, subs: subs, sessions: sessions, log: logger}
}

// Submit encodes the aggregate in the requested wire format, journals it,
// and drives the sequence. On error the journal row survives at the phase
// that failed; Reconcile picks it up later. The payload carries a fresh
// idempotency key that every retry of this submission replays verbatim.
func (b *Boundary) Submit(ctx context.Context, agg *inspection.Aggregate, session *domain.DutySession, scheduleID string, format inspection.WireFormat) error {
	payload, err := inspection.Encode(agg, format)
	if err != nil {
		return err
	}
	key := uuid.New().String()
	payload["idempotencyKey"] = key

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode submission payload: %w", err)
	}
	rec := &domain.PendingSubmission{
		ID:             uuid.New().String(),
		IdempotencyKey: key,
		UserID:         session.UserID,
		ScheduleID:     scheduleID,
		SessionID:      session.ID,
		Kind:           agg.Kind,
		Payload:        raw,
		Phase:          domain.PhaseInspection,
		CreatedAt:      time.Now().UTC(),
	}
	if err := b.subs.Create(ctx, rec); err != nil {
		return err
	}
	return b.drive(ctx, rec, payload, session)
}

// Reconcile re-drives journaled submissions left behind by a crash or a
// failed call. Failures are logged and the rows kept for the next pass.
func (b *Boundary) Reconcile(ctx context.Context, userID string) error {
	pending, err := b.subs.ListPending(ctx, userID)
	if err != nil {
		return err
	}
	for _, rec := range pending {
		var payload map[string]any
		if err := json.Unmarshal(rec.Payload, &payload); err != nil {
			b.log.Printf("submission %s has an unreadable payload, dropping: %v", rec.ID, err)
			if err := b.subs.Delete(ctx, rec.ID); err != nil {
				return err
			}
			continue
		}
		session, err := b.sessions.GetByID(ctx, rec.SessionID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		if err := b.drive(ctx, rec, payload, session); err != nil {
			b.log.Printf("submission %s still pending: %v", rec.ID, err)
		}
	}
	return nil
}

// drive runs the remaining phases in order, advancing the journal after each
// completed call. The journal row is removed only once all three settle.
func (b *Boundary) drive(ctx context.Context, rec *domain.PendingSubmission, payload map[string]any, session *domain.DutySession) error {
	if rec.Phase == domain.PhaseInspection {
		if err := b.api.SubmitInspection(ctx, payload); err != nil {
			return fmt.Errorf("submit inspection: %w", err)
		}
		if err := b.advance(ctx, rec, domain.PhaseSchedule); err != nil {
			return err
		}
	}
	if rec.Phase == domain.PhaseSchedule {
		// A standalone inspection has no schedule to complete.
		if rec.ScheduleID != "" {
			if err := b.api.CompleteSchedule(ctx, rec.ScheduleID); err != nil {
				return fmt.Errorf("complete schedule %s: %w", rec.ScheduleID, err)
			}
		}
		if err := b.advance(ctx, rec, domain.PhaseClockOut); err != nil {
			return err
		}
	}
	// Only a post-trip submission closes the shift. A missing or already
	// completed session means the clock-out settled before the journal row
	// was cleaned up.
	if rec.Kind == domain.FlowPostTrip && session != nil && session.Status != domain.SessionCompleted {
		if err := b.duty.ClockOut(ctx, session); err != nil {
			return fmt.Errorf("clock out session %s: %w", session.ID, err)
		}
	}
	return b.subs.Delete(ctx, rec.ID)
}

func (b *Boundary) advance(ctx context.Context, rec *domain.PendingSubmission, phase domain.SubmissionPhase) error {
	if err := b.subs.SetPhase(ctx, rec.ID, phase); err != nil {
		return err
	}
	rec.Phase = phase
	return nil
}
