// Package duty models clock-in/out, break, and off-duty state for one
// driver. Local session state is authoritative for the UI: remote timesheet
// confirmations are applied optimistically and their failures are logged,
// never rolled back.
package duty

import (
	"context"
	"errors"
	"io"
	"log"
	"time"

	"github.com/fleetops/driverlog/internal/docstore"
	"github.com/fleetops/driverlog/internal/domain"
	"github.com/fleetops/driverlog/internal/repository"
	"github.com/google/uuid"
)

// TimesheetAPI is the slice of the backend client the duty service needs.
type TimesheetAPI interface {
	CreateTimesheet(ctx context.Context, s *domain.DutySession) (string, error)
	PatchTimesheet(ctx context.Context, timesheetID string, fields map[string]any) error
	WorkingTimesheet(ctx context.Context, userID string) (*domain.DutySession, error)
	CreateBreak(ctx context.Context, timesheetID string, b domain.Break) error
}

// Service sequences duty-session operations: rest check, clock-in, breaks,
// off-duty intervals, clock-out, and resume.
type Service struct {
	clock    Clock
	rest     docstore.Client
	api      TimesheetAPI
	sessions repository.SessionRepo
	log      *log.Logger
}

// NewService wires a duty service. A nil clock defaults to the system clock;
// a nil logger discards the non-fatal warnings.
func NewService(clock Clock, rest docstore.Client, api TimesheetAPI, sessions repository.SessionRepo, logger *log.Logger) *Service {
	if clock == nil {
		clock = SystemClock{}
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{clock: clock, rest: rest, api: api, sessions: sessions, log: logger}
}

// CheckRest computes the rest gap since the user's last recorded clock-out.
// A missing record means a first shift and passes. The check is advisory, so
// an unreachable document store fails open with a logged warning.
func (s *Service) CheckRest(ctx context.Context, userID string) domain.RestCheck {
	rec, err := s.rest.LatestRecord(ctx, userID)
	if err != nil {
		if !errors.Is(err, docstore.ErrNoRecord) {
			s.log.Printf("rest check unavailable for %s: %v", userID, err)
		}
		return domain.RestCheck{}
	}
	if rec.ClockOutTime == nil {
		return domain.RestCheck{}
	}
	return domain.NewRestCheck(s.clock.Now(), *rec.ClockOutTime)
}

// ClockIn opens a new duty session. When the rest check fails and the driver
// has not acknowledged the warning, it returns *InsufficientRestError and
// creates nothing. The session is persisted locally with status pending, then
// confirmed against the backend; a failed confirmation leaves the session
// pending for Resume to settle later.
func (s *Service) ClockIn(ctx context.Context, userID, scheduleID string, acknowledgeRest bool) (*domain.DutySession, error) {
	rc := s.CheckRest(ctx, userID)
	if !rc.Sufficient() && !acknowledgeRest {
		return nil, &InsufficientRestError{Hours: rc.HoursSinceLastShift}
	}

	session := &domain.DutySession{
		ID:          uuid.New().String(),
		UserID:      userID,
		ScheduleID:  scheduleID,
		ClockInTime: s.clock.Now(),
		Status:      domain.SessionPending,
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	tsID, err := s.api.CreateTimesheet(ctx, session)
	if err != nil {
		s.log.Printf("clock-in not confirmed for session %s: %v", session.ID, err)
		return session, nil
	}
	session.TimesheetID = tsID
	session.Status = domain.SessionClockedIn
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// StartBreak opens a break on the session. The local update is authoritative;
// the backend break record is best-effort.
func (s *Service) StartBreak(ctx context.Context, session *domain.DutySession) error {
	b := domain.Break{ID: uuid.New().String(), Start: s.clock.Now()}
	if err := session.StartBreak(b.ID, b.Start); err != nil {
		return err
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return err
	}
	if session.TimesheetID != "" {
		if err := s.api.CreateBreak(ctx, session.TimesheetID, b); err != nil {
			s.log.Printf("break %s not recorded remotely: %v", b.ID, err)
		}
	}
	return nil
}

// EndBreak closes the open break and returns its whole-minute length.
func (s *Service) EndBreak(ctx context.Context, session *domain.DutySession) (int, error) {
	mins, err := session.EndBreak(s.clock.Now())
	if err != nil {
		return 0, err
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return mins, err
	}
	if session.TimesheetID != "" {
		b := session.Breaks[len(session.Breaks)-1]
		fields := map[string]any{
			"break_id":       b.ID,
			"break_end_time": b.End.UTC().Format(time.RFC3339),
			"break_minutes":  mins,
		}
		if err := s.api.PatchTimesheet(ctx, session.TimesheetID, fields); err != nil {
			s.log.Printf("break %s close not recorded remotely: %v", b.ID, err)
		}
	}
	return mins, nil
}

// GoOffDuty opens the mid-shift off-duty interval.
func (s *Service) GoOffDuty(ctx context.Context, session *domain.DutySession) error {
	now := s.clock.Now()
	if err := session.GoOffDuty(now); err != nil {
		return err
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return err
	}
	if session.TimesheetID != "" {
		fields := map[string]any{"off_duty_start": now.UTC().Format(time.RFC3339)}
		if err := s.api.PatchTimesheet(ctx, session.TimesheetID, fields); err != nil {
			s.log.Printf("off-duty start not recorded remotely: %v", err)
		}
	}
	return nil
}

// GoOnDuty closes the off-duty interval and returns its whole-minute length.
func (s *Service) GoOnDuty(ctx context.Context, session *domain.DutySession) (int, error) {
	mins, err := session.GoOnDuty(s.clock.Now())
	if err != nil {
		return 0, err
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return mins, err
	}
	if session.TimesheetID != "" {
		fields := map[string]any{"off_duty_minutes": session.OffDutyTotal}
		if err := s.api.PatchTimesheet(ctx, session.TimesheetID, fields); err != nil {
			s.log.Printf("off-duty total not recorded remotely: %v", err)
		}
	}
	return mins, nil
}

// ClockOut completes the session. Closing with an open break fails; the
// remote timesheet close is best-effort once the local state is committed.
func (s *Service) ClockOut(ctx context.Context, session *domain.DutySession) error {
	if err := session.Close(s.clock.Now()); err != nil {
		return err
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return err
	}
	if session.TimesheetID != "" {
		fields := map[string]any{
			"clock_out_time": session.ClockOutTime.UTC().Format(time.RFC3339),
			"status":         string(domain.SessionCompleted),
		}
		if err := s.api.PatchTimesheet(ctx, session.TimesheetID, fields); err != nil {
			s.log.Printf("clock-out not recorded remotely for session %s: %v", session.ID, err)
		}
	}
	return nil
}

// Resume restores the open session on app start: the backend's working
// timesheet wins, falling back to the local snapshot when the backend is
// unreachable. Returns (nil, nil) when there is nothing to resume.
func (s *Service) Resume(ctx context.Context, userID string) (*domain.DutySession, error) {
	remote, err := s.api.WorkingTimesheet(ctx, userID)
	if err != nil {
		s.log.Printf("working timesheet lookup failed for %s: %v", userID, err)
	} else if remote != nil {
		if err := s.sessions.Save(ctx, remote); err != nil {
			return nil, err
		}
		return remote, nil
	}

	local, err := s.sessions.GetOpen(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return local, nil
}
