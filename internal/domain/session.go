package domain

import "time"

// Break is one pause interval within an active duty leg. End is nil while the
// break is still open.
type Break struct {
	ID    string
	Start time.Time
	End   *time.Time
}

// Open reports whether the break has not been closed yet.
func (b Break) Open() bool {
	return b.End == nil
}

// Minutes returns the closed break's length in whole minutes (floor). An open
// break reports 0; callers wanting a live value should use ElapsedMinutes
// against the break start.
func (b Break) Minutes() int {
	if b.End == nil {
		return 0
	}
	return ElapsedMinutes(*b.End, b.Start)
}

// DutySession is one clock-in-to-clock-out work period, with nested break
// intervals and an optional off-duty interval (the mid-shift pause between
// the AM and PM legs — distinct from a break).
//
// Invariants:
//   - at most one break is open at any time
//   - a session with an open break cannot be closed
//   - a driver is never simultaneously on break and off duty
type DutySession struct {
	ID            string
	UserID        string
	ScheduleID    string
	TimesheetID   string // backend record id, empty until confirmed
	ClockInTime   time.Time
	ClockOutTime  *time.Time
	OffDutyStart  *time.Time
	OffDutyTotal  int // closed off-duty minutes accumulated this session
	Breaks        []Break
	Status        SessionStatus
}

// OpenBreak returns the currently open break, or nil.
func (s *DutySession) OpenBreak() *Break {
	if len(s.Breaks) == 0 {
		return nil
	}
	last := &s.Breaks[len(s.Breaks)-1]
	if last.Open() {
		return last
	}
	return nil
}

// OnBreak reports whether a break is currently open.
func (s *DutySession) OnBreak() bool {
	return s.OpenBreak() != nil
}

// OffDuty reports whether the session is in its off-duty interval.
func (s *DutySession) OffDuty() bool {
	return s.OffDutyStart != nil
}

// StartBreak appends a new open break. Invalid while already on break, while
// off duty, or once the session is completed.
func (s *DutySession) StartBreak(id string, now time.Time) error {
	if s.Status == SessionCompleted {
		return ErrSessionClosed
	}
	if s.OnBreak() {
		return ErrAlreadyOnBreak
	}
	if s.OffDuty() {
		return ErrOffDuty
	}
	s.Breaks = append(s.Breaks, Break{ID: id, Start: now})
	return nil
}

// EndBreak closes the open break and returns its length in whole minutes.
func (s *DutySession) EndBreak(now time.Time) (int, error) {
	b := s.OpenBreak()
	if b == nil {
		return 0, ErrNotOnBreak
	}
	end := now
	b.End = &end
	return b.Minutes(), nil
}

// GoOffDuty opens the off-duty interval. Invalid while on break.
func (s *DutySession) GoOffDuty(now time.Time) error {
	if s.Status == SessionCompleted {
		return ErrSessionClosed
	}
	if s.OnBreak() {
		return ErrOnBreak
	}
	if s.OffDuty() {
		return ErrAlreadyOffDuty
	}
	start := now
	s.OffDutyStart = &start
	return nil
}

// GoOnDuty closes the off-duty interval and returns its length in whole minutes.
func (s *DutySession) GoOnDuty(now time.Time) (int, error) {
	if !s.OffDuty() {
		return 0, ErrNotOffDuty
	}
	mins := ElapsedMinutes(now, *s.OffDutyStart)
	s.OffDutyTotal += mins
	s.OffDutyStart = nil
	return mins, nil
}

// Close marks the session completed. The open-break invariant is enforced
// here: callers must end the break first.
func (s *DutySession) Close(now time.Time) error {
	if s.Status == SessionCompleted {
		return ErrSessionClosed
	}
	if s.OnBreak() {
		return ErrOpenBreak
	}
	if s.OffDuty() {
		if _, err := s.GoOnDuty(now); err != nil {
			return err
		}
	}
	end := now
	s.ClockOutTime = &end
	s.Status = SessionCompleted
	return nil
}

// WorkMinutes is the live elapsed work duration: recomputed from the fixed
// clock-in timestamp on every call, never accumulated incrementally.
func (s *DutySession) WorkMinutes(now time.Time) int {
	if s.Status == SessionCompleted && s.ClockOutTime != nil {
		return ElapsedMinutes(*s.ClockOutTime, s.ClockInTime)
	}
	return ElapsedMinutes(now, s.ClockInTime)
}

// BreakMinutes is the live elapsed duration of the open break, or 0.
func (s *DutySession) BreakMinutes(now time.Time) int {
	b := s.OpenBreak()
	if b == nil {
		return 0
	}
	return ElapsedMinutes(now, b.Start)
}

// OffDutyMinutes is the live elapsed duration of the open off-duty interval,
// or 0.
func (s *DutySession) OffDutyMinutes(now time.Time) int {
	if s.OffDutyStart == nil {
		return 0
	}
	return ElapsedMinutes(now, *s.OffDutyStart)
}

// MinRestHours is the minimum gap since the previous clock-out below which a
// new clock-in needs an explicit driver acknowledgement.
const MinRestHours = 10

// RestCheck is the transient computation made at clock-in time: the gap
// between now and the last recorded clock-out. Not persisted.
type RestCheck struct {
	HasPriorShift       bool
	HoursSinceLastShift float64
}

// NewRestCheck derives a RestCheck from the last known clock-out. A zero
// lastClockOut means no prior record exists.
func NewRestCheck(now, lastClockOut time.Time) RestCheck {
	if lastClockOut.IsZero() {
		return RestCheck{}
	}
	return RestCheck{
		HasPriorShift:       true,
		HoursSinceLastShift: HoursBetween(now, lastClockOut),
	}
}

// Sufficient reports whether clock-in may proceed without a rest warning.
func (r RestCheck) Sufficient() bool {
	return !r.HasPriorShift || r.HoursSinceLastShift >= MinRestHours
}
