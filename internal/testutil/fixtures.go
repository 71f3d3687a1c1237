package testutil

import (
	"time"

	"github.com/fleetops/driverlog/internal/domain"
	"github.com/google/uuid"
)

// SessionOption mutates a test duty session.
type SessionOption func(*domain.DutySession)

func WithScheduleID(id string) SessionOption {
	return func(s *domain.DutySession) { s.ScheduleID = id }
}

func WithTimesheetID(id string) SessionOption {
	return func(s *domain.DutySession) { s.TimesheetID = id }
}

func WithStatus(status domain.SessionStatus) SessionOption {
	return func(s *domain.DutySession) { s.Status = status }
}

// NewTestSession builds a clocked-in session for a driver.
func NewTestSession(userID string, clockIn time.Time, opts ...SessionOption) *domain.DutySession {
	s := &domain.DutySession{
		ID:          uuid.New().String(),
		UserID:      userID,
		ClockInTime: clockIn,
		Status:      domain.SessionClockedIn,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewCompleteSection builds a checklist section with one detailed defect, the
// minimum shape that passes the completeness gate without AllFunctioning.
func NewCompleteSection(name string, components ...string) *domain.ChecklistSection {
	if len(components) == 0 {
		components = []string{"componentA", "componentB"}
	}
	s := domain.NewChecklistSection(name, components...)
	s.ToggleComponent(components[0])
	s.SetDetail(components[0], "worn, needs replacement")
	return s
}
