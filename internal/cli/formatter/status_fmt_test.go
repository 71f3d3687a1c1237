package formatter

import (
	"testing"
	"time"

	"github.com/fleetops/driverlog/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatSession_NotClockedIn(t *testing.T) {
	out := FormatSession(nil, time.Now())
	assert.Contains(t, out, "OFF THE CLOCK")
	assert.Contains(t, out, "Not clocked in.")
}

func TestFormatSession_LiveTimers(t *testing.T) {
	clockIn := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	now := clockIn.Add(2*time.Hour + 5*time.Minute)
	s := &domain.DutySession{
		ID:          "s1",
		UserID:      "driver-1",
		ScheduleID:  "sched-7",
		ClockInTime: clockIn,
		Status:      domain.SessionClockedIn,
	}

	out := FormatSession(s, now)
	assert.Contains(t, out, "ON DUTY")
	assert.Contains(t, out, "2h 5m")
	assert.Contains(t, out, "sched-7")
}

func TestFormatSession_BreakTimer(t *testing.T) {
	clockIn := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	s := &domain.DutySession{
		ID:          "s1",
		ClockInTime: clockIn,
		Status:      domain.SessionClockedIn,
	}
	assert.NoError(t, s.StartBreak("b1", clockIn.Add(time.Hour)))

	out := FormatSession(s, clockIn.Add(time.Hour+20*time.Minute))
	assert.Contains(t, out, "ON BREAK")
	assert.Contains(t, out, "0h 20m")
}

func TestFormatSchedules(t *testing.T) {
	out := FormatSchedules([]domain.Schedule{{
		ID:          "sched-7",
		RouteName:   "Harbor Loop",
		TruckNumber: "T-204",
		StartTime:   time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2025, 6, 2, 16, 0, 0, 0, time.UTC),
		Status:      domain.SchedulePending,
	}})
	assert.Contains(t, out, "Harbor Loop")
	assert.Contains(t, out, "T-204")
	assert.Contains(t, out, "Pending")

	assert.Contains(t, FormatSchedules(nil), "No schedules")
}
