package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clockIn = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

func newOpenSession() *DutySession {
	return &DutySession{
		ID:          "sess-1",
		UserID:      "driver-1",
		ClockInTime: clockIn,
		Status:      SessionClockedIn,
	}
}

func TestStartBreak_SecondCallIsRejected(t *testing.T) {
	s := newOpenSession()

	require.NoError(t, s.StartBreak("b1", clockIn.Add(30*time.Minute)))
	err := s.StartBreak("b2", clockIn.Add(31*time.Minute))

	assert.ErrorIs(t, err, ErrAlreadyOnBreak)
	openCount := 0
	for _, b := range s.Breaks {
		if b.Open() {
			openCount++
		}
	}
	assert.Equal(t, 1, openCount, "exactly one open break after double start")
}

func TestEndBreak_ReportsFlooredMinutes(t *testing.T) {
	s := newOpenSession()
	require.NoError(t, s.StartBreak("b1", clockIn.Add(30*time.Minute)))

	mins, err := s.EndBreak(clockIn.Add(30*time.Minute + 15*time.Minute + 59*time.Second))

	require.NoError(t, err)
	assert.Equal(t, 15, mins)
	assert.False(t, s.OnBreak())
}

func TestEndBreak_WithoutOpenBreak(t *testing.T) {
	s := newOpenSession()
	_, err := s.EndBreak(clockIn.Add(time.Minute))
	assert.ErrorIs(t, err, ErrNotOnBreak)
}

func TestBreakAndOffDuty_AreMutuallyExclusive(t *testing.T) {
	s := newOpenSession()

	require.NoError(t, s.StartBreak("b1", clockIn.Add(10*time.Minute)))
	assert.ErrorIs(t, s.GoOffDuty(clockIn.Add(11*time.Minute)), ErrOnBreak)

	_, err := s.EndBreak(clockIn.Add(20*time.Minute))
	require.NoError(t, err)

	require.NoError(t, s.GoOffDuty(clockIn.Add(30*time.Minute)))
	assert.ErrorIs(t, s.StartBreak("b2", clockIn.Add(31*time.Minute)), ErrOffDuty)
}

func TestGoOnDuty_AccumulatesOffDutyMinutes(t *testing.T) {
	s := newOpenSession()

	require.NoError(t, s.GoOffDuty(clockIn.Add(time.Hour)))
	mins, err := s.GoOnDuty(clockIn.Add(time.Hour + 45*time.Minute))

	require.NoError(t, err)
	assert.Equal(t, 45, mins)
	assert.Equal(t, 45, s.OffDutyTotal)
	assert.False(t, s.OffDuty())

	_, err = s.GoOnDuty(clockIn.Add(2 * time.Hour))
	assert.ErrorIs(t, err, ErrNotOffDuty)
}

func TestClose_RejectsOpenBreak(t *testing.T) {
	s := newOpenSession()
	require.NoError(t, s.StartBreak("b1", clockIn.Add(time.Minute)))

	err := s.Close(clockIn.Add(2 * time.Minute))

	assert.ErrorIs(t, err, ErrOpenBreak)
	assert.Equal(t, SessionClockedIn, s.Status)
}

func TestClose_ClosesDanglingOffDutyInterval(t *testing.T) {
	s := newOpenSession()
	require.NoError(t, s.GoOffDuty(clockIn.Add(time.Hour)))

	require.NoError(t, s.Close(clockIn.Add(90*time.Minute)))

	assert.Equal(t, SessionCompleted, s.Status)
	assert.Equal(t, 30, s.OffDutyTotal)
	require.NotNil(t, s.ClockOutTime)
	assert.ErrorIs(t, s.Close(clockIn.Add(2*time.Hour)), ErrSessionClosed)
}

func TestWorkMinutes_RecomputesFromClockIn(t *testing.T) {
	s := newOpenSession()

	// 09:00:00 clock-in, now 09:02:30 → 2 whole minutes.
	assert.Equal(t, 2, s.WorkMinutes(clockIn.Add(2*time.Minute+30*time.Second)))
	// Same call later derives from the same fixed start; no drift.
	assert.Equal(t, 120, s.WorkMinutes(clockIn.Add(2*time.Hour)))
}

func TestBreakMinutes_LiveWhileOnBreak(t *testing.T) {
	s := newOpenSession()
	require.NoError(t, s.StartBreak("b1", clockIn.Add(time.Hour)))

	assert.Equal(t, 9, s.BreakMinutes(clockIn.Add(time.Hour+9*time.Minute+59*time.Second)))

	_, err := s.EndBreak(clockIn.Add(time.Hour + 10*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 0, s.BreakMinutes(clockIn.Add(2*time.Hour)))
}

func TestRestCheck_NoPriorShiftIsSufficient(t *testing.T) {
	rc := NewRestCheck(clockIn, time.Time{})
	assert.False(t, rc.HasPriorShift)
	assert.True(t, rc.Sufficient())
}

func TestRestCheck_ElevenHoursIsSufficient(t *testing.T) {
	rc := NewRestCheck(clockIn, clockIn.Add(-11*time.Hour))
	assert.True(t, rc.HasPriorShift)
	assert.InDelta(t, 11.0, rc.HoursSinceLastShift, 0.001)
	assert.True(t, rc.Sufficient())
}

func TestRestCheck_FourHoursNeedsAcknowledgement(t *testing.T) {
	rc := NewRestCheck(clockIn, clockIn.Add(-4*time.Hour))
	assert.False(t, rc.Sufficient())
}
