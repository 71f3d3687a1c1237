package cli

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fleetops/driverlog/internal/domain"
	"github.com/fleetops/driverlog/internal/inspection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusModel_TickAdvancesTimers(t *testing.T) {
	clockIn := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	session := &domain.DutySession{
		ID:          "s1",
		ClockInTime: clockIn,
		Status:      domain.SessionClockedIn,
	}

	m := newStatusModel(session)

	updated, cmd := m.Update(statusTickMsg(clockIn.Add(2*time.Hour + 5*time.Minute)))
	require.NotNil(t, cmd, "every tick schedules the next one")

	view := updated.View()
	assert.Contains(t, view, "ON DUTY")
	assert.Contains(t, view, "2h 5m")
}

func TestStatusModel_QuitKeys(t *testing.T) {
	m := newStatusModel(nil)

	for _, k := range []string{"q", "esc", "ctrl+c"} {
		_, cmd := m.Update(keyMsg(k))
		require.NotNil(t, cmd, "key %q should quit", k)
		assert.IsType(t, tea.QuitMsg{}, cmd(), "key %q should quit", k)
	}

	_, cmd := m.Update(keyMsg("x"))
	assert.Nil(t, cmd, "other keys are ignored")
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func TestFieldTitle(t *testing.T) {
	assert.Equal(t, "Truck Number", fieldTitle("truckNumber"))
	assert.Equal(t, "Oil Level", fieldTitle("oilLevel"))
	assert.Equal(t, "Signature", fieldTitle("signature"))
}

func TestParseWireFormat(t *testing.T) {
	flat, err := parseWireFormat("flat")
	require.NoError(t, err)
	assert.Equal(t, inspection.WireFlatKeyed, flat)

	array, err := parseWireFormat("array")
	require.NoError(t, err)
	assert.Equal(t, inspection.WireInspectionArray, array)

	_, err = parseWireFormat("xml")
	assert.Error(t, err)
}
