package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngineSection() *ChecklistSection {
	return NewChecklistSection("engine", "oilLevel", "battery", "belts", "hoses")
}

func TestNewChecklistSection_DefaultsToAllFunctioning(t *testing.T) {
	s := newEngineSection()

	assert.True(t, s.AllFunctioning)
	assert.Empty(t, s.Defective)
	assert.Empty(t, s.Details)
	assert.True(t, s.IsComplete(), "default all-functioning section is complete")
}

func TestToggleAllFunctioning_OnClearsEverything(t *testing.T) {
	s := newEngineSection()

	s.ToggleComponent("battery")
	s.SetDetail("battery", "Terminal corroded")
	s.ToggleComponent("belts")
	s.SetDetail("belts", "Frayed")
	require.False(t, s.AllFunctioning)

	s.ToggleAllFunctioning()

	assert.True(t, s.AllFunctioning)
	for _, name := range s.Components {
		assert.False(t, s.Defective[name], "flag %q should be cleared", name)
		assert.Empty(t, s.Details[name], "detail %q should be cleared", name)
	}
}

func TestToggleAllFunctioning_OffLeavesFieldsUntouched(t *testing.T) {
	s := newEngineSection()

	s.ToggleAllFunctioning()

	assert.False(t, s.AllFunctioning)
	assert.Empty(t, s.Defective)
	assert.Empty(t, s.Details)
}

func TestToggleComponent_ForcesAllFunctioningOff(t *testing.T) {
	s := newEngineSection()
	require.True(t, s.AllFunctioning)

	s.ToggleComponent("battery")

	assert.False(t, s.AllFunctioning)
	assert.True(t, s.Defective["battery"])
}

func TestToggleComponent_UncheckClearsOnlyThatDetail(t *testing.T) {
	s := newEngineSection()

	s.ToggleComponent("battery")
	s.SetDetail("battery", "Terminal corroded")
	s.ToggleComponent("belts")
	s.SetDetail("belts", "Frayed")

	// Uncheck battery: its detail goes, belts is untouched.
	s.ToggleComponent("battery")

	assert.False(t, s.Defective["battery"])
	assert.Empty(t, s.Detail("battery"))
	assert.True(t, s.Defective["belts"])
	assert.Equal(t, "Frayed", s.Detail("belts"))
}

func TestToggleComponent_RecheckStartsWithEmptyDetail(t *testing.T) {
	s := newEngineSection()

	s.ToggleComponent("battery")
	s.SetDetail("battery", "Terminal corroded")
	s.ToggleComponent("battery")
	s.ToggleComponent("battery")

	assert.True(t, s.Defective["battery"])
	assert.Empty(t, s.Detail("battery"))
}

func TestIsComplete_NothingCheckedIsIncomplete(t *testing.T) {
	s := newEngineSection()
	s.ToggleAllFunctioning() // off, nothing flagged

	assert.False(t, s.IsComplete())
}

func TestIsComplete_DefectWithoutDetailIsIncomplete(t *testing.T) {
	s := newEngineSection()

	s.ToggleComponent("battery")
	assert.False(t, s.IsComplete())

	s.SetDetail("battery", "   ")
	assert.False(t, s.IsComplete(), "whitespace-only detail does not count")

	s.SetDetail("battery", "Battery terminal corroded")
	assert.True(t, s.IsComplete())
}

func TestIsComplete_EveryDefectNeedsDetail(t *testing.T) {
	s := newEngineSection()

	s.ToggleComponent("battery")
	s.SetDetail("battery", "Corroded")
	s.ToggleComponent("hoses")

	assert.False(t, s.IsComplete())

	s.SetDetail("hoses", "Coolant hose cracked")
	assert.True(t, s.IsComplete())
}

func TestDefectiveComponents_PreservesDeclarationOrder(t *testing.T) {
	s := newEngineSection()

	s.ToggleComponent("hoses")
	s.ToggleComponent("oilLevel")

	assert.Equal(t, []string{"oilLevel", "hoses"}, s.DefectiveComponents())
}

func TestClone_IsIndependent(t *testing.T) {
	s := newEngineSection()
	s.ToggleComponent("battery")
	s.SetDetail("battery", "Corroded")

	c := s.Clone()
	c.ToggleComponent("belts")
	c.SetDetail("battery", "changed")

	assert.False(t, s.Defective["belts"], "clone edits must not leak back")
	assert.Equal(t, "Corroded", s.Detail("battery"))
}
