package inspection

import (
	"testing"

	"github.com/fleetops/driverlog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlowSteps_FixedFourteenStepSequence(t *testing.T) {
	steps := FlowSteps(domain.FlowPreTrip)

	require.Len(t, steps, 14)
	assert.Equal(t, StepDriverInfo, steps[0].Name)
	assert.Equal(t, StepSignature, steps[13].Name)

	for _, s := range steps {
		assert.True(t, s.GateOnComplete, "step %q should gate on completeness", s.Name)
	}
}

func TestFlow_EngineDefectScenario(t *testing.T) {
	f := NewFlow(domain.FlowPreTrip, nil)

	// Skip ahead to the engine step.
	require.NoError(t, f.Advance(StepResult{Fields: map[string]string{
		"driverName": "R. Alvarez", "licenseNumber": "CDL-9914",
	}}))
	require.NoError(t, f.Advance(StepResult{Fields: map[string]string{
		"truckNumber": "T-204", "odometer": "183220",
	}}))
	require.NoError(t, f.Advance(StepResult{Photos: []string{"photo-1.jpg"}}))
	require.Equal(t, StepEngine, f.Current().Name)

	engine := domain.NewChecklistSection(StepEngine, f.Current().Components...)
	engine.ToggleComponent("battery")

	// Defect with blank detail: Next stays disabled.
	assert.False(t, f.CanAdvance(StepResult{Section: engine}))
	assert.ErrorIs(t, f.Advance(StepResult{Section: engine}), ErrStepIncomplete)
	assert.Equal(t, StepEngine, f.Current().Name, "failed validation must not advance")
	assert.NotContains(t, f.Aggregate().Sections, StepEngine, "failed validation must not merge")

	engine.SetDetail("battery", "Battery terminal corroded")
	assert.True(t, f.CanAdvance(StepResult{Section: engine}))
	require.NoError(t, f.Advance(StepResult{Section: engine}))

	merged := f.Aggregate().Sections[StepEngine]
	require.NotNil(t, merged)
	assert.True(t, merged.Defective["battery"])
	assert.Equal(t, "Battery terminal corroded", merged.Detail("battery"))
	assert.False(t, merged.AllFunctioning)
}

func TestFlow_FieldsGateRejectsBlankRequiredFields(t *testing.T) {
	f := NewFlow(domain.FlowPreTrip, nil)

	assert.False(t, f.CanAdvance(StepResult{Fields: map[string]string{
		"driverName": "R. Alvarez", "licenseNumber": "   ",
	}}))
}

func TestFlow_PhotosGateIsExplicitConfiguration(t *testing.T) {
	f := NewFlow(domain.FlowPostTrip, nil)
	f.idx = 2 // photos step
	require.Equal(t, StepPhotosName, f.Current().Name)

	assert.False(t, f.CanAdvance(StepResult{}), "post-trip photos gate, like every other step")

	// Relaxing the gate is a config change, not a per-screen divergence.
	f.steps[2].GateOnComplete = false
	assert.True(t, f.CanAdvance(StepResult{}))
}

func TestFlow_BackNavigationHydratesWithoutDataLoss(t *testing.T) {
	f := NewFlow(domain.FlowPreTrip, nil)
	require.NoError(t, f.Advance(StepResult{Fields: map[string]string{
		"driverName": "R. Alvarez", "licenseNumber": "CDL-9914",
	}}))
	require.Equal(t, 1, f.StepIndex())

	f.Back()
	assert.Equal(t, 0, f.StepIndex())
	assert.Equal(t, "R. Alvarez", f.Aggregate().Field("driverName"))

	f.Back()
	assert.Equal(t, 0, f.StepIndex(), "back at the first step is a no-op")
}

func TestFlow_ResumeFromExistingAggregate(t *testing.T) {
	agg := NewAggregate(domain.FlowPreTrip)
	lights := domain.NewChecklistSection(StepLights, "headlights")
	agg.MergeSection(StepLights, lights)

	f := NewFlow(domain.FlowPreTrip, agg)

	hydrated := f.Aggregate().HydrateSection(StepLights)
	require.NotNil(t, hydrated)
	assert.True(t, hydrated.AllFunctioning)

	// Hydrated copies are independent of the frozen aggregate entry.
	hydrated.ToggleComponent("headlights")
	assert.True(t, f.Aggregate().Sections[StepLights].AllFunctioning)
}

func TestFlow_DoneAfterFinalStep(t *testing.T) {
	f := NewFlow(domain.FlowPreTrip, nil)
	for !f.Done() {
		step := f.Current()
		res := StepResult{}
		switch step.Kind {
		case StepChecklist:
			sec := domain.NewChecklistSection(step.Name, step.Components...)
			res.Section = sec
		case StepFields:
			res.Fields = map[string]string{}
			for _, name := range step.RequiredFields {
				res.Fields[name] = "x"
			}
		case StepPhotos:
			res.Photos = []string{"p.jpg"}
		}
		require.NoError(t, f.Advance(res))
	}

	assert.Equal(t, 14, f.StepIndex())
	assert.InDelta(t, 1.0, f.Progress(), 0.0001)
	assert.Error(t, f.Advance(StepResult{}))
	assert.Len(t, f.Aggregate().Sections, 9, "nine checklist sections merged")
}

func TestAggregate_MergeSectionIsIdempotentPerKey(t *testing.T) {
	agg := NewAggregate(domain.FlowPreTrip)

	first := domain.NewChecklistSection(StepEngine, "battery")
	first.ToggleComponent("battery")
	first.SetDetail("battery", "Corroded")
	agg.MergeSection(StepEngine, first)

	other := domain.NewChecklistSection(StepLights, "headlights")
	agg.MergeSection(StepLights, other)

	redo := domain.NewChecklistSection(StepEngine, "battery")
	agg.MergeSection(StepEngine, redo)

	assert.True(t, agg.Sections[StepEngine].AllFunctioning, "re-merge overwrites the engine key")
	assert.Contains(t, agg.Sections, StepLights, "other sections preserved")
}
