package inspection

import (
	"testing"

	"github.com/fleetops/driverlog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defectiveEngineAggregate() *Aggregate {
	agg := NewAggregate(domain.FlowPreTrip)
	agg.MergeFields(map[string]string{"driverName": "R. Alvarez", "truckNumber": "T-204"})
	agg.SetPhotos([]string{"front.jpg"})

	engine := domain.NewChecklistSection(StepEngine, "oilLevel", "battery")
	engine.ToggleComponent("battery")
	engine.SetDetail("battery", "Battery terminal corroded")
	agg.MergeSection(StepEngine, engine)

	lights := domain.NewChecklistSection(StepLights, "headlights", "brakeLights")
	agg.MergeSection(StepLights, lights)
	return agg
}

func TestEncode_FlatKeyed(t *testing.T) {
	payload, err := Encode(defectiveEngineAggregate(), WireFlatKeyed)
	require.NoError(t, err)

	assert.Equal(t, "pre_trip", payload["tripType"])
	assert.Equal(t, "R. Alvarez", payload["driverName"])
	assert.Equal(t, []string{"front.jpg"}, payload["photos"])

	engine, ok := payload[StepEngine].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, engine["allFunctioning"])
	assert.Equal(t, true, engine["battery"])
	assert.Equal(t, "Battery terminal corroded", engine["batteryDetails"])
	assert.Equal(t, false, engine["oilLevel"])
	assert.NotContains(t, engine, "oilLevelDetails", "no detail key for clean components")

	lights, ok := payload[StepLights].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, lights["allFunctioning"])
}

func TestEncode_InspectionArray(t *testing.T) {
	payload, err := Encode(defectiveEngineAggregate(), WireInspectionArray)
	require.NoError(t, err)

	assert.NotContains(t, payload, StepEngine, "array format carries no flat section keys")

	entries, ok := payload["inspection"].([]InspectionEntry)
	require.True(t, ok)
	require.Len(t, entries, 2)

	// Step order, not map order.
	assert.Equal(t, StepEngine, entries[0].Type)
	assert.Equal(t, StepLights, entries[1].Type)

	assert.False(t, entries[0].AllFunctioning)
	require.Len(t, entries[0].Items, 2)
	assert.Equal(t, InspectionItem{Name: "battery", Status: true, Details: "Battery terminal corroded"}, entries[0].Items[1])
}

func TestEncode_UnknownFormat(t *testing.T) {
	_, err := Encode(NewAggregate(domain.FlowPreTrip), WireFormat("protobuf"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestDecodeFlatSection_RoundTrip(t *testing.T) {
	engine := domain.NewChecklistSection(StepEngine, "oilLevel", "battery")
	engine.ToggleComponent("battery")
	engine.SetDetail("battery", "Corroded")

	raw := encodeFlatSection(engine)
	decoded := DecodeFlatSection(StepEngine, raw, []string{"oilLevel", "battery"})

	assert.Equal(t, engine.AllFunctioning, decoded.AllFunctioning)
	assert.Equal(t, engine.Defective["battery"], decoded.Defective["battery"])
	assert.Equal(t, engine.Detail("battery"), decoded.Detail("battery"))
	assert.True(t, decoded.IsComplete())
}

func TestDecodeInspectionEntry_RoundTrip(t *testing.T) {
	cab := domain.NewChecklistSection(StepCab, "mirrors", "horn")
	cab.ToggleComponent("horn")
	cab.SetDetail("horn", "No sound")

	decoded := DecodeInspectionEntry(encodeArraySection(cab))

	assert.Equal(t, StepCab, decoded.Name)
	assert.Equal(t, []string{"mirrors", "horn"}, decoded.Components)
	assert.False(t, decoded.AllFunctioning)
	assert.True(t, decoded.Defective["horn"])
	assert.Equal(t, "No sound", decoded.Detail("horn"))
}
