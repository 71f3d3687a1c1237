// Package inspection implements the pre-/post-trip inspection form engine:
// the fixed step sequence, the per-trip form aggregate, the wizard state
// machine that gates advancement on section completeness, and the two wire
// encodings the backend accepts.
package inspection

import "github.com/fleetops/driverlog/internal/domain"

// StepKind distinguishes how a step collects its data.
type StepKind string

const (
	// StepChecklist is a boolean component checklist with detail texts.
	StepChecklist StepKind = "checklist"
	// StepFields is a flat set of free-text fields (driver info, signature...).
	StepFields StepKind = "fields"
	// StepPhotos collects photo references.
	StepPhotos StepKind = "photos"
)

// Step describes one position in the fixed inspection sequence.
//
// GateOnComplete controls whether advancing requires the step's validation
// predicate to pass. Every shipped step gates; the flag exists so a fleet can
// deliberately relax a step (historically the post-trip photos screen was
// ungated by accident) instead of diverging per screen.
type Step struct {
	Name           string
	Title          string
	Kind           StepKind
	GateOnComplete bool
	Components     []string // checklist steps only
	RequiredFields []string // fields steps only
}

// Step names, in the fixed 14-step order.
const (
	StepDriverInfo     = "driverInfo"
	StepVehicleInfo    = "vehicleInfo"
	StepPhotosName     = "photos"
	StepEngine         = "engine"
	StepFluids         = "fluids"
	StepWheels         = "wheels"
	StepRearVehicle    = "rearVehicle"
	StepCab            = "cab"
	StepLights         = "lights"
	StepChecklistName  = "checklist"
	StepSafety         = "safety"
	StepTrailer        = "trailer"
	StepTrailerDetails = "trailerDetails"
	StepSignature      = "signature"
)

// FlowSteps returns the step sequence for a flow kind. Pre- and post-trip
// share the same 14-step shape; only the accumulated aggregates differ.
func FlowSteps(kind domain.FlowKind) []Step {
	_ = kind
	return []Step{
		{Name: StepDriverInfo, Title: "Driver Info", Kind: StepFields, GateOnComplete: true,
			RequiredFields: []string{"driverName", "licenseNumber"}},
		{Name: StepVehicleInfo, Title: "Vehicle Info", Kind: StepFields, GateOnComplete: true,
			RequiredFields: []string{"truckNumber", "odometer"}},
		{Name: StepPhotosName, Title: "Photos", Kind: StepPhotos, GateOnComplete: true},
		{Name: StepEngine, Title: "Engine Compartment", Kind: StepChecklist, GateOnComplete: true,
			Components: []string{"oilLevel", "coolantLevel", "belts", "hoses", "battery", "airFilter"}},
		{Name: StepFluids, Title: "Fluids", Kind: StepChecklist, GateOnComplete: true,
			Components: []string{"engineOil", "coolant", "powerSteering", "brakeFluid", "windshieldWasher", "fuelLevel"}},
		{Name: StepWheels, Title: "Wheels & Tires", Kind: StepChecklist, GateOnComplete: true,
			Components: []string{"tires", "rims", "lugNuts", "hubOilSeals", "valveStems"}},
		{Name: StepRearVehicle, Title: "Rear of Vehicle", Kind: StepChecklist, GateOnComplete: true,
			Components: []string{"rearLights", "reflectors", "mudFlaps", "rearBumper", "cargoDoors"}},
		{Name: StepCab, Title: "In-Cab", Kind: StepChecklist, GateOnComplete: true,
			Components: []string{"mirrors", "horn", "seatBelts", "wipers", "gauges", "airBrakes", "parkingBrake"}},
		{Name: StepLights, Title: "Lights", Kind: StepChecklist, GateOnComplete: true,
			Components: []string{"headlights", "brakeLights", "turnSignals", "clearanceLights", "fourWayFlashers"}},
		{Name: StepChecklistName, Title: "Paperwork Checklist", Kind: StepChecklist, GateOnComplete: true,
			Components: []string{"registration", "insuranceCard", "permits", "fireExtinguisher", "warningTriangles"}},
		{Name: StepSafety, Title: "Safety Equipment", Kind: StepChecklist, GateOnComplete: true,
			Components: []string{"firstAidKit", "spareFuses", "safetyVest", "wheelChocks"}},
		{Name: StepTrailer, Title: "Trailer", Kind: StepChecklist, GateOnComplete: true,
			Components: []string{"couplingDevices", "landingGear", "trailerBrakes", "trailerLights", "airLines"}},
		{Name: StepTrailerDetails, Title: "Trailer Details", Kind: StepFields, GateOnComplete: true,
			RequiredFields: []string{"trailerNumbers"}},
		{Name: StepSignature, Title: "Signature", Kind: StepFields, GateOnComplete: true,
			RequiredFields: []string{"signature"}},
	}
}
