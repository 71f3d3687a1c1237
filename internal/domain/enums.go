package domain

type SessionStatus string

const (
	SessionPending   SessionStatus = "pending"
	SessionClockedIn SessionStatus = "clocked_in"
	SessionCompleted SessionStatus = "completed"
)

type FlowKind string

const (
	FlowPreTrip  FlowKind = "pre_trip"
	FlowPostTrip FlowKind = "post_trip"
)

// ValidFlowKinds is the canonical set of accepted inspection flow strings.
var ValidFlowKinds = map[string]bool{
	"pre_trip": true, "post_trip": true,
	"pre": true, "post": true,
}

// ParseFlowKind normalizes a user-supplied flow string ("pre", "post_trip", ...)
// to a FlowKind.
func ParseFlowKind(s string) (FlowKind, bool) {
	switch s {
	case "pre", "pre_trip":
		return FlowPreTrip, true
	case "post", "post_trip":
		return FlowPostTrip, true
	}
	return "", false
}

type SubmissionPhase string

const (
	PhaseInspection SubmissionPhase = "inspection"
	PhaseSchedule   SubmissionPhase = "schedule"
	PhaseClockOut   SubmissionPhase = "clock_out"
)

type ScheduleStatus string

const (
	SchedulePending   ScheduleStatus = "pending"
	ScheduleCompleted ScheduleStatus = "completed"
	ScheduleCancelled ScheduleStatus = "cancelled"
)
