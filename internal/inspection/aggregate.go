package inspection

import "github.com/fleetops/driverlog/internal/domain"

// Aggregate accumulates finalized step payloads for one trip's inspection.
// Sections hold checklist data keyed by step name; Fields hold the top-level
// scalars (driver info, vehicle info, trailer numbers, signature); Photos
// hold uploaded photo references.
//
// Keys are unique per aggregate and merging is idempotent: re-submitting a
// step overwrites only that step's entry.
type Aggregate struct {
	Kind     domain.FlowKind
	Fields   map[string]string
	Photos   []string
	Sections map[string]*domain.ChecklistSection
}

// NewAggregate creates an empty aggregate for one flow.
func NewAggregate(kind domain.FlowKind) *Aggregate {
	return &Aggregate{
		Kind:     kind,
		Fields:   make(map[string]string),
		Sections: make(map[string]*domain.ChecklistSection),
	}
}

// MergeSection freezes a finalized checklist section under its step name.
// The section is cloned so later screen edits cannot corrupt merged data.
func (a *Aggregate) MergeSection(name string, s *domain.ChecklistSection) {
	a.Sections[name] = s.Clone()
}

// MergeFields shallow-merges scalar fields into the aggregate.
func (a *Aggregate) MergeFields(fields map[string]string) {
	for k, v := range fields {
		a.Fields[k] = v
	}
}

// SetPhotos replaces the photo reference list.
func (a *Aggregate) SetPhotos(refs []string) {
	a.Photos = append([]string(nil), refs...)
}

// HydrateSection returns an editable copy of a previously merged section, or
// nil when the step has not been visited. Screens call this on mount so back
// navigation never loses data.
func (a *Aggregate) HydrateSection(name string) *domain.ChecklistSection {
	s, ok := a.Sections[name]
	if !ok {
		return nil
	}
	return s.Clone()
}

// Field returns a previously merged scalar field, or "".
func (a *Aggregate) Field(name string) string {
	return a.Fields[name]
}
