package domain

import "strings"

// ChecklistSection is one inspection category (engine, lights, ...) within a
// pre- or post-trip flow. Component order is preserved for rendering; the
// Defective and Details maps are keyed by component name.
//
// Invariants:
//   - AllFunctioning == true implies every defective flag is false and every
//     detail text is empty.
//   - A defective component must carry non-empty trimmed detail text before
//     the section counts as complete.
type ChecklistSection struct {
	Name           string
	Components     []string
	AllFunctioning bool
	Defective      map[string]bool
	Details        map[string]string
}

// NewChecklistSection creates a section in its default state: all functioning,
// no flags, no detail text.
func NewChecklistSection(name string, components ...string) *ChecklistSection {
	return &ChecklistSection{
		Name:           name,
		Components:     components,
		AllFunctioning: true,
		Defective:      make(map[string]bool, len(components)),
		Details:        make(map[string]string, len(components)),
	}
}

// ToggleAllFunctioning flips the all-functioning shortcut. Turning it on is a
// mass reset: every defective flag and every detail text is cleared. Turning
// it off changes nothing else.
func (s *ChecklistSection) ToggleAllFunctioning() {
	s.AllFunctioning = !s.AllFunctioning
	if s.AllFunctioning {
		s.Defective = make(map[string]bool, len(s.Components))
		s.Details = make(map[string]string, len(s.Components))
	}
}

// ToggleComponent flips one component's defective flag. Any defect forces
// AllFunctioning off. Unchecking a component clears its detail text; checking
// leaves the text alone for the driver to fill in.
func (s *ChecklistSection) ToggleComponent(name string) {
	s.AllFunctioning = false
	if s.Defective[name] {
		delete(s.Defective, name)
		delete(s.Details, name)
		return
	}
	s.Defective[name] = true
}

// SetDetail records free text for a component. No flags are touched.
func (s *ChecklistSection) SetDetail(name, text string) {
	if text == "" {
		delete(s.Details, name)
		return
	}
	s.Details[name] = text
}

// Detail returns the detail text for a component, or "".
func (s *ChecklistSection) Detail(name string) string {
	return s.Details[name]
}

// IsComplete reports whether the section can be advanced past: either the
// driver marked everything functioning, or at least one component is flagged
// and every flagged component has non-blank detail text. A section with
// nothing checked either way is not complete.
func (s *ChecklistSection) IsComplete() bool {
	if s.AllFunctioning {
		return true
	}
	if len(s.Defective) == 0 {
		return false
	}
	for name, def := range s.Defective {
		if !def {
			continue
		}
		if strings.TrimSpace(s.Details[name]) == "" {
			return false
		}
	}
	return true
}

// DefectiveComponents returns flagged component names in declaration order.
func (s *ChecklistSection) DefectiveComponents() []string {
	var out []string
	for _, name := range s.Components {
		if s.Defective[name] {
			out = append(out, name)
		}
	}
	return out
}

// Clone returns a deep copy, so a screen can edit a hydrated section without
// mutating the aggregate until the edit is committed.
func (s *ChecklistSection) Clone() *ChecklistSection {
	c := &ChecklistSection{
		Name:           s.Name,
		Components:     append([]string(nil), s.Components...),
		AllFunctioning: s.AllFunctioning,
		Defective:      make(map[string]bool, len(s.Defective)),
		Details:        make(map[string]string, len(s.Details)),
	}
	for k, v := range s.Defective {
		c.Defective[k] = v
	}
	for k, v := range s.Details {
		c.Details[k] = v
	}
	return c
}
