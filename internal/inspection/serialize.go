package inspection

import (
	"fmt"

	"github.com/fleetops/driverlog/internal/domain"
)

// WireFormat selects how an aggregate is serialized for the backend. The two
// shapes coexist in the API: most endpoints take sections as flat keyed
// objects, some take an "inspection" array. One canonical in-memory form,
// two encoders, chosen explicitly by the caller — never per screen.
type WireFormat string

const (
	// WireFlatKeyed nests each section under its step name:
	// {"engine": {"allFunctioning": false, "battery": true, "batteryDetails": "..."}}
	WireFlatKeyed WireFormat = "flat_keyed"

	// WireInspectionArray carries sections as
	// {"inspection": [{"type", "allFunctioning", "items": [{"name","status","details"}]}]}
	WireInspectionArray WireFormat = "inspection_array"
)

const detailsSuffix = "Details"

// InspectionItem is one component entry in the array encoding. Status is the
// defective flag.
type InspectionItem struct {
	Name    string `json:"name"`
	Status  bool   `json:"status"`
	Details string `json:"details,omitempty"`
}

// InspectionEntry is one section in the array encoding.
type InspectionEntry struct {
	Type           string           `json:"type"`
	AllFunctioning bool             `json:"allFunctioning"`
	Items          []InspectionItem `json:"items"`
}

// Encode serializes an aggregate in the requested wire format. Top-level
// scalar fields, the flow kind, and photo references are carried identically
// in both formats.
func Encode(a *Aggregate, format WireFormat) (map[string]any, error) {
	payload := map[string]any{
		"tripType": string(a.Kind),
	}
	for k, v := range a.Fields {
		payload[k] = v
	}
	if len(a.Photos) > 0 {
		payload["photos"] = append([]string(nil), a.Photos...)
	}

	switch format {
	case WireFlatKeyed:
		for name, s := range a.Sections {
			payload[name] = encodeFlatSection(s)
		}
	case WireInspectionArray:
		entries := make([]InspectionEntry, 0, len(a.Sections))
		for _, step := range FlowSteps(a.Kind) {
			s, ok := a.Sections[step.Name]
			if !ok {
				continue
			}
			entries = append(entries, encodeArraySection(s))
		}
		payload["inspection"] = entries
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return payload, nil
}

func encodeFlatSection(s *domain.ChecklistSection) map[string]any {
	out := map[string]any{"allFunctioning": s.AllFunctioning}
	for _, name := range s.Components {
		out[name] = s.Defective[name]
		if d := s.Details[name]; d != "" {
			out[name+detailsSuffix] = d
		}
	}
	return out
}

func encodeArraySection(s *domain.ChecklistSection) InspectionEntry {
	entry := InspectionEntry{
		Type:           s.Name,
		AllFunctioning: s.AllFunctioning,
		Items:          make([]InspectionItem, 0, len(s.Components)),
	}
	for _, name := range s.Components {
		entry.Items = append(entry.Items, InspectionItem{
			Name:    name,
			Status:  s.Defective[name],
			Details: s.Details[name],
		})
	}
	return entry
}

// DecodeFlatSection reads a flat keyed section object back into the canonical
// representation. Keys ending in "Details" pair with their component; every
// other non-reserved boolean key is a component flag.
func DecodeFlatSection(name string, raw map[string]any, components []string) *domain.ChecklistSection {
	s := domain.NewChecklistSection(name, components...)
	if af, ok := raw["allFunctioning"].(bool); ok {
		s.AllFunctioning = af
	}
	for _, comp := range components {
		if def, ok := raw[comp].(bool); ok && def {
			s.Defective[comp] = true
		}
		if d, ok := raw[comp+detailsSuffix].(string); ok && d != "" {
			s.Details[comp] = d
		}
	}
	return s
}

// DecodeInspectionEntry reads one array-encoded section back into the
// canonical representation.
func DecodeInspectionEntry(e InspectionEntry) *domain.ChecklistSection {
	components := make([]string, 0, len(e.Items))
	for _, it := range e.Items {
		components = append(components, it.Name)
	}
	s := domain.NewChecklistSection(e.Type, components...)
	s.AllFunctioning = e.AllFunctioning
	for _, it := range e.Items {
		if it.Status {
			s.Defective[it.Name] = true
		}
		if it.Details != "" {
			s.Details[it.Name] = it.Details
		}
	}
	return s
}
