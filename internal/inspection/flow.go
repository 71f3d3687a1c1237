package inspection

import (
	"fmt"
	"strings"

	"github.com/fleetops/driverlog/internal/domain"
)

// StepResult is the validated payload a screen hands back when the driver
// presses Next. Exactly one of the three carriers is meaningful, matching the
// step's kind.
type StepResult struct {
	Section *domain.ChecklistSection
	Fields  map[string]string
	Photos  []string
}

// Flow is the wizard state machine for one inspection: the single source of
// truth for the current step index and for whether advancing is allowed.
// Sequencing lives here so no rendering layer ever navigates on its own.
type Flow struct {
	steps []Step
	idx   int
	agg   *Aggregate
}

// NewFlow starts (or resumes) a flow over the given aggregate. A nil
// aggregate starts fresh.
func NewFlow(kind domain.FlowKind, agg *Aggregate) *Flow {
	if agg == nil {
		agg = NewAggregate(kind)
	}
	return &Flow{steps: FlowSteps(kind), agg: agg}
}

// Aggregate exposes the accumulating form for hydration and submission.
func (f *Flow) Aggregate() *Aggregate { return f.agg }

// Current returns the step under the cursor.
func (f *Flow) Current() Step { return f.steps[f.idx] }

// StepIndex returns the zero-based cursor position.
func (f *Flow) StepIndex() int { return f.idx }

// StepCount returns the number of steps in the sequence.
func (f *Flow) StepCount() int { return len(f.steps) }

// Done reports whether the cursor has advanced past the final step.
func (f *Flow) Done() bool { return f.idx >= len(f.steps) }

// Progress returns completion as a fraction of steps passed.
func (f *Flow) Progress() float64 {
	return float64(f.idx) / float64(len(f.steps))
}

// CanAdvance evaluates the current step's gate against a candidate result.
// Ungated steps always pass. This is an affordance check, not an error: the
// UI disables Next while it is false.
func (f *Flow) CanAdvance(res StepResult) bool {
	if f.Done() {
		return false
	}
	step := f.Current()
	if !step.GateOnComplete {
		return true
	}
	switch step.Kind {
	case StepChecklist:
		return res.Section != nil && res.Section.IsComplete()
	case StepFields:
		for _, name := range step.RequiredFields {
			if strings.TrimSpace(res.Fields[name]) == "" {
				return false
			}
		}
		return true
	case StepPhotos:
		return len(res.Photos) > 0
	}
	return false
}

// Advance validates the result against the current step's gate, merges it
// into the aggregate, and moves the cursor forward. The aggregate is never
// touched when validation fails, so a failed step can never partially corrupt
// previously merged data.
func (f *Flow) Advance(res StepResult) error {
	if f.Done() {
		return fmt.Errorf("inspection flow already finished")
	}
	step := f.Current()
	if !f.CanAdvance(res) {
		return fmt.Errorf("step %q: %w", step.Name, ErrStepIncomplete)
	}
	switch step.Kind {
	case StepChecklist:
		f.agg.MergeSection(step.Name, res.Section)
	case StepFields:
		f.agg.MergeFields(res.Fields)
	case StepPhotos:
		f.agg.SetPhotos(res.Photos)
	}
	f.idx++
	return nil
}

// Back moves the cursor to the previous step. Merged data stays in the
// aggregate; the revisited screen hydrates from it.
func (f *Flow) Back() {
	if f.idx > 0 {
		f.idx--
	}
}
