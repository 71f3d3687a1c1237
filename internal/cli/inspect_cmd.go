package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/fleetops/driverlog/internal/cli/formatter"
	"github.com/fleetops/driverlog/internal/domain"
	"github.com/fleetops/driverlog/internal/inspection"
	"github.com/spf13/cobra"
)

func newInspectCmd(app *App) *cobra.Command {
	var wireFormat string

	cmd := &cobra.Command{
		Use:   "inspect {pre|post}",
		Short: "Run the vehicle inspection wizard and submit it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := domain.ParseFlowKind(args[0])
			if !ok {
				return fmt.Errorf("unknown inspection kind %q (want pre or post)", args[0])
			}
			format, err := parseWireFormat(wireFormat)
			if err != nil {
				return err
			}
			if !app.IsInteractive() {
				return fmt.Errorf("inspect needs an interactive terminal")
			}

			ctx := context.Background()
			_, session, err := app.requireSession(ctx)
			if err != nil {
				return err
			}

			flow := inspection.NewFlow(kind, nil)
			if err := runInspectionWizard(flow); err != nil {
				return err
			}

			// Post-trip completes the schedule and closes the shift;
			// pre-trip only files the inspection.
			scheduleID := ""
			if kind == domain.FlowPostTrip {
				scheduleID = session.ScheduleID
			}

			stop := formatter.StartSpinner("Submitting inspection...")
			err = app.Boundary.Submit(ctx, flow.Aggregate(), session, scheduleID, format)
			stop()
			if err != nil {
				fmt.Println(formatter.StyleRed.Render("Submission incomplete; it will be retried on the next start."))
				return err
			}

			fmt.Println(formatter.StyleGreen.Render("✓ Inspection submitted."))
			if kind == domain.FlowPostTrip {
				fmt.Println("Clocked out. Drive safe.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&wireFormat, "format", "flat", "Wire encoding: flat or array")

	return cmd
}

func parseWireFormat(s string) (inspection.WireFormat, error) {
	switch s {
	case "flat":
		return inspection.WireFlatKeyed, nil
	case "array":
		return inspection.WireInspectionArray, nil
	}
	return "", fmt.Errorf("unknown wire format %q (want flat or array)", s)
}

// runInspectionWizard walks the fixed step sequence, one huh form per step.
// Back navigation re-hydrates the revisited screen from the aggregate, so no
// entered data is ever lost.
func runInspectionWizard(flow *inspection.Flow) error {
	for !flow.Done() {
		step := flow.Current()
		fmt.Printf("\n%s  %s\n",
			formatter.Header(fmt.Sprintf("%d/%d %s", flow.StepIndex()+1, flow.StepCount(), step.Title)),
			formatter.RenderProgress(flow.Progress(), 12))

		res, back, err := collectStep(flow, step)
		if err != nil {
			return err
		}
		if back {
			flow.Back()
			continue
		}
		if err := flow.Advance(res); err != nil {
			if errors.Is(err, inspection.ErrStepIncomplete) {
				fmt.Println(formatter.StyleYellow.Render("⚠ Every defect needs a detail note before continuing."))
				continue
			}
			return err
		}
	}
	return nil
}

// collectStep runs the form for one step and returns its result, or
// back=true when the driver chose to revisit the previous step.
func collectStep(flow *inspection.Flow, step inspection.Step) (inspection.StepResult, bool, error) {
	switch step.Kind {
	case inspection.StepChecklist:
		return collectChecklistStep(flow, step)
	case inspection.StepFields:
		return collectFieldsStep(flow, step)
	case inspection.StepPhotos:
		return collectPhotosStep(flow, step)
	}
	return inspection.StepResult{}, false, fmt.Errorf("unknown step kind %q", step.Kind)
}

func collectFieldsStep(flow *inspection.Flow, step inspection.Step) (inspection.StepResult, bool, error) {
	agg := flow.Aggregate()
	values := make([]string, len(step.RequiredFields))
	inputs := make([]huh.Field, 0, len(step.RequiredFields))
	for i, name := range step.RequiredFields {
		values[i] = agg.Field(name)
		inputs = append(inputs, huh.NewInput().
			Title(fieldTitle(name)).
			Value(&values[i]).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("required")
				}
				return nil
			}))
	}

	form := huh.NewForm(huh.NewGroup(inputs...)).
		WithTheme(driverlogHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return inspection.StepResult{}, false, err
	}

	fields := make(map[string]string, len(step.RequiredFields))
	for i, name := range step.RequiredFields {
		fields[name] = values[i]
	}
	back, err := offerBack(flow)
	return inspection.StepResult{Fields: fields}, back, err
}

func collectChecklistStep(flow *inspection.Flow, step inspection.Step) (inspection.StepResult, bool, error) {
	section := flow.Aggregate().HydrateSection(step.Name)
	if section == nil {
		section = domain.NewChecklistSection(step.Name, step.Components...)
	}

	allFunctioning := section.AllFunctioning
	if err := promptConfirm("All components functioning?", &allFunctioning); err != nil {
		return inspection.StepResult{}, false, err
	}

	prior := section
	if allFunctioning {
		section = domain.NewChecklistSection(step.Name, step.Components...)
	} else {
		options := make([]huh.Option[string], 0, len(step.Components))
		for _, comp := range step.Components {
			options = append(options, huh.NewOption(fieldTitle(comp), comp).
				Selected(prior.Defective[comp]))
		}
		var defective []string
		form := huh.NewForm(huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Mark defective components").
				Options(options...).
				Value(&defective),
		)).WithTheme(driverlogHuhTheme()).WithShowHelp(false)
		if err := form.Run(); err != nil {
			return inspection.StepResult{}, false, err
		}

		// Rebuild from a clean slate so deselected components lose their
		// flags and detail text.
		section = domain.NewChecklistSection(step.Name, step.Components...)
		for _, comp := range defective {
			section.ToggleComponent(comp)
			detail := prior.Details[comp]
			input := huh.NewForm(huh.NewGroup(
				huh.NewInput().
					Title(fmt.Sprintf("Details for %s", fieldTitle(comp))).
					Value(&detail).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return fmt.Errorf("describe the defect")
						}
						return nil
					}),
			)).WithTheme(driverlogHuhTheme()).WithShowHelp(false)
			if err := input.Run(); err != nil {
				return inspection.StepResult{}, false, err
			}
			section.SetDetail(comp, detail)
		}
	}

	back, err := offerBack(flow)
	return inspection.StepResult{Section: section}, back, err
}

func collectPhotosStep(flow *inspection.Flow, step inspection.Step) (inspection.StepResult, bool, error) {
	existing := strings.Join(flow.Aggregate().Photos, ", ")
	refs := existing
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Photo files (comma-separated paths)").
			Placeholder("front.jpg, left.jpg").
			Value(&refs).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("at least one photo is required")
				}
				return nil
			}),
	)).WithTheme(driverlogHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return inspection.StepResult{}, false, err
	}

	var photos []string
	for _, p := range strings.Split(refs, ",") {
		if p = strings.TrimSpace(p); p != "" {
			photos = append(photos, p)
		}
	}
	back, err := offerBack(flow)
	return inspection.StepResult{Photos: photos}, back, err
}

// offerBack asks for the navigation direction after the first step.
func offerBack(flow *inspection.Flow) (bool, error) {
	if flow.StepIndex() == 0 {
		return false, nil
	}
	direction := "next"
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Continue?").
			Options(
				huh.NewOption("Next step", "next"),
				huh.NewOption("Previous step", "back"),
			).
			Value(&direction),
	)).WithTheme(driverlogHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return false, err
	}
	return direction == "back", nil
}

// fieldTitle renders a camelCase field name as a spaced title, e.g.
// "truckNumber" becomes "Truck Number".
func fieldTitle(name string) string {
	var b strings.Builder
	for i, r := range name {
		if i == 0 && r >= 'a' && r <= 'z' {
			b.WriteRune(r - ('a' - 'A'))
			continue
		}
		if r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
