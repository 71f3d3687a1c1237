package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fleetops/driverlog/internal/cli/formatter"
	"github.com/fleetops/driverlog/internal/domain"
	"github.com/fleetops/driverlog/internal/duty"
	"github.com/spf13/cobra"
)

func newClockCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clock",
		Short: "Clock in or out of a duty session",
	}
	cmd.AddCommand(newClockInCmd(app), newClockOutCmd(app))
	return cmd
}

func newClockInCmd(app *App) *cobra.Command {
	var scheduleID string
	var acknowledgeRest bool

	cmd := &cobra.Command{
		Use:   "in",
		Short: "Start a duty session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			u, err := app.requireUser(ctx)
			if err != nil {
				return err
			}
			if open, err := app.Duty.Resume(ctx, u.UID); err != nil {
				return err
			} else if open != nil {
				return fmt.Errorf("already clocked in since %s", open.ClockInTime.Local().Format("3:04 PM"))
			}

			session, err := app.Duty.ClockIn(ctx, u.UID, scheduleID, acknowledgeRest)
			if err != nil {
				var restErr *duty.InsufficientRestError
				if errors.As(err, &restErr) {
					return handleRestWarning(ctx, app, u.UID, scheduleID, restErr)
				}
				return err
			}
			printClockedIn(session)
			return nil
		},
	}

	cmd.Flags().StringVar(&scheduleID, "schedule", "", "Schedule ID this shift is working")
	cmd.Flags().BoolVar(&acknowledgeRest, "acknowledge-rest", false, "Proceed despite an insufficient rest warning")

	return cmd
}

// handleRestWarning surfaces the insufficient-rest warning and, on an
// interactive terminal, lets the driver acknowledge and proceed.
func handleRestWarning(ctx context.Context, app *App, userID, scheduleID string, restErr *duty.InsufficientRestError) error {
	warning := fmt.Sprintf("Only %.1f hours since your last shift (minimum %d).",
		restErr.Hours, domain.MinRestHours)
	fmt.Println(formatter.StyleYellow.Render("⚠ " + warning))

	if !app.IsInteractive() {
		return fmt.Errorf("%w; pass --acknowledge-rest to proceed", restErr)
	}

	var proceed bool
	if err := promptConfirm("Clock in anyway?", &proceed); err != nil {
		return err
	}
	if !proceed {
		return fmt.Errorf("clock-in cancelled")
	}

	session, err := app.Duty.ClockIn(ctx, userID, scheduleID, true)
	if err != nil {
		return err
	}
	printClockedIn(session)
	return nil
}

func printClockedIn(s *domain.DutySession) {
	fmt.Printf("Clocked in at %s.\n", formatter.Bold(s.ClockInTime.Local().Format("3:04 PM")))
	if s.Status == domain.SessionPending {
		fmt.Println(formatter.Dim("Backend unreachable; the session will sync on the next start."))
	}
}

func newClockOutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "out",
		Short: "End the open duty session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			_, session, err := app.requireSession(ctx)
			if err != nil {
				return err
			}
			if err := app.Duty.ClockOut(ctx, session); err != nil {
				if errors.Is(err, domain.ErrOpenBreak) {
					return fmt.Errorf("end your break first: `driverlog break end`")
				}
				return err
			}
			fmt.Printf("Clocked out. Worked %s.\n",
				formatter.Bold(domain.FormatDuration(session.WorkMinutes(time.Now()))))
			return nil
		},
	}
}
