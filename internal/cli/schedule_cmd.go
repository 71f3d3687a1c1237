package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/fleetops/driverlog/internal/cli/formatter"
	"github.com/fleetops/driverlog/internal/domain"
	"github.com/spf13/cobra"
)

// ScheduleLister is the slice of the backend client the schedule commands need.
type ScheduleLister interface {
	ListSchedules(ctx context.Context, userID string, start, end time.Time, status domain.ScheduleStatus) ([]domain.Schedule, error)
}

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Work with trip schedules",
	}
	cmd.AddCommand(newScheduleListCmd(app))
	return cmd
}

func newScheduleListCmd(app *App) *cobra.Command {
	var days int
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List upcoming schedules",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			u, err := app.requireUser(ctx)
			if err != nil {
				return err
			}

			start := time.Now().Truncate(24 * time.Hour)
			end := start.AddDate(0, 0, days)
			schedules, err := app.Schedules.ListSchedules(ctx, u.UID, start, end, domain.ScheduleStatus(status))
			if err != nil {
				return err
			}

			fmt.Println(formatter.Header(fmt.Sprintf("Schedules — next %dd", days)))
			fmt.Print(formatter.FormatSchedules(schedules))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Window length in days")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (pending, completed, cancelled)")

	return cmd
}
