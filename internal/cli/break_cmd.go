package cli

import (
	"context"
	"fmt"

	"github.com/fleetops/driverlog/internal/cli/formatter"
	"github.com/fleetops/driverlog/internal/domain"
	"github.com/spf13/cobra"
)

func newBreakCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "break",
		Short: "Start or end a break",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "start",
			Short: "Start a break",
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				_, session, err := app.requireSession(ctx)
				if err != nil {
					return err
				}
				if err := app.Duty.StartBreak(ctx, session); err != nil {
					return err
				}
				fmt.Println("Break started.")
				return nil
			},
		},
		&cobra.Command{
			Use:   "end",
			Short: "End the open break",
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				_, session, err := app.requireSession(ctx)
				if err != nil {
					return err
				}
				mins, err := app.Duty.EndBreak(ctx, session)
				if err != nil {
					return err
				}
				fmt.Printf("Break ended after %s.\n", formatter.Bold(domain.FormatDuration(mins)))
				return nil
			},
		},
	)

	return cmd
}

func newDutyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "duty",
		Short: "Go off duty mid-shift, or back on",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "off",
			Short: "Start the mid-shift off-duty interval",
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				_, session, err := app.requireSession(ctx)
				if err != nil {
					return err
				}
				if err := app.Duty.GoOffDuty(ctx, session); err != nil {
					return err
				}
				fmt.Println("Off duty. Clock back on with `driverlog duty on`.")
				return nil
			},
		},
		&cobra.Command{
			Use:   "on",
			Short: "Return to duty",
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				_, session, err := app.requireSession(ctx)
				if err != nil {
					return err
				}
				mins, err := app.Duty.GoOnDuty(ctx, session)
				if err != nil {
					return err
				}
				fmt.Printf("Back on duty after %s.\n", formatter.Bold(domain.FormatDuration(mins)))
				return nil
			},
		},
	)

	return cmd
}
