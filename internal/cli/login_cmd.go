package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/fleetops/driverlog/internal/auth"
	"github.com/fleetops/driverlog/internal/cli/formatter"
	"github.com/fleetops/driverlog/internal/domain"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Sign in and cache the driver profile locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.IsInteractive() {
				return fmt.Errorf("login needs an interactive terminal")
			}

			var email, password string
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Email").
						Value(&email).
						Validate(func(s string) error {
							if !strings.Contains(s, "@") {
								return fmt.Errorf("enter a valid email")
							}
							return nil
						}),
					huh.NewInput().
						Title("Password").
						EchoMode(huh.EchoModePassword).
						Value(&password).
						Validate(func(s string) error {
							if s == "" {
								return fmt.Errorf("password is required")
							}
							return nil
						}),
				),
			).WithTheme(driverlogHuhTheme()).WithShowHelp(false)
			if err := form.Run(); err != nil {
				return err
			}

			stop := formatter.StartSpinner("Signing in...")
			session, err := app.Auth.SignIn(context.Background(), email, password)
			stop()
			if err != nil {
				return err
			}

			u := &domain.CachedUser{
				UID:          session.UID,
				Email:        session.Email,
				DisplayName:  session.DisplayName,
				RefreshToken: session.RefreshToken,
				UpdatedAt:    time.Now().UTC(),
			}
			if pin, err := promptPINSetup(); err != nil {
				return err
			} else if pin != "" {
				u.PINHash = auth.HashPIN(pin)
			}
			if err := app.Users.Upsert(context.Background(), u); err != nil {
				return fmt.Errorf("caching driver profile: %w", err)
			}

			name := u.DisplayName
			if name == "" {
				name = u.Email
			}
			fmt.Printf("Signed in as %s.\n", formatter.Bold(name))
			return nil
		},
	}
}

// promptPINSetup offers an optional quick-unlock PIN. Empty means skip.
func promptPINSetup() (string, error) {
	var pin string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Set a quick-unlock PIN (Enter to skip)").
				EchoMode(huh.EchoModePassword).
				Value(&pin).
				Validate(func(s string) error {
					if s != "" && len(s) < 4 {
						return fmt.Errorf("PIN must be at least 4 digits")
					}
					return nil
				}),
		),
	).WithTheme(driverlogHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return "", err
	}
	return pin, nil
}
