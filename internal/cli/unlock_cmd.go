package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/fleetops/driverlog/internal/auth"
	"github.com/fleetops/driverlog/internal/cli/formatter"
	"github.com/fleetops/driverlog/internal/repository"
	"github.com/spf13/cobra"
)

func newUnlockCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unlock",
		Short: "Unlock the cached driver profile with your PIN",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			u, err := app.Users.Get(ctx)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return fmt.Errorf("no cached driver; run `driverlog login` first")
				}
				return err
			}
			if u.PINHash == "" {
				return fmt.Errorf("no PIN set; run `driverlog login` to set one")
			}
			if !app.IsInteractive() {
				return fmt.Errorf("unlock needs an interactive terminal")
			}

			var pin string
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("PIN").
						EchoMode(huh.EchoModePassword).
						Value(&pin),
				),
			).WithTheme(driverlogHuhTheme()).WithShowHelp(false)
			if err := form.Run(); err != nil {
				return err
			}

			if err := auth.VerifyPIN(u, pin); err != nil {
				return err
			}

			// PIN only opens the local cache; the backend still needs a live
			// token, minted here from the stored refresh token.
			if _, err := app.Tokens.Refresh(ctx); err != nil {
				return fmt.Errorf("session expired; run `driverlog login` again: %w", err)
			}

			name := u.DisplayName
			if name == "" {
				name = u.Email
			}
			fmt.Printf("Welcome back, %s.\n", formatter.Bold(name))
			return nil
		},
	}
}
