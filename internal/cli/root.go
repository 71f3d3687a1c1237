// Package cli implements the driverlog command surface: login and PIN
// unlock, duty clock commands, the live status view, the inspection wizard,
// and schedule listing.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/fleetops/driverlog/internal/auth"
	"github.com/fleetops/driverlog/internal/domain"
	"github.com/fleetops/driverlog/internal/duty"
	"github.com/fleetops/driverlog/internal/repository"
	"github.com/fleetops/driverlog/internal/submit"
	"github.com/spf13/cobra"
)

// App holds the wired services CLI commands run against.
type App struct {
	Users     repository.UserRepo
	Auth      auth.Provider
	Tokens    *auth.CachedTokenSource
	Duty      *duty.Service
	Boundary  *submit.Boundary
	Schedules ScheduleLister

	// IsInteractive reports whether stdin is an interactive terminal.
	// Prompt-driven commands refuse to run without one.
	IsInteractive func() bool
}

// requireUser loads the cached driver and mints a bearer token from the
// stored refresh token. Commands other than login go through here.
func (a *App) requireUser(ctx context.Context) (*domain.CachedUser, error) {
	u, err := a.Users.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("no cached driver; run `driverlog login` first")
		}
		return nil, err
	}
	if _, err := a.Tokens.Refresh(ctx); err != nil {
		return nil, fmt.Errorf("session expired; run `driverlog login` again: %w", err)
	}
	return u, nil
}

// requireSession resolves the cached driver and their open duty session.
func (a *App) requireSession(ctx context.Context) (*domain.CachedUser, *domain.DutySession, error) {
	u, err := a.requireUser(ctx)
	if err != nil {
		return nil, nil, err
	}
	session, err := a.Duty.Resume(ctx, u.UID)
	if err != nil {
		return nil, nil, err
	}
	if session == nil {
		return u, nil, fmt.Errorf("%w; clock in with `driverlog clock in`", duty.ErrNoOpenSession)
	}
	return u, session, nil
}

// NewRootCmd creates the top-level "driverlog" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "driverlog",
		Short: "Driver duty log and vehicle inspection client",
	}

	root.AddCommand(
		newLoginCmd(app),
		newUnlockCmd(app),
		newClockCmd(app),
		newBreakCmd(app),
		newDutyCmd(app),
		newStatusCmd(app),
		newInspectCmd(app),
		newScheduleCmd(app),
	)

	return root
}
