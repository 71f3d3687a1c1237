package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fleetops/driverlog/internal/cli/formatter"
	"github.com/fleetops/driverlog/internal/domain"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show duty status with live timers",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			u, err := app.requireUser(ctx)
			if err != nil {
				return err
			}
			session, err := app.Duty.Resume(ctx, u.UID)
			if err != nil {
				return err
			}

			if plain || !app.IsInteractive() {
				fmt.Print(formatter.FormatSession(session, time.Now()))
				return nil
			}

			_, err = tea.NewProgram(newStatusModel(session)).Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print once instead of the live view")

	return cmd
}

// statusTickMsg drives the once-per-second timer refresh. Durations are
// recomputed from the session's fixed timestamps on every tick, never
// accumulated, so a missed tick cannot drift the display.
type statusTickMsg time.Time

// statusModel renders the open session with live timers.
type statusModel struct {
	session *domain.DutySession
	now     time.Time
	quit    key.Binding
}

func newStatusModel(session *domain.DutySession) statusModel {
	return statusModel{
		session: session,
		now:     time.Now(),
		quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func statusTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return statusTickMsg(t)
	})
}

func (m statusModel) Init() tea.Cmd {
	return statusTick()
}

func (m statusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusTickMsg:
		m.now = time.Time(msg)
		return m, statusTick()
	case tea.KeyMsg:
		if key.Matches(msg, m.quit) {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m statusModel) View() string {
	return "\n" + formatter.FormatSession(m.session, m.now) +
		"\n  " + formatter.Dim("q to quit") + "\n"
}
