package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fleetops/driverlog/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// SessionIndicator returns a colored duty-state indicator such as "● ON DUTY".
func SessionIndicator(s *domain.DutySession) string {
	switch {
	case s == nil:
		return StyleDim.Render("○ OFF THE CLOCK")
	case s.Status == domain.SessionCompleted:
		return StyleDim.Render("✔ CLOCKED OUT")
	case s.OnBreak():
		return StyleYellow.Render("◑ ON BREAK")
	case s.OffDuty():
		return StyleBlue.Render("◌ OFF DUTY")
	case s.Status == domain.SessionPending:
		return StyleYellow.Render("● ON DUTY (unconfirmed)")
	default:
		return StyleGreen.Render("● ON DUTY")
	}
}

// SchedulePill returns a colored status indicator for a schedule.
func SchedulePill(status domain.ScheduleStatus) string {
	switch status {
	case domain.SchedulePending:
		return StyleBlue.Render("○ Pending")
	case domain.ScheduleCompleted:
		return StyleDim.Render("✔ Completed")
	case domain.ScheduleCancelled:
		return StyleDim.Render("✖ Cancelled")
	default:
		return StyleDim.Render(string(status))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
