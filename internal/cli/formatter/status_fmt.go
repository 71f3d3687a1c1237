package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/fleetops/driverlog/internal/domain"
)

// FormatSession renders the duty status block: state indicator plus the live
// work, break, and off-duty timers relative to now.
func FormatSession(s *domain.DutySession, now time.Time) string {
	var b strings.Builder

	b.WriteString(Header("Duty Status"))
	b.WriteString("\n\n  ")
	b.WriteString(SessionIndicator(s))
	b.WriteString("\n")

	if s == nil {
		b.WriteString("\n  " + Dim("Not clocked in.") + "\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("\n  %s  %s\n",
		Dim("Clocked in"), s.ClockInTime.Local().Format("3:04 PM")))
	b.WriteString(fmt.Sprintf("  %s     %s\n",
		Dim("Worked"), Bold(domain.FormatDuration(s.WorkMinutes(now)))))

	if s.OnBreak() {
		b.WriteString(fmt.Sprintf("  %s      %s\n",
			Dim("Break"), StyleYellow.Render(domain.FormatDuration(s.BreakMinutes(now)))))
	}
	if s.OffDuty() {
		b.WriteString(fmt.Sprintf("  %s   %s\n",
			Dim("Off duty"), StyleBlue.Render(domain.FormatDuration(s.OffDutyMinutes(now)))))
	}
	if s.OffDutyTotal > 0 && !s.OffDuty() {
		b.WriteString(fmt.Sprintf("  %s   %s\n",
			Dim("Off duty"), Dim(domain.FormatDuration(s.OffDutyTotal)+" total")))
	}

	if s.ScheduleID != "" {
		b.WriteString(fmt.Sprintf("  %s   %s\n", Dim("Schedule"), s.ScheduleID))
	}
	return b.String()
}

// FormatSchedules renders schedules as an aligned table.
func FormatSchedules(schedules []domain.Schedule) string {
	if len(schedules) == 0 {
		return Dim("No schedules in this window.") + "\n"
	}

	rows := make([][]string, 0, len(schedules))
	for _, s := range schedules {
		rows = append(rows, []string{
			s.StartTime.Local().Format("Mon Jan 2"),
			s.StartTime.Local().Format("3:04 PM") + Dim(" – ") + s.EndTime.Local().Format("3:04 PM"),
			s.RouteName,
			s.TruckNumber,
			SchedulePill(s.Status),
		})
	}
	return RenderTable([]string{"DATE", "TIME", "ROUTE", "TRUCK", "STATUS"}, rows)
}
