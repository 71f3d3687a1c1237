package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/fleetops/driverlog/internal/domain"
)

// SubmitInspection posts a fully encoded inspection aggregate. The payload
// carries its idempotency key so the backend can de-duplicate re-driven
// submissions.
func (c *Client) SubmitInspection(ctx context.Context, payload map[string]any) error {
	return c.do(ctx, http.MethodPost, "/api/truck-inspection", payload, nil)
}

// CompleteSchedule marks a schedule as completed.
func (c *Client) CompleteSchedule(ctx context.Context, scheduleID string) error {
	body := map[string]string{"status": string(domain.ScheduleCompleted)}
	return c.do(ctx, http.MethodPatch, "/api/schedules/"+url.PathEscape(scheduleID), body, nil)
}

// scheduleDTO is the backend's schedule representation.
type scheduleDTO struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	RouteName   string    `json:"route_name"`
	TruckNumber string    `json:"truck_number"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Status      string    `json:"status"`
}

func (d scheduleDTO) toDomain() domain.Schedule {
	return domain.Schedule{
		ID:          d.ID,
		UserID:      d.UserID,
		RouteName:   d.RouteName,
		TruckNumber: d.TruckNumber,
		StartTime:   d.StartTime,
		EndTime:     d.EndTime,
		Status:      domain.ScheduleStatus(d.Status),
	}
}

// ListSchedules fetches schedules for a user in a time window, optionally
// filtered by status.
func (c *Client) ListSchedules(ctx context.Context, userID string, start, end time.Time, status domain.ScheduleStatus) ([]domain.Schedule, error) {
	q := url.Values{}
	q.Set("user_id", userID)
	q.Set("start_time", start.UTC().Format(time.RFC3339))
	q.Set("end_time", end.UTC().Format(time.RFC3339))
	if status != "" {
		q.Set("status", string(status))
	}

	var dtos []scheduleDTO
	if err := c.do(ctx, http.MethodGet, "/api/schedules?"+q.Encode(), nil, &dtos); err != nil {
		return nil, err
	}
	out := make([]domain.Schedule, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, d.toDomain())
	}
	return out, nil
}

// timesheetDTO is the backend's timesheet representation.
type timesheetDTO struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	ScheduleID   string     `json:"schedule_id"`
	ClockInTime  time.Time  `json:"clock_in_time"`
	ClockOutTime *time.Time `json:"clock_out_time"`
	Status       string     `json:"status"`
	Breaks       []breakDTO `json:"breaks"`
}

type breakDTO struct {
	ID    string     `json:"id"`
	Start time.Time  `json:"start_time"`
	End   *time.Time `json:"end_time"`
}

func (d timesheetDTO) toDomain() *domain.DutySession {
	s := &domain.DutySession{
		ID:           d.ID, // backend record id doubles as the session id on resume
		UserID:       d.UserID,
		ScheduleID:   d.ScheduleID,
		TimesheetID:  d.ID,
		ClockInTime:  d.ClockInTime,
		ClockOutTime: d.ClockOutTime,
		Status:       domain.SessionStatus(d.Status),
	}
	for _, b := range d.Breaks {
		s.Breaks = append(s.Breaks, domain.Break{ID: b.ID, Start: b.Start, End: b.End})
	}
	return s
}

// CreateTimesheet opens a timesheet for a fresh clock-in and returns the
// backend record id.
func (c *Client) CreateTimesheet(ctx context.Context, s *domain.DutySession) (string, error) {
	body := map[string]any{
		"user_id":       s.UserID,
		"schedule_id":   s.ScheduleID,
		"clock_in_time": s.ClockInTime.UTC().Format(time.RFC3339),
	}
	var resp struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/timesheets", body, &resp); err != nil {
		return "", err
	}
	if resp.ID == "" {
		return "", fmt.Errorf("timesheet create returned no id")
	}
	return resp.ID, nil
}

// PatchTimesheet applies a partial update to a timesheet by backend id.
func (c *Client) PatchTimesheet(ctx context.Context, timesheetID string, fields map[string]any) error {
	return c.do(ctx, http.MethodPatch, "/api/timesheets/by-id/"+url.PathEscape(timesheetID), fields, nil)
}

// WorkingTimesheet fetches the user's open timesheet, if any. Returns
// (nil, nil) when the backend reports no open session.
func (c *Client) WorkingTimesheet(ctx context.Context, userID string) (*domain.DutySession, error) {
	var dto timesheetDTO
	err := c.do(ctx, http.MethodGet, "/api/timesheets/by-user/"+url.PathEscape(userID)+"/working", nil, &dto)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.Status == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	if dto.ID == "" {
		return nil, nil
	}
	return dto.toDomain(), nil
}

// CreateBreak records a break interval against a timesheet.
func (c *Client) CreateBreak(ctx context.Context, timesheetID string, b domain.Break) error {
	body := map[string]any{
		"id":           b.ID,
		"timesheet_id": timesheetID,
		"start_time":   b.Start.UTC().Format(time.RFC3339),
	}
	if b.End != nil {
		body["end_time"] = b.End.UTC().Format(time.RFC3339)
		body["minutes"] = b.Minutes()
	}
	return c.do(ctx, http.MethodPost, "/api/breaks", body, nil)
}
