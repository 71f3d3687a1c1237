package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fleetops/driverlog/internal/db"
	"github.com/fleetops/driverlog/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo using the local SQLite cache.
// Save replaces the session row and its break rows wholesale: the session is
// a snapshot, not an event log, and the backend holds the durable record.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn}
}

func (r *SQLiteSessionRepo) Save(ctx context.Context, s *domain.DutySession) error {
	query := `INSERT INTO duty_sessions
		(id, user_id, schedule_id, timesheet_id, clock_in_time, clock_out_time, off_duty_start, off_duty_total, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			schedule_id = excluded.schedule_id,
			timesheet_id = excluded.timesheet_id,
			clock_out_time = excluded.clock_out_time,
			off_duty_start = excluded.off_duty_start,
			off_duty_total = excluded.off_duty_total,
			status = excluded.status`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.UserID,
		s.ScheduleID,
		s.TimesheetID,
		s.ClockInTime.Format(time.RFC3339),
		nullableTimeToString(s.ClockOutTime),
		nullableTimeToString(s.OffDutyStart),
		s.OffDutyTotal,
		string(s.Status),
	)
	if err != nil {
		return fmt.Errorf("saving duty session: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM session_breaks WHERE session_id = ?`, s.ID); err != nil {
		return fmt.Errorf("clearing session breaks: %w", err)
	}
	for i, b := range s.Breaks {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO session_breaks (id, session_id, start_time, end_time, order_index) VALUES (?, ?, ?, ?, ?)`,
			b.ID, s.ID, b.Start.Format(time.RFC3339), nullableTimeToString(b.End), i,
		)
		if err != nil {
			return fmt.Errorf("saving session break: %w", err)
		}
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.DutySession, error) {
	query := `SELECT id, user_id, schedule_id, timesheet_id, clock_in_time, clock_out_time, off_duty_start, off_duty_total, status
		FROM duty_sessions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanSession(ctx, row)
}

func (r *SQLiteSessionRepo) GetOpen(ctx context.Context, userID string) (*domain.DutySession, error) {
	query := `SELECT id, user_id, schedule_id, timesheet_id, clock_in_time, clock_out_time, off_duty_start, off_duty_total, status
		FROM duty_sessions
		WHERE user_id = ? AND status IN ('pending', 'clocked_in')
		ORDER BY clock_in_time DESC LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, userID)
	return r.scanSession(ctx, row)
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM duty_sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting duty session: %w", err)
	}
	return nil
}

// scanSession scans a session row and loads its break intervals.
func (r *SQLiteSessionRepo) scanSession(ctx context.Context, row *sql.Row) (*domain.DutySession, error) {
	var s domain.DutySession
	var clockInStr, status string
	var clockOutStr, offDutyStr sql.NullString

	err := row.Scan(&s.ID, &s.UserID, &s.ScheduleID, &s.TimesheetID,
		&clockInStr, &clockOutStr, &offDutyStr, &s.OffDutyTotal, &status)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("duty session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning duty session: %w", err)
	}

	s.ClockInTime, err = time.Parse(time.RFC3339, clockInStr)
	if err != nil {
		return nil, fmt.Errorf("parsing clock_in_time: %w", err)
	}
	s.ClockOutTime = parseNullableTime(clockOutStr)
	s.OffDutyStart = parseNullableTime(offDutyStr)
	s.Status = domain.SessionStatus(status)

	if err := r.loadBreaks(ctx, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SQLiteSessionRepo) loadBreaks(ctx context.Context, s *domain.DutySession) error {
	query := `SELECT id, start_time, end_time FROM session_breaks
		WHERE session_id = ? ORDER BY order_index`
	rows, err := r.db.QueryContext(ctx, query, s.ID)
	if err != nil {
		return fmt.Errorf("listing session breaks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var b domain.Break
		var startStr string
		var endStr sql.NullString
		if err := rows.Scan(&b.ID, &startStr, &endStr); err != nil {
			return fmt.Errorf("scanning break row: %w", err)
		}
		b.Start, err = time.Parse(time.RFC3339, startStr)
		if err != nil {
			return fmt.Errorf("parsing break start_time: %w", err)
		}
		b.End = parseNullableTime(endStr)
		s.Breaks = append(s.Breaks, b)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating breaks: %w", err)
	}
	return nil
}
