package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/fleetops/driverlog/internal/db"
	"github.com/fleetops/driverlog/internal/domain"
)

// SQLiteSubmissionRepo implements SubmissionRepo using the local SQLite cache.
type SQLiteSubmissionRepo struct {
	db db.DBTX
}

// NewSQLiteSubmissionRepo creates a new SQLiteSubmissionRepo.
func NewSQLiteSubmissionRepo(conn db.DBTX) *SQLiteSubmissionRepo {
	return &SQLiteSubmissionRepo{db: conn}
}

func (r *SQLiteSubmissionRepo) Create(ctx context.Context, p *domain.PendingSubmission) error {
	query := `INSERT INTO pending_submissions
		(id, idempotency_key, user_id, schedule_id, session_id, kind, payload, phase, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.IdempotencyKey,
		p.UserID,
		p.ScheduleID,
		p.SessionID,
		string(p.Kind),
		p.Payload,
		string(p.Phase),
		p.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting pending submission: %w", err)
	}
	return nil
}

func (r *SQLiteSubmissionRepo) ListPending(ctx context.Context, userID string) ([]*domain.PendingSubmission, error) {
	query := `SELECT id, idempotency_key, user_id, schedule_id, session_id, kind, payload, phase, created_at
		FROM pending_submissions WHERE user_id = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing pending submissions: %w", err)
	}
	defer rows.Close()

	var out []*domain.PendingSubmission
	for rows.Next() {
		var p domain.PendingSubmission
		var kind, phase, createdAtStr string
		if err := rows.Scan(&p.ID, &p.IdempotencyKey, &p.UserID, &p.ScheduleID,
			&p.SessionID, &kind, &p.Payload, &phase, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning pending submission: %w", err)
		}
		p.Kind = domain.FlowKind(kind)
		p.Phase = domain.SubmissionPhase(phase)
		p.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		out = append(out, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pending submissions: %w", err)
	}
	return out, nil
}

func (r *SQLiteSubmissionRepo) SetPhase(ctx context.Context, id string, phase domain.SubmissionPhase) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE pending_submissions SET phase = ? WHERE id = ?`, string(phase), id)
	if err != nil {
		return fmt.Errorf("updating submission phase: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("pending submission: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteSubmissionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM pending_submissions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting pending submission: %w", err)
	}
	return nil
}
