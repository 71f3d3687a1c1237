package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fleetops/driverlog/internal/db"
	"github.com/fleetops/driverlog/internal/domain"
)

// SQLiteUserRepo implements UserRepo using the local SQLite cache. The user
// is stored as a single JSON blob; there is at most one cached user at a time.
type SQLiteUserRepo struct {
	db db.DBTX
}

// NewSQLiteUserRepo creates a new SQLiteUserRepo.
func NewSQLiteUserRepo(conn db.DBTX) *SQLiteUserRepo {
	return &SQLiteUserRepo{db: conn}
}

func (r *SQLiteUserRepo) Get(ctx context.Context) (*domain.CachedUser, error) {
	query := `SELECT blob FROM cached_users ORDER BY updated_at DESC LIMIT 1`
	var blob string
	err := r.db.QueryRowContext(ctx, query).Scan(&blob)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("cached user: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("reading cached user: %w", err)
	}

	var u domain.CachedUser
	if err := json.Unmarshal([]byte(blob), &u); err != nil {
		return nil, fmt.Errorf("decoding cached user blob: %w", err)
	}
	return &u, nil
}

func (r *SQLiteUserRepo) Upsert(ctx context.Context, u *domain.CachedUser) error {
	u.UpdatedAt = time.Now().UTC()
	blob, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encoding cached user blob: %w", err)
	}

	query := `INSERT INTO cached_users (uid, blob, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(uid) DO UPDATE SET blob = excluded.blob, updated_at = excluded.updated_at`
	_, err = r.db.ExecContext(ctx, query, u.UID, string(blob), u.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("upserting cached user: %w", err)
	}
	return nil
}

func (r *SQLiteUserRepo) Delete(ctx context.Context, uid string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cached_users WHERE uid = ?`, uid)
	if err != nil {
		return fmt.Errorf("deleting cached user: %w", err)
	}
	return nil
}
