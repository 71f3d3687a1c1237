package repository

import (
	"context"
	"errors"

	"github.com/fleetops/driverlog/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist locally.
var ErrNotFound = errors.New("not found")

// UserRepo stores the last-known-user blob that backs the PIN unlock path.
type UserRepo interface {
	Get(ctx context.Context) (*domain.CachedUser, error)
	Upsert(ctx context.Context, u *domain.CachedUser) error
	Delete(ctx context.Context, uid string) error
}

// SessionRepo keeps the local snapshot of duty sessions so an open session
// survives restarts and can be resumed before the backend answers.
type SessionRepo interface {
	Save(ctx context.Context, s *domain.DutySession) error
	GetByID(ctx context.Context, id string) (*domain.DutySession, error)
	GetOpen(ctx context.Context, userID string) (*domain.DutySession, error)
	Delete(ctx context.Context, id string) error
}

// SubmissionRepo persists in-flight inspection submissions for the
// reconciliation pass (the three backend calls are not transactional).
type SubmissionRepo interface {
	Create(ctx context.Context, p *domain.PendingSubmission) error
	ListPending(ctx context.Context, userID string) ([]*domain.PendingSubmission, error)
	SetPhase(ctx context.Context, id string, phase domain.SubmissionPhase) error
	Delete(ctx context.Context, id string) error
}
