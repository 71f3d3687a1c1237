package repository

import (
	"context"
	"testing"
	"time"

	"github.com/fleetops/driverlog/internal/db"
	"github.com/fleetops/driverlog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submissionRepo(t *testing.T) *SQLiteSubmissionRepo {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return NewSQLiteSubmissionRepo(database)
}

func TestSubmissionRepo_Lifecycle(t *testing.T) {
	repo := submissionRepo(t)
	ctx := context.Background()

	p := &domain.PendingSubmission{
		ID:             "sub-1",
		IdempotencyKey: "key-1",
		UserID:         "driver-1",
		ScheduleID:     "sched-7",
		SessionID:      "sess-1",
		Kind:           domain.FlowPostTrip,
		Payload:        []byte(`{"tripType":"post_trip"}`),
		Phase:          domain.PhaseInspection,
		CreatedAt:      time.Date(2025, 6, 2, 17, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Create(ctx, p))

	pending, err := repo.ListPending(ctx, "driver-1")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "key-1", pending[0].IdempotencyKey)
	assert.Equal(t, domain.PhaseInspection, pending[0].Phase)
	assert.JSONEq(t, `{"tripType":"post_trip"}`, string(pending[0].Payload))

	require.NoError(t, repo.SetPhase(ctx, "sub-1", domain.PhaseSchedule))
	pending, err = repo.ListPending(ctx, "driver-1")
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseSchedule, pending[0].Phase)

	require.NoError(t, repo.Delete(ctx, "sub-1"))
	pending, err = repo.ListPending(ctx, "driver-1")
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestSubmissionRepo_SetPhaseMissing(t *testing.T) {
	repo := submissionRepo(t)
	err := repo.SetPhase(context.Background(), "nope", domain.PhaseSchedule)
	assert.ErrorIs(t, err, ErrNotFound)
}
