package docstore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fleetops/driverlog/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.Handler) Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := api.DefaultConfig()
	cfg.DocstoreURL = srv.URL
	return NewHTTPClient(cfg, api.StaticToken("tok-1"))
}

func TestLatestRecord_Decodes(t *testing.T) {
	out := time.Date(2025, 6, 1, 17, 30, 0, 0, time.UTC)
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/records/driver-1/latest", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{
			"user_id": "driver-1", "date": "2025-06-01",
			"clock_out_time": out.Format(time.RFC3339), "break_minutes": 45,
		})
	}))

	rec, err := c.LatestRecord(context.Background(), "driver-1")
	require.NoError(t, err)
	require.NotNil(t, rec.ClockOutTime)
	assert.True(t, out.Equal(*rec.ClockOutTime))
	assert.Equal(t, 45, rec.BreakMinutes)
}

func TestLatestRecord_NoRecord(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := c.LatestRecord(context.Background(), "driver-1")
	assert.ErrorIs(t, err, ErrNoRecord)
}
