package controllers

import (
	"clarity/internal/keeper/interfaces"
	"clarity/internal/services"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubScheduler struct {
	stats interfaces.KeeperStats
}

func (s *stubScheduler) Init()                         {}
func (s *stubScheduler) Stop()                         {}
func (s *stubScheduler) Restore() error                { return nil }
func (s *stubScheduler) Persist() error                { return nil }
func (s *stubScheduler) Stats() interfaces.KeeperStats { return s.stats }

func TestHealth_ReturnsOK(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.service.CreateAuthor(context.Background(), services.CreateAuthorRequest{Address: alice})
	require.NoError(t, err)
	hc := NewHealthController(env.service, &stubScheduler{stats: interfaces.KeeperStats{Sweeps: 3, Saves: 2}})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	hc.Health(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp struct {
		Status        string                 `json:"status"`
		Uptime        string                 `json:"uptime"`
		UptimeSeconds float64                `json:"uptime_seconds"`
		Ledger        services.LedgerStats   `json:"ledger"`
		Keeper        interfaces.KeeperStats `json:"keeper"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.Uptime)
	assert.Equal(t, 1, resp.Ledger.Authors)
	assert.Equal(t, int64(3), resp.Keeper.Sweeps)
	assert.Equal(t, int64(2), resp.Keeper.Saves)
}

func TestHealth_MethodNotAllowed(t *testing.T) {
	env := newTestEnv(t)
	hc := NewHealthController(env.service, &stubScheduler{})

	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	rr := httptest.NewRecorder()
	hc.Health(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{"zero", 0, "0h0m0s"},
		{"one minute", 60 * time.Second, "0h1m0s"},
		{"one hour", time.Hour, "1h0m0s"},
		{"mixed", time.Hour + time.Minute + time.Second, "1h1m1s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatDuration(tt.duration))
		})
	}
}
