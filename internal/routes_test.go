package internal

import (
	"clarity/internal/controllers"
	"clarity/internal/services"
	"clarity/internal/structures"
	"clarity/internal/testutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouteTestController() *controllers.ApiController {
	conf := &structures.Config{Ledger: structures.LedgerConfig{
		SubscriptionTTL:   30 * 24 * time.Hour,
		InitialReputation: 100,
		PublishReward:     10,
		MinFlagStake:      500,
	}}
	svc := services.NewLedgerService(conf, testutil.NewMockContentStore(), &testutil.MockRegistry{}, testutil.FixedClock())
	return controllers.NewApiController(&testutil.MockLogger{}, svc, testutil.NewMockCache(), testutil.NewMockMetrics())
}

func TestInitRoutes_RegistersLedgerRoutes(t *testing.T) {
	router := InitRoutes(newRouteTestController())
	routes := router.GetRoutes()

	require.Len(t, routes, 28)

	patterns := make([]string, len(routes))
	for i, r := range routes {
		patterns[i] = r.Pattern()
	}

	assert.Contains(t, patterns, "GET /articles")
	assert.Contains(t, patterns, "POST /articles")
	assert.Contains(t, patterns, "POST /votes")
	assert.Contains(t, patterns, "POST /donations")
	assert.Contains(t, patterns, "POST /protocol-donations")
	assert.Contains(t, patterns, "POST /keeper/subscriptions")
	assert.Contains(t, patterns, "GET /content")
	assert.Contains(t, patterns, "GET /config")
}

func TestNewApiMux_SharedPathDispatchesByMethod(t *testing.T) {
	mux := NewApiMux(InitRoutes(newRouteTestController()))

	req := httptest.NewRequest(http.MethodPost, "/authors", strings.NewReader(`{"address":"0x9999999999999999999999999999999999999999"}`))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusCreated, rr.Code)

	req = httptest.NewRequest(http.MethodGet, "/authors", nil)
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "0x9999999999999999999999999999999999999999")
}

func TestNewApiMux_MethodEnforcement(t *testing.T) {
	mux := NewApiMux(InitRoutes(newRouteTestController()))

	req := httptest.NewRequest(http.MethodPost, "/tags", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	req = httptest.NewRequest(http.MethodGet, "/votes", nil)
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	req = httptest.NewRequest(http.MethodGet, "/unknown", nil)
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
