package providers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dummyHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}

func namedHandler(name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(name))
	})
}

func TestRouterProvider_RecordsMethodAndPattern(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/articles", dummyHandler())
	rp.Post("/articles", dummyHandler())

	routes := rp.GetRoutes()
	require.Len(t, routes, 2)

	assert.Equal(t, http.MethodGet, routes[0].Method)
	assert.Equal(t, "/articles", routes[0].Url)
	assert.Equal(t, "GET /articles", routes[0].Pattern())

	assert.Equal(t, http.MethodPost, routes[1].Method)
	assert.Equal(t, "POST /articles", routes[1].Pattern())
}

func TestRouterProvider_KeepsRegistrationOrder(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/a", dummyHandler())
	rp.Post("/b", dummyHandler())
	rp.Get("/c", dummyHandler())

	var patterns []string
	for _, route := range rp.GetRoutes() {
		patterns = append(patterns, route.Pattern())
	}
	assert.Equal(t, []string{"GET /a", "POST /b", "GET /c"}, patterns)
}

func TestRouterProvider_PatternsShareAPathOnServeMux(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/subscriptions", namedHandler("list"))
	rp.Post("/subscriptions", namedHandler("subscribe"))

	mux := http.NewServeMux()
	for _, route := range rp.GetRoutes() {
		mux.Handle(route.Pattern(), route.Handler)
	}

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/subscriptions", nil))
	assert.Equal(t, "list", rr.Body.String())

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/subscriptions", nil))
	assert.Equal(t, "subscribe", rr.Body.String())

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/subscriptions", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestMethodHandler_CorrectMethod(t *testing.T) {
	handler := methodHandler(http.MethodGet, dummyHandler())

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
	assert.Empty(t, rr.Header().Get("Allow"))
}

func TestMethodHandler_WrongMethodSetsAllow(t *testing.T) {
	tests := []struct {
		method  string
		request string
	}{
		{http.MethodGet, http.MethodPost},
		{http.MethodPost, http.MethodGet},
		{http.MethodPost, http.MethodPut},
	}

	for _, tt := range tests {
		t.Run(tt.method+" rejects "+tt.request, func(t *testing.T) {
			handler := methodHandler(tt.method, dummyHandler())

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(tt.request, "/test", nil))

			assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
			assert.Equal(t, tt.method, rr.Header().Get("Allow"))
			assert.NotContains(t, rr.Body.String(), "ok")
		})
	}
}

func TestRouterProvider_RouteHandlerGuardsMethod(t *testing.T) {
	rp := NewRouterProvider()
	rp.Post("/donations", dummyHandler())

	route := rp.GetRoutes()[0]
	rr := httptest.NewRecorder()
	route.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/donations", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, http.MethodPost, rr.Header().Get("Allow"))
}
