package controllers

import (
	"clarity/internal/models"
	"clarity/internal/providers"
	"clarity/internal/services"
	"fmt"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"
)

const maxRequestBodySize = 1 << 20 // 1 MB

type ApiController struct {
	logger  providers.Logger
	service services.LedgerServiceInterface
	cache   providers.CacheProviderInterface
	metrics providers.MetricsProviderInterface
}

func NewApiController(logger providers.Logger, service services.LedgerServiceInterface, cache providers.CacheProviderInterface, metrics providers.MetricsProviderInterface) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
		cache:   cache,
		metrics: metrics,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func statusFor(err error) int {
	switch {
	case models.IsNotFound(err):
		return http.StatusNotFound
	case models.IsValidation(err):
		return http.StatusBadRequest
	case models.IsConflict(err):
		return http.StatusConflict
	case models.IsExternal(err):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	gson, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

func (ac *ApiController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	switch status {
	case http.StatusInternalServerError:
		ac.logger.Errorf(providers.GetLogTypeByRequestType(r.Method), "%s %s: %s", r.Method, r.URL.Path, err)
		msg = "Internal Server Error"
	case http.StatusBadGateway:
		ac.logger.Warnf(providers.GetLogTypeByRequestType(r.Method), "%s %s: %s", r.Method, r.URL.Path, err)
	}
	writeJSON(w, status, errorResponse{Error: msg})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &models.ValidationError{Err: fmt.Errorf("invalid request body: %w", err)}
	}
	return nil
}

func queryID(r *http.Request, key string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, models.Invalid(key, "is required")
	}
	id, err := cast.ToInt64E(raw)
	if err != nil || id < 1 {
		return 0, models.Invalid(key, "must be a positive integer")
	}
	return id, nil
}

func queryAddress(r *http.Request, key string) (string, error) {
	address := strings.TrimSpace(r.URL.Query().Get(key))
	if address == "" {
		return "", models.Invalid(key, "is required")
	}
	return address, nil
}

// serveCached answers from the response cache or stores what compute renders.
// Only responses that never change for a key may go through here.
func (ac *ApiController) serveCached(w http.ResponseWriter, r *http.Request, cacheKey, contentType string, compute func() ([]byte, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	data, err := compute()
	if err != nil {
		ac.writeError(w, r, err)
		return
	}

	ac.cache.Set(cacheKey, data)

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, r *http.Request, cacheKey string, compute func() (any, error)) {
	ac.serveCached(w, r, cacheKey, "application/json", func() ([]byte, error) {
		result, err := compute()
		if err != nil {
			return nil, err
		}
		return json.Marshal(result)
	})
}

func (ac *ApiController) GetConfig(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, r, "config", func() (any, error) {
		return ac.service.PublicConfig(), nil
	})
}
