package providers

import (
	"clarity/internal/services"
	"clarity/internal/structures"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits(namespace string)
	IncCacheMisses(namespace string)
	ObservePersistenceDuration(duration time.Duration)
	IncLedgerEvent(event string)
	AddSweptSubscriptions(n int)
}

type MetricsProvider struct {
	requestsTotal       *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
	cacheHits           *prometheus.CounterVec
	cacheMisses         *prometheus.CounterVec
	persistenceDuration prometheus.Histogram
	ledgerEvents        *prometheus.CounterVec
	sweptSubscriptions  prometheus.Counter
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits(namespace string) {
	m.cacheHits.WithLabelValues(namespace).Inc()
}

func (m *MetricsProvider) IncCacheMisses(namespace string) {
	m.cacheMisses.WithLabelValues(namespace).Inc()
}

func (m *MetricsProvider) ObservePersistenceDuration(duration time.Duration) {
	m.persistenceDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) IncLedgerEvent(event string) {
	m.ledgerEvents.WithLabelValues(event).Inc()
}

func (m *MetricsProvider) AddSweptSubscriptions(n int) {
	if n > 0 {
		m.sweptSubscriptions.Add(float64(n))
	}
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config, service services.LedgerServiceInterface) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	m := &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "clarity_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "clarity_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "clarity_cache_hits_total",
			Help: "Total number of cache hits by key namespace",
		}, []string{"namespace"}),

		cacheMisses: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "clarity_cache_misses_total",
			Help: "Total number of cache misses by key namespace",
		}, []string{"namespace"}),

		persistenceDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "clarity_persistence_duration_seconds",
			Help:    "Duration of snapshot save operations in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		ledgerEvents: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "clarity_ledger_events_total",
			Help: "Committed ledger events by kind",
		}, []string{"event"}),

		sweptSubscriptions: promauto.NewCounter(prometheus.CounterOpts{
			Name: "clarity_swept_subscriptions_total",
			Help: "Expired subscriptions removed by the keeper",
		}),
	}

	gauge := func(name, help string, read func(services.LedgerStats) int) {
		promauto.NewGaugeFunc(prometheus.GaugeOpts{Name: name, Help: help}, func() float64 {
			return float64(read(service.Stats()))
		})
	}
	gauge("clarity_authors", "Registered authors", func(s services.LedgerStats) int { return s.Authors })
	gauge("clarity_articles", "Published articles", func(s services.LedgerStats) int { return s.Articles })
	gauge("clarity_active_subscriptions", "Subscriptions with expiry in the future", func(s services.LedgerStats) int { return s.ActiveSubscriptions })
	gauge("clarity_stored_subscriptions", "Subscription records including expired ones not yet swept", func(s services.LedgerStats) int { return s.StoredSubscriptions })
	gauge("clarity_proposals", "Governance proposals", func(s services.LedgerStats) int { return s.Proposals })
	promauto.NewGaugeFunc(prometheus.GaugeOpts{Name: "clarity_treasury", Help: "Protocol treasury balance"}, func() float64 {
		balance, err := decimal.NewFromString(service.Stats().Treasury)
		if err != nil {
			return 0
		}
		return balance.InexactFloat64()
	})

	return m
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits(_ string)                            {}
func (n *noopMetrics) IncCacheMisses(_ string)                          {}
func (n *noopMetrics) ObservePersistenceDuration(_ time.Duration)       {}
func (n *noopMetrics) IncLedgerEvent(_ string)                          {}
func (n *noopMetrics) AddSweptSubscriptions(_ int)                      {}
