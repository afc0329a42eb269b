package providers

import (
	"clarity/internal/structures"
	"strings"
)

// MetricsCacheProvider counts hits and misses per key namespace, the part of
// the key before the first colon ("content:z..." counts as "content").
type MetricsCacheProvider struct {
	inner   CacheProviderInterface
	metrics MetricsProviderInterface
}

func cacheNamespace(key string) string {
	namespace, _, _ := strings.Cut(key, ":")
	return namespace
}

func (c *MetricsCacheProvider) Get(key string) ([]byte, bool) {
	val, ok := c.inner.Get(key)
	if ok {
		c.metrics.IncCacheHits(cacheNamespace(key))
	} else {
		c.metrics.IncCacheMisses(cacheNamespace(key))
	}
	return val, ok
}

func (c *MetricsCacheProvider) Set(key string, value []byte) {
	c.inner.Set(key, value)
}

// NewInstrumentedCacheProvider wraps the response cache with hit and miss
// counters. A disabled cache is returned bare so it reports no misses.
func NewInstrumentedCacheProvider(conf *structures.Config, logger Logger, metrics MetricsProviderInterface) CacheProviderInterface {
	inner := NewCacheProvider(conf, logger)
	if !conf.Cache.Enabled {
		return inner
	}
	return &MetricsCacheProvider{
		inner:   inner,
		metrics: metrics,
	}
}
