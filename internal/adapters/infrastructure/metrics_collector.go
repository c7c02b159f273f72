package infrastructure

import (
	"context"

	"weathernow.app/internal/ports"
)

// MetricsCollectorAdapter aggregates upstream and cache statistics for the JSON metrics endpoint
type MetricsCollectorAdapter struct {
	upstreamMetrics ports.UpstreamMetrics
	cacheMetrics    ports.CacheMetrics
	cacheConfig     ports.CacheConfig
}

// MetricsCollectorConfig holds configuration for creating the metrics collector.
// CacheMetrics may be nil when the forecast cache is disabled.
type MetricsCollectorConfig struct {
	UpstreamMetrics ports.UpstreamMetrics
	CacheMetrics    ports.CacheMetrics
	CacheConfig     ports.CacheConfig
}

func NewMetricsCollectorAdapter(config MetricsCollectorConfig) *MetricsCollectorAdapter {
	return &MetricsCollectorAdapter{
		upstreamMetrics: config.UpstreamMetrics,
		cacheMetrics:    config.CacheMetrics,
		cacheConfig:     config.CacheConfig,
	}
}

func (m *MetricsCollectorAdapter) GetMetrics(ctx context.Context) (map[string]interface{}, error) {
	upstream := map[string]ports.UpstreamStats{}
	if m.upstreamMetrics != nil {
		upstream = m.upstreamMetrics.GetUpstreamStats()
	}

	cache := map[string]interface{}{
		"enabled": m.cacheConfig.EnableForecast,
		"type":    m.cacheConfig.Type,
	}
	if m.cacheConfig.EnableForecast && m.cacheMetrics != nil {
		stats := m.cacheMetrics.GetStats()
		cache["hits"] = stats.Hits
		cache["misses"] = stats.Misses
		cache["total_ops"] = stats.TotalOps
		cache["hit_ratio"] = stats.HitRatio
		cache["updated"] = stats.LastUpdated
		cache["ttl_seconds"] = m.cacheConfig.ForecastTTL.Seconds()
	}

	return map[string]interface{}{
		"upstream": upstream,
		"cache":    cache,
	}, nil
}
