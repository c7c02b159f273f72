// Package metrics exposes cache and upstream metrics to Prometheus while
// keeping in-process totals for the JSON metrics endpoint.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type collector struct {
	CacheHits       *prometheus.CounterVec
	CacheMisses     *prometheus.CounterVec
	CacheRequests   *prometheus.CounterVec
	CacheLatency    *prometheus.HistogramVec
	CacheHitRatio   *prometheus.GaugeVec
	UpstreamCalls   *prometheus.CounterVec
	UpstreamLatency *prometheus.HistogramVec
}

var (
	globalCollector *collector
	collectorOnce   sync.Once
)

// getCollector registers the collectors with the default registry once per process
func getCollector() *collector {
	collectorOnce.Do(func() {
		globalCollector = &collector{
			CacheHits: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "weathernow_cache_hits_total",
					Help: "The total number of forecast cache hits",
				},
				[]string{"cache_type"},
			),
			CacheMisses: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "weathernow_cache_misses_total",
					Help: "The total number of forecast cache misses",
				},
				[]string{"cache_type"},
			),
			CacheRequests: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "weathernow_cache_requests_total",
					Help: "The total number of forecast cache lookups",
				},
				[]string{"cache_type"},
			),
			CacheLatency: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "weathernow_cache_duration_seconds",
					Help:    "Cache operation duration in seconds",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"cache_type", "operation"},
			),
			CacheHitRatio: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Name: "weathernow_cache_hit_ratio",
					Help: "Cache hit ratio (hits/total lookups)",
				},
				[]string{"cache_type"},
			),
			UpstreamCalls: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "weathernow_upstream_requests_total",
					Help: "The total number of Open-Meteo requests by outcome",
				},
				[]string{"upstream", "outcome"},
			),
			UpstreamLatency: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "weathernow_upstream_request_duration_seconds",
					Help:    "Open-Meteo request duration in seconds",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"upstream"},
			),
		}
	})
	return globalCollector
}
