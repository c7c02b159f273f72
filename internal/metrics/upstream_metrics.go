package metrics

import (
	"sync"

	"weathernow.app/internal/ports"
)

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

// UpstreamMetrics implements ports.UpstreamMetrics
type UpstreamMetrics struct {
	collector *collector
	mu        sync.RWMutex
	stats     map[string]ports.UpstreamStats
}

func NewUpstreamMetrics() *UpstreamMetrics {
	return &UpstreamMetrics{
		collector: getCollector(),
		stats:     make(map[string]ports.UpstreamStats),
	}
}

func (m *UpstreamMetrics) RecordRequest(upstream string, success bool, durationSeconds float64) {
	outcome := outcomeSuccess
	if !success {
		outcome = outcomeFailure
	}

	m.collector.UpstreamCalls.WithLabelValues(upstream, outcome).Inc()
	m.collector.UpstreamLatency.WithLabelValues(upstream).Observe(durationSeconds)

	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.stats[upstream]
	s.Requests++
	if !success {
		s.Failures++
	}
	s.LastStatus = outcome
	m.stats[upstream] = s
}

func (m *UpstreamMetrics) GetUpstreamStats() map[string]ports.UpstreamStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]ports.UpstreamStats, len(m.stats))
	for k, v := range m.stats {
		out[k] = v
	}
	return out
}
