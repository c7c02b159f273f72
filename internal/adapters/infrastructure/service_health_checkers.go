package infrastructure

import (
	"context"

	"weathernow.app/internal/ports"
)

// UpstreamHealthChecker reports an Open-Meteo service from the outcome of
// recent calls. It never issues a request of its own.
type UpstreamHealthChecker struct {
	upstream string
	baseURL  string
	metrics  ports.UpstreamMetrics
}

func NewUpstreamHealthChecker(upstream, baseURL string, metrics ports.UpstreamMetrics) *UpstreamHealthChecker {
	return &UpstreamHealthChecker{
		upstream: upstream,
		baseURL:  baseURL,
		metrics:  metrics,
	}
}

// Check is healthy until a call has failed; the most recent failure makes it degraded
func (u *UpstreamHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: u.upstream,
		Status:    "healthy",
		Details: map[string]interface{}{
			"base_url": u.baseURL,
		},
	}

	if u.metrics == nil {
		return status
	}

	stats, ok := u.metrics.GetUpstreamStats()[u.upstream]
	if !ok {
		status.Details["requests"] = int64(0)
		return status
	}

	status.Details["requests"] = stats.Requests
	status.Details["failures"] = stats.Failures
	if stats.LastStatus == "failure" {
		status.Status = "degraded"
		status.Error = "last request failed"
	}
	return status
}

// CacheDisabledHealthChecker reports the forecast cache when it is switched off
type CacheDisabledHealthChecker struct{}

func (CacheDisabledHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	return ports.HealthStatus{
		Component: "cache",
		Status:    "disabled",
	}
}
