package infrastructure

import (
	"context"
	"sync"

	"weathernow.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	checkers       map[string]ports.HealthChecker
	configProvider ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	GeocodingChecker ports.HealthChecker
	ForecastChecker  ports.HealthChecker
	CacheChecker     ports.HealthChecker
	ConfigProvider   ports.ConfigProvider
}

func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	checkers := make(map[string]ports.HealthChecker)
	if config.GeocodingChecker != nil {
		checkers["geocoding"] = config.GeocodingChecker
	}
	if config.ForecastChecker != nil {
		checkers["forecast"] = config.ForecastChecker
	}
	if config.CacheChecker != nil {
		checkers["cache"] = config.CacheChecker
	}

	return &SystemHealthChecker{
		checkers:       checkers,
		configProvider: config.ConfigProvider,
	}
}

// CheckAll runs every checker concurrently and adds a config summary
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus, len(s.checkers)+1)

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for name, checker := range s.checkers {
		wg.Add(1)
		go func(name string, checker ports.HealthChecker) {
			defer wg.Done()
			status := checker.Check(ctx)
			mu.Lock()
			results[name] = status
			mu.Unlock()
		}(name, checker)
	}
	wg.Wait()

	if s.configProvider != nil {
		dashboard := s.configProvider.GetDashboardConfig()
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    "healthy",
			Details: map[string]interface{}{
				"default_units":    dashboard.DefaultUnits,
				"default_location": dashboard.DefaultLocation.Name,
			},
		}
	}

	return results
}
