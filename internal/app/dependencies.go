package app

import (
	"fmt"
	"io"
	"log/slog"

	"weathernow.app/internal/adapters/external"
	"weathernow.app/internal/adapters/infrastructure"
	"weathernow.app/internal/config"
	"weathernow.app/internal/metrics"
	"weathernow.app/internal/ports"
)

type DependencyContainer struct {
	config *config.Config
	ports  *ports.ApplicationPorts

	healthChecker ports.SystemHealthChecker
	closers       []io.Closer
}

func NewDependencyContainer(cfg *config.Config) (*DependencyContainer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	container := &DependencyContainer{
		config: cfg,
	}

	if err := container.initializePorts(); err != nil {
		if cerr := container.Cleanup(); cerr != nil {
			slog.Warn("Cleanup after failed initialization", "error", cerr)
		}
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializePorts() error {
	slog.Info("Initializing ports...")

	configProvider := infrastructure.NewConfigProviderAdapter(c.config)
	upstreamCfg := configProvider.GetUpstreamConfig()
	cacheCfg := configProvider.GetCacheConfig()

	var logger ports.Logger = infrastructure.NewSlogLoggerAdapter(nil)

	// Upstream traffic can additionally be written to a dedicated JSON-lines file
	providerLogger := logger
	if upstreamCfg.EnableLogging && upstreamCfg.LogFilePath != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(upstreamCfg.LogFilePath)
		if err != nil {
			slog.Warn("Failed to create file logger, falling back to slog", "error", err)
		} else {
			c.closers = append(c.closers, fileLogger)
			providerLogger = infrastructure.NewMultiLogger(logger, fileLogger)
			slog.Info("File logging enabled", "path", upstreamCfg.LogFilePath)
		}
	}

	upstreamMetrics := metrics.NewUpstreamMetrics()

	clientParams := external.OpenMeteoClientParams{Timeout: upstreamCfg.Timeout}

	clientParams.BaseURL = upstreamCfg.GeocodingBaseURL
	var geocoder ports.GeocodingProvider = external.NewOpenMeteoGeocodingAdapter(clientParams)
	geocoder = external.NewInstrumentedGeocodingProvider(geocoder, upstreamMetrics)
	geocodingName := geocoder.GetProviderName()

	clientParams.BaseURL = upstreamCfg.ForecastBaseURL
	var forecaster ports.ForecastProvider = external.NewOpenMeteoForecastAdapter(clientParams)
	forecaster = external.NewInstrumentedForecastProvider(forecaster, upstreamMetrics)
	forecastName := forecaster.GetProviderName()

	if upstreamCfg.RateLimitRPS > 0 {
		geocoder = external.NewRateLimitedGeocodingProvider(geocoder, upstreamCfg.RateLimitRPS, upstreamCfg.RateLimitBurst)
		forecaster = external.NewRateLimitedForecastProvider(forecaster, upstreamCfg.RateLimitRPS, upstreamCfg.RateLimitBurst)
		slog.Info("Upstream rate limiting enabled",
			"rps", upstreamCfg.RateLimitRPS,
			"burst", upstreamCfg.RateLimitBurst)
	}

	if upstreamCfg.EnableLogging {
		geocoder = external.NewGeocodingLoggingDecorator(geocoder, providerLogger)
		forecaster = external.NewForecastLoggingDecorator(forecaster, providerLogger)
		slog.Info("Upstream provider logging enabled")
	}

	var cacheProvider ports.CacheProvider
	var cacheMetrics ports.CacheMetrics
	cacheChecker := ports.HealthChecker(infrastructure.CacheDisabledHealthChecker{})

	if cacheCfg.EnableForecast {
		cm := metrics.NewCacheMetrics(cacheCfg.Type)
		provider, err := external.NewCacheProviderFactory().CreateCacheProvider(&c.config.Cache, cm)
		if err != nil {
			return fmt.Errorf("create cache provider: %w", err)
		}
		if closer, ok := provider.(io.Closer); ok {
			c.closers = append(c.closers, closer)
		}
		if checker, ok := provider.(ports.HealthChecker); ok {
			cacheChecker = checker
		}

		cacheProvider = provider
		cacheMetrics = cm
		forecaster = external.NewCachedForecastProvider(forecaster,
			external.NewForecastCacheAdapter(provider), cacheCfg.ForecastTTL, logger)

		slog.Info("Forecast cache enabled",
			"type", cacheCfg.Type,
			"ttl", cacheCfg.ForecastTTL.String())
	}

	c.healthChecker = infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		GeocodingChecker: infrastructure.NewUpstreamHealthChecker(geocodingName, upstreamCfg.GeocodingBaseURL, upstreamMetrics),
		ForecastChecker:  infrastructure.NewUpstreamHealthChecker(forecastName, upstreamCfg.ForecastBaseURL, upstreamMetrics),
		CacheChecker:     cacheChecker,
		ConfigProvider:   configProvider,
	})

	c.ports = &ports.ApplicationPorts{
		// Open-Meteo
		GeocodingProvider: geocoder,
		ForecastProvider:  forecaster,
		UpstreamMetrics:   upstreamMetrics,

		// Cache
		CacheProvider: cacheProvider,
		CacheMetrics:  cacheMetrics,

		// Infrastructure
		ConfigProvider: configProvider,
		Logger:         logger,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

func (c *DependencyContainer) HealthChecker() ports.SystemHealthChecker {
	return c.healthChecker
}

// Cleanup closes the redis client and the upstream log file, if any
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil
	return firstErr
}
