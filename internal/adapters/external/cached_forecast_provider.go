package external

import (
	"context"
	"time"

	"weathernow.app/internal/ports"
	"weathernow.app/pkg/errors"
)

// CachedForecastProvider serves repeated forecast requests from a cache.
// Geocoding is never cached. Cache failures degrade to an upstream call.
type CachedForecastProvider struct {
	provider ports.ForecastProvider
	cache    ports.ForecastCache
	ttl      time.Duration
	logger   ports.Logger
}

func NewCachedForecastProvider(provider ports.ForecastProvider, cache ports.ForecastCache, ttl time.Duration, logger ports.Logger) *CachedForecastProvider {
	return &CachedForecastProvider{
		provider: provider,
		cache:    cache,
		ttl:      ttl,
		logger:   logger,
	}
}

func (p *CachedForecastProvider) FetchForecast(ctx context.Context, params ports.ForecastParams) (*ports.ForecastPayload, error) {
	key := params.CacheKey()

	cached, err := p.cache.Get(ctx, key)
	if err == nil {
		p.logger.Debug("Forecast cache hit", ports.F("key", key))
		return cached, nil
	}
	if !errors.IsNotFoundError(err) {
		p.logger.Warn("Forecast cache read failed",
			ports.F("key", key),
			ports.F("error", err))
	}

	payload, err := p.provider.FetchForecast(ctx, params)
	if err != nil {
		return nil, err
	}

	if err := p.cache.Set(ctx, key, payload, p.ttl); err != nil {
		p.logger.Warn("Failed to cache forecast",
			ports.F("key", key),
			ports.F("error", err))
	}

	return payload, nil
}

func (p *CachedForecastProvider) GetProviderName() string {
	return "cached(" + p.provider.GetProviderName() + ")"
}
