package external

import (
	"context"
	"encoding/json"
	"time"

	"weathernow.app/internal/ports"
	"weathernow.app/pkg/errors"
)

// ForecastCacheAdapter bridges the generic CacheProvider to ForecastCache.
// Payloads are stored as JSON so both backends share one encoding.
type ForecastCacheAdapter struct {
	cacheProvider ports.CacheProvider
}

func NewForecastCacheAdapter(cacheProvider ports.CacheProvider) *ForecastCacheAdapter {
	return &ForecastCacheAdapter{
		cacheProvider: cacheProvider,
	}
}

// Get retrieves a forecast payload from cache
func (a *ForecastCacheAdapter) Get(ctx context.Context, key string) (*ports.ForecastPayload, error) {
	data, err := a.cacheProvider.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var payload ports.ForecastPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, errors.NewExternalAPIError("failed to deserialize forecast payload", err)
	}

	return &payload, nil
}

// Set stores a forecast payload in cache
func (a *ForecastCacheAdapter) Set(ctx context.Context, key string, payload *ports.ForecastPayload, ttl time.Duration) error {
	if payload == nil {
		return errors.NewValidationError("forecast payload cannot be nil")
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return errors.NewExternalAPIError("failed to serialize forecast payload", err)
	}

	return a.cacheProvider.Set(ctx, key, data, ttl)
}
