package external

import (
	"fmt"

	"weathernow.app/internal/config"
	"weathernow.app/internal/ports"
	"weathernow.app/pkg/errors"
)

type CacheProviderFactory struct{}

func NewCacheProviderFactory() *CacheProviderFactory {
	return &CacheProviderFactory{}
}

// CreateCacheProvider builds the backend named by cfg.Type. The returned
// provider records hits, misses and latencies on metrics.
func (f *CacheProviderFactory) CreateCacheProvider(cfg *config.CacheConfig, metrics ports.CacheMetrics) (ports.CacheProvider, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("cache config cannot be nil", nil)
	}

	switch cfg.Type {
	case config.CacheTypeMemory:
		return NewMemoryCacheProvider(metrics), nil
	case config.CacheTypeRedis:
		provider, err := NewRedisCacheProviderAdapter(&cfg.Redis, metrics)
		if err != nil {
			return nil, err
		}
		return provider, nil
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported cache type: %s", cfg.Type.String()), nil)
	}
}
