package external

import (
	"context"
	"sync"
	"time"

	"weathernow.app/internal/ports"
	"weathernow.app/pkg/errors"
)

// MemoryCacheProvider implements CacheProvider with a process-local map.
// Expired entries are dropped lazily on read.
type MemoryCacheProvider struct {
	data    map[string]memoryCacheItem
	mutex   sync.RWMutex
	metrics ports.CacheMetrics
	now     func() time.Time
}

type memoryCacheItem struct {
	data      []byte
	expiresAt time.Time
}

func NewMemoryCacheProvider(metrics ports.CacheMetrics) *MemoryCacheProvider {
	return &MemoryCacheProvider{
		data:    make(map[string]memoryCacheItem),
		metrics: metrics,
		now:     time.Now,
	}
}

func (c *MemoryCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("cache key cannot be empty")
	}

	start := time.Now()
	defer c.recordOperation("get", start)

	c.mutex.RLock()
	item, exists := c.data[key]
	c.mutex.RUnlock()

	if !exists || c.now().After(item.expiresAt) {
		if exists {
			c.mutex.Lock()
			delete(c.data, key)
			c.mutex.Unlock()
		}
		c.recordMiss()
		return nil, errors.NewNotFoundError("cache miss")
	}

	c.recordHit()
	return item.data, nil
}

func (c *MemoryCacheProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("cache TTL must be positive")
	}

	start := time.Now()
	defer c.recordOperation("set", start)

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[key] = memoryCacheItem{
		data:      value,
		expiresAt: c.now().Add(ttl),
	}

	return nil
}

func (c *MemoryCacheProvider) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, key)
	return nil
}

func (c *MemoryCacheProvider) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.NewValidationError("cache key cannot be empty")
	}

	c.mutex.RLock()
	item, exists := c.data[key]
	c.mutex.RUnlock()

	if !exists {
		return false, nil
	}

	return !c.now().After(item.expiresAt), nil
}

func (c *MemoryCacheProvider) Clear(ctx context.Context) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data = make(map[string]memoryCacheItem)
	return nil
}

// Check reports the in-memory cache as always reachable
func (c *MemoryCacheProvider) Check(ctx context.Context) ports.HealthStatus {
	c.mutex.RLock()
	entries := len(c.data)
	c.mutex.RUnlock()

	return ports.HealthStatus{
		Component: "cache",
		Status:    "healthy",
		Details: map[string]interface{}{
			"type":    "memory",
			"entries": entries,
		},
	}
}

func (c *MemoryCacheProvider) recordHit() {
	if c.metrics != nil {
		c.metrics.RecordHit()
	}
}

func (c *MemoryCacheProvider) recordMiss() {
	if c.metrics != nil {
		c.metrics.RecordMiss()
	}
}

func (c *MemoryCacheProvider) recordOperation(operation string, start time.Time) {
	if c.metrics != nil {
		c.metrics.RecordOperation(operation, time.Since(start))
	}
}
