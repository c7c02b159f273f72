package infrastructure

import (
	"time"

	"weathernow.app/internal/config"
	"weathernow.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port: c.config.Server.Port,
	}
}

// GetUpstreamConfig converts the timeout from seconds; zero stays zero
func (c *ConfigProviderAdapter) GetUpstreamConfig() ports.UpstreamConfig {
	u := c.config.Upstream
	return ports.UpstreamConfig{
		GeocodingBaseURL: u.GeocodingBaseURL,
		ForecastBaseURL:  u.ForecastBaseURL,
		Timeout:          time.Duration(u.TimeoutSeconds) * time.Second,
		RateLimitRPS:     u.RateLimitRPS,
		RateLimitBurst:   u.RateLimitBurst,
		EnableLogging:    u.EnableLogging,
		LogFilePath:      u.LogFilePath,
	}
}

func (c *ConfigProviderAdapter) GetCacheConfig() ports.CacheConfig {
	return ports.CacheConfig{
		Type:           c.config.Cache.Type.String(),
		ForecastTTL:    time.Duration(c.config.Cache.ForecastTTLMinutes) * time.Minute,
		EnableForecast: c.config.Cache.ForecastEnabled,
		Redis: ports.RedisConfig{
			Addr:         c.config.Cache.Redis.Addr,
			Password:     c.config.Cache.Redis.Password,
			DB:           c.config.Cache.Redis.DB,
			DialTimeout:  c.config.Cache.Redis.DialTimeout,
			ReadTimeout:  c.config.Cache.Redis.ReadTimeout,
			WriteTimeout: c.config.Cache.Redis.WriteTimeout,
		},
	}
}

func (c *ConfigProviderAdapter) GetDashboardConfig() ports.DashboardConfig {
	loc := c.config.Dashboard.DefaultLocation
	return ports.DashboardConfig{
		DefaultUnits: c.config.Dashboard.DefaultUnits,
		DefaultLocation: ports.LocationConfig{
			ID:        loc.ID,
			Name:      loc.Name,
			Admin1:    loc.Admin1,
			Country:   loc.Country,
			Latitude:  loc.Latitude,
			Longitude: loc.Longitude,
			Timezone:  loc.Timezone,
		},
	}
}
