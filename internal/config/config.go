package config

import (
	"strings"

	"github.com/kelseyhightower/envconfig"
	"weathernow.app/pkg/errors"
	"weathernow.app/pkg/validation"
)

const (
	maxRedisDB         = 15
	maxCacheTTLMinutes = 1440
	maxPortNumber      = 65535
	maxTimeoutSeconds  = 300
)

// Config represents the application configuration structure
type Config struct {
	Server    ServerConfig    `split_words:"true"`
	Upstream  UpstreamConfig  `split_words:"true"`
	Cache     CacheConfig     `split_words:"true"`
	Dashboard DashboardConfig `split_words:"true"`
	LogLevel  string          `envconfig:"LOG_LEVEL" default:"info"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

// UpstreamConfig configures the Open-Meteo clients. A zero timeout leaves
// the transport default in place; a zero rate disables throttling.
type UpstreamConfig struct {
	GeocodingBaseURL string  `envconfig:"GEOCODING_API_BASE_URL" default:"https://geocoding-api.open-meteo.com/v1"`
	ForecastBaseURL  string  `envconfig:"FORECAST_API_BASE_URL" default:"https://api.open-meteo.com/v1"`
	TimeoutSeconds   int     `envconfig:"UPSTREAM_TIMEOUT_SECONDS" default:"0"`
	RateLimitRPS     float64 `envconfig:"UPSTREAM_RATE_LIMIT_RPS" default:"10"`
	RateLimitBurst   int     `envconfig:"UPSTREAM_RATE_LIMIT_BURST" default:"10"`
	EnableLogging    bool    `envconfig:"UPSTREAM_ENABLE_LOGGING" default:"true"`
	LogFilePath      string  `envconfig:"UPSTREAM_LOG_FILE_PATH" default:""`
}

// CacheType represents the type of cache to use
type CacheType int

const (
	CacheTypeUnknown CacheType = iota
	CacheTypeMemory
	CacheTypeRedis
)

// String returns the string representation of cache type
func (c CacheType) String() string {
	switch c {
	case CacheTypeMemory:
		return "memory"
	case CacheTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the cache type is valid
func (c CacheType) IsValid() bool {
	return c == CacheTypeMemory || c == CacheTypeRedis
}

// CacheTypeFromString converts string to CacheType enum
func CacheTypeFromString(s string) CacheType {
	switch s {
	case "memory":
		return CacheTypeMemory
	case "redis":
		return CacheTypeRedis
	default:
		return CacheTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CacheType) UnmarshalText(text []byte) error {
	*c = CacheTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CacheType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// CacheConfig configures the optional forecast payload cache. Geocoding
// results are never cached.
type CacheConfig struct {
	ForecastEnabled    bool        `envconfig:"FORECAST_CACHE_ENABLED" default:"false"`
	ForecastTTLMinutes int         `envconfig:"FORECAST_CACHE_TTL_MINUTES" default:"10"`
	Type               CacheType   `envconfig:"CACHE_TYPE" default:"memory"`
	Redis              RedisConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

// DashboardConfig holds the state the dashboard starts from
type DashboardConfig struct {
	DefaultUnits    string         `envconfig:"DASHBOARD_DEFAULT_UNITS" default:"metric"`
	DefaultLocation LocationConfig `split_words:"true"`
}

type LocationConfig struct {
	ID        string  `envconfig:"DASHBOARD_DEFAULT_LOCATION_ID" default:"5391959"`
	Name      string  `envconfig:"DASHBOARD_DEFAULT_LOCATION_NAME" default:"San Francisco"`
	Admin1    string  `envconfig:"DASHBOARD_DEFAULT_LOCATION_ADMIN1" default:"California"`
	Country   string  `envconfig:"DASHBOARD_DEFAULT_LOCATION_COUNTRY" default:"United States"`
	Latitude  float64 `envconfig:"DASHBOARD_DEFAULT_LOCATION_LATITUDE" default:"37.7749"`
	Longitude float64 `envconfig:"DASHBOARD_DEFAULT_LOCATION_LONGITUDE" default:"-122.4194"`
	Timezone  string  `envconfig:"DASHBOARD_DEFAULT_LOCATION_TIMEZONE" default:"America/Los_Angeles"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Upstream.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if err := c.Dashboard.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (u *UpstreamConfig) Validate() error {
	if err := validateBaseURL("GEOCODING_API_BASE_URL", u.GeocodingBaseURL); err != nil {
		return err
	}
	if err := validateBaseURL("FORECAST_API_BASE_URL", u.ForecastBaseURL); err != nil {
		return err
	}
	if u.TimeoutSeconds < 0 || u.TimeoutSeconds > maxTimeoutSeconds {
		return errors.NewConfigurationError("UPSTREAM_TIMEOUT_SECONDS must be between 0 and 300", nil)
	}
	if u.RateLimitRPS < 0 {
		return errors.NewConfigurationError("UPSTREAM_RATE_LIMIT_RPS cannot be negative", nil)
	}
	if u.RateLimitRPS > 0 && u.RateLimitBurst < 1 {
		return errors.NewConfigurationError("UPSTREAM_RATE_LIMIT_BURST must be at least 1 when rate limiting is enabled", nil)
	}
	return nil
}

func validateBaseURL(name, value string) error {
	if value == "" {
		return errors.NewConfigurationError(name+" cannot be empty", nil)
	}
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return errors.NewConfigurationError(name+" must start with http:// or https://", nil)
	}
	return nil
}

func (c *CacheConfig) Validate() error {
	if !c.Type.IsValid() {
		return errors.NewConfigurationError("CACHE_TYPE must be one of: memory, redis", nil)
	}
	if c.ForecastTTLMinutes < 1 || c.ForecastTTLMinutes > maxCacheTTLMinutes {
		return errors.NewConfigurationError("FORECAST_CACHE_TTL_MINUTES must be between 1 and 1440 minutes", nil)
	}

	if c.ForecastEnabled && c.Type == CacheTypeRedis {
		return c.Redis.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis cache", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (d *DashboardConfig) Validate() error {
	if !validation.IsValidMeasurementSystem(d.DefaultUnits) {
		return errors.NewConfigurationError("DASHBOARD_DEFAULT_UNITS must be one of: metric, imperial", nil)
	}
	return d.DefaultLocation.Validate()
}

func (l *LocationConfig) Validate() error {
	if !validation.IsNotEmpty(l.Name) {
		return errors.NewConfigurationError("DASHBOARD_DEFAULT_LOCATION_NAME cannot be empty", nil)
	}
	if !validation.IsValidLatitude(l.Latitude) {
		return errors.NewConfigurationError("DASHBOARD_DEFAULT_LOCATION_LATITUDE must be between -90 and 90", nil)
	}
	if !validation.IsValidLongitude(l.Longitude) {
		return errors.NewConfigurationError("DASHBOARD_DEFAULT_LOCATION_LONGITUDE must be between -180 and 180", nil)
	}
	return nil
}
