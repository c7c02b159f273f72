package ports

import "time"

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int
}

// UpstreamConfig represents the Open-Meteo client configuration
type UpstreamConfig struct {
	GeocodingBaseURL string
	ForecastBaseURL  string
	Timeout          time.Duration
	RateLimitRPS     float64
	RateLimitBurst   int
	EnableLogging    bool
	LogFilePath      string
}

// CacheConfig represents cache configuration
type CacheConfig struct {
	Type           string
	ForecastTTL    time.Duration
	EnableForecast bool
	Redis          RedisConfig
}

// RedisConfig represents Redis configuration
type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	DialTimeout  int
	ReadTimeout  int
	WriteTimeout int
}

// DashboardConfig represents the initial dashboard state
type DashboardConfig struct {
	DefaultUnits    string
	DefaultLocation LocationConfig
}

// LocationConfig describes a preset location
type LocationConfig struct {
	ID        string
	Name      string
	Admin1    string
	Country   string
	Latitude  float64
	Longitude float64
	Timezone  string
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetServerConfig() ServerConfig
	GetUpstreamConfig() UpstreamConfig
	GetCacheConfig() CacheConfig
	GetDashboardConfig() DashboardConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}
