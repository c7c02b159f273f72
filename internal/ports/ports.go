package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Open-Meteo
	GeocodingProvider GeocodingProvider
	ForecastProvider  ForecastProvider
	UpstreamMetrics   UpstreamMetrics

	// Cache
	CacheProvider CacheProvider
	CacheMetrics  CacheMetrics

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
}
