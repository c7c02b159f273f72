package external

import (
	"context"
	"time"

	"weathernow.app/internal/ports"
)

// InstrumentedGeocodingProvider records every upstream geocoding call on UpstreamMetrics
type InstrumentedGeocodingProvider struct {
	provider ports.GeocodingProvider
	metrics  ports.UpstreamMetrics
}

func NewInstrumentedGeocodingProvider(provider ports.GeocodingProvider, metrics ports.UpstreamMetrics) *InstrumentedGeocodingProvider {
	return &InstrumentedGeocodingProvider{provider: provider, metrics: metrics}
}

func (p *InstrumentedGeocodingProvider) SearchLocations(ctx context.Context, params ports.GeocodeParams) (*ports.GeocodePayload, error) {
	start := time.Now()
	payload, err := p.provider.SearchLocations(ctx, params)
	p.metrics.RecordRequest(geocodingProviderName, err == nil, time.Since(start).Seconds())
	return payload, err
}

func (p *InstrumentedGeocodingProvider) GetProviderName() string {
	return p.provider.GetProviderName()
}

// InstrumentedForecastProvider records every upstream forecast call on UpstreamMetrics
type InstrumentedForecastProvider struct {
	provider ports.ForecastProvider
	metrics  ports.UpstreamMetrics
}

func NewInstrumentedForecastProvider(provider ports.ForecastProvider, metrics ports.UpstreamMetrics) *InstrumentedForecastProvider {
	return &InstrumentedForecastProvider{provider: provider, metrics: metrics}
}

func (p *InstrumentedForecastProvider) FetchForecast(ctx context.Context, params ports.ForecastParams) (*ports.ForecastPayload, error) {
	start := time.Now()
	payload, err := p.provider.FetchForecast(ctx, params)
	p.metrics.RecordRequest(forecastProviderName, err == nil, time.Since(start).Seconds())
	return payload, err
}

func (p *InstrumentedForecastProvider) GetProviderName() string {
	return p.provider.GetProviderName()
}
