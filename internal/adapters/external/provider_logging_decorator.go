package external

import (
	"context"
	"time"

	"weathernow.app/internal/ports"
)

// GeocodingLoggingDecorator decorates a geocoding provider with structured logging
type GeocodingLoggingDecorator struct {
	provider ports.GeocodingProvider
	logger   ports.Logger
}

// NewGeocodingLoggingDecorator creates a new logging decorator for a geocoding provider
func NewGeocodingLoggingDecorator(provider ports.GeocodingProvider, logger ports.Logger) *GeocodingLoggingDecorator {
	return &GeocodingLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

// SearchLocations wraps the provider call with structured logging
func (d *GeocodingLoggingDecorator) SearchLocations(ctx context.Context, params ports.GeocodeParams) (*ports.GeocodePayload, error) {
	providerName := d.provider.GetProviderName()

	d.logger.Info("Geocoding request started",
		ports.F("provider", providerName),
		ports.F("query", params.Name),
		ports.F("event", "request"))

	startTime := time.Now()
	payload, err := d.provider.SearchLocations(ctx, params)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Geocoding request failed",
			ports.F("provider", providerName),
			ports.F("query", params.Name),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Geocoding request completed",
		ports.F("provider", providerName),
		ports.F("query", params.Name),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("results", len(payload.Results)))

	return payload, nil
}

// GetProviderName returns the name of the wrapped provider with logging indication
func (d *GeocodingLoggingDecorator) GetProviderName() string {
	return "logged(" + d.provider.GetProviderName() + ")"
}

// ForecastLoggingDecorator decorates a forecast provider with structured logging
type ForecastLoggingDecorator struct {
	provider ports.ForecastProvider
	logger   ports.Logger
}

// NewForecastLoggingDecorator creates a new logging decorator for a forecast provider
func NewForecastLoggingDecorator(provider ports.ForecastProvider, logger ports.Logger) *ForecastLoggingDecorator {
	return &ForecastLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

// FetchForecast wraps the provider call with structured logging
func (d *ForecastLoggingDecorator) FetchForecast(ctx context.Context, params ports.ForecastParams) (*ports.ForecastPayload, error) {
	providerName := d.provider.GetProviderName()
	coordinates := coordinatesField(params)

	d.logger.Info("Forecast request started",
		ports.F("provider", providerName),
		coordinates,
		ports.F("temperature_unit", params.TemperatureUnit),
		ports.F("event", "request"))

	startTime := time.Now()
	payload, err := d.provider.FetchForecast(ctx, params)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Forecast request failed",
			ports.F("provider", providerName),
			coordinates,
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	hours := 0
	if payload.Hourly != nil {
		hours = len(payload.Hourly.Time)
	}
	d.logger.Info("Forecast request completed",
		ports.F("provider", providerName),
		coordinates,
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("timezone", payload.Timezone),
		ports.F("hourly_points", hours))

	return payload, nil
}

// GetProviderName returns the name of the wrapped provider with logging indication
func (d *ForecastLoggingDecorator) GetProviderName() string {
	return "logged(" + d.provider.GetProviderName() + ")"
}

func coordinatesField(params ports.ForecastParams) ports.Field {
	return ports.F("coordinates", [2]float64{params.Latitude, params.Longitude})
}
