package weather

import (
	"context"
	"fmt"
	"slices"
	"time"

	"weathernow.app/internal/ports"
	"weathernow.app/pkg/errors"
	"weathernow.app/pkg/validation"
)

const (
	// GeocodeResultLimit is the page size of every geocoding request
	GeocodeResultLimit = 5
	geocodeLanguage    = "en"
	forecastTimezone   = "auto"
)

var (
	currentFields = []string{
		"temperature_2m", "apparent_temperature", "is_day",
		"relative_humidity_2m", "wind_speed_10m", "precipitation", "weather_code",
	}
	hourlyFields = []string{
		"temperature_2m", "apparent_temperature", "precipitation_probability", "weather_code",
	}
	dailyFields = []string{
		"weather_code", "temperature_2m_max", "temperature_2m_min",
	}
)

type UseCase struct {
	geocoder   ports.GeocodingProvider
	forecaster ports.ForecastProvider
	normalizer *Normalizer
	logger     ports.Logger
}

type UseCaseDependencies struct {
	Geocoder   ports.GeocodingProvider
	Forecaster ports.ForecastProvider
	Formatter  LabelFormatter
	Logger     ports.Logger
	Clock      func() time.Time
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Geocoder == nil {
		return nil, errors.NewValidationError("geocoding provider is required")
	}
	if deps.Forecaster == nil {
		return nil, errors.NewValidationError("forecast provider is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		geocoder:   deps.Geocoder,
		forecaster: deps.Forecaster,
		normalizer: NewNormalizer(deps.Formatter, deps.Clock),
		logger:     deps.Logger,
	}, nil
}

// Geocode resolves a place name to at most five candidates in provider
// order. No match is an empty list, not an error.
func (uc *UseCase) Geocode(ctx context.Context, query string) ([]LocationMatch, error) {
	name, ok := validation.TrimAndValidate(query)
	if !ok {
		return nil, errors.NewValidationError("search query cannot be empty")
	}

	uc.logger.Debug("Geocoding location", ports.F("query", name))

	payload, err := uc.geocoder.SearchLocations(ctx, GeocodeRequest(name))
	if err != nil {
		uc.logger.Error("Geocoding failed",
			ports.F("query", name),
			ports.F("error", err))
		return nil, fmt.Errorf("geocode %q: %w", name, err)
	}

	matches := toLocationMatches(payload)
	uc.logger.Debug("Geocoding completed",
		ports.F("query", name),
		ports.F("matches", len(matches)))
	return matches, nil
}

// FetchForecast requests a 7-day forecast for the location in the given
// measurement system and normalizes it
func (uc *UseCase) FetchForecast(ctx context.Context, location LocationMatch, system MeasurementSystem) (*WeatherData, error) {
	if !system.IsValid() {
		return nil, errors.NewValidationError("units must be one of: metric, imperial")
	}
	if err := location.Validate(); err != nil {
		return nil, err
	}

	uc.logger.Debug("Fetching forecast",
		ports.F("location", location.Name),
		ports.F("units", system.String()))

	payload, err := uc.forecaster.FetchForecast(ctx, ForecastRequest(location, system))
	if err != nil {
		uc.logger.Error("Forecast fetch failed",
			ports.F("location", location.Name),
			ports.F("error", err))
		return nil, fmt.Errorf("fetch forecast for %s: %w", location.Name, err)
	}

	data := uc.normalizer.Normalize(location, system, payload)
	uc.logger.Debug("Forecast normalized",
		ports.F("location", location.Name),
		ports.F("days", len(data.Daily)),
		ports.F("hourly_days", len(data.DayOrder)))
	return data, nil
}

// GeocodeRequest builds the fixed-size, English-language search request
func GeocodeRequest(name string) ports.GeocodeParams {
	return ports.GeocodeParams{
		Name:     name,
		Count:    GeocodeResultLimit,
		Language: geocodeLanguage,
	}
}

// ForecastRequest builds the single forecast request for a location
func ForecastRequest(location LocationMatch, system MeasurementSystem) ports.ForecastParams {
	units := system.upstreamUnits()
	return ports.ForecastParams{
		Latitude:          location.Latitude,
		Longitude:         location.Longitude,
		Current:           slices.Clone(currentFields),
		Hourly:            slices.Clone(hourlyFields),
		Daily:             slices.Clone(dailyFields),
		Timezone:          forecastTimezone,
		ForecastDays:      MaxForecastDays,
		TemperatureUnit:   units.Temperature,
		WindSpeedUnit:     units.Wind,
		PrecipitationUnit: units.Precipitation,
	}
}

func toLocationMatches(payload *ports.GeocodePayload) []LocationMatch {
	if payload == nil || len(payload.Results) == 0 {
		return []LocationMatch{}
	}

	count := min(len(payload.Results), GeocodeResultLimit)
	matches := make([]LocationMatch, 0, count)
	for _, r := range payload.Results[:count] {
		id := string(r.ID)
		if id == "" {
			id = CoordinateID(r.Latitude, r.Longitude)
		}
		matches = append(matches, LocationMatch{
			ID:        id,
			Name:      r.Name,
			Country:   r.Country,
			Admin1:    r.Admin1,
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
			Timezone:  r.Timezone,
		})
	}
	return matches
}
