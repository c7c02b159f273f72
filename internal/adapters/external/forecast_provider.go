package external

import (
	"context"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"weathernow.app/internal/ports"
)

// ForecastUnavailableReason is the failure reason reported for any unsuccessful forecast call
const ForecastUnavailableReason = "Unable to fetch weather data"

// OpenMeteoForecastAdapter implements ForecastProvider against the Open-Meteo forecast API
type OpenMeteoForecastAdapter struct {
	client *resty.Client
}

// NewOpenMeteoForecastAdapter creates a new forecast adapter
func NewOpenMeteoForecastAdapter(params OpenMeteoClientParams) *OpenMeteoForecastAdapter {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultForecastBaseURL
	}

	return &OpenMeteoForecastAdapter{
		client: newOpenMeteoClient(baseURL, params.Timeout),
	}
}

// FetchForecast issues the single forecast request described by params
func (a *OpenMeteoForecastAdapter) FetchForecast(ctx context.Context, params ports.ForecastParams) (*ports.ForecastPayload, error) {
	req := a.client.R().
		SetContext(ctx).
		SetQueryParams(forecastQuery(params))

	var payload ports.ForecastPayload
	if err := execute(req, forecastEndpoint, ForecastUnavailableReason, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// GetProviderName returns the name of this provider
func (a *OpenMeteoForecastAdapter) GetProviderName() string {
	return forecastProviderName
}

func forecastQuery(params ports.ForecastParams) map[string]string {
	query := map[string]string{
		"latitude":           strconv.FormatFloat(params.Latitude, 'f', -1, 64),
		"longitude":          strconv.FormatFloat(params.Longitude, 'f', -1, 64),
		"timezone":           params.Timezone,
		"forecast_days":      strconv.Itoa(params.ForecastDays),
		"temperature_unit":   params.TemperatureUnit,
		"wind_speed_unit":    params.WindSpeedUnit,
		"precipitation_unit": params.PrecipitationUnit,
	}
	if len(params.Current) > 0 {
		query["current"] = strings.Join(params.Current, ",")
	}
	if len(params.Hourly) > 0 {
		query["hourly"] = strings.Join(params.Hourly, ",")
	}
	if len(params.Daily) > 0 {
		query["daily"] = strings.Join(params.Daily, ",")
	}
	return query
}
