package ports

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// GeocodeParams represents a single place-name search
type GeocodeParams struct {
	Name     string
	Count    int
	Language string
}

// GeocodeResult is one candidate as reported by the geocoding service
type GeocodeResult struct {
	ID        PlaceID `json:"id,omitempty"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country,omitempty"`
	Admin1    string  `json:"admin1,omitempty"`
	Timezone  string  `json:"timezone,omitempty"`
}

// PlaceID is the id of a geocoding result. The service sends integers;
// string ids are kept as sent.
type PlaceID string

func (p *PlaceID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*p = ""
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*p = PlaceID(text)
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("place id must be a number or string: %w", err)
	}
	*p = PlaceID(number.String())
	return nil
}

// GeocodePayload is the geocoding response body. Results is absent when
// nothing matched.
type GeocodePayload struct {
	Results []GeocodeResult `json:"results,omitempty"`
}

// ForecastParams represents one forecast request
type ForecastParams struct {
	Latitude          float64
	Longitude         float64
	Current           []string
	Hourly            []string
	Daily             []string
	Timezone          string
	ForecastDays      int
	TemperatureUnit   string
	WindSpeedUnit     string
	PrecipitationUnit string
}

// CacheKey identifies the request for payload caching. Coordinates are
// rounded to 4 decimals (~11m).
func (p ForecastParams) CacheKey() string {
	return fmt.Sprintf("forecast:%.4f:%.4f:%s:%s:%s:%d:%s",
		p.Latitude, p.Longitude,
		p.TemperatureUnit, p.WindSpeedUnit, p.PrecipitationUnit,
		p.ForecastDays, strings.Join(p.Hourly, ","))
}

// ForecastCurrent is the "current" block of the forecast response
type ForecastCurrent struct {
	Time                string   `json:"time"`
	Temperature2m       float64  `json:"temperature_2m"`
	ApparentTemperature float64  `json:"apparent_temperature"`
	IsDay               float64  `json:"is_day"`
	RelativeHumidity2m  float64  `json:"relative_humidity_2m"`
	WindSpeed10m        float64  `json:"wind_speed_10m"`
	Precipitation       *float64 `json:"precipitation,omitempty"`
	WeatherCode         *int     `json:"weather_code,omitempty"`
}

// ForecastHourly holds the parallel hourly arrays indexed like Time
type ForecastHourly struct {
	Time                     []string   `json:"time"`
	Temperature2m            []float64  `json:"temperature_2m"`
	ApparentTemperature      []float64  `json:"apparent_temperature"`
	PrecipitationProbability []*float64 `json:"precipitation_probability,omitempty"`
	WeatherCode              []*int     `json:"weather_code"`
}

// ForecastDaily holds the parallel daily arrays indexed like Time
type ForecastDaily struct {
	Time             []string  `json:"time"`
	WeatherCode      []*int    `json:"weather_code"`
	Temperature2mMax []float64 `json:"temperature_2m_max"`
	Temperature2mMin []float64 `json:"temperature_2m_min"`
}

// ForecastPayload is the raw forecast response body
type ForecastPayload struct {
	Latitude  float64          `json:"latitude"`
	Longitude float64          `json:"longitude"`
	Timezone  string           `json:"timezone,omitempty"`
	Current   *ForecastCurrent `json:"current,omitempty"`
	Hourly    *ForecastHourly  `json:"hourly,omitempty"`
	Daily     *ForecastDaily   `json:"daily,omitempty"`
}

// GeocodingProvider defines the contract for place-name lookups
type GeocodingProvider interface {
	SearchLocations(ctx context.Context, params GeocodeParams) (*GeocodePayload, error)
	GetProviderName() string
}

// ForecastProvider defines the contract for forecast data retrieval
type ForecastProvider interface {
	FetchForecast(ctx context.Context, params ForecastParams) (*ForecastPayload, error)
	GetProviderName() string
}

// UpstreamStats summarizes calls made to one upstream service
type UpstreamStats struct {
	Requests   int64  `json:"requests"`
	Failures   int64  `json:"failures"`
	LastStatus string `json:"last_status"`
}

// UpstreamMetrics defines the contract for upstream call tracking
type UpstreamMetrics interface {
	RecordRequest(upstream string, success bool, durationSeconds float64)
	GetUpstreamStats() map[string]UpstreamStats
}
