package weather

import (
	"strconv"
	"strings"
	"time"

	"weathernow.app/pkg/errors"
	"weathernow.app/pkg/validation"
)

// MeasurementSystem selects both the display unit labels and the unit codes
// sent upstream
type MeasurementSystem string

const (
	Metric   MeasurementSystem = "metric"
	Imperial MeasurementSystem = "imperial"
)

// ParseMeasurementSystem converts a string to a MeasurementSystem
func ParseMeasurementSystem(s string) (MeasurementSystem, error) {
	if !validation.IsValidMeasurementSystem(s) {
		return "", errors.NewValidationError("units must be one of: metric, imperial")
	}
	return MeasurementSystem(s), nil
}

// IsValid checks if the measurement system is one of the two presets
func (m MeasurementSystem) IsValid() bool {
	return validation.IsValidMeasurementSystem(string(m))
}

// String returns the string representation of the measurement system
func (m MeasurementSystem) String() string {
	return string(m)
}

// UnitLabels holds the display labels of a measurement system
type UnitLabels struct {
	Temperature   string `json:"temperature"`
	Wind          string `json:"wind"`
	Precipitation string `json:"precipitation"`
}

// apiUnits holds the upstream unit codes of a measurement system
type apiUnits struct {
	Temperature   string
	Wind          string
	Precipitation string
}

type unitPreset struct {
	labels UnitLabels
	api    apiUnits
}

var unitPresets = map[MeasurementSystem]unitPreset{
	Metric: {
		labels: UnitLabels{Temperature: "°C", Wind: "km/h", Precipitation: "mm"},
		api:    apiUnits{Temperature: "celsius", Wind: "kmh", Precipitation: "mm"},
	},
	Imperial: {
		labels: UnitLabels{Temperature: "°F", Wind: "mph", Precipitation: "in"},
		api:    apiUnits{Temperature: "fahrenheit", Wind: "mph", Precipitation: "inch"},
	},
}

// Labels returns the display labels, falling back to metric for unknown systems
func (m MeasurementSystem) Labels() UnitLabels {
	return m.preset().labels
}

func (m MeasurementSystem) upstreamUnits() apiUnits {
	return m.preset().api
}

func (m MeasurementSystem) preset() unitPreset {
	if p, ok := unitPresets[m]; ok {
		return p
	}
	return unitPresets[Metric]
}

// LocationMatch is one geocoding candidate
type LocationMatch struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Country   string  `json:"country,omitempty"`
	Admin1    string  `json:"admin1,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone,omitempty"`
}

// CoordinateID builds the identity used when the provider omits an id
func CoordinateID(latitude, longitude float64) string {
	return strconv.FormatFloat(latitude, 'f', -1, 64) + "," + strconv.FormatFloat(longitude, 'f', -1, 64)
}

// Validate checks the location can be used for a forecast request
func (l LocationMatch) Validate() error {
	if !validation.IsValidLatitude(l.Latitude) {
		return errors.NewValidationError("latitude must be between -90 and 90")
	}
	if !validation.IsValidLongitude(l.Longitude) {
		return errors.NewValidationError("longitude must be between -180 and 180")
	}
	return nil
}

// DisplayName joins the non-empty name parts, e.g. "Paris, Île-de-France, France"
func (l LocationMatch) DisplayName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{l.Name, l.Admin1, l.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// WeatherMeta is the classification of a weather code
type WeatherMeta struct {
	Code  int    `json:"code"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

type CurrentConditions struct {
	WeatherMeta
	Temperature         float64 `json:"temperature"`
	ApparentTemperature float64 `json:"apparentTemperature"`
	Humidity            float64 `json:"humidity"`
	WindSpeed           float64 `json:"windSpeed"`
	Precipitation       float64 `json:"precipitation"`
	IsDay               bool    `json:"isDay"`
	ObservationTime     string  `json:"observationTime"`
}

type DailyForecastDay struct {
	WeatherMeta
	Date     string  `json:"date"`
	DayLabel string  `json:"dayLabel"`
	Max      float64 `json:"max"`
	Min      float64 `json:"min"`
}

type HourlyForecastPoint struct {
	WeatherMeta
	Time                     string  `json:"time"`
	HourLabel                string  `json:"hourLabel"`
	Temperature              float64 `json:"temperature"`
	ApparentTemperature      float64 `json:"apparentTemperature"`
	PrecipitationProbability float64 `json:"precipitationProbability"`
}

// WeatherData is built wholesale from a single forecast payload
type WeatherData struct {
	Location    LocationMatch                    `json:"location"`
	Current     CurrentConditions                `json:"current"`
	Daily       []DailyForecastDay               `json:"daily"`
	HourlyByDay map[string][]HourlyForecastPoint `json:"hourlyByDay"`
	DayOrder    []string                         `json:"dayOrder"`
	System      MeasurementSystem                `json:"system"`
	Units       UnitLabels                       `json:"units"`
	UpdatedAt   time.Time                        `json:"updatedAt"`
}

// HasDay reports whether key is one of the selectable days
func (w *WeatherData) HasDay(key string) bool {
	for _, d := range w.DayOrder {
		if d == key {
			return true
		}
	}
	return false
}

// HoursFor returns the hourly points of a day, nil when the day is unknown
func (w *WeatherData) HoursFor(key string) []HourlyForecastPoint {
	return w.HourlyByDay[key]
}
