package external

import (
	"context"
	"sync"

	"weathernow.app/internal/ports"
)

type logEntry struct {
	level   string
	message string
	fields  map[string]interface{}
}

// testLogger captures log entries for assertions
type testLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *testLogger) Debug(msg string, fields ...ports.Field) { l.addEntry("DEBUG", msg, fields...) }
func (l *testLogger) Info(msg string, fields ...ports.Field) { l.addEntry("INFO", msg, fields...) }
func (l *testLogger) Warn(msg string, fields ...ports.Field) { l.addEntry("WARN", msg, fields...) }
func (l *testLogger) Error(msg string, fields ...ports.Field) { l.addEntry("ERROR", msg, fields...) }

func (l *testLogger) addEntry(level, message string, fields ...ports.Field) {
	fieldMap := make(map[string]interface{})
	for _, field := range fields {
		fieldMap[field.Key] = field.Value
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{
		level:   level,
		message: message,
		fields:  fieldMap,
	})
}

func (l *testLogger) byLevel(level string) []logEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []logEntry
	for _, e := range l.entries {
		if e.level == level {
			out = append(out, e)
		}
	}
	return out
}

// stubForecastProvider counts calls and returns a fixed result
type stubForecastProvider struct {
	name    string
	payload *ports.ForecastPayload
	err     error

	mu    sync.Mutex
	calls int
}

func (p *stubForecastProvider) FetchForecast(ctx context.Context, params ports.ForecastParams) (*ports.ForecastPayload, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
	return p.payload, p.err
}

func (p *stubForecastProvider) GetProviderName() string { return p.name }

func (p *stubForecastProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

type stubGeocodingProvider struct {
	name    string
	payload *ports.GeocodePayload
	err     error
}

func (p *stubGeocodingProvider) SearchLocations(ctx context.Context, params ports.GeocodeParams) (*ports.GeocodePayload, error) {
	return p.payload, p.err
}

func (p *stubGeocodingProvider) GetProviderName() string { return p.name }

func intPtr(v int) *int { return &v }
func floatPtr(v float64) *float64 { return &v }

func berlinParams() ports.ForecastParams {
	return ports.ForecastParams{
		Latitude:          52.52,
		Longitude:         13.405,
		Current:           []string{"temperature_2m", "weather_code"},
		Hourly:            []string{"temperature_2m", "apparent_temperature", "precipitation_probability", "weather_code"},
		Daily:             []string{"weather_code", "temperature_2m_max", "temperature_2m_min"},
		Timezone:          "auto",
		ForecastDays:      7,
		TemperatureUnit:   "celsius",
		WindSpeedUnit:     "kmh",
		PrecipitationUnit: "mm",
	}
}

func berlinPayload() *ports.ForecastPayload {
	return &ports.ForecastPayload{
		Latitude:  52.52,
		Longitude: 13.405,
		Timezone:  "Europe/Berlin",
		Current: &ports.ForecastCurrent{
			Time:          "2025-03-14T09:00",
			Temperature2m: 6.5,
			Precipitation: floatPtr(0.2),
			WeatherCode:   intPtr(3),
		},
		Hourly: &ports.ForecastHourly{
			Time:                     []string{"2025-03-14T00:00", "2025-03-14T01:00"},
			Temperature2m:            []float64{4.1, 3.8},
			ApparentTemperature:      []float64{1.2, 0.9},
			PrecipitationProbability: []*float64{floatPtr(10), nil},
			WeatherCode:              []*int{intPtr(3), nil},
		},
		Daily: &ports.ForecastDaily{
			Time:             []string{"2025-03-14"},
			WeatherCode:      []*int{intPtr(61)},
			Temperature2mMax: []float64{9.4},
			Temperature2mMin: []float64{2.3},
		},
	}
}
