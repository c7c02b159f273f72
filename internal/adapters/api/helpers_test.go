package api

import (
	"context"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weathernow.app/internal/core/dashboard"
	"weathernow.app/internal/core/weather"
	"weathernow.app/internal/mocks"
	"weathernow.app/internal/ports"
)

type testServer struct {
	server     *HTTPServerAdapter
	router     *gin.Engine
	geocoder   *mocks.GeocodingProvider
	forecaster *mocks.ForecastProvider
	health     *stubHealthChecker
	metrics    *stubMetricsCollector
}

// setupTestServer wires the real use case and session over mocked upstream ports
func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, RegisterValidators())

	logger := mocks.NewLogger(t)
	allowLogging(logger)

	geocoder := mocks.NewGeocodingProvider(t)
	forecaster := mocks.NewForecastProvider(t)

	useCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		Geocoder:   geocoder,
		Forecaster: forecaster,
		Logger:     logger,
	})
	require.NoError(t, err)

	session, err := dashboard.NewSession(dashboard.SessionDependencies{
		Weather:         useCase,
		Logger:          logger,
		DefaultLocation: sanFrancisco,
		DefaultUnits:    weather.Metric,
	})
	require.NoError(t, err)

	health := &stubHealthChecker{results: map[string]ports.HealthStatus{
		"forecast": {Component: "open-meteo-forecast", Status: "healthy"},
	}}
	metrics := &stubMetricsCollector{metrics: map[string]interface{}{"cache": map[string]interface{}{"enabled": false}}}

	server, err := NewHTTPServerAdapter(ServerOptions{
		Config:           ServerConfig{Port: 8080},
		WeatherUseCase:   useCase,
		Session:          session,
		MetricsCollector: metrics,
		HealthChecker:    health,
		Logger:           logger,
	})
	require.NoError(t, err)

	return &testServer{
		server:     server,
		router:     server.GetRouter(),
		geocoder:   geocoder,
		forecaster: forecaster,
		health:     health,
		metrics:    metrics,
	}
}

// allowLogging accepts any log call with up to six fields
func allowLogging(l *mocks.Logger) {
	for n := 0; n <= 6; n++ {
		fields := make([]interface{}, n)
		for i := range fields {
			fields[i] = mock.Anything
		}
		l.EXPECT().Debug(mock.Anything, fields...).Maybe()
		l.EXPECT().Info(mock.Anything, fields...).Maybe()
		l.EXPECT().Warn(mock.Anything, fields...).Maybe()
		l.EXPECT().Error(mock.Anything, fields...).Maybe()
	}
}

var sanFrancisco = weather.LocationMatch{
	ID:        "5391959",
	Name:      "San Francisco",
	Country:   "United States",
	Admin1:    "California",
	Latitude:  37.7749,
	Longitude: -122.4194,
	Timezone:  "America/Los_Angeles",
}

type stubHealthChecker struct {
	results map[string]ports.HealthStatus
}

func (s *stubHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	return s.results
}

type stubMetricsCollector struct {
	metrics map[string]interface{}
	err     error
}

func (s *stubMetricsCollector) GetMetrics(ctx context.Context) (map[string]interface{}, error) {
	return s.metrics, s.err
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func samplePayload() *ports.ForecastPayload {
	return &ports.ForecastPayload{
		Latitude:  48.86,
		Longitude: 2.35,
		Timezone:  "Europe/Paris",
		Current: &ports.ForecastCurrent{
			Time:          "2025-03-14T13:00",
			Temperature2m: 12.4,
			IsDay:         1,
			WeatherCode:   intPtr(61),
		},
		Hourly: &ports.ForecastHourly{
			Time:                     []string{"2025-03-14T00:00", "2025-03-14T13:00", "2025-03-15T00:00"},
			Temperature2m:            []float64{8.1, 12.4, 7.0},
			ApparentTemperature:      []float64{6.0, 10.1, 5.2},
			PrecipitationProbability: []*float64{floatPtr(10), floatPtr(80), nil},
			WeatherCode:              []*int{intPtr(3), intPtr(61), intPtr(0)},
		},
		Daily: &ports.ForecastDaily{
			Time:             []string{"2025-03-14", "2025-03-15"},
			WeatherCode:      []*int{intPtr(61), intPtr(0)},
			Temperature2mMax: []float64{13.0, 15.5},
			Temperature2mMin: []float64{6.2, 5.1},
		},
	}
}
