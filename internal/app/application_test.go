package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"weathernow.app/internal/config"
	"weathernow.app/internal/core/dashboard"
	"weathernow.app/internal/core/weather"
	"weathernow.app/internal/ports"
)

// fakeOpenMeteo serves canned geocoding and forecast responses
type fakeOpenMeteo struct {
	server        *httptest.Server
	forecastCalls atomic.Int64
	lastTempUnit  atomic.Value
	failForecast  atomic.Bool
	forecastDelay atomic.Int64
}

var geocodingData = map[string][]gin.H{
	"berlin": {
		{"id": 2950159, "name": "Berlin", "latitude": 52.52437, "longitude": 13.41053, "country": "Germany", "admin1": "Land Berlin", "timezone": "Europe/Berlin"},
		{"id": 5083330, "name": "Berlin", "latitude": 44.46867, "longitude": -71.18508, "country": "United States", "admin1": "New Hampshire"},
	},
	"paris": {
		{"id": 2988507, "name": "Paris", "latitude": 48.85341, "longitude": 2.3488, "country": "France", "admin1": "Île-de-France", "timezone": "Europe/Paris"},
	},
}

func newFakeOpenMeteo() *fakeOpenMeteo {
	f := &fakeOpenMeteo{}
	f.lastTempUnit.Store("")

	r := gin.New()
	r.GET("/v1/search", func(c *gin.Context) {
		name := strings.ToLower(c.Query("name"))
		if name == "servererror" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": true, "reason": "Internal server error"})
			return
		}
		results, ok := geocodingData[name]
		if !ok {
			c.JSON(http.StatusOK, gin.H{"generationtime_ms": 0.5})
			return
		}
		c.JSON(http.StatusOK, gin.H{"results": results})
	})

	r.GET("/v1/forecast", func(c *gin.Context) {
		f.forecastCalls.Add(1)
		f.lastTempUnit.Store(c.Query("temperature_unit"))
		time.Sleep(time.Duration(f.forecastDelay.Load()))
		if f.failForecast.Load() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": true, "reason": "Service unavailable"})
			return
		}
		c.JSON(http.StatusOK, forecastBody(c.Query("temperature_unit") == "fahrenheit"))
	})

	f.server = httptest.NewServer(r)
	return f
}

func forecastBody(fahrenheit bool) gin.H {
	temp := func(c float64) float64 {
		if fahrenheit {
			return c*9/5 + 32
		}
		return c
	}
	return gin.H{
		"latitude":  52.52,
		"longitude": 13.41,
		"timezone":  "Europe/Berlin",
		"current": gin.H{
			"time":                 "2025-03-14T13:00",
			"temperature_2m":       temp(10),
			"apparent_temperature": temp(8),
			"is_day":               1,
			"relative_humidity_2m": 65,
			"wind_speed_10m":       14.2,
			"precipitation":        0,
			"weather_code":         3,
		},
		"hourly": gin.H{
			"time":                      []string{"2025-03-14T12:00", "2025-03-14T13:00", "2025-03-15T12:00"},
			"temperature_2m":            []float64{temp(9), temp(10), temp(12)},
			"apparent_temperature":      []float64{temp(7), temp(8), temp(11)},
			"precipitation_probability": []interface{}{5, nil, 40},
			"weather_code":              []int{2, 3, 61},
		},
		"daily": gin.H{
			"time":               []string{"2025-03-14", "2025-03-15"},
			"weather_code":       []int{3, 61},
			"temperature_2m_max": []float64{temp(11), temp(13)},
			"temperature_2m_min": []float64{temp(2), temp(4)},
		},
	}
}

type ApplicationTestSuite struct {
	suite.Suite
	upstream    *fakeOpenMeteo
	application *Application
	router      *gin.Engine
	logPath     string
}

func (s *ApplicationTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)

	s.upstream = newFakeOpenMeteo()
	s.logPath = filepath.Join(s.T().TempDir(), "logs", "upstream.log")

	testConfig := &config.Config{
		Server: config.ServerConfig{Port: 8080},
		Upstream: config.UpstreamConfig{
			GeocodingBaseURL: s.upstream.server.URL + "/v1",
			ForecastBaseURL:  s.upstream.server.URL + "/v1",
			TimeoutSeconds:   5,
			RateLimitRPS:     100,
			RateLimitBurst:   100,
			EnableLogging:    true,
			LogFilePath:      s.logPath,
		},
		Cache: config.CacheConfig{
			ForecastEnabled:    true,
			ForecastTTLMinutes: 10,
			Type:               config.CacheTypeMemory,
		},
		Dashboard: config.DashboardConfig{
			DefaultUnits: "metric",
			DefaultLocation: config.LocationConfig{
				ID:        "5391959",
				Name:      "San Francisco",
				Country:   "United States",
				Latitude:  37.7749,
				Longitude: -122.4194,
				Timezone:  "America/Los_Angeles",
			},
		},
		LogLevel: "info",
	}
	s.Require().NoError(testConfig.Validate())

	deps, err := NewDependencyContainer(testConfig)
	s.Require().NoError(err)

	s.application, err = NewApplicationWithDependencies(testConfig, deps)
	s.Require().NoError(err)
	s.router = s.application.GetRouter()
}

func (s *ApplicationTestSuite) TearDownSuite() {
	if s.application != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.NoError(s.application.Shutdown(ctx))
	}
	s.upstream.server.Close()
}

func (s *ApplicationTestSuite) SetupTest() {
	s.upstream.failForecast.Store(false)
	s.upstream.forecastDelay.Store(0)
}

func (s *ApplicationTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *ApplicationTestSuite) snapshot(w *httptest.ResponseRecorder) dashboard.Snapshot {
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var snap dashboard.Snapshot
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &snap))
	return snap
}

func (s *ApplicationTestSuite) TestDashboard_SearchThenSwitchUnits() {
	snap := s.snapshot(s.do(http.MethodPost, "/api/dashboard/search", `{"query":"berlin"}`))

	s.Equal(dashboard.ForecastReady, snap.ForecastStatus)
	s.Len(snap.SearchResults, 2)
	s.Equal("2950159", snap.Location.ID)
	s.Equal("Berlin, Germany", snap.Query)
	s.Require().NotNil(snap.Weather)
	s.Equal("Overcast", snap.Weather.Current.Label)
	s.Equal([]string{"2025-03-14", "2025-03-15"}, snap.Weather.DayOrder)
	s.Equal("2025-03-14", snap.SelectedDay)
	s.Len(snap.SelectedHours, 2)
	s.Equal("celsius", s.upstream.lastTempUnit.Load())

	snap = s.snapshot(s.do(http.MethodPut, "/api/dashboard/units", `{"units":"imperial"}`))

	s.Equal(weather.Imperial, snap.Units)
	s.Require().NotNil(snap.Weather)
	s.Equal("°F", snap.Weather.Units.Temperature)
	s.Equal(50.0, snap.Weather.Current.Temperature)
	s.Equal("fahrenheit", s.upstream.lastTempUnit.Load())

	snap = s.snapshot(s.do(http.MethodPut, "/api/dashboard/day", `{"day":"2025-03-15"}`))
	s.Equal("2025-03-15", snap.SelectedDay)
	s.Require().Len(snap.SelectedHours, 1)
	s.Equal("Rain showers", snap.SelectedHours[0].Label)

	s.snapshot(s.do(http.MethodPut, "/api/dashboard/units", `{"units":"metric"}`))
}

func (s *ApplicationTestSuite) TestDashboard_UnknownPlace() {
	snap := s.snapshot(s.do(http.MethodPost, "/api/dashboard/search", `{"query":"Atlantis"}`))

	s.Equal(dashboard.SearchNoResults, snap.SearchStatus)
	s.Empty(snap.SearchResults)
	s.Nil(snap.Weather)
}

func (s *ApplicationTestSuite) TestForecast_ServedFromCacheOnRepeat() {
	url := "/api/forecast?latitude=-33.8688&longitude=151.2093&name=Sydney"

	before := s.upstream.forecastCalls.Load()
	s.Equal(http.StatusOK, s.do(http.MethodGet, url, "").Code)
	s.Equal(http.StatusOK, s.do(http.MethodGet, url, "").Code)
	s.Equal(before+1, s.upstream.forecastCalls.Load())

	w := s.do(http.MethodGet, "/api/metrics", "")
	s.Require().Equal(http.StatusOK, w.Code)

	var metrics struct {
		Upstream map[string]ports.UpstreamStats `json:"upstream"`
		Cache    map[string]interface{}         `json:"cache"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &metrics))
	s.Equal(true, metrics.Cache["enabled"])
	s.Equal("memory", metrics.Cache["type"])
	s.GreaterOrEqual(metrics.Cache["hits"], 1.0)
	s.GreaterOrEqual(metrics.Upstream["open-meteo-forecast"].Requests, int64(1))
}

func (s *ApplicationTestSuite) TestForecast_UpstreamFailure() {
	s.upstream.failForecast.Store(true)

	w := s.do(http.MethodGet, "/api/forecast?latitude=35.6762&longitude=139.6503&name=Tokyo", "")
	s.Equal(http.StatusBadGateway, w.Code)
	s.Contains(w.Body.String(), "Unable to fetch weather data")

	w = s.do(http.MethodGet, "/api/health", "")
	s.Equal(http.StatusOK, w.Code)

	var health map[string]ports.HealthStatus
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &health))
	s.Equal("degraded", health["forecast"].Status)
	s.Equal("healthy", health["cache"].Status)

	snap := s.snapshot(s.do(http.MethodPost, "/api/dashboard/location",
		`{"location":{"name":"Oslo","country":"Norway","latitude":59.9127,"longitude":10.7461}}`))
	s.Equal(dashboard.ForecastError, snap.ForecastStatus)
	s.Equal("Unable to fetch weather data", snap.ForecastError)

	s.upstream.failForecast.Store(false)
	snap = s.snapshot(s.do(http.MethodPost, "/api/dashboard/refresh", ""))
	s.Equal(dashboard.ForecastReady, snap.ForecastStatus)
	s.Empty(snap.ForecastError)
}

func (s *ApplicationTestSuite) TestDashboard_ClientAbortKeepsForecast() {
	s.snapshot(s.do(http.MethodPost, "/api/dashboard/location",
		`{"location":{"name":"Lisbon","country":"Portugal","latitude":38.7223,"longitude":-9.1393}}`))
	s.upstream.forecastDelay.Store(int64(200 * time.Millisecond))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	req := httptest.NewRequest(http.MethodPut, "/api/dashboard/units", strings.NewReader(`{"units":"imperial"}`)).WithContext(ctx)
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(httptest.NewRecorder(), req)

	snap := s.application.GetSession().Snapshot()
	s.Equal(dashboard.ForecastReady, snap.ForecastStatus)
	s.Empty(snap.ForecastError)
	s.Require().NotNil(snap.Weather)
	s.Equal(weather.Imperial, snap.Weather.System)

	s.upstream.forecastDelay.Store(0)
	s.snapshot(s.do(http.MethodPut, "/api/dashboard/units", `{"units":"metric"}`))
}

func (s *ApplicationTestSuite) TestGeocode_UpstreamFailure() {
	w := s.do(http.MethodGet, "/api/geocode?name=servererror", "")

	s.Equal(http.StatusBadGateway, w.Code)
	s.Contains(w.Body.String(), "Unable to reach geocoding service")
}

func (s *ApplicationTestSuite) TestUpstreamLogFile() {
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/geocode?name=Paris", "").Code)

	content, err := os.ReadFile(s.logPath)
	s.Require().NoError(err)
	s.Contains(string(content), "Geocoding request completed")
	s.Contains(string(content), `"query":"Paris"`)
}

func (s *ApplicationTestSuite) TestPrometheusEndpoint() {
	w := s.do(http.MethodGet, "/metrics", "")

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "weathernow_upstream")
}

func TestApplicationSuite(t *testing.T) {
	suite.Run(t, new(ApplicationTestSuite))
}

func TestNewDependencyContainer_RejectsNilConfig(t *testing.T) {
	container, err := NewDependencyContainer(nil)

	assert.Nil(t, container)
	assert.Error(t, err)
}
