package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weathernow.app/internal/core/dashboard"
	"weathernow.app/internal/core/weather"
	"weathernow.app/internal/ports"
	"weathernow.app/pkg/errors"
)

func doJSON(t *testing.T, ts *testServer, method, path, body string) (*httptest.ResponseRecorder, dashboard.Snapshot) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)

	var snap dashboard.Snapshot
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	}
	return w, snap
}

func TestDashboardHandler_GetInitialState(t *testing.T) {
	ts := setupTestServer(t)

	w, snap := doJSON(t, ts, http.MethodGet, "/api/dashboard", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "San Francisco", snap.Location.Name)
	assert.Equal(t, weather.Metric, snap.Units)
	assert.Equal(t, dashboard.ForecastIdle, snap.ForecastStatus)
	assert.Equal(t, "San Francisco, United States", snap.Query)
	assert.Nil(t, snap.Weather)
	assert.Empty(t, snap.DayOptions)
}

func TestDashboardHandler_Search(t *testing.T) {
	t.Run("SelectsFirstMatchAndFetches", func(t *testing.T) {
		ts := setupTestServer(t)

		ts.geocoder.EXPECT().
			SearchLocations(mock.Anything, ports.GeocodeParams{Name: "Paris", Count: 5, Language: "en"}).
			Return(&ports.GeocodePayload{Results: []ports.GeocodeResult{
				{ID: "2988507", Name: "Paris", Latitude: 48.85341, Longitude: 2.3488, Country: "France"},
				{ID: "4717560", Name: "Paris", Latitude: 33.66094, Longitude: -95.55551, Country: "United States"},
			}}, nil)
		ts.forecaster.EXPECT().
			FetchForecast(mock.Anything, mock.MatchedBy(func(p ports.ForecastParams) bool {
				return p.Latitude == 48.85341 && p.TemperatureUnit == "celsius"
			})).
			Return(samplePayload(), nil)

		w, snap := doJSON(t, ts, http.MethodPost, "/api/dashboard/search", `{"query":"Paris"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, snap.SearchResults, 2)
		assert.Equal(t, "2988507", snap.Location.ID)
		assert.Equal(t, "Paris, France", snap.Query)
		assert.Equal(t, dashboard.ForecastReady, snap.ForecastStatus)
		require.NotNil(t, snap.Weather)
		assert.Equal(t, "2025-03-14", snap.SelectedDay)
		require.Len(t, snap.DayOptions, 2)
		assert.Equal(t, "2025-03-15", snap.DayOptions[1].Key)
		assert.Len(t, snap.SelectedHours, 2)
		assert.Equal(t, uint64(1), snap.Generation)
	})

	t.Run("BlankQueryYieldsNoResults", func(t *testing.T) {
		ts := setupTestServer(t)

		w, snap := doJSON(t, ts, http.MethodPost, "/api/dashboard/search", `{"query":"   "}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, dashboard.SearchNoResults, snap.SearchStatus)
		assert.Empty(t, snap.SearchResults)
		assert.Nil(t, snap.Weather)
	})

	t.Run("GeocodingFailureIsRecorded", func(t *testing.T) {
		ts := setupTestServer(t)

		ts.geocoder.EXPECT().SearchLocations(mock.Anything, mock.Anything).
			Return(nil, errors.NewNetworkError("Unable to reach geocoding service", nil))

		w, snap := doJSON(t, ts, http.MethodPost, "/api/dashboard/search", `{"query":"Paris"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, dashboard.SearchError, snap.SearchStatus)
		assert.Equal(t, "Unable to reach geocoding service", snap.SearchError)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		ts := setupTestServer(t)

		w, _ := doJSON(t, ts, http.MethodPost, "/api/dashboard/search", `{"query":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDashboardHandler_SelectLocation(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ts := setupTestServer(t)

		ts.forecaster.EXPECT().
			FetchForecast(mock.Anything, mock.MatchedBy(func(p ports.ForecastParams) bool {
				return p.Latitude == 51.5074 && p.Longitude == -0.1278
			})).
			Return(samplePayload(), nil)

		w, snap := doJSON(t, ts, http.MethodPost, "/api/dashboard/location",
			`{"location":{"name":"London","country":"United Kingdom","latitude":51.5074,"longitude":-0.1278}}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "51.5074,-0.1278", snap.Location.ID)
		assert.Equal(t, "London, United Kingdom", snap.Query)
		assert.Equal(t, dashboard.ForecastReady, snap.ForecastStatus)
	})

	t.Run("MissingName", func(t *testing.T) {
		ts := setupTestServer(t)

		w, _ := doJSON(t, ts, http.MethodPost, "/api/dashboard/location",
			`{"location":{"latitude":51.5074,"longitude":-0.1278}}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var response ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Invalid request: name (required)", response.Error)
	})

	t.Run("LatitudeOutOfRange", func(t *testing.T) {
		ts := setupTestServer(t)

		w, _ := doJSON(t, ts, http.MethodPost, "/api/dashboard/location",
			`{"location":{"name":"Nowhere","latitude":123,"longitude":0}}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var response ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "latitude must be between -90 and 90", response.Error)
	})
}

func TestDashboardHandler_Units(t *testing.T) {
	t.Run("SwitchRefetchesInImperial", func(t *testing.T) {
		ts := setupTestServer(t)

		ts.forecaster.EXPECT().
			FetchForecast(mock.Anything, mock.MatchedBy(func(p ports.ForecastParams) bool {
				return p.TemperatureUnit == "fahrenheit" && p.Latitude == 37.7749
			})).
			Return(samplePayload(), nil)

		w, snap := doJSON(t, ts, http.MethodPut, "/api/dashboard/units", `{"units":"imperial"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, weather.Imperial, snap.Units)
		require.NotNil(t, snap.Weather)
		assert.Equal(t, "°F", snap.Weather.Units.Temperature)
	})

	t.Run("UnknownUnits", func(t *testing.T) {
		ts := setupTestServer(t)

		w, _ := doJSON(t, ts, http.MethodPut, "/api/dashboard/units", `{"units":"kelvin"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDashboardHandler_Day(t *testing.T) {
	ts := setupTestServer(t)

	w, _ := doJSON(t, ts, http.MethodPut, "/api/dashboard/day", `{"day":"2025-03-15"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, "no forecast loaded yet")

	ts.forecaster.EXPECT().FetchForecast(mock.Anything, mock.Anything).Return(samplePayload(), nil)
	w, _ = doJSON(t, ts, http.MethodPost, "/api/dashboard/refresh", "")
	require.Equal(t, http.StatusOK, w.Code)

	w, snap := doJSON(t, ts, http.MethodPut, "/api/dashboard/day", `{"day":"2025-03-15"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2025-03-15", snap.SelectedDay)
	require.Len(t, snap.SelectedHours, 1)
	assert.Equal(t, "2025-03-15T00:00", snap.SelectedHours[0].Time)

	w, _ = doJSON(t, ts, http.MethodPut, "/api/dashboard/day", `{"day":"2025-03-20"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDashboardHandler_RefreshFailure(t *testing.T) {
	ts := setupTestServer(t)

	ts.forecaster.EXPECT().FetchForecast(mock.Anything, mock.Anything).
		Return(nil, errors.NewNetworkError("Unable to fetch weather data", nil))

	w, snap := doJSON(t, ts, http.MethodPost, "/api/dashboard/refresh", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, dashboard.ForecastError, snap.ForecastStatus)
	assert.Equal(t, "Unable to fetch weather data", snap.ForecastError)
	assert.Nil(t, snap.Weather)
}
