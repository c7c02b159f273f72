package external

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weathernow.app/internal/ports"
	"weathernow.app/pkg/errors"
)

func TestOpenMeteoGeocodingAdapter_SearchLocations(t *testing.T) {
	t.Run("SendsSearchParameters", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/search", r.URL.Path)
			assert.Equal(t, "Berlin", r.URL.Query().Get("name"))
			assert.Equal(t, "5", r.URL.Query().Get("count"))
			assert.Equal(t, "en", r.URL.Query().Get("language"))
			assert.Equal(t, "json", r.URL.Query().Get("format"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"results":[{"id":2950159,"name":"Berlin","latitude":52.52437,"longitude":13.41053,"country":"Germany","admin1":"Land Berlin","timezone":"Europe/Berlin"},{"name":"Berlin","latitude":39.79,"longitude":-74.93}]}`))
		}))
		defer server.Close()

		adapter := NewOpenMeteoGeocodingAdapter(OpenMeteoClientParams{BaseURL: server.URL + "/v1"})
		payload, err := adapter.SearchLocations(context.Background(), ports.GeocodeParams{Name: "Berlin", Count: 5, Language: "en"})

		require.NoError(t, err)
		require.Len(t, payload.Results, 2)
		assert.Equal(t, ports.PlaceID("2950159"), payload.Results[0].ID)
		assert.Equal(t, "Land Berlin", payload.Results[0].Admin1)
		assert.Equal(t, "Europe/Berlin", payload.Results[0].Timezone)
		assert.Empty(t, payload.Results[1].ID)
		assert.Empty(t, payload.Results[1].Country)
	})

	t.Run("MissingResults", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"generationtime_ms":0.5}`))
		}))
		defer server.Close()

		adapter := NewOpenMeteoGeocodingAdapter(OpenMeteoClientParams{BaseURL: server.URL})
		payload, err := adapter.SearchLocations(context.Background(), ports.GeocodeParams{Name: "Qwxz", Count: 5, Language: "en"})

		require.NoError(t, err)
		assert.Empty(t, payload.Results)
	})

	t.Run("StringID", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"results":[{"id":"node/240109189","name":"Berlin","latitude":52.52,"longitude":13.41}]}`))
		}))
		defer server.Close()

		adapter := NewOpenMeteoGeocodingAdapter(OpenMeteoClientParams{BaseURL: server.URL})
		payload, err := adapter.SearchLocations(context.Background(), ports.GeocodeParams{Name: "Berlin", Count: 5, Language: "en"})

		require.NoError(t, err)
		require.Len(t, payload.Results, 1)
		assert.Equal(t, ports.PlaceID("node/240109189"), payload.Results[0].ID)
	})

	t.Run("UnsuccessfulStatus", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		adapter := NewOpenMeteoGeocodingAdapter(OpenMeteoClientParams{BaseURL: server.URL})
		payload, err := adapter.SearchLocations(context.Background(), ports.GeocodeParams{Name: "Paris", Count: 5, Language: "en"})

		assert.Nil(t, payload)
		require.Error(t, err)
		assert.True(t, errors.IsNetworkError(err))
		assert.Equal(t, GeocodingUnavailableReason, errors.Reason(err))

		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
	})

	t.Run("Unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		adapter := NewOpenMeteoGeocodingAdapter(OpenMeteoClientParams{BaseURL: url})
		_, err := adapter.SearchLocations(context.Background(), ports.GeocodeParams{Name: "Paris", Count: 5, Language: "en"})

		require.Error(t, err)
		assert.True(t, errors.IsNetworkError(err))
		assert.Equal(t, GeocodingUnavailableReason, errors.Reason(err))
	})

	t.Run("MalformedBody", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"results":`))
		}))
		defer server.Close()

		adapter := NewOpenMeteoGeocodingAdapter(OpenMeteoClientParams{BaseURL: server.URL})
		_, err := adapter.SearchLocations(context.Background(), ports.GeocodeParams{Name: "Paris", Count: 5, Language: "en"})

		require.Error(t, err)
		assert.True(t, errors.IsExternalAPIError(err))
	})

	t.Run("EmptyName", func(t *testing.T) {
		adapter := NewOpenMeteoGeocodingAdapter(OpenMeteoClientParams{})
		_, err := adapter.SearchLocations(context.Background(), ports.GeocodeParams{})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("Timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		adapter := NewOpenMeteoGeocodingAdapter(OpenMeteoClientParams{BaseURL: server.URL, Timeout: 20 * time.Millisecond})
		_, err := adapter.SearchLocations(context.Background(), ports.GeocodeParams{Name: "Paris", Count: 5, Language: "en"})

		require.Error(t, err)
		assert.True(t, errors.IsNetworkError(err))
	})

	assert.Equal(t, "open-meteo-geocoding", NewOpenMeteoGeocodingAdapter(OpenMeteoClientParams{}).GetProviderName())
}

func TestOpenMeteoForecastAdapter_FetchForecast(t *testing.T) {
	t.Run("SendsForecastParameters", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.Equal(t, "/forecast", r.URL.Path)
			assert.Equal(t, "52.52", q.Get("latitude"))
			assert.Equal(t, "13.405", q.Get("longitude"))
			assert.Equal(t, "temperature_2m,weather_code", q.Get("current"))
			assert.Equal(t, "temperature_2m,apparent_temperature,precipitation_probability,weather_code", q.Get("hourly"))
			assert.Equal(t, "weather_code,temperature_2m_max,temperature_2m_min", q.Get("daily"))
			assert.Equal(t, "auto", q.Get("timezone"))
			assert.Equal(t, "7", q.Get("forecast_days"))
			assert.Equal(t, "celsius", q.Get("temperature_unit"))
			assert.Equal(t, "kmh", q.Get("wind_speed_unit"))
			assert.Equal(t, "mm", q.Get("precipitation_unit"))

			_, _ = w.Write([]byte(`{
				"latitude": 52.52, "longitude": 13.405, "timezone": "Europe/Berlin",
				"current": {"time": "2025-03-14T09:00", "temperature_2m": 6.5, "is_day": 1, "weather_code": 3},
				"hourly": {"time": ["2025-03-14T00:00", "2025-03-14T01:00"], "temperature_2m": [4.1, 3.8],
					"apparent_temperature": [1.2, 0.9], "precipitation_probability": [10, null], "weather_code": [3, null]},
				"daily": {"time": ["2025-03-14"], "weather_code": [61], "temperature_2m_max": [9.4], "temperature_2m_min": [2.3]}
			}`))
		}))
		defer server.Close()

		adapter := NewOpenMeteoForecastAdapter(OpenMeteoClientParams{BaseURL: server.URL})
		payload, err := adapter.FetchForecast(context.Background(), berlinParams())

		require.NoError(t, err)
		assert.Equal(t, "Europe/Berlin", payload.Timezone)
		require.NotNil(t, payload.Current)
		assert.Equal(t, 6.5, payload.Current.Temperature2m)
		assert.Equal(t, intPtr(3), payload.Current.WeatherCode)
		assert.Nil(t, payload.Current.Precipitation)
		require.NotNil(t, payload.Hourly)
		assert.Equal(t, []*float64{floatPtr(10), nil}, payload.Hourly.PrecipitationProbability)
		assert.Equal(t, []*int{intPtr(3), nil}, payload.Hourly.WeatherCode)
		require.NotNil(t, payload.Daily)
		assert.Equal(t, []float64{9.4}, payload.Daily.Temperature2mMax)
	})

	t.Run("ImperialUnits", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.Equal(t, "fahrenheit", q.Get("temperature_unit"))
			assert.Equal(t, "mph", q.Get("wind_speed_unit"))
			assert.Equal(t, "inch", q.Get("precipitation_unit"))
			_, _ = w.Write([]byte(`{"latitude": 40.71, "longitude": -74.01}`))
		}))
		defer server.Close()

		params := berlinParams()
		params.TemperatureUnit = "fahrenheit"
		params.WindSpeedUnit = "mph"
		params.PrecipitationUnit = "inch"

		adapter := NewOpenMeteoForecastAdapter(OpenMeteoClientParams{BaseURL: server.URL})
		payload, err := adapter.FetchForecast(context.Background(), params)

		require.NoError(t, err)
		assert.Nil(t, payload.Current)
		assert.Nil(t, payload.Hourly)
		assert.Nil(t, payload.Daily)
	})

	t.Run("UnsuccessfulStatus", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error": true, "reason": "Latitude must be in range of -90 to 90°."}`))
		}))
		defer server.Close()

		adapter := NewOpenMeteoForecastAdapter(OpenMeteoClientParams{BaseURL: server.URL})
		_, err := adapter.FetchForecast(context.Background(), berlinParams())

		require.Error(t, err)
		assert.True(t, errors.IsNetworkError(err))
		assert.Equal(t, ForecastUnavailableReason, errors.Reason(err))
	})

	t.Run("CanceledContext", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		adapter := NewOpenMeteoForecastAdapter(OpenMeteoClientParams{BaseURL: server.URL})
		_, err := adapter.FetchForecast(ctx, berlinParams())

		require.Error(t, err)
		assert.True(t, errors.IsNetworkError(err))
	})
}

func TestForecastQuery_OmitsEmptyBlocks(t *testing.T) {
	params := berlinParams()
	params.Current = nil
	params.Daily = nil

	query := forecastQuery(params)

	assert.NotContains(t, query, "current")
	assert.NotContains(t, query, "daily")
	assert.Contains(t, query, "hourly")
}
