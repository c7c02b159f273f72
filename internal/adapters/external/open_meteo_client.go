package external

import (
	"encoding/json"
	"time"

	"github.com/go-resty/resty/v2"
	"weathernow.app/pkg/errors"
)

const (
	defaultGeocodingBaseURL = "https://geocoding-api.open-meteo.com/v1"
	defaultForecastBaseURL  = "https://api.open-meteo.com/v1"

	geocodingEndpoint = "/search"
	forecastEndpoint  = "/forecast"

	geocodingProviderName = "open-meteo-geocoding"
	forecastProviderName  = "open-meteo-forecast"
)

// OpenMeteoClientParams holds the transport settings shared by both Open-Meteo adapters
type OpenMeteoClientParams struct {
	BaseURL string
	// Timeout of zero keeps the transport default (no timeout)
	Timeout time.Duration
}

func newOpenMeteoClient(baseURL string, timeout time.Duration) *resty.Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return client
}

// execute runs a prepared GET and decodes the JSON body into out. Transport
// failures and non-2xx statuses become network errors carrying reason;
// an undecodable body is an external API error.
func execute(req *resty.Request, endpoint, reason string, out interface{}) error {
	resp, err := req.Get(endpoint)
	if err != nil {
		return errors.NewNetworkError(reason, err)
	}

	if !resp.IsSuccess() {
		return errors.NewNetworkError(reason, &StatusError{StatusCode: resp.StatusCode(), Status: resp.Status()})
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return errors.NewExternalAPIError("failed to decode Open-Meteo response", err)
	}
	return nil
}

// StatusError records an unsuccessful upstream HTTP status
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	if e.Status != "" {
		return "upstream returned " + e.Status
	}
	return "upstream returned an unsuccessful status"
}
