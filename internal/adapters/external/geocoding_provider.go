package external

import (
	"context"
	"strconv"

	"github.com/go-resty/resty/v2"
	"weathernow.app/internal/ports"
	"weathernow.app/pkg/errors"
)

// GeocodingUnavailableReason is the failure reason reported for any unsuccessful geocoding call
const GeocodingUnavailableReason = "Unable to reach geocoding service"

// OpenMeteoGeocodingAdapter implements GeocodingProvider against the Open-Meteo geocoding API
type OpenMeteoGeocodingAdapter struct {
	client *resty.Client
}

// NewOpenMeteoGeocodingAdapter creates a new geocoding adapter
func NewOpenMeteoGeocodingAdapter(params OpenMeteoClientParams) *OpenMeteoGeocodingAdapter {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultGeocodingBaseURL
	}

	return &OpenMeteoGeocodingAdapter{
		client: newOpenMeteoClient(baseURL, params.Timeout),
	}
}

// SearchLocations performs a single geocoding search. A response without
// results is returned as an empty payload.
func (a *OpenMeteoGeocodingAdapter) SearchLocations(ctx context.Context, params ports.GeocodeParams) (*ports.GeocodePayload, error) {
	if params.Name == "" {
		return nil, errors.NewValidationError("search name cannot be empty")
	}

	req := a.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"name":     params.Name,
			"count":    strconv.Itoa(params.Count),
			"language": params.Language,
			"format":   "json",
		})

	var payload ports.GeocodePayload
	if err := execute(req, geocodingEndpoint, GeocodingUnavailableReason, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// GetProviderName returns the name of this provider
func (a *OpenMeteoGeocodingAdapter) GetProviderName() string {
	return geocodingProviderName
}
