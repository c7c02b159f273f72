package external

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
	"weathernow.app/internal/ports"
	"weathernow.app/pkg/errors"
)

// RateLimitedGeocodingProvider throttles geocoding calls with a token bucket.
// Waiting for a token is not a retry: every call still reaches upstream once.
type RateLimitedGeocodingProvider struct {
	provider ports.GeocodingProvider
	limiter  *rate.Limiter
}

// NewRateLimitedGeocodingProvider wraps provider with an rps/burst limiter.
// rps may be fractional for less than one request per second.
func NewRateLimitedGeocodingProvider(provider ports.GeocodingProvider, rps float64, burst int) *RateLimitedGeocodingProvider {
	return &RateLimitedGeocodingProvider{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (r *RateLimitedGeocodingProvider) SearchLocations(ctx context.Context, params ports.GeocodeParams) (*ports.GeocodePayload, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, errors.NewNetworkError(GeocodingUnavailableReason, fmt.Errorf("rate limit wait: %w", err))
	}
	return r.provider.SearchLocations(ctx, params)
}

func (r *RateLimitedGeocodingProvider) GetProviderName() string {
	return r.provider.GetProviderName()
}

// RateLimitedForecastProvider throttles forecast calls with a token bucket
type RateLimitedForecastProvider struct {
	provider ports.ForecastProvider
	limiter  *rate.Limiter
}

// NewRateLimitedForecastProvider wraps provider with an rps/burst limiter
func NewRateLimitedForecastProvider(provider ports.ForecastProvider, rps float64, burst int) *RateLimitedForecastProvider {
	return &RateLimitedForecastProvider{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (r *RateLimitedForecastProvider) FetchForecast(ctx context.Context, params ports.ForecastParams) (*ports.ForecastPayload, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, errors.NewNetworkError(ForecastUnavailableReason, fmt.Errorf("rate limit wait: %w", err))
	}
	return r.provider.FetchForecast(ctx, params)
}

func (r *RateLimitedForecastProvider) GetProviderName() string {
	return r.provider.GetProviderName()
}
