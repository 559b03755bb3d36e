package datasource

import (
	"context"
	"fmt"

	"weather-report/models"

	"golang.org/x/time/rate"
)

// RateLimitedProvider wraps a Provider with one limiter per upstream endpoint
type RateLimitedProvider struct {
	provider          Provider
	conditionsLimiter *rate.Limiter
	forecastLimiter   *rate.Limiter
	name              string
}

// NewRateLimitedProvider creates a provider that waits for limiter permission before each call.
// conditionsRPS and forecastRPS are the maximum requests per second for each endpoint
// (fractional values allow less than one request per second); burst is shared by both.
func NewRateLimitedProvider(provider Provider, conditionsRPS, forecastRPS float64, burst int) *RateLimitedProvider {
	return &RateLimitedProvider{
		provider:          provider,
		conditionsLimiter: rate.NewLimiter(rate.Limit(conditionsRPS), burst),
		forecastLimiter:   rate.NewLimiter(rate.Limit(forecastRPS), burst),
		name:              fmt.Sprintf("%s [Rate Limited]", provider.Name()),
	}
}

// FetchConditions implements ConditionsSource with rate limiting
func (r *RateLimitedProvider) FetchConditions(ctx context.Context, q Query) (models.CurrentConditions, error) {
	// Wait for rate limiter permission or context cancellation
	if err := r.conditionsLimiter.Wait(ctx); err != nil {
		return models.CurrentConditions{}, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.provider.FetchConditions(ctx, q)
}

// FetchForecast implements ForecastSource with rate limiting
func (r *RateLimitedProvider) FetchForecast(ctx context.Context, q Query) ([]models.WeatherSample, error) {
	if err := r.forecastLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.provider.FetchForecast(ctx, q)
}

// Name returns the provider name
func (r *RateLimitedProvider) Name() string {
	return r.name
}

// Verify that the rate limited provider implements the required interfaces
var _ Provider = (*RateLimitedProvider)(nil)
