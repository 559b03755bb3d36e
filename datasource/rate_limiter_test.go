package datasource

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"weather-report/models"
)

// countingProvider records how many calls reach the underlying provider
type countingProvider struct {
	mu             sync.Mutex
	conditionCalls int
	forecastCalls  int
}

func (p *countingProvider) Name() string { return "Counting" }

func (p *countingProvider) FetchConditions(ctx context.Context, q Query) (models.CurrentConditions, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.conditionCalls++
	return models.CurrentConditions{City: q.City}, nil
}

func (p *countingProvider) FetchForecast(ctx context.Context, q Query) ([]models.WeatherSample, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.forecastCalls++
	return []models.WeatherSample{{Timestamp: 1}}, nil
}

func TestRateLimitedProviderName(t *testing.T) {
	limited := NewRateLimitedProvider(&countingProvider{}, 1, 1, 1)
	if got := limited.Name(); got != "Counting [Rate Limited]" {
		t.Errorf("Name() = %q", got)
	}
}

func TestRateLimitedProviderForwardsWithinBurst(t *testing.T) {
	inner := &countingProvider{}
	limited := NewRateLimitedProvider(inner, 0.001, 0.001, 2)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		cond, err := limited.FetchConditions(ctx, CityQuery("London"))
		if err != nil {
			t.Fatalf("FetchConditions call %d: %v", i, err)
		}
		if cond.City != "London" {
			t.Errorf("expected forwarded query, got %q", cond.City)
		}
		if _, err := limited.FetchForecast(ctx, CityQuery("London")); err != nil {
			t.Fatalf("FetchForecast call %d: %v", i, err)
		}
	}

	if inner.conditionCalls != 2 || inner.forecastCalls != 2 {
		t.Errorf("expected 2 calls each, got conditions=%d forecast=%d", inner.conditionCalls, inner.forecastCalls)
	}
}

func TestRateLimitedProviderCanceledContext(t *testing.T) {
	inner := &countingProvider{}
	limited := NewRateLimitedProvider(inner, 1, 1, 5)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := limited.FetchConditions(ctx, CityQuery("Tokyo"))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	_, err = limited.FetchForecast(ctx, CityQuery("Tokyo"))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if inner.conditionCalls != 0 || inner.forecastCalls != 0 {
		t.Error("expected no calls to reach the underlying provider")
	}
}

func TestRateLimitedProviderExhaustedBurst(t *testing.T) {
	inner := &countingProvider{}
	limited := NewRateLimitedProvider(inner, 0.001, 0.001, 1)

	if _, err := limited.FetchForecast(context.Background(), CityQuery("Sydney")); err != nil {
		t.Fatalf("first call: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := limited.FetchForecast(ctx, CityQuery("Sydney")); err == nil {
		t.Error("expected second call to fail waiting for the limiter")
	}
	if inner.forecastCalls != 1 {
		t.Errorf("expected 1 forecast call, got %d", inner.forecastCalls)
	}
}

func TestQueryString(t *testing.T) {
	if got := CityQuery("Paris").String(); got != "Paris" {
		t.Errorf("CityQuery String() = %q", got)
	}
	if got := CoordinatesQuery(48.8566, 2.3522).String(); got != "48.8566,2.3522" {
		t.Errorf("CoordinatesQuery String() = %q", got)
	}
}
