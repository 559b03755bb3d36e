// Package lookup runs a weather lookup end to end: both upstream requests in
// parallel, the daily forecast reduction, history and the latest report.
package lookup

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"weather-report/datasource"
	"weather-report/forecast"
	"weather-report/history"
	"weather-report/models"
	"weather-report/observability"
)

// Service performs lookups by city or by coordinates
type Service struct {
	conditions datasource.ConditionsSource
	forecasts  datasource.ForecastSource
	history    history.Store
	state      *State
	logger     *slog.Logger
	now        func() time.Time
	location   *time.Location
}

// NewService creates a lookup service. hist may be nil to disable history.
func NewService(conditions datasource.ConditionsSource, forecasts datasource.ForecastSource, hist history.Store, logger *slog.Logger) *Service {
	return &Service{
		conditions: conditions,
		forecasts:  forecasts,
		history:    hist,
		state:      &State{},
		logger:     logger.With("component", "lookup"),
		now:        time.Now,
		location:   time.Local,
	}
}

// SetClock replaces the clock used to determine today
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// SetLocation sets the time zone used to bucket forecast samples into days
func (s *Service) SetLocation(loc *time.Location) {
	s.location = loc
}

// State returns the holder of the latest successful report
func (s *Service) State() *State {
	return s.state
}

// History returns the recorded cities, oldest first
func (s *Service) History(ctx context.Context) ([]string, error) {
	if s.history == nil {
		return []string{}, nil
	}
	return s.history.List(ctx)
}

// ByCity looks up the weather for a city name. The input is trimmed; on
// success the trimmed input is added to the history.
func (s *Service) ByCity(ctx context.Context, city string) (models.Report, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return models.Report{}, ErrCityRequired
	}

	report, err := s.fetch(ctx, datasource.CityQuery(city))
	observability.RecordLookup("city", err)
	if err != nil {
		s.logger.Warn("city lookup failed", "city", city, "error", err)
		return models.Report{}, fmt.Errorf("%w: %w", ErrInvalidCity, err)
	}

	if s.history != nil {
		if err := s.history.Add(ctx, city); err != nil {
			s.logger.Error("failed to record history", "city", city, "error", err)
		}
	}

	s.state.Store(report)
	s.logger.Info("city lookup", "city", city, "resolved", report.City, "days", len(report.Forecast))
	return report, nil
}

// ByCoordinates looks up the weather for a position. Coordinate lookups are
// not added to the history.
func (s *Service) ByCoordinates(ctx context.Context, lat, lon float64) (models.Report, error) {
	if !validCoordinates(lat, lon) {
		return models.Report{}, fmt.Errorf("%w: lat=%v lon=%v", ErrLocationUnavailable, lat, lon)
	}

	q := datasource.CoordinatesQuery(lat, lon)
	report, err := s.fetch(ctx, q)
	observability.RecordLookup("coords", err)
	if err != nil {
		s.logger.Warn("coordinates lookup failed", "query", q.String(), "error", err)
		return models.Report{}, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	s.state.Store(report)
	s.logger.Info("coordinates lookup", "query", q.String(), "resolved", report.City, "days", len(report.Forecast))
	return report, nil
}

// fetch issues both upstream requests concurrently and waits for both. A
// failure of either one fails the whole lookup; the other request is not
// canceled.
func (s *Service) fetch(ctx context.Context, q datasource.Query) (models.Report, error) {
	var (
		g          errgroup.Group
		conditions models.CurrentConditions
		samples    []models.WeatherSample
	)

	g.Go(func() error {
		c, err := s.conditions.FetchConditions(ctx, q)
		if err != nil {
			return fmt.Errorf("%s current conditions: %w", s.conditions.Name(), err)
		}
		conditions = c
		return nil
	})
	g.Go(func() error {
		f, err := s.forecasts.FetchForecast(ctx, q)
		if err != nil {
			return fmt.Errorf("%s forecast: %w", s.forecasts.Name(), err)
		}
		samples = f
		return nil
	})

	if err := g.Wait(); err != nil {
		return models.Report{}, err
	}

	now := s.now().In(s.location)
	city := conditions.City
	if city == "" {
		city = q.String()
	}

	return models.Report{
		City:      city,
		Current:   forecast.SummarizeCurrent(conditions, now),
		Forecast:  forecast.SelectDailyForecastIn(samples, forecast.DayOf(now), s.location),
		FetchedAt: now,
	}, nil
}

func validCoordinates(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
