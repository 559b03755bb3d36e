package datasource

import (
	"context"
	"fmt"

	"weather-report/models"
)

// Query selects a location either by city name or by coordinates
type Query struct {
	City        string
	Coordinates *models.Coordinates
}

// CityQuery creates a query for a city name
func CityQuery(city string) Query {
	return Query{City: city}
}

// CoordinatesQuery creates a query for a geographic position
func CoordinatesQuery(lat, lon float64) Query {
	return Query{Coordinates: &models.Coordinates{Lat: lat, Lon: lon}}
}

func (q Query) String() string {
	if q.Coordinates != nil {
		return fmt.Sprintf("%.4f,%.4f", q.Coordinates.Lat, q.Coordinates.Lon)
	}
	return q.City
}

// ConditionsSource is an interface for services that can fetch current conditions
type ConditionsSource interface {
	// FetchConditions fetches the current conditions for a location
	FetchConditions(ctx context.Context, q Query) (models.CurrentConditions, error)

	// Name returns the source's name
	Name() string
}

// ForecastSource is an interface for services that can fetch the raw forecast time series
type ForecastSource interface {
	// FetchForecast fetches forecast samples for a location in ascending timestamp order
	FetchForecast(ctx context.Context, q Query) ([]models.WeatherSample, error)

	// Name returns the source's name
	Name() string
}

// Provider is implemented by sources that serve both current conditions and forecasts
type Provider interface {
	ConditionsSource
	ForecastSource
}
