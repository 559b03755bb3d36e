package openweathermap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"weather-report/datasource"
	"weather-report/models"
	"weather-report/observability"
)

// DefaultBaseURL is the OpenWeatherMap 2.5 data API
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

// Provider fetches current conditions and the 5-day/3-hour forecast from OpenWeatherMap.
// Requests carry no units parameter, so temperatures arrive in Kelvin.
type Provider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Ensure Provider implements datasource.Provider
var _ datasource.Provider = (*Provider)(nil)

// NewProvider creates a new OpenWeatherMap provider
func NewProvider(apiKey string, logger *slog.Logger) *Provider {
	return &Provider{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger.With("component", "openweathermap"),
	}
}

// SetBaseURL sets the base URL for the API (useful for testing)
func (p *Provider) SetBaseURL(baseURL string) {
	p.baseURL = baseURL
}

// SetTimeout sets the HTTP client timeout
func (p *Provider) SetTimeout(timeout time.Duration) {
	p.httpClient.Timeout = timeout
}

// Name returns the provider name
func (p *Provider) Name() string {
	return "OpenWeatherMap"
}

// currentResponse is the subset of the /weather response that is used
type currentResponse struct {
	Coord struct {
		Lon float64 `json:"lon"`
		Lat float64 `json:"lat"`
	} `json:"coord"`
	Weather []struct {
		ID          int    `json:"id"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Dt  int64 `json:"dt"`
	Sys struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Name string `json:"name"`
}

// FetchConditions fetches the current conditions for a city or position
func (p *Provider) FetchConditions(ctx context.Context, q datasource.Query) (models.CurrentConditions, error) {
	var response currentResponse
	if err := p.get(ctx, "weather", q, &response); err != nil {
		return models.CurrentConditions{}, err
	}

	sample := models.WeatherSample{
		Timestamp:         response.Dt,
		TemperatureKelvin: response.Main.Temp,
		HumidityPercent:   response.Main.Humidity,
		WindSpeed:         response.Wind.Speed,
	}

	// Add the weather condition if available
	if len(response.Weather) > 0 {
		sample.ConditionID = response.Weather[0].ID
		sample.ConditionDescription = response.Weather[0].Description
	}

	return models.CurrentConditions{
		City:        response.Name,
		Country:     response.Sys.Country,
		Coordinates: models.Coordinates{Lat: response.Coord.Lat, Lon: response.Coord.Lon},
		Sample:      sample,
		Sunrise:     time.Unix(response.Sys.Sunrise, 0),
		Sunset:      time.Unix(response.Sys.Sunset, 0),
	}, nil
}

// get performs a GET against endpoint for q and decodes the JSON body into out
func (p *Provider) get(ctx context.Context, endpoint string, q datasource.Query, out any) error {
	reqURL, err := p.buildURL(endpoint, q)
	if err != nil {
		return fmt.Errorf("failed to build URL: %w", err)
	}

	p.logger.Debug("requesting", "endpoint", endpoint, "query", q.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := p.httpClient.Do(req)
	observability.UpstreamDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		return &NetworkError{Operation: endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, Message: apiMessage(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// buildURL constructs the API URL with query parameters
func (p *Provider) buildURL(endpoint string, q datasource.Query) (string, error) {
	u, err := url.Parse(p.baseURL)
	if err != nil {
		return "", err
	}
	u.Path = fmt.Sprintf("%s/%s", u.Path, endpoint)

	params := u.Query()
	if q.Coordinates != nil {
		params.Set("lat", strconv.FormatFloat(q.Coordinates.Lat, 'f', -1, 64))
		params.Set("lon", strconv.FormatFloat(q.Coordinates.Lon, 'f', -1, 64))
	} else {
		params.Set("q", q.City)
	}
	params.Set("appid", p.apiKey)

	u.RawQuery = params.Encode()
	return u.String(), nil
}

// apiMessage extracts the "message" field of an error body, falling back to the raw body
func apiMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return string(body)
}
