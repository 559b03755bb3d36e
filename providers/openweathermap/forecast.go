package openweathermap

import (
	"context"

	"weather-report/datasource"
	"weather-report/models"
)

// forecastResponse represents the /forecast response structure
type forecastResponse struct {
	City struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"city"`
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity int     `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			ID          int    `json:"id"`
			Description string `json:"description"`
		} `json:"weather"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		DtTxt string `json:"dt_txt"`
	} `json:"list"`
}

// FetchForecast fetches the 5-day forecast in 3-hour steps, in the order the API returns it
func (p *Provider) FetchForecast(ctx context.Context, q datasource.Query) ([]models.WeatherSample, error) {
	var response forecastResponse
	if err := p.get(ctx, "forecast", q, &response); err != nil {
		return nil, err
	}

	samples := make([]models.WeatherSample, 0, len(response.List))
	for _, item := range response.List {
		sample := models.WeatherSample{
			Timestamp:         item.Dt,
			TemperatureKelvin: item.Main.Temp,
			HumidityPercent:   item.Main.Humidity,
			WindSpeed:         item.Wind.Speed,
			DateTimeText:      item.DtTxt,
		}

		if len(item.Weather) > 0 {
			sample.ConditionID = item.Weather[0].ID
			sample.ConditionDescription = item.Weather[0].Description
		}

		samples = append(samples, sample)
	}

	return samples, nil
}
