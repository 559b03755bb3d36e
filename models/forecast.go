package models

import (
	"time"
)

// DailySummary is one display-ready forecast entry derived from a single sample
type DailySummary struct {
	Sample             WeatherSample `json:"sample"`             // sample chosen to represent the day
	TemperatureCelsius float64       `json:"temperatureCelsius"` // derived from Sample.TemperatureKelvin
	Glyph              string        `json:"glyph"`              // derived from Sample.ConditionID
	DateLabel          string        `json:"dateLabel"`          // derived from Sample.DateTimeText
}

// ForecastSelection holds at most one DailySummary per future calendar day, in chronological order
type ForecastSelection []DailySummary

// CurrentSummary is the display-ready form of the current conditions
type CurrentSummary struct {
	Conditions         CurrentConditions `json:"conditions"`
	TemperatureCelsius float64           `json:"temperatureCelsius"`
	Glyph              string            `json:"glyph"`
	DateLabel          string            `json:"dateLabel"` // date of the lookup, D-M-YYYY
}

// Report is the result of one successful lookup
type Report struct {
	City      string            `json:"city"`
	Current   CurrentSummary    `json:"current"`
	Forecast  ForecastSelection `json:"forecast"`
	FetchedAt time.Time         `json:"fetchedAt"`
}
