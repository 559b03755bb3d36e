// Package forecast reduces a raw forecast time series to one display-ready
// summary per future calendar day and derives the display values (Celsius
// temperature, condition glyph, date labels) shared with the current
// conditions card.
package forecast

import (
	"time"

	"weather-report/models"
)

// MaxDays is the maximum number of entries in a ForecastSelection
const MaxDays = 5

// SelectDailyForecast picks the first sample of each future calendar day, skipping
// today, using the local time zone of the process to bucket samples into days.
func SelectDailyForecast(samples []models.WeatherSample, today CalendarDay) models.ForecastSelection {
	return SelectDailyForecastIn(samples, today, time.Local)
}

// SelectDailyForecastIn is SelectDailyForecast with an explicit time zone.
//
// Samples are expected in ascending timestamp order, which is how the upstream
// API returns them; the order is not re-verified. The scan stops as soon as
// MaxDays entries have been selected.
func SelectDailyForecastIn(samples []models.WeatherSample, today CalendarDay, loc *time.Location) models.ForecastSelection {
	selection := make(models.ForecastSelection, 0, MaxDays)
	seen := make(map[CalendarDay]struct{}, MaxDays)

	for _, sample := range samples {
		day := DayOf(time.Unix(sample.Timestamp, 0).In(loc))

		if day == today {
			continue
		}
		if _, ok := seen[day]; ok {
			continue
		}

		seen[day] = struct{}{}
		selection = append(selection, Summarize(sample))

		if len(selection) == MaxDays {
			break
		}
	}

	return selection
}

// Summarize derives the display values for a single forecast sample
func Summarize(sample models.WeatherSample) models.DailySummary {
	return models.DailySummary{
		Sample:             sample,
		TemperatureCelsius: Celsius(sample.TemperatureKelvin),
		Glyph:              Glyph(sample.ConditionID),
		DateLabel:          DateLabel(sample),
	}
}

// SummarizeCurrent derives the display values for the current conditions as of now
func SummarizeCurrent(conditions models.CurrentConditions, now time.Time) models.CurrentSummary {
	return models.CurrentSummary{
		Conditions:         conditions,
		TemperatureCelsius: Celsius(conditions.Sample.TemperatureKelvin),
		Glyph:              Glyph(conditions.Sample.ConditionID),
		DateLabel:          CurrentDateLabel(now),
	}
}
