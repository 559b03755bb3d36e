package forecast

import (
	"math"
	"strconv"
	"time"

	"weather-report/models"
)

const kelvinOffset = 273.15

// dateTimeTextLayout is the layout of the upstream dt_txt field
const dateTimeTextLayout = "2006-01-02 15:04:05"

// Celsius converts a Kelvin temperature to Celsius
func Celsius(kelvin float64) float64 {
	return kelvin - kelvinOffset
}

// FormatCelsius renders a Celsius temperature with one decimal place.
// Exact halves (-3.25, 0.75) round away from zero; every other value rounds
// to the nearest tenth of its exact binary value.
func FormatCelsius(celsius float64) string {
	// Only multiples of 0.25 with an odd numerator sit exactly between two tenths
	if q := celsius * 4; q == math.Trunc(q) && math.Mod(q, 2) != 0 {
		celsius = math.Round(celsius*10) / 10
	}
	return strconv.FormatFloat(celsius, 'f', 1, 64)
}

// DateLabel renders the date of a forecast sample as M/D/YYYY.
// The dt_txt field is preferred; the timestamp is used when it is missing or malformed.
func DateLabel(sample models.WeatherSample) string {
	if t, err := time.Parse(dateTimeTextLayout, sample.DateTimeText); err == nil {
		return t.Format("1/2/2006")
	}
	return sample.Time().Format("1/2/2006")
}

// CurrentDateLabel renders now as D-M-YYYY
func CurrentDateLabel(now time.Time) string {
	return now.Format("2-1-2006")
}
