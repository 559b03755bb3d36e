package forecast

import (
	"math"
	"testing"
	"time"

	"weather-report/models"
)

func TestGlyph(t *testing.T) {
	tests := []struct {
		name        string
		conditionID int
		expected    string
	}{
		{"thunderstorm", 210, "⚡"},
		{"thunderstorm lower bound", 200, "⚡"},
		{"thunderstorm upper bound", 299, "⚡"},
		{"drizzle", 321, "🌦️"},
		{"rain", 500, "🌨️"},
		{"snow", 601, "❄️"},
		{"atmosphere", 741, "🌁"},
		{"clear", 800, "☀️"},
		{"clouds", 802, "🌤️"},
		{"clouds upper bound", 809, "🌤️"},
		{"gap between drizzle and rain", 450, "❔"},
		{"above clouds family", 810, "❔"},
		{"unknown", 999, "❔"},
		{"zero", 0, "❔"},
		{"negative", -1, "❔"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Glyph(tt.conditionID); got != tt.expected {
				t.Errorf("Glyph(%d) = %q, want %q", tt.conditionID, got, tt.expected)
			}
		})
	}
}

func TestClassifyClearBeforeClouds(t *testing.T) {
	if got := Classify(800); got != Clear {
		t.Errorf("Classify(800) = %v, want %v", got, Clear)
	}
	if got := Classify(801); got != Clouds {
		t.Errorf("Classify(801) = %v, want %v", got, Clouds)
	}
}

func TestCelsius(t *testing.T) {
	tests := []struct {
		kelvin   float64
		expected float64
	}{
		{300.15, 27.0},
		{273.15, 0},
		{0, -273.15},
		{255.372, -17.778},
	}

	for _, tt := range tests {
		if got := Celsius(tt.kelvin); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("Celsius(%v) = %v, want %v", tt.kelvin, got, tt.expected)
		}
	}

	if got := Celsius(300.15); got != 27.0 {
		t.Errorf("Celsius(300.15) = %v, want exactly 27", got)
	}
}

func TestFormatCelsius(t *testing.T) {
	tests := []struct {
		celsius  float64
		expected string
	}{
		{27.0, "27.0"},
		{Celsius(284.26), "11.1"},
		{-3.25, "-3.3"},
		{3.25, "3.3"},
		{0.75, "0.8"},
		{-0.25, "-0.3"},
		{2.5, "2.5"},
		{0.15, "0.1"},
		{-0.04, "-0.0"},
		{0, "0.0"},
	}

	for _, tt := range tests {
		if got := FormatCelsius(tt.celsius); got != tt.expected {
			t.Errorf("FormatCelsius(%v) = %q, want %q", tt.celsius, got, tt.expected)
		}
	}
}

func TestDateLabel(t *testing.T) {
	sample := models.WeatherSample{DateTimeText: "2024-03-11 12:00:00"}
	if got := DateLabel(sample); got != "3/11/2024" {
		t.Errorf("DateLabel() = %q, want 3/11/2024", got)
	}

	// Falls back to the timestamp when dt_txt is malformed
	ts := time.Date(2024, time.December, 1, 12, 0, 0, 0, time.Local)
	sample = models.WeatherSample{Timestamp: ts.Unix(), DateTimeText: "not a date"}
	if got := DateLabel(sample); got != "12/1/2024" {
		t.Errorf("DateLabel() fallback = %q, want 12/1/2024", got)
	}
}

func TestCurrentDateLabel(t *testing.T) {
	now := time.Date(2024, time.March, 5, 18, 30, 0, 0, time.UTC)
	if got := CurrentDateLabel(now); got != "5-3-2024" {
		t.Errorf("CurrentDateLabel() = %q, want 5-3-2024", got)
	}
}

func TestSummarizeCurrent(t *testing.T) {
	now := time.Date(2024, time.March, 5, 18, 30, 0, 0, time.UTC)
	conditions := models.CurrentConditions{
		City:   "Paris",
		Sample: models.WeatherSample{TemperatureKelvin: 283.15, ConditionID: 211},
	}

	summary := SummarizeCurrent(conditions, now)
	if math.Abs(summary.TemperatureCelsius-10) > 1e-9 {
		t.Errorf("expected 10°C, got %v", summary.TemperatureCelsius)
	}
	if summary.Glyph != Thunderstorm.Glyph {
		t.Errorf("expected thunderstorm glyph, got %q", summary.Glyph)
	}
	if summary.DateLabel != "5-3-2024" {
		t.Errorf("expected date label 5-3-2024, got %q", summary.DateLabel)
	}
	if summary.Conditions.City != "Paris" {
		t.Errorf("expected conditions to be carried over, got %+v", summary.Conditions)
	}
}
