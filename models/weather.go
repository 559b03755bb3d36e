package models

import (
	"time"
)

// WeatherSample represents one raw measurement as returned by the upstream API
type WeatherSample struct {
	Timestamp            int64   `json:"timestamp"`            // seconds since epoch
	TemperatureKelvin    float64 `json:"temperatureKelvin"`    // in Kelvin
	HumidityPercent      int     `json:"humidityPercent"`      // 0-100
	WindSpeed            float64 `json:"windSpeed"`            // in m/s
	ConditionID          int     `json:"conditionId"`          // weather condition code
	ConditionDescription string  `json:"conditionDescription"` // short text description
	DateTimeText         string  `json:"dateTimeText"`         // server-local "2006-01-02 15:04:05"
}

// Time returns the sample timestamp as a time.Time in the local time zone
func (s WeatherSample) Time() time.Time {
	return time.Unix(s.Timestamp, 0)
}

// Coordinates is a geographic position in decimal degrees
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// CurrentConditions represents the current weather at a location
type CurrentConditions struct {
	City        string        `json:"city"`
	Country     string        `json:"country"`
	Coordinates Coordinates   `json:"coordinates"`
	Sample      WeatherSample `json:"sample"`
	Sunrise     time.Time     `json:"sunrise"`
	Sunset      time.Time     `json:"sunset"`
}
