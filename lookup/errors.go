package lookup

import (
	"errors"
	"strings"
)

var (
	// ErrCityRequired is returned when the city input is empty after trimming
	ErrCityRequired = errors.New("city name required")
	// ErrInvalidCity is returned when any part of a city lookup fails
	ErrInvalidCity = errors.New("invalid city")
	// ErrFetchFailed is returned when any part of a coordinates lookup fails
	ErrFetchFailed = errors.New("could not fetch weather data")
	// ErrLocationUnavailable is returned when the client position is denied, unavailable or invalid
	ErrLocationUnavailable = errors.New("location unavailable")
	// ErrGeolocationUnsupported is returned when the client cannot provide a position at all
	ErrGeolocationUnsupported = errors.New("geolocation not supported")
)

var userMessages = []struct {
	err     error
	message string
}{
	{ErrCityRequired, "Enter a City Name..."},
	{ErrInvalidCity, "Enter a Valid City Name..."},
	{ErrFetchFailed, "Could not fetch weather data"},
	{ErrLocationUnavailable, "Cannot retrieve location"},
	{ErrGeolocationUnsupported, "Geolocation not supported"},
}

// UserMessage maps err to the message shown to the user. Errors outside the
// known categories are reported as a failed fetch; nil maps to "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	for _, m := range userMessages {
		if errors.Is(err, m.err) {
			return m.message
		}
	}
	return "Could not fetch weather data"
}

// GeolocationError converts a failure reported by the client into an error.
// "unsupported" means the client has no geolocation; every other reason
// (denied, timeout, unavailable) means the position could not be read.
func GeolocationError(reason string) error {
	if strings.EqualFold(strings.TrimSpace(reason), "unsupported") {
		return ErrGeolocationUnsupported
	}
	return ErrLocationUnavailable
}
