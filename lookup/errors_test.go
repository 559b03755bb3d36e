package lookup

import (
	"errors"
	"fmt"
	"testing"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil", nil, ""},
		{"city required", ErrCityRequired, "Enter a City Name..."},
		{"invalid city wrapped", fmt.Errorf("%w: %w", ErrInvalidCity, errors.New("404")), "Enter a Valid City Name..."},
		{"fetch failed", ErrFetchFailed, "Could not fetch weather data"},
		{"location", ErrLocationUnavailable, "Cannot retrieve location"},
		{"unsupported", ErrGeolocationUnsupported, "Geolocation not supported"},
		{"unknown", errors.New("other"), "Could not fetch weather data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestGeolocationError(t *testing.T) {
	tests := []struct {
		reason   string
		expected error
	}{
		{"unsupported", ErrGeolocationUnsupported},
		{" Unsupported ", ErrGeolocationUnsupported},
		{"denied", ErrLocationUnavailable},
		{"timeout", ErrLocationUnavailable},
		{"", ErrLocationUnavailable},
	}

	for _, tt := range tests {
		if got := GeolocationError(tt.reason); !errors.Is(got, tt.expected) {
			t.Errorf("GeolocationError(%q) = %v, expected %v", tt.reason, got, tt.expected)
		}
	}
}
