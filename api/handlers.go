package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"weather-report/lookup"
	"weather-report/models"
	"weather-report/providers/openweathermap"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeLookupError reports err with the user-facing message for its category
func writeLookupError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), map[string]string{"error": lookup.UserMessage(err)})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, lookup.ErrCityRequired),
		errors.Is(err, lookup.ErrLocationUnavailable),
		errors.Is(err, lookup.ErrGeolocationUnsupported):
		return http.StatusBadRequest
	case openweathermap.IsNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

// handleWeatherByCity handles GET /api/weather?city=
func (s *Server) handleWeatherByCity(w http.ResponseWriter, r *http.Request) {
	report, err := s.lookup.ByCity(r.Context(), r.URL.Query().Get("city"))
	if err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// handleWeatherByCoordinates handles GET /api/weather/coords?lat=&lon=.
// A client that could not obtain a position passes error=<reason> instead.
func (s *Server) handleWeatherByCoordinates(w http.ResponseWriter, r *http.Request) {
	report, err := s.lookupCoordinates(r, r.URL.Query())
	if err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) lookupCoordinates(r *http.Request, q url.Values) (models.Report, error) {
	if reason := q.Get("error"); reason != "" {
		return models.Report{}, lookup.GeolocationError(reason)
	}

	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil {
		return models.Report{}, lookup.ErrLocationUnavailable
	}
	lon, err := strconv.ParseFloat(q.Get("lon"), 64)
	if err != nil {
		return models.Report{}, lookup.ErrLocationUnavailable
	}

	return s.lookup.ByCoordinates(r.Context(), lat, lon)
}

// handleLatest returns the most recent successful report
func (s *Server) handleLatest(w http.ResponseWriter, r *http.Request) {
	report, ok := s.lookup.State().Latest()
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no weather looked up yet"})
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// handleHistory returns the searched cities in insertion order
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := s.lookup.History(r.Context())
	if err != nil {
		s.logger.Error("failed to read history", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to read history"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"history": entries,
		"count":   len(entries),
	})
}

// handleMarquee returns the city currently on display
func (s *Server) handleMarquee(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, marqueeMessage{City: s.marquee.Current()})
}

// handleHealthCheck provides a simple health check endpoint
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
