package api

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"
	"strconv"

	"weather-report/forecast"
	"weather-report/lookup"
	"weather-report/models"
)

//go:embed templates/page.html
var pageSource string

var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"celsius": forecast.FormatCelsius,
	"speed":   formatSpeed,
}).Parse(pageSource))

// pageData feeds templates/page.html
type pageData struct {
	Marquee string
	History []string
	Error   string
	Report  *models.Report
}

// formatSpeed prints wind speed as received, without padding
func formatSpeed(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// handlePage renders the report page. A request may carry one action:
// city=<name>, lat=&lon=, or geo_error=<reason> when the browser could not
// provide a position. The latest successful report stays on screen when an
// action fails.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var err error
	switch {
	case q.Has("geo_error"):
		err = lookup.GeolocationError(q.Get("geo_error"))
	case q.Has("lat") || q.Has("lon"):
		_, err = s.lookupCoordinates(r, q)
	case q.Has("city"):
		_, err = s.lookup.ByCity(r.Context(), q.Get("city"))
	}

	data := pageData{Marquee: s.marquee.Current()}

	status := http.StatusOK
	if err != nil {
		data.Error = lookup.UserMessage(err)
		status = statusFor(err)
	}

	if report, ok := s.lookup.State().Latest(); ok {
		data.Report = &report
	}

	history, herr := s.lookup.History(r.Context())
	if herr != nil {
		s.logger.Error("failed to read history", "error", herr)
	}
	data.History = history

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		s.logger.Error("failed to render page", "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
