package observability

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordLookup(t *testing.T) {
	beforeOK := testutil.ToFloat64(LookupCounter.WithLabelValues("city", "success"))
	beforeErr := testutil.ToFloat64(LookupCounter.WithLabelValues("city", "error"))

	RecordLookup("city", nil)
	RecordLookup("city", errors.New("boom"))
	RecordLookup("city", errors.New("boom"))

	if got := testutil.ToFloat64(LookupCounter.WithLabelValues("city", "success")) - beforeOK; got != 1 {
		t.Errorf("expected 1 success, got %v", got)
	}
	if got := testutil.ToFloat64(LookupCounter.WithLabelValues("city", "error")) - beforeErr; got != 2 {
		t.Errorf("expected 2 errors, got %v", got)
	}
}

func TestMiddlewareUsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	counter := RequestCounter.WithLabelValues("/items/{id}", http.MethodGet, "418")
	before := testutil.ToFloat64(counter)

	for _, path := range []string{"/items/1", "/items/2"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusTeapot {
			t.Fatalf("unexpected status %d", rec.Code)
		}
	}

	if got := testutil.ToFloat64(counter) - before; got != 2 {
		t.Errorf("expected 2 requests under the route pattern, got %v", got)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	RecordLookup("coords", nil)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if !strings.Contains(rec.Body.String(), "weather_report_lookups_total") {
		t.Error("expected lookup counter in metrics output")
	}
}
