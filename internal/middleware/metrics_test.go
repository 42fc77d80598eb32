package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/hello-ecr/hello-ecr/internal/metrics"
)

func TestMetrics_LabelsByRoutePattern(t *testing.T) {
	recorder := metrics.NewInMemory()

	r := chi.NewRouter()
	r.Use(Metrics(recorder))
	r.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, path := range []string{"/items/1", "/items/2", "/missing"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	snap := recorder.Snapshot()

	if got := snap.Requests[metrics.RequestKey(http.MethodGet, "/items/{id}", http.StatusOK)]; got != 2 {
		t.Errorf("pattern requests = %d, want 2", got)
	}
	if got := snap.Requests[metrics.RequestKey(http.MethodGet, metrics.UnmatchedRoute, http.StatusNotFound)]; got != 1 {
		t.Errorf("unmatched requests = %d, want 1", got)
	}
	if snap.RequestDurationCount != 3 {
		t.Errorf("duration count = %d, want 3", snap.RequestDurationCount)
	}
}

func TestRoutePattern_NoRouteContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := routePattern(req); got != metrics.UnmatchedRoute {
		t.Errorf("routePattern = %q, want %q", got, metrics.UnmatchedRoute)
	}
}
