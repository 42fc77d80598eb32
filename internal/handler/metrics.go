package handler

import (
	"net/http"
)

// MetricsExposer serves collected metrics in a scrapeable format.
type MetricsExposer interface {
	Handler() http.Handler
}

// MetricsHandler exposes collected metrics.
type MetricsHandler struct {
	exposer MetricsExposer
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(exposer MetricsExposer) *MetricsHandler {
	return &MetricsHandler{exposer: exposer}
}

// Metrics returns metrics in Prometheus exposition format.
//
// GET /metrics
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.exposer == nil {
		writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{
			Error: "Metrics Unavailable",
		})
		return
	}

	h.exposer.Handler().ServeHTTP(w, r)
}
