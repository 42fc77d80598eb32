package handler

import (
	"net/http"

	"github.com/hello-ecr/hello-ecr/internal/config"
)

// HealthStatusHealthy is the only status this service reports.
const HealthStatusHealthy = "healthy"

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
	Version     string `json:"version"`
	Timestamp   string `json:"timestamp"`
}

// Health is the load balancer health check.
// The service holds no dependencies, so a running process is a healthy one.
//
// GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:      HealthStatusHealthy,
		Environment: h.environment,
		Version:     config.Version,
		Timestamp:   h.timestamp(),
	})
}
