// Package handler provides HTTP request handlers.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/hello-ecr/hello-ecr/internal/config"
	"github.com/hello-ecr/hello-ecr/internal/metrics"
)

// TimestampLayout renders UTC instants as ISO-8601 with microseconds and a trailing Z.
const TimestampLayout = "2006-01-02T15:04:05.000000Z"

// Handler holds the read-only dependencies shared by all handlers.
type Handler struct {
	environment string
	logger      *slog.Logger
	metrics     metrics.Recorder
	now         func() time.Time
}

// New creates a new Handler instance.
func New(environment string, logger *slog.Logger, recorder metrics.Recorder) *Handler {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &Handler{
		environment: environment,
		logger:      logger,
		metrics:     recorder,
		now:         time.Now,
	}
}

// timestamp returns a freshly generated UTC timestamp.
func (h *Handler) timestamp() string {
	return h.now().UTC().Format(TimestampLayout)
}

// RootResponse is the body of GET /.
type RootResponse struct {
	Message     string `json:"message"`
	Environment string `json:"environment"`
	Version     string `json:"version"`
	Timestamp   string `json:"timestamp"`
}

// Root greets the caller with service metadata.
// GET /
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, RootResponse{
		Message:     "Hello from ECS Fargate with Go chi!",
		Environment: h.environment,
		Version:     config.Version,
		Timestamp:   h.timestamp(),
	})
}

// InfoResponse is the body of GET /api/info.
type InfoResponse struct {
	Service     string            `json:"service"`
	Language    string            `json:"language"`
	Framework   string            `json:"framework"`
	Version     string            `json:"version"`
	Environment string            `json:"environment"`
	Endpoints   map[string]string `json:"endpoints"`
}

// endpoints describes the public routes listed by GET /api/info.
var endpoints = map[string]string{
	"/":         "Root endpoint",
	"/health":   "Health check",
	"/api/info": "API information",
	"/api/echo": "Echo endpoint (POST)",
}

// Info describes the service and its endpoints.
// GET /api/info
func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, InfoResponse{
		Service:     "ECS Fargate Application",
		Language:    "Go",
		Framework:   "chi",
		Version:     config.Version,
		Environment: h.environment,
		Endpoints:   endpoints,
	})
}

// ErrorResponse is the body of every 4xx/5xx produced by this package.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Path    string `json:"path,omitempty"`
	Method  string `json:"method,omitempty"`
}

// NotFound handles 404 responses.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, ErrorResponse{
		Error:  "Not Found",
		Path:   r.URL.Path,
		Method: r.Method,
	})
}

// MethodNotAllowed handles 405 responses.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{
		Error:  "Method Not Allowed",
		Path:   r.URL.Path,
		Method: r.Method,
	})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// The status line is already out; an encode error here means the client went away.
	_ = json.NewEncoder(w).Encode(data)
}
