// Package router assembles the chi route table and middleware chain.
package router

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/hello-ecr/hello-ecr/internal/config"
	"github.com/hello-ecr/hello-ecr/internal/handler"
	"github.com/hello-ecr/hello-ecr/internal/metrics"
	"github.com/hello-ecr/hello-ecr/internal/middleware"
)

// Options holds the dependencies the router wires into handlers and middleware.
type Options struct {
	Config *config.Config
	Logger *slog.Logger
	// Metrics records per-request metrics. Nil disables recording.
	Metrics metrics.Recorder
	// Exposer serves GET /metrics. Nil leaves the route unregistered.
	Exposer handler.MetricsExposer
}

// New configures the chi router with all routes and middleware.
//
// Middleware runs in this order for every request:
//
//	RealIP -> RequestID -> SecurityHeaders -> Logger -> Metrics -> Recoverer -> CORS -> route
//
// SecurityHeaders sits outside Logger and Recoverer so 404, 405 and
// recovered 500 responses still carry the fixed headers.
func New(opts Options) *chi.Mux {
	recorder := opts.Metrics
	if recorder == nil {
		recorder = metrics.NewNoop()
	}

	h := handler.New(opts.Config.Environment, opts.Logger, recorder)

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.Logger(opts.Logger))
	r.Use(middleware.Metrics(recorder))
	r.Use(middleware.Recoverer(middleware.RecovererConfig{
		Logger:     opts.Logger,
		Metrics:    recorder,
		PrintStack: opts.Config.IsDevelopment(),
	}))
	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	r.Use(chimiddleware.GetHead)

	r.Get("/", h.Root)
	r.Get("/health", h.Health)

	r.Get("/api/info", h.Info)
	r.With(middleware.MaxBodySize(opts.Config.MaxRequestBodySize)).Post("/api/echo", h.Echo)

	if opts.Exposer != nil {
		r.Get("/metrics", handler.NewMetricsHandler(opts.Exposer).Metrics)
	}

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}
