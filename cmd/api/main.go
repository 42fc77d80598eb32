// Package main is the entrypoint for the hello-ecr API server.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hello-ecr/hello-ecr/internal/config"
	"github.com/hello-ecr/hello-ecr/internal/metrics"
	"github.com/hello-ecr/hello-ecr/internal/router"
	"github.com/hello-ecr/hello-ecr/internal/server"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg, os.Stdout)

	opts := router.Options{
		Config:  cfg,
		Logger:  logger,
		Metrics: metrics.NewNoop(),
	}
	if cfg.MetricsEnabled {
		recorder := metrics.NewPrometheus("hello_ecr")
		opts.Metrics = recorder
		opts.Exposer = recorder
	}

	srv := server.New(router.New(opts), server.Options{
		Addr:            cfg.Addr(),
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		IdleTimeout:     cfg.IdleTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, logger)

	logger.Info("starting server",
		"port", cfg.Port,
		"env", cfg.Environment,
		"version", config.Version,
		"metrics", cfg.MetricsEnabled,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	var h slog.Handler

	opts := &slog.HandlerOptions{
		Level:     parseLogLevel(cfg.Level()),
		AddSource: cfg.IsDevelopment(),
	}

	if cfg.Format() == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(h).With("service", "hello-ecr")
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
