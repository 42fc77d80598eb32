package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"runtime/debug"

	"github.com/hello-ecr/hello-ecr/internal/metrics"
)

// RecovererConfig configures the Recoverer middleware.
type RecovererConfig struct {
	Logger *slog.Logger
	// Metrics counts recovered panics. Nil disables counting.
	Metrics metrics.Recorder
	// PrintStack also writes the stack to stderr (development only).
	PrintStack bool
}

// Recoverer is a middleware that recovers from panics.
// It logs the panic and returns a generic JSON 500; no detail of the
// failure reaches the client.
func Recoverer(cfg RecovererConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				// net/http uses this sentinel to abort a response silently.
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				stack := debug.Stack()

				cfg.Logger.Error("internal server error",
					slog.String("request_id", GetRequestID(r.Context())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("error", fmt.Sprint(rvr)),
					slog.String("stack", string(stack)),
				)

				if cfg.PrintStack {
					os.Stderr.Write(stack)
				}

				if cfg.Metrics != nil {
					cfg.Metrics.IncPanicRecovered()
				}

				writeError(w, http.StatusInternalServerError, map[string]string{
					"error": "Internal Server Error",
				})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
