// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus or keep them in memory for tests.
type Recorder interface {
	// ObserveHTTPRequest records one served request. route is the matched
	// route pattern, or UnmatchedRoute when nothing matched.
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)

	// IncEchoPayload counts echo bodies by outcome: "accepted", "malformed" or "too_large".
	IncEchoPayload(outcome string)

	// IncPanicRecovered counts handler panics turned into 500 responses.
	IncPanicRecovered()
}

// UnmatchedRoute labels requests that did not match any registered route.
const UnmatchedRoute = "unmatched"
