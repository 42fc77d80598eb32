package metrics

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	// Requests is keyed by "METHOD route status", e.g. "GET /health 200".
	Requests             map[string]uint64
	RequestDurationCount uint64
	RequestDurationTotal time.Duration
	EchoPayloads         map[string]uint64
	PanicsRecovered      uint64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	mu           sync.Mutex
	requests     map[string]uint64
	echoPayloads map[string]uint64

	durationCount   uint64
	durationTotalNs int64
	panics          uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{
		requests:     make(map[string]uint64),
		echoPayloads: make(map[string]uint64),
	}
}

// RequestKey builds the Snapshot.Requests key for a request.
func RequestKey(method, route string, status int) string {
	return fmt.Sprintf("%s %s %d", method, route, status)
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	m.mu.Lock()
	requests := make(map[string]uint64, len(m.requests))
	for k, v := range m.requests {
		requests[k] = v
	}
	echo := make(map[string]uint64, len(m.echoPayloads))
	for k, v := range m.echoPayloads {
		echo[k] = v
	}
	m.mu.Unlock()

	return Snapshot{
		Requests:             requests,
		RequestDurationCount: atomic.LoadUint64(&m.durationCount),
		RequestDurationTotal: time.Duration(atomic.LoadInt64(&m.durationTotalNs)),
		EchoPayloads:         echo,
		PanicsRecovered:      atomic.LoadUint64(&m.panics),
	}
}

// ObserveHTTPRequest counts the request and records its duration.
func (m *InMemoryRecorder) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.mu.Lock()
	m.requests[RequestKey(method, route, status)]++
	m.mu.Unlock()

	atomic.AddUint64(&m.durationCount, 1)
	atomic.AddInt64(&m.durationTotalNs, duration.Nanoseconds())
}

// IncEchoPayload increments the echo outcome counter.
func (m *InMemoryRecorder) IncEchoPayload(outcome string) {
	m.mu.Lock()
	m.echoPayloads[outcome]++
	m.mu.Unlock()
}

// IncPanicRecovered increments the recovered panic counter.
func (m *InMemoryRecorder) IncPanicRecovered() {
	atomic.AddUint64(&m.panics, 1)
}
