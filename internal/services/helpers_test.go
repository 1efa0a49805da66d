package services

import (
	"io"
	"log/slog"
	"sync"
	"time"
)

// stubMetrics counts metric calls without touching the prometheus
// registry, so tests can construct services as often as they like.
type stubMetrics struct {
	mu       sync.Mutex
	counters map[string]int
}

func newStubMetrics() *stubMetrics {
	return &stubMetrics{counters: make(map[string]int)}
}

func (m *stubMetrics) IncrementCounter(name string, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[name]++
}

func (m *stubMetrics) RecordProcessingTime(name string, duration time.Duration) {}

func (m *stubMetrics) RecordGauge(name string, value float64, tags map[string]string) {}

func (m *stubMetrics) count(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counters[name]
}

func newTestPipelineLogger() PipelineLoggerInterface {
	return NewPipelineLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
