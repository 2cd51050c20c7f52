package undo

import (
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/undoable/internal/platform/telemetry"
)

// Option configures a History.
type Option func(*History)

// WithMaxDepth bounds the applied stack. When a record pushes it past max,
// the oldest transactions are evicted. Zero or negative means unbounded.
func WithMaxDepth(maxDepth int) Option {
	return func(h *History) {
		if maxDepth < 0 {
			maxDepth = 0
		}
		h.maxDepth = maxDepth
	}
}

// WithMetrics records transition counts and callback durations. A nil
// Metrics disables recording.
func WithMetrics(metrics *telemetry.Metrics) Option {
	return func(h *History) {
		h.metrics = metrics
	}
}

// WithTracerProvider sets the provider used for transition spans. Defaults
// to the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(h *History) {
		if tp != nil {
			h.tracer = tp.Tracer(telemetry.ScopeName + "/undo")
		}
	}
}
