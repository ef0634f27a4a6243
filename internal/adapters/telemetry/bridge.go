package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/monobase/internal/core/ports"
)

// MetricsBridge implements sdktrace.SpanProcessor to report finished spans as step durations.
type MetricsBridge struct {
	recorder ports.MetricsRecorder
}

// NewMetricsBridge returns a new MetricsBridge.
func NewMetricsBridge(recorder ports.MetricsRecorder) *MetricsBridge {
	return &MetricsBridge{recorder: recorder}
}

// OnStart does nothing.
func (b *MetricsBridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd records the span's duration under its name.
func (b *MetricsBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.recorder == nil {
		return
	}
	if !s.SpanContext().IsValid() {
		return
	}
	b.recorder.ObserveStep(s.Name(), s.EndTime().Sub(s.StartTime()), s.Status().Code == codes.Error)
}

// ForceFlush does nothing.
func (b *MetricsBridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *MetricsBridge) Shutdown(_ context.Context) error {
	return nil
}
