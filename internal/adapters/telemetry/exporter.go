package telemetry

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/monobase/internal/core/ports"
	"go.trai.ch/zerr"
)

// endpointEnv lists the variables that turn on span export. The exporter reads them itself.
var endpointEnv = []string{"OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT"}

// ExportEnabled reports whether an OTLP endpoint is configured in the environment read by getenv.
func ExportEnabled(getenv func(string) string) bool {
	for _, k := range endpointEnv {
		if getenv(k) != "" {
			return true
		}
	}
	return false
}

// NewTracerProvider returns a provider that reports step durations to recorder and,
// when an OTLP endpoint is configured, batches spans with their output to it over HTTP.
func NewTracerProvider(
	ctx context.Context,
	recorder ports.MetricsRecorder,
	getenv func(string) string,
) (*sdktrace.TracerProvider, error) {
	opts := []sdktrace.TracerProviderOption{sdktrace.WithSpanProcessor(NewMetricsBridge(recorder))}
	if ExportEnabled(getenv) {
		exp, err := otlptracehttp.New(ctx)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to create span exporter")
		}
		opts = append(opts, sdktrace.WithBatcher(exp))
	}
	return sdktrace.NewTracerProvider(opts...), nil
}

var (
	installedMu sync.Mutex
	installed   *sdktrace.TracerProvider
)

func install(tp *sdktrace.TracerProvider) {
	installedMu.Lock()
	defer installedMu.Unlock()
	installed = tp
}

// Shutdown flushes pending spans of the provider built by the tracer node and stops it.
// It does nothing when no provider was built.
func Shutdown(ctx context.Context) error {
	installedMu.Lock()
	tp := installed
	installed = nil
	installedMu.Unlock()
	if tp == nil {
		return nil
	}
	if err := tp.Shutdown(ctx); err != nil {
		return zerr.Wrap(err, "failed to flush spans")
	}
	return nil
}
