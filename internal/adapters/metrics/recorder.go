// Package metrics records build statistics for the node exporter textfile collector.
package metrics

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/monobase/internal/core/domain"
	"go.trai.ch/zerr"
)

const namespace = "monobase"

// Recorder implements ports.MetricsRecorder on a private registry.
type Recorder struct {
	registry *prometheus.Registry

	generationsTotal  *prometheus.CounterVec
	generationVenvs   *prometheus.GaugeVec
	generationSeconds *prometheus.GaugeVec
	stepDuration      *prometheus.HistogramVec
	diskUsage         *prometheus.GaugeVec
	lastSuccess       prometheus.Gauge

	now func() time.Time
}

// New creates a Recorder with every collector registered.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		generationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "generation",
				Name:      "builds_total",
				Help:      "Total number of generations processed",
			},
			[]string{"result"},
		),
		generationVenvs: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "generation",
				Name:      "venvs",
				Help:      "Number of venvs installed by a generation",
			},
			[]string{"generation"},
		),
		generationSeconds: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "generation",
				Name:      "build_seconds",
				Help:      "Wall time spent building a generation",
			},
			[]string{"generation"},
		),
		stepDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "step",
				Name:      "duration_seconds",
				Help:      "Duration of build steps in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.5, 4, 8),
			},
			[]string{"step", "status"},
		),
		diskUsage: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "disk_usage_bytes",
				Help:      "Size of a directory under the install prefix",
			},
			[]string{"dir"},
		),
		lastSuccess: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "last_build_timestamp_seconds",
				Help:      "Unix time of the last recorded generation build",
			},
		),
		now: time.Now,
	}
	r.registry.MustRegister(
		r.generationsTotal,
		r.generationVenvs,
		r.generationSeconds,
		r.stepDuration,
		r.diskUsage,
		r.lastSuccess,
	)
	return r
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ObserveGeneration records one generation build.
func (r *Recorder) ObserveGeneration(id int, skipped bool, venvs int, d time.Duration) {
	result := "built"
	if skipped {
		result = "skipped"
	}
	r.generationsTotal.WithLabelValues(result).Inc()
	if skipped {
		return
	}
	gen := strconv.Itoa(id)
	r.generationVenvs.WithLabelValues(gen).Set(float64(venvs))
	r.generationSeconds.WithLabelValues(gen).Set(d.Seconds())
	r.lastSuccess.Set(float64(r.now().Unix()))
}

// ObserveStep records the duration of one traced step.
func (r *Recorder) ObserveStep(name string, d time.Duration, failed bool) {
	status := "ok"
	if failed {
		status = "error"
	}
	r.stepDuration.WithLabelValues(name, status).Observe(d.Seconds())
}

// ObserveDiskUsage records the size of a directory under the prefix.
func (r *Recorder) ObserveDiskUsage(dir string, bytes int64) {
	r.diskUsage.WithLabelValues(dir).Set(float64(bytes))
}

// WriteTextfile writes every recorded metric to path, creating its parent directory.
func (r *Recorder) WriteTextfile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrMetricsWriteFailed, err.Error()), "path", path)
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrMetricsWriteFailed, err.Error()), "path", path)
	}
	return nil
}
