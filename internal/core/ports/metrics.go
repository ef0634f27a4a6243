package ports

import "time"

// MetricsRecorder collects build statistics and exports them for a node exporter.
//
//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type MetricsRecorder interface {
	// ObserveGeneration records one generation build.
	ObserveGeneration(id int, skipped bool, venvs int, d time.Duration)
	// ObserveStep records the duration of one traced step.
	ObserveStep(name string, d time.Duration, failed bool)
	// ObserveDiskUsage records the size of a directory under the prefix.
	ObserveDiskUsage(dir string, bytes int64)
	// WriteTextfile writes every recorded metric to path in the text exposition format.
	WriteTextfile(path string) error
}
