package ports

import "go.trai.ch/monobase/internal/core/domain"

//go:generate mockgen -source=tracker.go -destination=mocks/mock_tracker.go -package=mocks

// TreeHasher fingerprints the structure of a directory tree.
type TreeHasher interface {
	// ShapeHash hashes the sorted relative paths under dir, skipping completion markers.
	ShapeHash(dir string) (string, error)
}

// CompletionTracker decides whether a directory's unit of work can be trusted as finished.
type CompletionTracker interface {
	// IsComplete reports whether dir carries a marker whose tree hash still matches.
	IsComplete(dir string) bool
	// RequireCompleteOrReset returns true when dir is complete.
	// Otherwise it removes dir, if present, and returns false.
	RequireCompleteOrReset(dir string) (bool, error)
	// MarkComplete writes the marker of dir. It must be called after every write to dir.
	MarkComplete(dir, kind string, attrs map[string]string) error
	// Marker reads the marker of dir. It returns nil, nil when there is none.
	Marker(dir string) (*domain.CompletionMarker, error)
}
