package ports

import "context"

//go:generate mockgen -source=optimize.go -destination=mocks/mock_optimize.go -package=mocks

// LinkCacheGenerator writes a shared-library resolution cache over a set of directories.
type LinkCacheGenerator interface {
	Generate(ctx context.Context, cacheFile string, dirs []string) error
}

// Deduplicator hardlinks identical files of at least minSize bytes across roots.
type Deduplicator interface {
	Dedup(ctx context.Context, roots []string, minSize int64) error
}
