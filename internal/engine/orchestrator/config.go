package orchestrator

import "go.trai.ch/monobase/internal/core/domain"

// Config is the run configuration of the orchestrator. It is built once from CLI flags.
type Config struct {
	Layout   domain.Layout
	CacheDir string
	// ConfigDir and Environment select the venv locks. An empty ConfigDir reads the built-in locks.
	ConfigDir   string
	Environment domain.Environment
	// Parallelism bounds the venv and accelerator worker pools. Values below one mean one.
	Parallelism int
	// SkipAccelerators creates empty, completed toolkit and runtime library directories instead of installing them.
	SkipAccelerators bool
	// DedupMinSize is the smallest file considered for deduplication. Zero means domain.DefaultDedupMinSize.
	DedupMinSize int64
	// FrameworkIndexURL overrides domain.DefaultFrameworkIndexURL.
	FrameworkIndexURL string
}

func (c Config) workers() int {
	return max(c.Parallelism, 1)
}

func (c Config) environment() domain.Environment {
	if c.Environment == "" {
		return domain.EnvProd
	}
	return c.Environment
}

func (c Config) dedupMinSize() int64 {
	if c.DedupMinSize <= 0 {
		return domain.DefaultDedupMinSize
	}
	return c.DedupMinSize
}
