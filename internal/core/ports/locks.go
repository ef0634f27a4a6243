package ports

import "go.trai.ch/monobase/internal/core/domain"

// LockStore reads and writes the resolved venv locks that sit next to the generation manifests.
// An empty dir selects the locks compiled into the binary, which are read-only.
//
//go:generate mockgen -source=locks.go -destination=mocks/mock_locks.go -package=mocks
type LockStore interface {
	// Read returns the pins of one venv lock. A missing lock fails with domain.ErrLockMissing.
	Read(dir string, ref domain.LockRef) ([]domain.Requirement, error)
	// Venvs lists the venvs locked for a generation, sorted by name.
	Venvs(dir string, env domain.Environment, id int) ([]string, error)
	// WriteGeneration replaces every lock of a generation with locks, keyed by venv name.
	WriteGeneration(dir string, env domain.Environment, id int, locks map[string]string) error
	// SetLatest points the environment's latest lock pointer at id.
	SetLatest(dir string, env domain.Environment, id int) error
	// WriteFile writes a file relative to dir, such as the version matrix.
	WriteFile(dir, name string, data []byte) error
}
