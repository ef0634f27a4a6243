package fs

import (
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/monobase/internal/core/domain"
	"go.trai.ch/monobase/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TreeHasher = (*ShapeHasher)(nil)

// ShapeHasher fingerprints the set of paths in a tree. File contents are not read.
type ShapeHasher struct {
	walker *Walker
}

// NewShapeHasher creates a new ShapeHasher.
func NewShapeHasher(walker *Walker) *ShapeHasher {
	return &ShapeHasher{walker: walker}
}

// ShapeHash hashes the sorted "./"-prefixed relative paths of every entry under dir,
// skipping completion markers at any depth.
func (h *ShapeHasher) ShapeHash(dir string) (string, error) {
	var walkErr error
	var entries []string
	for e := range h.walker.WalkTree(dir, []string{domain.MarkerFileName}, &walkErr) {
		entries = append(entries, "./"+e.Rel)
	}
	if walkErr != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrTreeHashFailed, walkErr.Error()), "dir", dir)
	}

	slices.Sort(entries)

	hasher := xxhash.New()
	for _, e := range entries {
		_, _ = hasher.WriteString(e)
		_, _ = hasher.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}
