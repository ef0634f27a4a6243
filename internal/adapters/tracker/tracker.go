// Package tracker implements completion markers for managed directories.
package tracker

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/monobase/internal/core/domain"
	"go.trai.ch/monobase/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CompletionTracker = (*Tracker)(nil)

// Tracker implements ports.CompletionTracker with a JSON marker file per directory.
type Tracker struct {
	hasher ports.TreeHasher
	now    func() time.Time
}

// New creates a Tracker that fingerprints directories with hasher.
func New(hasher ports.TreeHasher) *Tracker {
	return &Tracker{
		hasher: hasher,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// IsComplete reports whether dir has a readable marker whose tree hash equals a fresh one.
// An absent, unreadable or stale marker is not an error, just incomplete.
func (t *Tracker) IsComplete(dir string) bool {
	marker, err := t.Marker(dir)
	if err != nil || marker == nil {
		return false
	}
	hash, err := t.hasher.ShapeHash(dir)
	if err != nil {
		return false
	}
	return hash == marker.TreeHash
}

// RequireCompleteOrReset returns true if dir is complete, otherwise removes it.
func (t *Tracker) RequireCompleteOrReset(dir string) (bool, error) {
	if t.IsComplete(dir) {
		return true, nil
	}
	if err := os.RemoveAll(dir); err != nil {
		return false, zerr.With(zerr.Wrap(domain.ErrResetFailed, err.Error()), "dir", dir)
	}
	return false, nil
}

// MarkComplete writes the marker of dir with a fresh tree hash.
func (t *Tracker) MarkComplete(dir, kind string, attrs map[string]string) error {
	hash, err := t.hasher.ShapeHash(dir)
	if err != nil {
		return err
	}

	if attrs == nil {
		attrs = map[string]string{}
	}
	marker := domain.CompletionMarker{
		Timestamp:  t.now(),
		TreeHash:   hash,
		Kind:       kind,
		Attributes: attrs,
	}

	data, err := json.MarshalIndent(marker, "", "  ")
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrMarkerWriteFailed, err.Error()), "dir", dir)
	}
	data = append(data, '\n')

	//nolint:gosec // Path is constructed from a managed directory
	if err := os.WriteFile(markerPath(dir), data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrMarkerWriteFailed, err.Error()), "dir", dir)
	}
	return nil
}

// Marker reads the marker of dir. It returns nil, nil when dir has none.
func (t *Tracker) Marker(dir string) (*domain.CompletionMarker, error) {
	//nolint:gosec // Path is constructed from a managed directory
	data, err := os.ReadFile(markerPath(dir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrMarkerReadFailed, err.Error()), "dir", dir)
	}

	var marker domain.CompletionMarker
	if err := json.Unmarshal(data, &marker); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrMarkerReadFailed, err.Error()), "dir", dir)
	}
	return &marker, nil
}

func markerPath(dir string) string {
	return filepath.Join(dir, domain.MarkerFileName)
}
