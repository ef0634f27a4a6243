// Package pget downloads archives with the pget parallel downloader.
package pget

import (
	"context"
	"os"

	"go.trai.ch/monobase/internal/core/domain"
	"go.trai.ch/monobase/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultBinary is the pget executable looked up on PATH.
const DefaultBinary = "pget"

// partialSuffix marks a download in progress. Only complete files get the final name.
const partialSuffix = ".partial"

var _ ports.Fetcher = (*Fetcher)(nil)

// Fetcher implements ports.Fetcher.
type Fetcher struct {
	runner ports.CommandRunner
	binary string
}

// New creates a Fetcher running the given pget binary. An empty binary uses DefaultBinary.
func New(runner ports.CommandRunner, binary string) *Fetcher {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Fetcher{runner: runner, binary: binary}
}

// Fetch downloads url to dest.
func (f *Fetcher) Fetch(ctx context.Context, url, dest string) error {
	tmp := dest + partialSuffix
	if err := os.Remove(tmp); err != nil && !os.IsNotExist(err) {
		return zerr.With(zerr.Wrap(err, "failed to remove stale download"), "path", tmp)
	}

	if _, err := f.runner.Run(ctx, domain.Command{
		Name: f.binary,
		Args: []string{"--force", url, tmp},
	}); err != nil {
		return zerr.With(zerr.Wrap(err, "download failed"), "url", url)
	}

	if err := os.Rename(tmp, dest); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to finalize download"), "path", dest)
	}
	return nil
}
