// Package optimize wraps the post-install tools that shrink and speed up a generation.
package optimize

import (
	"context"
	"os"
	"path/filepath"
	"strconv"

	"go.trai.ch/monobase/internal/core/domain"
	"go.trai.ch/monobase/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.LinkCacheGenerator = (*LinkCache)(nil)
	_ ports.Deduplicator       = (*Dedup)(nil)
)

// LinkCache generates a shared-library cache file with ldconfig.
type LinkCache struct {
	runner ports.CommandRunner
	binary string
}

// NewLinkCache creates a LinkCache. An empty binary uses "ldconfig".
func NewLinkCache(runner ports.CommandRunner, binary string) *LinkCache {
	if binary == "" {
		binary = "ldconfig"
	}
	return &LinkCache{runner: runner, binary: binary}
}

// Generate writes the cache of dirs into cacheFile, creating its parent directory.
func (l *LinkCache) Generate(ctx context.Context, cacheFile string, dirs []string) error {
	if err := os.MkdirAll(filepath.Dir(cacheFile), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create link cache directory"), "path", cacheFile)
	}

	args := append([]string{"-C", cacheFile}, dirs...)
	_, err := l.runner.Run(ctx, domain.Command{Name: l.binary, Args: args})
	return err
}

// Dedup hardlinks identical large files with rdfind.
type Dedup struct {
	runner ports.CommandRunner
	binary string
	logger ports.Logger
}

// NewDedup creates a Dedup. An empty binary uses "rdfind".
func NewDedup(runner ports.CommandRunner, logger ports.Logger, binary string) *Dedup {
	if binary == "" {
		binary = "rdfind"
	}
	return &Dedup{runner: runner, binary: binary, logger: logger}
}

// Dedup hardlinks duplicates of at least minSize bytes across the existing roots.
// Results are deterministic so repeated runs converge on the same link targets.
func (d *Dedup) Dedup(ctx context.Context, roots []string, minSize int64) error {
	existing := make([]string, 0, len(roots))
	for _, r := range roots {
		if _, err := os.Stat(r); err == nil {
			existing = append(existing, r)
		}
	}
	if len(existing) == 0 {
		return nil
	}

	d.logger.Info("deduplicating " + strconv.Itoa(len(existing)) + " directories")
	args := []string{
		"-minsize", strconv.FormatInt(minSize, 10),
		"-deterministic", "true",
		"-makehardlinks", "true",
		"-outputname", os.DevNull,
	}
	args = append(args, existing...)
	_, err := d.runner.Run(ctx, domain.Command{Name: d.binary, Args: args})
	return err
}
