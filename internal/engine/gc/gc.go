// Package gc removes old generations and accelerator installs no generation links to.
package gc

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/monobase/internal/core/domain"
	"go.trai.ch/monobase/internal/core/ports"
	"go.trai.ch/zerr"
)

// Collector is the garbage collector. It must not run while a build is writing to the prefix.
type Collector struct {
	cache  ports.PackageCache
	logger ports.Logger
}

// New creates a new Collector.
func New(cache ports.PackageCache, logger ports.Logger) *Collector {
	return &Collector{cache: cache, logger: logger}
}

// GenerationDirs returns the existing generation directories under layout, oldest first.
func GenerationDirs(layout domain.Layout) (map[int]string, error) {
	entries, err := os.ReadDir(layout.GenerationsDir())
	if errors.Is(err, fs.ErrNotExist) {
		return map[int]string{}, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to list generations"), "dir", layout.GenerationsDir())
	}

	dirs := make(map[int]string, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		id, ok := domain.ParseGenerationDirName(e.Name())
		if !ok {
			continue
		}
		dirs[id] = filepath.Join(layout.GenerationsDir(), e.Name())
	}
	return dirs, nil
}

// PruneOldGenerations removes every generation directory with an id below floorID.
// It returns the removed ids in ascending order.
func (c *Collector) PruneOldGenerations(layout domain.Layout, floorID int) ([]int, error) {
	dirs, err := GenerationDirs(layout)
	if err != nil {
		return nil, err
	}

	var ids []int
	for id := range dirs {
		if id < floorID {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)

	for _, id := range ids {
		c.logger.Info(fmt.Sprintf("pruning old generation %d in %s", id, dirs[id]))
		if err := os.RemoveAll(dirs[id]); err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrPruneFailed, err.Error()), "dir", dirs[id])
		}
	}
	return ids, nil
}

// isInstallName reports whether name is a toolkit or runtime library install or link.
func isInstallName(name string) bool {
	return strings.HasPrefix(name, domain.ToolkitPrefix) || strings.HasPrefix(name, domain.RuntimeLibPrefix)
}

// ReferencedInstalls resolves the toolkit and runtime library symlinks directly inside
// generationDirs to real paths. Dangling links are ignored. It never deletes anything.
func ReferencedInstalls(generationDirs []string) (map[string]struct{}, error) {
	refs := map[string]struct{}{}
	for _, gdir := range generationDirs {
		entries, err := os.ReadDir(gdir)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to list generation"), "dir", gdir)
		}
		for _, e := range entries {
			if e.Type()&fs.ModeSymlink == 0 || !isInstallName(e.Name()) {
				continue
			}
			real, err := filepath.EvalSymlinks(filepath.Join(gdir, e.Name()))
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, "failed to resolve link"), "link", filepath.Join(gdir, e.Name()))
			}
			refs[real] = struct{}{}
		}
	}
	return refs, nil
}

// PruneUnusedAcceleratorInstalls removes every toolkit and runtime library install
// that no existing generation links to. It returns the removed paths.
func (c *Collector) PruneUnusedAcceleratorInstalls(layout domain.Layout) ([]string, error) {
	dirs, err := GenerationDirs(layout)
	if err != nil {
		return nil, err
	}
	refs, err := ReferencedInstalls(slices.Collect(maps.Values(dirs)))
	if err != nil {
		return nil, err
	}

	accelDir := layout.AcceleratorDir()
	entries, err := os.ReadDir(accelDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to list accelerator installs"), "dir", accelDir)
	}
	realAccelDir, err := filepath.EvalSymlinks(accelDir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve accelerator directory"), "dir", accelDir)
	}

	var removed []string
	for _, e := range entries {
		if !isInstallName(e.Name()) {
			continue
		}
		if _, ok := refs[filepath.Join(realAccelDir, e.Name())]; ok {
			continue
		}
		path := filepath.Join(accelDir, e.Name())
		c.logger.Info("pruning unused accelerator install " + path)
		if err := os.RemoveAll(path); err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrPruneFailed, err.Error()), "dir", path)
		}
		removed = append(removed, path)
	}
	return removed, nil
}

// PruneDelegatedCaches removes unused entries from the package installer's cache.
func (c *Collector) PruneDelegatedCaches(ctx context.Context, layout domain.Layout) error {
	c.logger.Info("pruning package cache")
	return c.cache.Prune(ctx, layout.UV().Environ())
}

// CleanDelegatedCaches empties the package installer's cache.
func (c *Collector) CleanDelegatedCaches(ctx context.Context, layout domain.Layout) error {
	c.logger.Info("cleaning package cache")
	return c.cache.Clean(ctx, layout.UV().Environ())
}

