package orchestrator

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/monobase/internal/core/domain"
)

// LinkCacheTarget is one shared-library cache file and the directories it indexes.
type LinkCacheTarget struct {
	File string
	Dirs []string
}

// LinkCacheTargets returns one cache per toolkit, runtime library and python of m.
// Runtime library directories are looked up under the toolkit's major line.
func LinkCacheTargets(layout domain.Layout, m domain.GenerationManifest) []LinkCacheTarget {
	gdir := layout.GenerationDir(m.ID)
	uv := layout.UV()

	var out []LinkCacheTarget
	for _, tk := range domain.DescVersionKeys(m.Toolkits) {
		major := domain.MajorLine(tk)
		for _, rl := range domain.DescVersionKeys(m.RuntimeLibs) {
			for _, py := range domain.DescVersionKeys(m.Pythons) {
				out = append(out, LinkCacheTarget{
					File: filepath.Join(gdir, domain.LinkCacheDirName, domain.LinkCacheName(tk, rl, py)),
					Dirs: []string{
						filepath.Join(gdir, domain.ToolkitLinkName(tk), "lib64"),
						filepath.Join(gdir, domain.RuntimeLibLinkName(rl, major), "lib"),
						uv.PythonLibDir(m.Pythons[py]),
					},
				})
			}
		}
	}
	return out
}

func (o *Orchestrator) optimize(ctx context.Context, cfg Config, m domain.GenerationManifest, gdir string) error {
	ctx, span := o.tracer.Start(ctx, "optimize")
	defer span.End()

	if cfg.SkipAccelerators {
		o.logger.Info(fmt.Sprintf("accelerators skipped, no link caches for generation %d", m.ID))
	} else {
		targets := LinkCacheTargets(cfg.Layout, m)
		o.logger.Info(fmt.Sprintf("generating %d link caches for generation %d", len(targets), m.ID))
		for _, t := range targets {
			if err := o.linkCache.Generate(ctx, t.File, t.Dirs); err != nil {
				span.RecordError(err)
				return err
			}
		}
	}

	roots := []string{cfg.Layout.UV().CacheDir, cfg.Layout.AcceleratorDir(), gdir}
	if err := o.dedup.Dedup(ctx, roots, cfg.dedupMinSize()); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}
