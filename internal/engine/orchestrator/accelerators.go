package orchestrator

import (
	"context"
	"fmt"
	"os"

	"go.trai.ch/monobase/internal/core/domain"
	"go.trai.ch/monobase/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// runtimeLibKey is one runtime library version built for one toolkit major line.
type runtimeLibKey struct {
	label   string
	version string
	major   string
}

// toolkitMajors returns the distinct major lines of the manifest's toolkit labels, newest first.
func toolkitMajors(m domain.GenerationManifest) []string {
	seen := map[string]bool{}
	var majors []string
	for _, label := range domain.DescVersionKeys(m.Toolkits) {
		major := domain.MajorLine(label)
		if !seen[major] {
			seen[major] = true
			majors = append(majors, major)
		}
	}
	return domain.DescVersions(majors)
}

// runtimeLibKeys pairs every runtime library of the manifest with every toolkit major line.
func runtimeLibKeys(m domain.GenerationManifest) []runtimeLibKey {
	var keys []runtimeLibKey
	for _, label := range domain.DescVersionKeys(m.RuntimeLibs) {
		for _, major := range toolkitMajors(m) {
			keys = append(keys, runtimeLibKey{label: label, version: m.RuntimeLibs[label], major: major})
		}
	}
	return keys
}

func (o *Orchestrator) linkAccelerators(ctx context.Context, cfg Config, m domain.GenerationManifest, gdir string) error {
	for _, label := range domain.DescVersionKeys(m.Toolkits) {
		dir, err := o.ensureToolkit(ctx, cfg, m.Toolkits[label])
		if err != nil {
			return err
		}
		if err := relink(gdir, domain.ToolkitLinkName(label), dir); err != nil {
			return err
		}
		o.logger.Info(fmt.Sprintf("toolkit %s linked into generation %d", label, m.ID))
	}

	for _, k := range runtimeLibKeys(m) {
		dir, err := o.ensureRuntimeLib(ctx, cfg, k.version, k.major)
		if err != nil {
			return err
		}
		if err := relink(gdir, domain.RuntimeLibLinkName(k.label, k.major), dir); err != nil {
			return err
		}
		o.logger.Info(fmt.Sprintf("runtime library %s for toolkit %s linked into generation %d", k.label, k.major, m.ID))
	}
	return nil
}

// PrepareAccelerators installs every distinct toolkit and runtime library of the manifests on a bounded pool.
func (o *Orchestrator) PrepareAccelerators(ctx context.Context, cfg Config, manifests []domain.GenerationManifest) error {
	ctx, span := o.tracer.Start(ctx, "accelerators")
	defer span.End()

	toolkits := map[string]bool{}
	runtimeLibs := map[[2]string]bool{}
	for _, m := range manifests {
		for _, v := range m.Toolkits {
			toolkits[v] = true
		}
		for _, k := range runtimeLibKeys(m) {
			runtimeLibs[[2]string{k.version, k.major}] = true
		}
	}
	span.SetAttribute("toolkits", len(toolkits))
	span.SetAttribute("runtime_libs", len(runtimeLibs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers())
	for v := range toolkits {
		g.Go(func() error {
			_, err := o.ensureToolkit(gctx, cfg, v)
			return err
		})
	}
	for k := range runtimeLibs {
		g.Go(func() error {
			_, err := o.ensureRuntimeLib(gctx, cfg, k[0], k[1])
			return err
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

func (o *Orchestrator) ensureToolkit(ctx context.Context, cfg Config, version string) (string, error) {
	dest := cfg.Layout.ToolkitInstallDir(version)
	req := ports.ToolkitRequest{Version: version, Dest: dest, CacheDir: cfg.CacheDir}
	attrs := map[string]string{"version": version}
	return dest, o.ensureInstall(ctx, cfg, domain.KindToolkit, dest, attrs, func(ctx context.Context) error {
		return o.toolkits.InstallToolkit(ctx, req)
	})
}

func (o *Orchestrator) ensureRuntimeLib(ctx context.Context, cfg Config, version, major string) (string, error) {
	dest := cfg.Layout.RuntimeLibInstallDir(version, major)
	req := ports.ToolkitRequest{Version: version, ToolkitMajor: major, Dest: dest, CacheDir: cfg.CacheDir}
	attrs := map[string]string{"version": version, "toolkit_major": major}
	return dest, o.ensureInstall(ctx, cfg, domain.KindRuntimeLib, dest, attrs, func(ctx context.Context) error {
		return o.toolkits.InstallRuntimeLib(ctx, req)
	})
}

// ensureInstall runs install into dest unless dest is already complete, then marks it.
func (o *Orchestrator) ensureInstall(
	ctx context.Context,
	cfg Config,
	kind, dest string,
	attrs map[string]string,
	install func(context.Context) error,
) error {
	ctx, span := o.tracer.Start(ctx, kind, ports.WithAttributes(attrs))
	defer span.End()

	done, err := o.tracker.RequireCompleteOrReset(dest)
	if err != nil {
		span.RecordError(err)
		return err
	}
	if done {
		span.SetAttribute("cached", true)
		return nil
	}

	if cfg.SkipAccelerators {
		if err := os.MkdirAll(dest, domain.DirPerm); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create install directory"), "dir", dest)
		}
		skipped := map[string]string{"skipped": "true"}
		for k, v := range attrs {
			skipped[k] = v
		}
		o.logger.Info(fmt.Sprintf("%s %s skipped in %s", kind, attrs["version"], dest))
		return o.tracker.MarkComplete(dest, kind, skipped)
	}

	if err := install(ctx); err != nil {
		span.RecordError(err)
		return zerr.With(zerr.Wrap(err, kind+" install failed"), "dir", dest)
	}
	if err := o.tracker.MarkComplete(dest, kind, attrs); err != nil {
		span.RecordError(err)
		return err
	}
	o.logger.Info(fmt.Sprintf("%s %s installed in %s", kind, attrs["version"], dest))
	return nil
}
