// Package updater resolves the venvs of generations into lock files. Builds install from those locks only.
package updater

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"go.trai.ch/monobase/internal/core/domain"
	"go.trai.ch/monobase/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Config is the run configuration of an update.
type Config struct {
	// Layout provides the uv cache and interpreter directories used while resolving.
	Layout      domain.Layout
	ConfigDir   string
	Environment domain.Environment
	// Parallelism bounds the resolver pool. Values below one mean one.
	Parallelism       int
	FrameworkIndexURL string
	// ScratchDir holds the temporary venvs resolutions run in. Empty means the system temp dir.
	ScratchDir string
}

// Result summarizes the update of one generation.
type Result struct {
	ID    int
	Venvs []string
}

// Updater compiles the packages of every buildable venv into pins and records them.
type Updater struct {
	packages ports.PackageInstaller
	locks    ports.LockStore
	tracer   ports.Tracer
	logger   ports.Logger
	resolver *domain.Resolver
}

// New creates a new Updater.
func New(
	packages ports.PackageInstaller,
	locks ports.LockStore,
	tracer ports.Tracer,
	logger ports.Logger,
	resolver *domain.Resolver,
) *Updater {
	return &Updater{packages: packages, locks: locks, tracer: tracer, logger: logger, resolver: resolver}
}

// Update resolves every buildable venv of m against the live indexes and replaces the generation's locks.
// Nothing is written unless every venv resolves.
func (u *Updater) Update(ctx context.Context, cfg Config, m domain.GenerationManifest) (res Result, err error) {
	res.ID = m.ID
	ctx, span := u.tracer.Start(ctx, "update", ports.WithAttributes(map[string]string{
		"generation":  strconv.Itoa(m.ID),
		"environment": string(cfg.Environment),
	}))
	defer span.End()
	defer func() {
		if err != nil {
			span.RecordError(err)
			err = zerr.With(zerr.Wrap(err, "generation update failed"), "generation", m.ID)
		}
	}()

	triples, err := u.resolver.Buildable(m)
	if err != nil {
		return res, err
	}
	names := make([]string, len(triples))
	for i, t := range triples {
		names[i] = t.VenvName()
	}
	u.tracer.EmitPlan(ctx, names)

	scratch, err := os.MkdirTemp(cfg.ScratchDir, "monobase-update-")
	if err != nil {
		return res, zerr.Wrap(err, "failed to create scratch directory")
	}
	defer func() { _ = os.RemoveAll(scratch) }()

	var mu sync.Mutex
	locks := make(map[string]string, len(triples))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Parallelism, 1))
	for _, t := range triples {
		g.Go(func() error {
			lock, err := u.resolve(gctx, cfg, m, scratch, t)
			if err != nil {
				return err
			}
			mu.Lock()
			locks[t.VenvName()] = lock
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return res, err
	}

	if err := u.locks.WriteGeneration(cfg.ConfigDir, cfg.Environment, m.ID, locks); err != nil {
		return res, err
	}
	res.Venvs = names
	u.logger.Info(fmt.Sprintf("generation %d resolved: %d venvs", m.ID, len(names)))
	return res, nil
}

// resolve compiles one venv in a throwaway venv of the right interpreter and renders its lock.
func (u *Updater) resolve(
	ctx context.Context,
	cfg Config,
	m domain.GenerationManifest,
	scratch string,
	t domain.Triple,
) (lock string, err error) {
	name := t.VenvName()
	ctx, span := u.tracer.Start(ctx, "resolve", ports.WithAttributes(map[string]string{
		"venv":       name,
		"generation": strconv.Itoa(m.ID),
	}))
	defer span.End()
	defer func() {
		if err != nil {
			span.RecordError(err)
			err = zerr.With(zerr.Wrap(err, "venv resolution failed"), "venv", name)
		}
	}()

	framework, err := domain.ParseVersion(t.Framework)
	if err != nil {
		return "", err
	}
	companions, _ := u.resolver.ResolveCompanions(framework)
	index := domain.IndexFor(cfg.FrameworkIndexURL, framework, t.Accelerator)
	env := cfg.Layout.UV().Environ()
	dir := filepath.Join(scratch, name)

	if err := u.packages.CreateVenv(ctx, ports.VenvSpec{Dir: dir, Python: t.PythonFull, Env: env}); err != nil {
		return "", err
	}

	u.logger.Info("resolving venv " + name)
	input := domain.VenvPackages(t, framework, companions, index, m.ExtraPackages)
	pins, err := u.packages.Compile(ctx, ports.CompileSpec{Dir: dir, Input: input, Index: index, Env: env})
	if err != nil {
		return "", err
	}
	for _, p := range pins {
		_, _ = fmt.Fprintln(span, p.String())
	}

	ref := domain.LockRef{Env: cfg.Environment, ID: m.ID, Venv: name}
	return domain.RenderLock(ref, index, pins), nil
}
