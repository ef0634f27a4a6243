package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"go.trai.ch/monobase/internal/core/domain"
	"go.trai.ch/monobase/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// BuildableTriples returns the candidates of m that the resolver accepts, newest first.
// Frameworks without a compatibility entry yield no triples.
func BuildableTriples(resolver *domain.Resolver, m domain.GenerationManifest) ([]domain.Triple, error) {
	return resolver.Buildable(m)
}

// venvLocks are the locked pins of every buildable venv of a generation, keyed by venv name.
type venvLocks struct {
	triples []domain.Triple
	pins    map[string][]domain.Requirement
}

// readLocks loads the lock of every buildable venv of m. Any missing lock fails the
// generation before anything is installed.
func (o *Orchestrator) readLocks(cfg Config, m domain.GenerationManifest) (venvLocks, error) {
	triples, err := BuildableTriples(o.resolver, m)
	if err != nil {
		return venvLocks{}, err
	}

	locks := venvLocks{triples: triples, pins: make(map[string][]domain.Requirement, len(triples))}
	var errs []error
	for _, t := range triples {
		ref := domain.LockRef{Env: cfg.environment(), ID: m.ID, Venv: t.VenvName()}
		pins, err := o.locks.Read(cfg.ConfigDir, ref)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		locks.pins[ref.Venv] = pins
	}
	if err := errors.Join(errs...); err != nil {
		return venvLocks{}, zerr.With(zerr.Wrap(err, "generation is not resolved"), "environment", string(cfg.environment()))
	}
	return locks, nil
}

// CheckLocks verifies that every buildable venv of the manifests has a lock, so a build
// fails before any accelerator is downloaded.
func (o *Orchestrator) CheckLocks(cfg Config, manifests []domain.GenerationManifest) error {
	var errs []error
	for _, m := range manifests {
		if _, err := o.readLocks(cfg, m); err != nil {
			errs = append(errs, zerr.With(zerr.Wrap(err, "generation "+strconv.Itoa(m.ID)), "generation", m.ID))
		}
	}
	return errors.Join(errs...)
}

func (o *Orchestrator) installVenvs(ctx context.Context, cfg Config, m domain.GenerationManifest, gdir string, locks venvLocks) ([]string, error) {
	names := make([]string, len(locks.triples))
	for i, t := range locks.triples {
		names[i] = t.VenvName()
	}
	o.tracer.EmitPlan(ctx, names)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers())
	for _, t := range locks.triples {
		g.Go(func() error {
			return o.installVenv(gctx, cfg, m, gdir, t, locks.pins[t.VenvName()])
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return names, nil
}

// installVenv installs exactly the locked pins of t. Nothing is resolved at build time.
func (o *Orchestrator) installVenv(
	ctx context.Context,
	cfg Config,
	m domain.GenerationManifest,
	gdir string,
	t domain.Triple,
	pins []domain.Requirement,
) (err error) {
	name := t.VenvName()
	attrs := map[string]string{
		"venv":        name,
		"generation":  strconv.Itoa(m.ID),
		"python":      t.Python,
		"python_full": t.PythonFull,
		"framework":   t.Framework,
		"accelerator": t.Accelerator,
	}
	ctx, span := o.tracer.Start(ctx, domain.KindVenv, ports.WithAttributes(attrs))
	defer span.End()
	defer func() {
		if err != nil {
			span.RecordError(err)
			err = zerr.With(zerr.Wrap(err, "venv install failed"), "venv", name)
		}
	}()

	dir := filepath.Join(gdir, name)
	done, err := o.tracker.RequireCompleteOrReset(dir)
	if err != nil {
		return err
	}
	if done {
		o.logger.Info(fmt.Sprintf("venv %s is complete", name))
		span.SetAttribute("cached", true)
		return nil
	}

	framework, err := domain.ParseVersion(t.Framework)
	if err != nil {
		return err
	}
	index := domain.IndexFor(cfg.FrameworkIndexURL, framework, t.Accelerator)
	env := cfg.Layout.UV().Environ()

	o.logger.Info("creating venv " + name)
	if err := o.packages.CreateVenv(ctx, ports.VenvSpec{Dir: dir, Python: t.PythonFull, Env: env}); err != nil {
		return err
	}

	o.logger.Info(fmt.Sprintf("installing %d locked packages into venv %s", len(pins), name))
	if err := o.packages.Install(ctx, ports.InstallSpec{Dir: dir, Packages: pins, Index: index, Env: env}); err != nil {
		return err
	}

	delete(attrs, "venv")
	if err := o.tracker.MarkComplete(dir, domain.KindVenv, attrs); err != nil {
		return err
	}
	o.logger.Info(fmt.Sprintf("python %s %s %s installed in %s", t.Python, domain.FrameworkName, t.Framework, dir))
	return nil
}
