// Package orchestrator builds generations: accelerator installs, venvs, link caches and the latest pointer.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/monobase/internal/core/domain"
	"go.trai.ch/monobase/internal/core/ports"
	"go.trai.ch/zerr"
)

// Result summarizes one generation build.
type Result struct {
	ID int
	// Skipped is true when the generation was already complete.
	Skipped  bool
	Venvs    []string
	Duration time.Duration
}

// Orchestrator runs the per-generation state machine.
type Orchestrator struct {
	tracker   ports.CompletionTracker
	toolkits  ports.ToolkitInstaller
	packages  ports.PackageInstaller
	locks     ports.LockStore
	linkCache ports.LinkCacheGenerator
	dedup     ports.Deduplicator
	tracer    ports.Tracer
	logger    ports.Logger
	metrics   ports.MetricsRecorder
	resolver  *domain.Resolver

	now func() time.Time
}

// New creates a new Orchestrator.
func New(
	tracker ports.CompletionTracker,
	toolkits ports.ToolkitInstaller,
	packages ports.PackageInstaller,
	locks ports.LockStore,
	linkCache ports.LinkCacheGenerator,
	dedup ports.Deduplicator,
	tracer ports.Tracer,
	logger ports.Logger,
	metrics ports.MetricsRecorder,
	resolver *domain.Resolver,
) *Orchestrator {
	return &Orchestrator{
		tracker:   tracker,
		toolkits:  toolkits,
		packages:  packages,
		locks:     locks,
		linkCache: linkCache,
		dedup:     dedup,
		tracer:    tracer,
		logger:    logger,
		metrics:   metrics,
		resolver:  resolver,
		now:       time.Now,
	}
}

// BuildGeneration builds one generation. With publish set, latest is repointed to it,
// including when the generation was already complete.
// A failure leaves the generation directory unmarked so the next run discards it.
func (o *Orchestrator) BuildGeneration(
	ctx context.Context,
	cfg Config,
	m domain.GenerationManifest,
	publish bool,
) (res Result, err error) {
	start := o.now()
	res.ID = m.ID
	gdir := cfg.Layout.GenerationDir(m.ID)

	ctx, span := o.tracer.Start(ctx, "generation", ports.WithAttributes(m.Attributes()))
	defer span.End()
	span.SetAttribute("generation_dir", gdir)

	defer func() {
		if err != nil {
			span.RecordError(err)
			err = zerr.With(zerr.Wrap(err, "generation build failed"), "generation", m.ID)
		}
	}()

	o.transition(span, m.ID, StatePending)
	done, err := o.tracker.RequireCompleteOrReset(gdir)
	if err != nil {
		return res, err
	}
	if done {
		o.logger.Info(fmt.Sprintf("generation %d is complete", m.ID))
		res.Skipped = true
		if publish {
			if err := o.Publish(cfg.Layout, m.ID); err != nil {
				return res, err
			}
		}
		return o.finish(span, res, start), nil
	}

	locks, err := o.readLocks(cfg, m)
	if err != nil {
		return res, err
	}

	o.logger.Info(fmt.Sprintf("building generation %d in %s", m.ID, gdir))
	if err := os.MkdirAll(gdir, domain.DirPerm); err != nil {
		return res, zerr.With(zerr.Wrap(err, "failed to create generation directory"), "dir", gdir)
	}

	o.transition(span, m.ID, StateAcceleratorInstalling)
	if err := o.linkAccelerators(ctx, cfg, m, gdir); err != nil {
		return res, err
	}

	o.transition(span, m.ID, StateVenvInstalling)
	venvs, err := o.installVenvs(ctx, cfg, m, gdir, locks)
	if err != nil {
		return res, err
	}
	res.Venvs = venvs

	o.transition(span, m.ID, StateOptimizing)
	if err := o.optimize(ctx, cfg, m, gdir); err != nil {
		return res, err
	}

	o.transition(span, m.ID, StatePublished)
	if err := o.tracker.MarkComplete(gdir, domain.KindGeneration, m.Attributes()); err != nil {
		return res, err
	}
	if publish {
		if err := o.Publish(cfg.Layout, m.ID); err != nil {
			return res, err
		}
	}
	o.logger.Info(fmt.Sprintf("generation %d installed in %s", m.ID, gdir))

	return o.finish(span, res, start), nil
}

func (o *Orchestrator) finish(span ports.Span, res Result, start time.Time) Result {
	res.Duration = o.now().Sub(start)
	o.transition(span, res.ID, StateDone)
	span.SetAttribute("skipped", res.Skipped)
	span.SetAttribute("venvs", len(res.Venvs))
	o.metrics.ObserveGeneration(res.ID, res.Skipped, len(res.Venvs), res.Duration)
	return res
}

func (o *Orchestrator) transition(span ports.Span, id int, state State) {
	span.SetAttribute("state", string(state))
	_, _ = fmt.Fprintf(span, "generation %d: %s\n", id, state)
}

// Publish repoints the latest symlink to generation id. The link is removed and recreated.
func (o *Orchestrator) Publish(layout domain.Layout, id int) error {
	link := layout.LatestLink()
	target := domain.GenerationDirName(id)

	if cur, err := os.Readlink(link); err == nil && cur == target {
		return nil
	}
	if err := os.Remove(link); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(domain.ErrPublishFailed, err.Error()), "link", link)
	}
	if err := os.Symlink(target, link); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrPublishFailed, err.Error()), "link", link)
	}
	o.logger.Info(fmt.Sprintf("latest now points at generation %d", id))
	return nil
}

// relink points gdir/name at target with a relative symlink, replacing any existing entry.
func relink(gdir, name, target string) error {
	dst := filepath.Join(gdir, name)
	rel, err := filepath.Rel(gdir, target)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrLinkFailed, err.Error()), "link", dst)
	}
	if _, err := os.Lstat(dst); err == nil {
		if err := os.Remove(dst); err != nil {
			return zerr.With(zerr.Wrap(domain.ErrLinkFailed, err.Error()), "link", dst)
		}
	}
	if err := os.Symlink(rel, dst); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrLinkFailed, err.Error()), "link", dst)
	}
	return nil
}
