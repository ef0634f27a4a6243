// Package app implements the application layer for monobase.
package app

import (
	"errors"
	"time"

	"go.trai.ch/monobase/internal/core/domain"
	"go.trai.ch/monobase/internal/core/ports"
	"go.trai.ch/monobase/internal/engine/gc"
	"go.trai.ch/monobase/internal/engine/orchestrator"
	"go.trai.ch/monobase/internal/engine/updater"
	"go.trai.ch/monobase/internal/engine/userlayer"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader       ports.ManifestLoader
	orchestrator *orchestrator.Orchestrator
	updater      *updater.Updater
	locks        ports.LockStore
	collector    *gc.Collector
	users        *userlayer.Builder
	tracker      ports.CompletionTracker
	disk         ports.DiskUsage
	metrics      ports.MetricsRecorder
	tracer       ports.Tracer
	logger       ports.Logger
	resolver     *domain.Resolver
	now          func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.ManifestLoader,
	orch *orchestrator.Orchestrator,
	upd *updater.Updater,
	locks ports.LockStore,
	collector *gc.Collector,
	users *userlayer.Builder,
	tracker ports.CompletionTracker,
	disk ports.DiskUsage,
	metrics ports.MetricsRecorder,
	tracer ports.Tracer,
	log ports.Logger,
	resolver *domain.Resolver,
) *App {
	return &App{
		loader:       loader,
		orchestrator: orch,
		updater:      upd,
		locks:        locks,
		collector:    collector,
		users:        users,
		tracker:      tracker,
		disk:         disk,
		metrics:      metrics,
		tracer:       tracer,
		logger:       log,
		resolver:     resolver,
		now:          time.Now,
	}
}

// Validate loads the generations from configDir and checks every environment.
// An empty configDir validates the built-in generations.
func (a *App) Validate(configDir string) error {
	_, err := a.load(configDir)
	return err
}

// load reads and validates the generations of every environment.
// Any violation in any environment fails the whole load.
func (a *App) load(configDir string) (map[domain.Environment][]domain.GenerationManifest, error) {
	all, err := a.loader.Load(configDir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load generations")
	}

	var errs []error
	for _, env := range domain.Environments {
		if err := domain.ValidateGenerations(env, all[env]); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return all, nil
}

// manifests returns the validated generations of env.
func (a *App) manifests(configDir string, env domain.Environment) ([]domain.GenerationManifest, error) {
	all, err := a.load(configDir)
	if err != nil {
		return nil, err
	}
	gens := all[env]
	if len(gens) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrNoGenerations, string(env)), "environment", string(env))
	}
	return gens, nil
}
