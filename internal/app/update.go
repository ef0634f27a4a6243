package app

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strconv"
	"strings"

	"go.trai.ch/monobase/internal/core/domain"
	"go.trai.ch/monobase/internal/core/ports"
	"go.trai.ch/monobase/internal/engine/updater"
	"go.trai.ch/zerr"
)

// UpdateOptions configuration for the Update method.
type UpdateOptions struct {
	ConfigDir   string
	Environment domain.Environment
	// Prefix holds the interpreters and the uv cache used while resolving.
	Prefix   string
	MinGenID int
	MaxGenID int

	Parallelism       int
	FrameworkIndexURL string
}

// Update resolves the selected generations into lock files under ConfigDir, newest first.
// When the newest generation is among them, the latest pointer, matrix.json and
// python-versions of the environment are rewritten too.
func (a *App) Update(ctx context.Context, opts UpdateOptions) (err error) {
	ctx, span := a.tracer.Start(ctx, "update", ports.WithAttributes(map[string]string{
		"environment": string(opts.Environment),
		"min_gen_id":  strconv.Itoa(opts.MinGenID),
		"max_gen_id":  strconv.Itoa(opts.MaxGenID),
	}))
	defer span.End()
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
	}()

	if opts.ConfigDir == "" {
		return zerr.Wrap(domain.ErrLockWriteFailed, "the built-in config is read-only, pass --config")
	}
	manifests, err := a.manifests(opts.ConfigDir, opts.Environment)
	if err != nil {
		return err
	}
	selected := domain.SelectRange(manifests, opts.MinGenID, opts.MaxGenID)
	if len(selected) == 0 {
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrNoGenerationsSelected, fmt.Sprintf("[%d, %d]", opts.MinGenID, opts.MaxGenID)),
			"min_gen_id", opts.MinGenID), "max_gen_id", opts.MaxGenID)
	}

	cfg := updater.Config{
		Layout:            domain.NewLayout(opts.Prefix),
		ConfigDir:         opts.ConfigDir,
		Environment:       opts.Environment,
		Parallelism:       opts.Parallelism,
		FrameworkIndexURL: opts.FrameworkIndexURL,
	}
	ids := make([]int, 0, len(selected))
	for _, m := range selected {
		if _, err := a.updater.Update(ctx, cfg, m); err != nil {
			return err
		}
		ids = append(ids, m.ID)
	}

	newest, _ := domain.Newest(manifests)
	if selected[0].ID == newest.ID {
		if err := a.publishLocks(opts.ConfigDir, opts.Environment, manifests); err != nil {
			return err
		}
	}
	a.logger.Info(fmt.Sprintf("monobase update completed: environment=%s generations=%v", opts.Environment, ids))
	return nil
}

// publishLocks points the environment's lock pointer at the newest generation and
// rewrites the files image builders read.
func (a *App) publishLocks(configDir string, env domain.Environment, manifests []domain.GenerationManifest) error {
	newest, _ := domain.Newest(manifests)
	if err := a.locks.SetLatest(configDir, env, newest.ID); err != nil {
		return err
	}

	matrix, err := a.matrixOf(newest)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(matrix, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to encode matrix")
	}
	dir := path.Join("requirements", string(env))
	if err := a.locks.WriteFile(configDir, path.Join(dir, "matrix.json"), append(data, '\n')); err != nil {
		return err
	}

	pythons := pythonVersionsOf(manifests)
	return a.locks.WriteFile(configDir, path.Join(dir, "python-versions"), []byte(strings.Join(pythons, "\n")+"\n"))
}

// Diff compares the locks of generations id0 and id1 of env.
func (a *App) Diff(configDir string, env domain.Environment, id0, id1 int) (domain.LockDiff, error) {
	before, err := a.readGenerationLocks(configDir, env, id0)
	if err != nil {
		return domain.LockDiff{}, err
	}
	after, err := a.readGenerationLocks(configDir, env, id1)
	if err != nil {
		return domain.LockDiff{}, err
	}
	return domain.DiffLocks(before, after), nil
}

func (a *App) readGenerationLocks(configDir string, env domain.Environment, id int) (map[string][]domain.Requirement, error) {
	venvs, err := a.locks.Venvs(configDir, env, id)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]domain.Requirement, len(venvs))
	for _, v := range venvs {
		pins, err := a.locks.Read(configDir, domain.LockRef{Env: env, ID: id, Venv: v})
		if err != nil {
			return nil, err
		}
		out[v] = pins
	}
	return out, nil
}
