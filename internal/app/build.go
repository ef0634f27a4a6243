package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"go.trai.ch/monobase/internal/core/domain"
	"go.trai.ch/monobase/internal/core/ports"
	"go.trai.ch/monobase/internal/engine/orchestrator"
	"go.trai.ch/monobase/internal/engine/userlayer"
	"go.trai.ch/zerr"
)

// nodeFeatureTimeFormat is the UTC timestamp format of the node feature label.
const nodeFeatureTimeFormat = "20060102T150405Z"

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	ConfigDir   string
	Environment domain.Environment
	Prefix      string
	CacheDir    string
	MinGenID    int
	MaxGenID    int

	// Mini narrows the newest generation to Selection.
	Mini      bool
	Selection domain.Selection

	Parallelism       int
	SkipAccelerators  bool
	FrameworkIndexURL string

	CleanCache          bool
	PruneOldGenerations bool
	PruneAccelerators   bool
	PruneCache          bool

	// Requirements builds a user venv in UserDir on top of the mini build.
	Requirements string
	UserDir      string

	MetricsFile          string
	AllDoneDir           string
	NodeFeatureLabelFile string
}

func (o BuildOptions) attributes() map[string]string {
	return map[string]string{
		"environment": string(o.Environment),
		"prefix":      o.Prefix,
		"min_gen_id":  strconv.Itoa(o.MinGenID),
		"max_gen_id":  strconv.Itoa(o.MaxGenID),
		"mini":        strconv.FormatBool(o.Mini),
		"skip_accel":  strconv.FormatBool(o.SkipAccelerators),
	}
}

func (o BuildOptions) orchestratorConfig() orchestrator.Config {
	return orchestrator.Config{
		Layout:            domain.NewLayout(o.Prefix),
		CacheDir:          o.CacheDir,
		ConfigDir:         o.ConfigDir,
		Environment:       o.Environment,
		Parallelism:       o.Parallelism,
		SkipAccelerators:  o.SkipAccelerators,
		FrameworkIndexURL: o.FrameworkIndexURL,
	}
}

// Build builds every selected generation newest first, publishes the newest,
// then runs the requested garbage collection and reports disk usage.
//
//nolint:cyclop,funlen // orchestration function
func (a *App) Build(ctx context.Context, opts BuildOptions) (err error) {
	start := a.now()
	ctx, span := a.tracer.Start(ctx, "build", ports.WithAttributes(opts.attributes()))
	defer span.End()
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
	}()

	// 1. Load and validate every environment
	manifests, err := a.manifests(opts.ConfigDir, opts.Environment)
	if err != nil {
		return err
	}

	// 2. Narrow to a single venv
	if opts.Mini {
		newest, _ := domain.Newest(manifests)
		narrowed, err := newest.Narrow(opts.Selection)
		if err != nil {
			return err
		}
		manifests = []domain.GenerationManifest{narrowed}
	}
	if opts.Requirements != "" && !opts.Mini {
		return domain.ErrRequirementsNeedMini
	}

	layout := domain.NewLayout(opts.Prefix)
	if err := os.MkdirAll(opts.CacheDir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create cache directory"), "dir", opts.CacheDir)
	}
	if opts.CleanCache {
		if err := a.collector.CleanDelegatedCaches(ctx, layout); err != nil {
			return err
		}
	}

	// 3. Select the id range
	selected := domain.SelectRange(manifests, opts.MinGenID, opts.MaxGenID)
	if len(selected) == 0 {
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrNoGenerationsSelected, fmt.Sprintf("[%d, %d]", opts.MinGenID, opts.MaxGenID)),
			"min_gen_id", opts.MinGenID), "max_gen_id", opts.MaxGenID)
	}

	// 4. Build generations
	cfg := opts.orchestratorConfig()
	if err := a.orchestrator.CheckLocks(cfg, selected); err != nil {
		return err
	}
	if err := a.orchestrator.PrepareAccelerators(ctx, cfg, selected); err != nil {
		return err
	}

	gens := make([]int, 0, len(selected))
	for i, m := range selected {
		if _, err := a.orchestrator.BuildGeneration(ctx, cfg, m, i == 0); err != nil {
			return err
		}
		gens = append(gens, m.ID)

		if i == 0 && opts.NodeFeatureLabelFile != "" {
			if err := a.writeNodeFeatureLabel(opts.NodeFeatureLabelFile); err != nil {
				return err
			}
		}
	}

	// 5. User layer
	if opts.Requirements != "" {
		accel := opts.Selection.Toolkit
		if accel == "" || opts.SkipAccelerators {
			accel = domain.CPU
		}
		if err := a.users.Build(ctx, userlayer.Options{
			Layout:            layout,
			Dir:               opts.UserDir,
			Requirements:      opts.Requirements,
			Python:            opts.Selection.Python,
			Framework:         opts.Selection.Framework,
			Accelerator:       accel,
			FrameworkIndexURL: opts.FrameworkIndexURL,
		}); err != nil {
			return err
		}
	}

	// 6. Garbage collection
	if err := a.Prune(ctx, PruneOptions{
		Prefix:         opts.Prefix,
		OldGenerations: opts.PruneOldGenerations,
		FloorID:        opts.MinGenID,
		Accelerators:   opts.PruneAccelerators,
		Cache:          opts.PruneCache,
	}); err != nil {
		return err
	}

	// 7. Report
	if err := a.reportDiskUsage(opts.Prefix); err != nil {
		return err
	}
	if opts.MetricsFile != "" {
		if err := a.metrics.WriteTextfile(opts.MetricsFile); err != nil {
			return err
		}
	}

	slices.Sort(gens)
	duration := a.now().Sub(start)
	a.logger.Info(fmt.Sprintf("monobase build completed: generations=%v duration=%s", gens, duration))

	if opts.AllDoneDir == "" {
		return nil
	}
	if err := os.MkdirAll(opts.AllDoneDir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create all done directory"), "dir", opts.AllDoneDir)
	}
	ids := make([]string, 0, len(gens))
	for _, id := range gens {
		ids = append(ids, strconv.Itoa(id))
	}
	return a.tracker.MarkComplete(opts.AllDoneDir, domain.KindBuild, map[string]string{
		"duration":    duration.String(),
		"generations": strings.Join(ids, ","),
	})
}

func (a *App) writeNodeFeatureLabel(path string) error {
	done := a.now().UTC().Format(nodeFeatureTimeFormat)
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write node feature label"), "file", path)
	}
	if err := os.WriteFile(path, []byte("done="+done+"\n"), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write node feature label"), "file", path)
	}
	// WriteFile keeps the mode of an existing file.
	if err := os.Chmod(path, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write node feature label"), "file", path)
	}
	a.logger.Info(fmt.Sprintf("wrote done=%s to %s", done, path))
	return nil
}

func (a *App) reportDiskUsage(prefix string) error {
	a.logger.Info("calculating disk usage in " + prefix)
	dirs, total, err := a.disk.Usage(prefix)
	if err != nil {
		return err
	}
	for _, d := range dirs {
		a.logger.Info(fmt.Sprintf("%-10s %s", humanize.IBytes(uint64(max(d.Bytes, 0))), d.Path))
		a.metrics.ObserveDiskUsage(d.Path, d.Bytes)
	}
	a.logger.Info(fmt.Sprintf("%-10s %s", humanize.IBytes(uint64(max(total, 0))), prefix))
	a.metrics.ObserveDiskUsage(prefix, total)
	return nil
}
