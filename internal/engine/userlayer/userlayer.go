// Package userlayer builds a user venv on top of a published monobase venv.
package userlayer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/monobase/internal/core/domain"
	"go.trai.ch/monobase/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultDir is the default user venv. It lives outside the prefix, which may be mounted read-only.
const DefaultDir = "/root/.venv"

// Options selects the monobase venv to layer on and the user requirements.
type Options struct {
	Layout       domain.Layout
	Dir          string
	Requirements string
	Python       string
	Framework    string
	// Accelerator is a toolkit label or domain.CPU.
	Accelerator       string
	FrameworkIndexURL string
}

// Builder installs user venvs.
type Builder struct {
	tracker  ports.CompletionTracker
	packages ports.PackageInstaller
	tracer   ports.Tracer
	logger   ports.Logger
}

// New creates a new Builder.
func New(tracker ports.CompletionTracker, packages ports.PackageInstaller, tracer ports.Tracer, logger ports.Logger) *Builder {
	return &Builder{tracker: tracker, packages: packages, tracer: tracer, logger: logger}
}

// Build creates the user venv at opts.Dir unless it is already complete.
// Packages the monobase venv already provides are excluded, and version mismatches are reported.
func (b *Builder) Build(ctx context.Context, opts Options) (err error) {
	if opts.Dir == "" {
		opts.Dir = DefaultDir
	}
	if opts.Accelerator == "" {
		opts.Accelerator = domain.CPU
	}

	ctx, span := b.tracer.Start(ctx, domain.KindUser, ports.WithAttributes(map[string]string{
		"dir":          opts.Dir,
		"requirements": opts.Requirements,
	}))
	defer span.End()
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
	}()

	done, err := b.tracker.RequireCompleteOrReset(opts.Dir)
	if err != nil {
		return err
	}
	if done {
		b.logger.Info("user venv in " + opts.Dir + " is complete")
		return nil
	}

	if opts.Framework == "" {
		return domain.ErrMissingFramework
	}
	framework, err := domain.ParseVersion(opts.Framework)
	if err != nil {
		return err
	}

	userInput, err := os.ReadFile(opts.Requirements)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrRequirementsReadFailed, err.Error()), "file", opts.Requirements)
	}

	gdir, err := filepath.EvalSymlinks(opts.Layout.LatestLink())
	if err != nil {
		return zerr.With(zerr.Wrap(err, "no published generation"), "link", opts.Layout.LatestLink())
	}
	triple := domain.Triple{Python: opts.Python, Framework: opts.Framework, Accelerator: opts.Accelerator}
	monoDir := filepath.Join(gdir, triple.VenvName())
	uvEnv := opts.Layout.UV().Environ()

	b.logger.Info("freezing monobase venv " + monoDir)
	mono, err := b.packages.Freeze(ctx, monoDir, uvEnv)
	if err != nil {
		return err
	}

	b.logger.Info("creating user venv " + opts.Dir)
	if err := b.packages.CreateVenv(ctx, ports.VenvSpec{Dir: opts.Dir, Python: opts.Python, Env: uvEnv}); err != nil {
		return err
	}

	index := domain.IndexFor(opts.FrameworkIndexURL, framework, opts.Accelerator)
	input := make([]string, 0, len(mono))
	for _, r := range mono {
		input = append(input, r.String())
	}
	input = append(input, strings.Split(strings.TrimSpace(string(userInput)), "\n")...)

	b.logger.Info("compiling user requirements " + opts.Requirements)
	user, err := b.packages.Compile(ctx, ports.CompileSpec{Dir: opts.Dir, Input: input, Index: index, Env: uvEnv})
	if err != nil {
		return err
	}

	for _, c := range domain.LayerConflicts(mono, user) {
		grade := "possible"
		if c.Severity == domain.SeverityProbable {
			grade = "probable"
		}
		b.logger.Warn(fmt.Sprintf("%s incompatible versions for %s: mono==%s, user==%s", grade, c.Key, c.Base, c.User))
	}

	kept, excluded := domain.Overlay(mono, user)
	for _, r := range excluded {
		b.logger.Warn("excluding " + r.Key() + " from user venv, provided by monobase")
	}

	installEnv := map[string]string{
		"PYTHONPATH": filepath.Join(monoDir, "lib", "python"+opts.Python, "site-packages"),
	}
	if opts.Accelerator != domain.CPU {
		installEnv["CUDA_HOME"] = filepath.Join(gdir, domain.ToolkitLinkName(opts.Accelerator))
	}
	for k, v := range uvEnv {
		installEnv[k] = v
	}

	b.logger.Info(fmt.Sprintf("installing %d packages into user venv", len(kept)))
	if err := b.packages.Install(ctx, ports.InstallSpec{Dir: opts.Dir, Packages: kept, Index: index, Env: installEnv}); err != nil {
		return err
	}

	if err := b.tracker.MarkComplete(opts.Dir, domain.KindUser, map[string]string{
		"python":      opts.Python,
		"framework":   opts.Framework,
		"accelerator": opts.Accelerator,
	}); err != nil {
		return err
	}
	b.logger.Info("user venv installed in " + opts.Dir)
	return nil
}
