// Package uv drives the uv package manager to build venvs.
package uv

import (
	"context"
	"os"
	"strings"

	"go.trai.ch/monobase/internal/core/domain"
	"go.trai.ch/monobase/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultBinary is the uv executable looked up on PATH.
const DefaultBinary = "uv"

// targetPlatform pins resolution to the platform venvs are deployed on.
const targetPlatform = "x86_64-unknown-linux-gnu"

var (
	_ ports.PackageInstaller = (*Installer)(nil)
	_ ports.PackageCache     = (*Installer)(nil)
)

// Installer implements ports.PackageInstaller and ports.PackageCache by running uv.
type Installer struct {
	runner ports.CommandRunner
	binary string
}

// New creates an Installer running the given uv binary. An empty binary uses DefaultBinary.
func New(runner ports.CommandRunner, binary string) *Installer {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Installer{runner: runner, binary: binary}
}

// indexArgs orders the framework index ahead of the default index.
// uv gives --extra-index-url priority, and first-index keeps framework pins of transitives.
func indexArgs(index domain.PackageIndex) []string {
	var args []string
	if index.FrameworkURL != "" {
		args = append(args, "--extra-index-url", index.FrameworkURL)
	}
	if index.DefaultURL != "" {
		args = append(args, "--index-url", index.DefaultURL)
	}
	return append(args, "--index-strategy", "first-index")
}

func venvEnv(dir string, env map[string]string) map[string]string {
	out := make(map[string]string, len(env)+1)
	for k, v := range env {
		out[k] = v
	}
	out["VIRTUAL_ENV"] = dir
	return out
}

// CreateVenv runs "uv venv" for the requested interpreter, which uv downloads when missing.
func (i *Installer) CreateVenv(ctx context.Context, spec ports.VenvSpec) error {
	_, err := i.runner.Run(ctx, domain.Command{
		Name: i.binary,
		Args: []string{"venv", "--python", spec.Python, spec.Dir},
		Env:  spec.Env,
	})
	return err
}

// Compile resolves the input specs with "uv pip compile" and parses the pinned output.
func (i *Installer) Compile(ctx context.Context, spec ports.CompileSpec) ([]domain.Requirement, error) {
	args := []string{
		"pip", "compile",
		"--python-platform", targetPlatform,
		"--emit-index-url",
		"--emit-find-links",
		"--emit-build-options",
		"--emit-index-annotation",
	}
	args = append(args, indexArgs(spec.Index)...)
	args = append(args, "-")

	out, err := i.runner.Run(ctx, domain.Command{
		Name:  i.binary,
		Args:  args,
		Env:   venvEnv(spec.Dir, spec.Env),
		Stdin: strings.Join(spec.Input, "\n") + "\n",
	})
	if err != nil {
		return nil, err
	}

	reqs, err := domain.ParseRequirements(out)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse compiled requirements"), "dir", spec.Dir)
	}
	return reqs, nil
}

// Install installs exactly the given pins with "uv pip install --no-deps".
func (i *Installer) Install(ctx context.Context, spec ports.InstallSpec) error {
	if len(spec.Packages) == 0 {
		return nil
	}

	f, err := os.CreateTemp("", "monobase-requirements-*.txt")
	if err != nil {
		return zerr.Wrap(err, "failed to create requirements file")
	}
	defer func() { _ = os.Remove(f.Name()) }()

	var b strings.Builder
	for _, req := range spec.Packages {
		b.WriteString(req.String())
		b.WriteByte('\n')
	}
	if _, err := f.WriteString(b.String()); err != nil {
		_ = f.Close()
		return zerr.Wrap(err, "failed to write requirements file")
	}
	if err := f.Close(); err != nil {
		return zerr.Wrap(err, "failed to write requirements file")
	}

	args := []string{"pip", "install", "--no-deps", "--requirement", f.Name()}
	args = append(args, indexArgs(spec.Index)...)
	_, err = i.runner.Run(ctx, domain.Command{
		Name: i.binary,
		Args: args,
		Env:  venvEnv(spec.Dir, spec.Env),
	})
	return err
}

// Freeze lists the packages installed in the venv at dir.
func (i *Installer) Freeze(ctx context.Context, dir string, env map[string]string) ([]domain.Requirement, error) {
	out, err := i.runner.Run(ctx, domain.Command{
		Name: i.binary,
		Args: []string{"pip", "freeze"},
		Env:  venvEnv(dir, env),
	})
	if err != nil {
		return nil, err
	}
	reqs, err := domain.ParseRequirements(out)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse installed packages"), "dir", dir)
	}
	return reqs, nil
}

// Prune removes unused cache entries with "uv cache prune".
func (i *Installer) Prune(ctx context.Context, env map[string]string) error {
	_, err := i.runner.Run(ctx, domain.Command{Name: i.binary, Args: []string{"cache", "prune"}, Env: env})
	return err
}

// Clean empties the cache with "uv cache clean".
func (i *Installer) Clean(ctx context.Context, env map[string]string) error {
	_, err := i.runner.Run(ctx, domain.Command{Name: i.binary, Args: []string{"cache", "clean"}, Env: env})
	return err
}
