package cuda

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	monofs "go.trai.ch/monobase/internal/adapters/fs"
	"go.trai.ch/monobase/internal/core/domain"
	"go.trai.ch/monobase/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ToolkitInstaller = (*Installer)(nil)

// unusedToolkitPaths are removed after a toolkit install. They are never loaded at runtime.
var unusedToolkitPaths = []string{
	"compute-sanitizer",
	"extras",
	"gds",
	"gds-*",
	"libnvvp",
	"nsight-*",
	"nsightee_plugins",
	"nvml",
	"pkgconfig",
	"tools",
}

// staticLibPattern matches static archives, which venvs never link against.
const staticLibPattern = "lib*.a"

// Installer implements ports.ToolkitInstaller.
type Installer struct {
	catalog *Catalog
	fetcher ports.Fetcher
	runner  ports.CommandRunner
	walker  *monofs.Walker
	logger  ports.Logger
}

// NewInstaller creates a new Installer.
func NewInstaller(
	catalog *Catalog,
	fetcher ports.Fetcher,
	runner ports.CommandRunner,
	walker *monofs.Walker,
	logger ports.Logger,
) *Installer {
	return &Installer{catalog: catalog, fetcher: fetcher, runner: runner, walker: walker, logger: logger}
}

// InstallToolkit runs the vendor runfile in toolkit-only mode into req.Dest and strips unused files.
func (i *Installer) InstallToolkit(ctx context.Context, req ports.ToolkitRequest) error {
	tk, err := i.catalog.Toolkit(req.Version)
	if err != nil {
		return err
	}

	file, err := i.download(ctx, tk.URL, filepath.Join(req.CacheDir, tk.Filename))
	if err != nil {
		return err
	}

	i.logger.Info("installing toolkit " + req.Version)
	_, err = i.runner.Run(ctx, domain.Command{
		Name: "/bin/sh",
		Args: []string{
			file,
			"--installpath=" + req.Dest,
			"--toolkit",
			"--override",
			"--silent",
			"--no-opengl-libs",
			"--no-man-page",
			"--no-drm",
		},
	})
	if err != nil {
		return err
	}

	for _, pattern := range unusedToolkitPaths {
		matches, err := filepath.Glob(filepath.Join(req.Dest, pattern))
		if err != nil {
			return zerr.Wrap(err, "invalid cleanup pattern")
		}
		for _, m := range matches {
			if err := os.RemoveAll(m); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to remove unused toolkit files"), "path", m)
			}
		}
	}
	return i.removeStaticLibs(req.Dest)
}

// InstallRuntimeLib unpacks the runtime library archive built for req.ToolkitMajor into req.Dest.
func (i *Installer) InstallRuntimeLib(ctx context.Context, req ports.ToolkitRequest) error {
	rl, err := i.catalog.RuntimeLib(req.Version, req.ToolkitMajor)
	if err != nil {
		return err
	}

	file, err := i.download(ctx, rl.URL, filepath.Join(req.CacheDir, rl.Filename))
	if err != nil {
		return err
	}

	if err := os.MkdirAll(req.Dest, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create install directory"), "dir", req.Dest)
	}

	i.logger.Info("installing runtime library " + req.Version + " for toolkit " + req.ToolkitMajor)
	_, err = i.runner.Run(ctx, domain.Command{
		Name: "tar",
		Args: []string{"-xf", file, "--strip-components=1", "--exclude=" + staticLibPattern, "-C", req.Dest},
	})
	return err
}

// download fetches url into dest unless a previous run already cached it.
func (i *Installer) download(ctx context.Context, url, dest string) (string, error) {
	if _, err := os.Stat(dest); err == nil {
		return dest, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", zerr.With(zerr.Wrap(err, "failed to stat cached archive"), "path", dest)
	}

	if err := os.MkdirAll(filepath.Dir(dest), domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to create cache directory"), "dir", filepath.Dir(dest))
	}

	i.logger.Info("downloading " + url)
	if err := i.fetcher.Fetch(ctx, url, dest); err != nil {
		return "", err
	}
	return dest, nil
}

func (i *Installer) removeStaticLibs(root string) error {
	var walkErr error
	var static []string
	for e := range i.walker.WalkTree(root, nil, &walkErr) {
		if e.Dir.IsDir() {
			continue
		}
		if ok, _ := filepath.Match(staticLibPattern, e.Dir.Name()); ok {
			static = append(static, e.Path)
		}
	}
	if walkErr != nil {
		return zerr.With(zerr.Wrap(walkErr, "failed to walk toolkit"), "dir", root)
	}

	for _, p := range static {
		if err := os.Remove(p); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to remove static library"), "path", p)
		}
	}
	return nil
}
