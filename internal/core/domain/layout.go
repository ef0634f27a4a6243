package domain

import (
	"fmt"
	"path/filepath"
	"strconv"
)

const (
	// GenerationsDirName is the namespace directory holding generations and the latest pointer.
	GenerationsDirName = "monobase"

	// LatestLinkName is the name of the symlink to the newest published generation.
	LatestLinkName = "latest"

	// AcceleratorDirName is the directory of shared toolkit and runtime library installs.
	AcceleratorDirName = "accel"

	// UVDirName is the directory of the package installer's cache and interpreters.
	UVDirName = "uv"

	// LinkCacheDirName is the directory of shared-library caches inside a generation.
	LinkCacheDirName = "ld.so.cache.d"

	// MarkerFileName is the basename of completion markers.
	MarkerFileName = ".done"

	// ToolkitPrefix prefixes toolkit installs and their generation symlinks.
	ToolkitPrefix = "accel-"

	// RuntimeLibPrefix prefixes runtime library installs and their generation symlinks.
	RuntimeLibPrefix = "runtimelib-"

	// DefaultPrefix is the default install prefix.
	DefaultPrefix = "/srv/r8/monobase"

	// DefaultCacheDir is the default download cache.
	DefaultCacheDir = "/var/cache/monobase"

	// DefaultNodeFeatureLabelFile is where node feature discovery picks up labels.
	DefaultNodeFeatureLabelFile = "/etc/kubernetes/node-feature-discovery/features.d/monobase"

	// DefaultDedupMinSize is the smallest file size considered for deduplication.
	DefaultDedupMinSize int64 = 1 << 20

	// DirPerm is the default permission for directories (rwxr-xr-x).
	DirPerm = 0o755

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Layout resolves every managed path under an install prefix.
type Layout struct {
	Prefix string
}

// NewLayout creates a Layout rooted at prefix.
func NewLayout(prefix string) Layout {
	return Layout{Prefix: prefix}
}

// GenerationDirName formats a generation id as its directory name.
func GenerationDirName(id int) string {
	return fmt.Sprintf("%05d", id)
}

// ParseGenerationDirName returns the id of a generation directory name.
func ParseGenerationDirName(name string) (int, bool) {
	if len(name) != 5 {
		return 0, false
	}
	id, err := strconv.Atoi(name)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

// GenerationsDir returns the generation namespace.
func (l Layout) GenerationsDir() string {
	return filepath.Join(l.Prefix, GenerationsDirName)
}

// GenerationDir returns the directory of generation id.
func (l Layout) GenerationDir(id int) string {
	return filepath.Join(l.GenerationsDir(), GenerationDirName(id))
}

// LatestLink returns the path of the latest pointer.
func (l Layout) LatestLink() string {
	return filepath.Join(l.GenerationsDir(), LatestLinkName)
}

// AcceleratorDir returns the shared accelerator install directory.
func (l Layout) AcceleratorDir() string {
	return filepath.Join(l.Prefix, AcceleratorDirName)
}

// ToolkitInstallDir returns the install directory of a full toolkit version.
func (l Layout) ToolkitInstallDir(version string) string {
	return filepath.Join(l.AcceleratorDir(), ToolkitPrefix+version)
}

// RuntimeLibInstallDir returns the install directory of a runtime library built for a toolkit major line.
func (l Layout) RuntimeLibInstallDir(version, toolkitMajor string) string {
	return filepath.Join(l.AcceleratorDir(), RuntimeLibPrefix+version+"-accel"+toolkitMajor)
}

// ToolkitLinkName returns the generation symlink name of a toolkit label.
func ToolkitLinkName(label string) string {
	return ToolkitPrefix + label
}

// RuntimeLibLinkName returns the generation symlink name of a runtime library label paired with a toolkit major line.
func RuntimeLibLinkName(label, toolkitMajor string) string {
	return RuntimeLibPrefix + label + "-accel-" + toolkitMajor
}

// UV returns the package installer layout under the prefix.
func (l Layout) UV() UVLayout {
	dir := filepath.Join(l.Prefix, UVDirName)
	return UVLayout{
		CacheDir:  filepath.Join(dir, "cache"),
		PythonDir: filepath.Join(dir, "python"),
	}
}

// UVLayout holds the package installer's shared directories.
type UVLayout struct {
	CacheDir  string
	PythonDir string
}

// Environ returns the environment pointing the installer at its shared directories.
func (u UVLayout) Environ() map[string]string {
	return map[string]string{
		"UV_CACHE_DIR":          u.CacheDir,
		"UV_PYTHON_INSTALL_DIR": u.PythonDir,
	}
}

// PythonLibDir returns the shared library directory of an installed interpreter.
func (u UVLayout) PythonLibDir(fullVersion string) string {
	return filepath.Join(u.PythonDir, "cpython-"+fullVersion+"-linux-x86_64-gnu", "lib")
}
