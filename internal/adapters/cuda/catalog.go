// Package cuda installs accelerator toolkits and runtime libraries from vendor archives.
package cuda

import (
	"path"
	"regexp"
	"strings"

	"go.trai.ch/monobase/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// DefaultToolkitURLPrefix is where toolkit runfiles are downloaded from.
	DefaultToolkitURLPrefix = "https://developer.download.nvidia.com/compute/cuda"
	// DefaultRuntimeLibURLPrefix is where runtime library archives are downloaded from.
	DefaultRuntimeLibURLPrefix = "https://developer.download.nvidia.com/compute/cudnn/redist/cudnn/linux-x86_64"
)

var (
	toolkitFileRe    = regexp.MustCompile(`^cuda_(?P<toolkit>[^_]+)_(?P<driver>[^_]+)_linux\.run$`)
	runtimeLibFileRe = regexp.MustCompile(`^cudnn-linux-x86_64-(?P<version>[^_]+)_cuda(?P<major>[^-]+)-archive\.tar\.xz$`)
)

// Toolkit is a downloadable toolkit runfile.
type Toolkit struct {
	URL      string
	Filename string
	Version  domain.Version
	Driver   domain.Version
}

// RuntimeLib is a downloadable runtime library archive built for one toolkit major line.
type RuntimeLib struct {
	URL          string
	Filename     string
	Version      domain.Version
	ToolkitMajor string
}

// Catalog maps full versions to downloadable archives.
type Catalog struct {
	toolkits    map[string]Toolkit
	runtimeLibs map[string]RuntimeLib
}

// NewCatalog builds a catalog from archive file names served under the given URL prefixes.
func NewCatalog(toolkitPrefix, runtimeLibPrefix string, toolkitFiles, runtimeLibFiles []string) (*Catalog, error) {
	c := &Catalog{
		toolkits:    make(map[string]Toolkit, len(toolkitFiles)),
		runtimeLibs: make(map[string]RuntimeLib, len(runtimeLibFiles)),
	}

	for _, f := range toolkitFiles {
		m := toolkitFileRe.FindStringSubmatch(f)
		if m == nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidArchiveName, f), "file", f)
		}
		tk, err := domain.ParseVersion(m[1])
		if err != nil {
			return nil, err
		}
		driver, err := domain.ParseVersion(m[2])
		if err != nil {
			return nil, err
		}
		c.toolkits[m[1]+"_"+m[2]] = Toolkit{
			URL:      joinURL(toolkitPrefix, f),
			Filename: f,
			Version:  tk,
			Driver:   driver,
		}
	}

	for _, f := range runtimeLibFiles {
		m := runtimeLibFileRe.FindStringSubmatch(f)
		if m == nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidArchiveName, f), "file", f)
		}
		v, err := domain.ParseVersion(m[1])
		if err != nil {
			return nil, err
		}
		c.runtimeLibs[runtimeLibKey(m[1], m[2])] = RuntimeLib{
			URL:          joinURL(runtimeLibPrefix, f),
			Filename:     f,
			Version:      v,
			ToolkitMajor: m[2],
		}
	}
	return c, nil
}

// DefaultCatalog returns the catalog of known archives. Empty prefixes use the vendor URLs.
func DefaultCatalog(toolkitPrefix, runtimeLibPrefix string) (*Catalog, error) {
	if toolkitPrefix == "" {
		toolkitPrefix = DefaultToolkitURLPrefix
	}
	if runtimeLibPrefix == "" {
		runtimeLibPrefix = DefaultRuntimeLibURLPrefix
	}
	return NewCatalog(toolkitPrefix, runtimeLibPrefix, toolkitArchives, runtimeLibArchives)
}

// Toolkit looks up a toolkit by full version such as "12.4.1_550.54.15".
func (c *Catalog) Toolkit(version string) (Toolkit, error) {
	tk, ok := c.toolkits[version]
	if !ok {
		return Toolkit{}, zerr.With(zerr.Wrap(domain.ErrUnknownToolkit, version), "version", version)
	}
	return tk, nil
}

// RuntimeLib looks up a runtime library by full version and toolkit major line.
func (c *Catalog) RuntimeLib(version, toolkitMajor string) (RuntimeLib, error) {
	rl, ok := c.runtimeLibs[runtimeLibKey(version, toolkitMajor)]
	if !ok {
		return RuntimeLib{}, zerr.With(zerr.With(zerr.Wrap(domain.ErrUnknownRuntimeLib, version), "version", version), "toolkit_major", toolkitMajor)
	}
	return rl, nil
}

func runtimeLibKey(version, major string) string {
	return version + "-cuda" + major
}

func joinURL(prefix, file string) string {
	return strings.TrimSuffix(prefix, "/") + "/" + path.Base(file)
}
