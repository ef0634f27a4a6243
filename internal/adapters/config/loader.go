// Package config loads generation manifests from YAML.
package config

import (
	"bytes"
	"embed"
	"errors"
	"io"
	"io/fs"
	"os"

	"go.trai.ch/monobase/internal/core/domain"
	"go.trai.ch/monobase/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// The built-in tree holds "<env>.yaml" and, once resolved, "requirements/<env>/<id>/<venv>.txt".
//
//go:embed generations
var builtin embed.FS

const builtinDir = "generations"

var _ ports.ManifestLoader = (*Loader)(nil)

// Loader implements ports.ManifestLoader.
// Each environment is read from "<env>.yaml" inside a directory.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads every environment's generations from the directory at path.
// An empty path loads the generations compiled into the binary.
func (l *Loader) Load(path string) (map[domain.Environment][]domain.GenerationManifest, error) {
	fsys, err := openDir(path)
	if err != nil {
		return nil, err
	}
	if path != "" && l.Logger != nil {
		l.Logger.Info("loading generations from " + path)
	}

	result := make(map[domain.Environment][]domain.GenerationManifest, len(domain.Environments))
	for _, env := range domain.Environments {
		gens, err := loadEnvironment(fsys, env)
		if err != nil {
			return nil, zerr.With(err, "path", path)
		}
		result[env] = gens
	}
	return result, nil
}

// openDir returns the config tree at path, or the built-in tree when path is empty.
func openDir(path string) (fs.FS, error) {
	if path == "" {
		sub, err := fs.Sub(builtin, builtinDir)
		if err != nil {
			return nil, zerr.Wrap(domain.ErrConfigReadFailed, err.Error())
		}
		return sub, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}
	if !info.IsDir() {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, "not a directory"), "path", path)
	}
	return os.DirFS(path), nil
}

func loadEnvironment(fsys fs.FS, env domain.Environment) ([]domain.GenerationManifest, error) {
	name := string(env) + ".yaml"
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "file", name)
	}

	var file GenerationsFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "file", name)
	}

	gens := make([]domain.GenerationManifest, 0, len(file.Generations))
	for _, dto := range file.Generations {
		gens = append(gens, dto.toDomain())
	}
	return gens, nil
}

func (d GenerationDTO) toDomain() domain.GenerationManifest {
	m := domain.GenerationManifest{
		ID:            d.ID,
		Toolkits:      d.Toolkits,
		RuntimeLibs:   d.RuntimeLibs,
		Pythons:       d.Pythons,
		Frameworks:    d.Frameworks,
		ExtraPackages: d.ExtraPackages,
	}
	if m.Toolkits == nil {
		m.Toolkits = map[string]string{}
	}
	if m.RuntimeLibs == nil {
		m.RuntimeLibs = map[string]string{}
	}
	if m.Pythons == nil {
		m.Pythons = map[string]string{}
	}
	return m
}
