package app

import (
	"maps"
	"slices"

	"go.trai.ch/monobase/internal/core/domain"
	"go.trai.ch/monobase/internal/engine/orchestrator"
)

// Matrix lists the versions of the newest generation, for image builders that pick a venv.
type Matrix struct {
	ID                    int                 `json:"id"`
	AcceleratorVersions   []string            `json:"accelerator_versions"`
	RuntimeLibVersions    []string            `json:"runtime_lib_versions"`
	PythonVersions        []string            `json:"python_versions"`
	FrameworkVersions     []string            `json:"framework_versions"`
	FrameworkAccelerators map[string][]string `json:"framework_accelerators"`
	Venvs                 []MatrixVenv        `json:"venvs"`
}

// MatrixVenv is one buildable venv of the matrix.
type MatrixVenv struct {
	Python      string `json:"python"`
	Framework   string `json:"framework"`
	Accelerator string `json:"accelerator"`
}

// Matrix returns the version matrix of the newest generation of env.
func (a *App) Matrix(configDir string, env domain.Environment) (Matrix, error) {
	manifests, err := a.manifests(configDir, env)
	if err != nil {
		return Matrix{}, err
	}
	newest, _ := domain.Newest(manifests)
	return a.matrixOf(newest)
}

func (a *App) matrixOf(newest domain.GenerationManifest) (Matrix, error) {
	triples, err := orchestrator.BuildableTriples(a.resolver, newest)
	if err != nil {
		return Matrix{}, err
	}

	m := Matrix{
		ID:                    newest.ID,
		AcceleratorVersions:   domain.DescVersionKeys(newest.Toolkits),
		RuntimeLibVersions:    domain.DescVersionKeys(newest.RuntimeLibs),
		PythonVersions:        domain.DescVersionKeys(newest.Pythons),
		FrameworkVersions:     domain.DescVersions(newest.Frameworks),
		FrameworkAccelerators: make(map[string][]string, len(newest.Frameworks)),
		Venvs:                 make([]MatrixVenv, 0, len(triples)),
	}
	for _, f := range newest.Frameworks {
		v, err := domain.ParseVersion(f)
		if err != nil {
			return Matrix{}, err
		}
		accels := a.resolver.Accelerators(v)
		if accels == nil {
			continue
		}
		m.FrameworkAccelerators[f] = slices.DeleteFunc(slices.Clone(accels), func(s string) bool {
			return s == domain.CPU
		})
	}
	for _, t := range triples {
		m.Venvs = append(m.Venvs, MatrixVenv{Python: t.Python, Framework: t.Framework, Accelerator: t.Accelerator})
	}
	return m, nil
}

// PythonVersions returns every python key declared by the generations of env.
func (a *App) PythonVersions(configDir string, env domain.Environment) ([]string, error) {
	manifests, err := a.manifests(configDir, env)
	if err != nil {
		return nil, err
	}
	return pythonVersionsOf(manifests), nil
}

func pythonVersionsOf(manifests []domain.GenerationManifest) []string {
	seen := map[string]string{}
	for _, m := range manifests {
		maps.Copy(seen, m.Pythons)
	}
	return domain.DescVersionKeys(seen)
}
