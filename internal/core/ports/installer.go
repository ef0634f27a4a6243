package ports

import (
	"context"

	"go.trai.ch/monobase/internal/core/domain"
)

//go:generate mockgen -source=installer.go -destination=mocks/mock_installer.go -package=mocks

// VenvSpec describes a venv to create.
type VenvSpec struct {
	Dir    string
	Python string
	Env    map[string]string
}

// CompileSpec describes a resolution of loose specs into exact pins.
type CompileSpec struct {
	Dir   string
	Input []string
	Index domain.PackageIndex
	Env   map[string]string
}

// InstallSpec describes an installation of pinned packages into a venv.
type InstallSpec struct {
	Dir      string
	Packages []domain.Requirement
	Index    domain.PackageIndex
	Env      map[string]string
}

// PackageInstaller creates and populates isolated Python environments.
type PackageInstaller interface {
	// CreateVenv creates an empty venv for the given interpreter version.
	CreateVenv(ctx context.Context, spec VenvSpec) error
	// Compile resolves the input specs into exact pins.
	Compile(ctx context.Context, spec CompileSpec) ([]domain.Requirement, error)
	// Install installs exactly the given pins, without resolving dependencies.
	Install(ctx context.Context, spec InstallSpec) error
	// Freeze lists the packages installed in the venv at dir.
	Freeze(ctx context.Context, dir string, env map[string]string) ([]domain.Requirement, error)
}

// PackageCache is the installer's shared download cache.
type PackageCache interface {
	// Prune removes unused entries.
	Prune(ctx context.Context, env map[string]string) error
	// Clean removes every entry.
	Clean(ctx context.Context, env map[string]string) error
}
