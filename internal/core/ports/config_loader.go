package ports

import "go.trai.ch/monobase/internal/core/domain"

// ManifestLoader defines the interface for loading generation manifests.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ManifestLoader interface {
	// Load reads the generations of every environment from path.
	// An empty path loads the built-in generations.
	Load(path string) (map[domain.Environment][]domain.GenerationManifest, error)
}
