package uv

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/monobase/internal/adapters/shell"
	"go.trai.ch/monobase/internal/core/ports"
)

const (
	// InstallerNodeID is the unique identifier for the package installer Graft node.
	InstallerNodeID graft.ID = "adapter.uv_installer"
	// CacheNodeID is the unique identifier for the package cache Graft node.
	CacheNodeID graft.ID = "adapter.uv_cache"
)

func init() {
	graft.Register(graft.Node[ports.PackageInstaller]{
		ID:        InstallerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.PackageInstaller, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			return New(runner, ""), nil
		},
	})

	graft.Register(graft.Node[ports.PackageCache]{
		ID:        CacheNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.PackageCache, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			return New(runner, ""), nil
		},
	})
}
