package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/monobase/internal/adapters/logger"
	"go.trai.ch/monobase/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the manifest loader Graft node.
	NodeID graft.ID = "adapter.config_loader"
	// LockStoreNodeID is the unique identifier for the lock store Graft node.
	LockStoreNodeID graft.ID = "adapter.lock_store"
)

func init() {
	graft.Register(graft.Node[ports.ManifestLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ManifestLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
	graft.Register(graft.Node[ports.LockStore]{
		ID:        LockStoreNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.LockStore, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLockStore(log), nil
		},
	})
}
