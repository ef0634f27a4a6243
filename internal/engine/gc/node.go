package gc

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/monobase/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/monobase/internal/adapters/uv"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/monobase/internal/core/ports"
)

// NodeID is the unique identifier for the garbage collector Graft node.
const NodeID graft.ID = "engine.gc"

func init() {
	graft.Register(graft.Node[*Collector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{uv.CacheNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Collector, error) {
			cache, err := graft.Dep[ports.PackageCache](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(cache, log), nil
		},
	})
}
