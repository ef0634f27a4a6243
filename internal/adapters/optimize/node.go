package optimize

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/monobase/internal/adapters/logger"
	"go.trai.ch/monobase/internal/adapters/shell"
	"go.trai.ch/monobase/internal/core/ports"
)

const (
	// LinkCacheNodeID is the unique identifier for the link cache generator Graft node.
	LinkCacheNodeID graft.ID = "adapter.optimize.link_cache"
	// DedupNodeID is the unique identifier for the deduplicator Graft node.
	DedupNodeID graft.ID = "adapter.optimize.dedup"
)

func init() {
	graft.Register(graft.Node[ports.LinkCacheGenerator]{
		ID:        LinkCacheNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.LinkCacheGenerator, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			return NewLinkCache(runner, ""), nil
		},
	})

	graft.Register(graft.Node[ports.Deduplicator]{
		ID:        DedupNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Deduplicator, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewDedup(runner, log, ""), nil
		},
	})
}
