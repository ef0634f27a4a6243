package pget

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/monobase/internal/adapters/shell"
	"go.trai.ch/monobase/internal/core/ports"
)

// NodeID is the unique identifier for the fetcher Graft node.
const NodeID graft.ID = "adapter.pget"

func init() {
	graft.Register(graft.Node[ports.Fetcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.Fetcher, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			return New(runner, ""), nil
		},
	})
}
