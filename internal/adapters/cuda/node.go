package cuda

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/monobase/internal/adapters/fs"
	"go.trai.ch/monobase/internal/adapters/logger"
	"go.trai.ch/monobase/internal/adapters/pget"
	"go.trai.ch/monobase/internal/adapters/shell"
	"go.trai.ch/monobase/internal/core/ports"
)

// NodeID is the unique identifier for the toolkit installer Graft node.
const NodeID graft.ID = "adapter.cuda"

func init() {
	graft.Register(graft.Node[ports.ToolkitInstaller]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{pget.NodeID, shell.NodeID, fs.WalkerNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ToolkitInstaller, error) {
			fetcher, err := graft.Dep[ports.Fetcher](ctx)
			if err != nil {
				return nil, err
			}
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			catalog, err := DefaultCatalog("", "")
			if err != nil {
				return nil, err
			}
			return NewInstaller(catalog, fetcher, runner, walker, log), nil
		},
	})
}
