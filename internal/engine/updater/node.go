package updater

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/monobase/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/monobase/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/monobase/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/monobase/internal/adapters/uv"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/monobase/internal/core/domain"
	"go.trai.ch/monobase/internal/core/ports"
)

// NodeID is the unique identifier for the updater Graft node.
const NodeID graft.ID = "engine.updater"

func init() {
	graft.Register(graft.Node[*Updater]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{uv.InstallerNodeID, config.LockStoreNodeID, telemetry.TracerNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Updater, error) {
			packages, err := graft.Dep[ports.PackageInstaller](ctx)
			if err != nil {
				return nil, err
			}
			locks, err := graft.Dep[ports.LockStore](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(packages, locks, tracer, log, domain.DefaultResolver()), nil
		},
	})
}
