package userlayer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/monobase/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/monobase/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/monobase/internal/adapters/tracker"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/monobase/internal/adapters/uv"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/monobase/internal/core/ports"
)

// NodeID is the unique identifier for the user layer Graft node.
const NodeID graft.ID = "engine.userlayer"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{tracker.NodeID, uv.InstallerNodeID, telemetry.TracerNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Builder, error) {
			tr, err := graft.Dep[ports.CompletionTracker](ctx)
			if err != nil {
				return nil, err
			}
			packages, err := graft.Dep[ports.PackageInstaller](ctx)
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
			return New(tr, packages, tracer, log), nil
		},
	})
}
