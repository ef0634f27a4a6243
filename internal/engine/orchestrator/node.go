package orchestrator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/monobase/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/monobase/internal/adapters/cuda"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/monobase/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/monobase/internal/adapters/metrics"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/monobase/internal/adapters/optimize"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/monobase/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/monobase/internal/adapters/tracker"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/monobase/internal/adapters/uv"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/monobase/internal/core/domain"
	"go.trai.ch/monobase/internal/core/ports"
)

// NodeID is the unique identifier for the orchestrator Graft node.
const NodeID graft.ID = "engine.orchestrator"

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			tracker.NodeID,
			cuda.NodeID,
			uv.InstallerNodeID,
			config.LockStoreNodeID,
			optimize.LinkCacheNodeID,
			optimize.DedupNodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
			metrics.NodeID,
		},
		Run: func(ctx context.Context) (*Orchestrator, error) {
			tr, err := graft.Dep[ports.CompletionTracker](ctx)
			if err != nil {
				return nil, err
			}
			toolkits, err := graft.Dep[ports.ToolkitInstaller](ctx)
			if err != nil {
				return nil, err
			}
			packages, err := graft.Dep[ports.PackageInstaller](ctx)
			if err != nil {
				return nil, err
			}
			locks, err := graft.Dep[ports.LockStore](ctx)
			if err != nil {
				return nil, err
			}
			linkCache, err := graft.Dep[ports.LinkCacheGenerator](ctx)
			if err != nil {
				return nil, err
			}
			dedup, err := graft.Dep[ports.Deduplicator](ctx)
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
			recorder, err := graft.Dep[ports.MetricsRecorder](ctx)
			if err != nil {
				return nil, err
			}

			return New(tr, toolkits, packages, locks, linkCache, dedup, tracer, log, recorder, domain.DefaultResolver()), nil
		},
	})
}
