package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/monobase/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/monobase/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/monobase/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/monobase/internal/adapters/metrics"   //nolint:depguard // Wired in app layer
	"go.trai.ch/monobase/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/monobase/internal/adapters/tracker"   //nolint:depguard // Wired in app layer
	"go.trai.ch/monobase/internal/core/domain"
	"go.trai.ch/monobase/internal/core/ports"
	"go.trai.ch/monobase/internal/engine/gc"
	"go.trai.ch/monobase/internal/engine/orchestrator"
	"go.trai.ch/monobase/internal/engine/updater"
	"go.trai.ch/monobase/internal/engine/userlayer"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			orchestrator.NodeID,
			updater.NodeID,
			config.LockStoreNodeID,
			gc.NodeID,
			userlayer.NodeID,
			tracker.NodeID,
			fs.DiskUsageNodeID,
			metrics.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ManifestLoader](ctx)
	if err != nil {
		return nil, err
	}
	orch, err := graft.Dep[*orchestrator.Orchestrator](ctx)
	if err != nil {
		return nil, err
	}
	upd, err := graft.Dep[*updater.Updater](ctx)
	if err != nil {
		return nil, err
	}
	locks, err := graft.Dep[ports.LockStore](ctx)
	if err != nil {
		return nil, err
	}
	collector, err := graft.Dep[*gc.Collector](ctx)
	if err != nil {
		return nil, err
	}
	users, err := graft.Dep[*userlayer.Builder](ctx)
	if err != nil {
		return nil, err
	}
	tr, err := graft.Dep[ports.CompletionTracker](ctx)
	if err != nil {
		return nil, err
	}
	disk, err := graft.Dep[ports.DiskUsage](ctx)
	if err != nil {
		return nil, err
	}
	recorder, err := graft.Dep[ports.MetricsRecorder](ctx)
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

	return New(loader, orch, upd, locks, collector, users, tr, disk, recorder, tracer, log, domain.DefaultResolver()), nil
}
