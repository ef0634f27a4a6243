package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.opentelemetry.io/otel"
	"go.trai.ch/monobase/internal/adapters/metrics"
	"go.trai.ch/monobase/internal/core/ports"
)

// TracerNodeID is the unique identifier for the Telemetry adapter Graft node.
const TracerNodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{metrics.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			recorder, err := graft.Dep[ports.MetricsRecorder](ctx)
			if err != nil {
				return nil, err
			}
			tp, err := NewTracerProvider(ctx, recorder, os.Getenv)
			if err != nil {
				return nil, err
			}
			install(tp)
			otel.SetTracerProvider(tp)
			return NewOTelTracerFromProvider(tp, "monobase"), nil
		},
	})
}
