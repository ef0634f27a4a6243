package metrics

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/monobase/internal/core/ports"
)

// NodeID is the unique identifier for the metrics recorder Graft node.
const NodeID graft.ID = "adapter.metrics"

func init() {
	graft.Register(graft.Node[ports.MetricsRecorder]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.MetricsRecorder, error) {
			return New(), nil
		},
	})
}
