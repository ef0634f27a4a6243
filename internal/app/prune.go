package app

import (
	"context"
	"fmt"

	"go.trai.ch/monobase/internal/core/domain"
)

// PruneOptions configuration for the Prune method.
type PruneOptions struct {
	Prefix string
	// OldGenerations removes generation directories with an id below FloorID.
	OldGenerations bool
	FloorID        int
	Accelerators   bool
	Cache          bool
}

// Prune runs the requested garbage collection passes.
// Old generations go first so the accelerator sweep only keeps installs that survivors reference.
func (a *App) Prune(ctx context.Context, opts PruneOptions) error {
	layout := domain.NewLayout(opts.Prefix)

	if opts.OldGenerations {
		pruned, err := a.collector.PruneOldGenerations(layout, opts.FloorID)
		if err != nil {
			return err
		}
		a.logger.Info(fmt.Sprintf("pruned %d old generations below %d", len(pruned), opts.FloorID))
	}

	if opts.Accelerators {
		pruned, err := a.collector.PruneUnusedAcceleratorInstalls(layout)
		if err != nil {
			return err
		}
		a.logger.Info(fmt.Sprintf("pruned %d unused accelerator installs", len(pruned)))
	}

	if opts.Cache {
		return a.collector.PruneDelegatedCaches(ctx, layout)
	}
	return nil
}
