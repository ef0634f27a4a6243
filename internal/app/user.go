package app

import (
	"context"

	"go.trai.ch/monobase/internal/core/domain"
	"go.trai.ch/monobase/internal/engine/userlayer"
)

// UserOptions configuration for the BuildUser method.
type UserOptions struct {
	Prefix            string
	Dir               string
	Requirements      string
	Python            string
	Framework         string
	Accelerator       string
	FrameworkIndexURL string
}

// BuildUser layers a user venv on the published monobase venv matching opts.
func (a *App) BuildUser(ctx context.Context, opts UserOptions) error {
	return a.users.Build(ctx, userlayer.Options{
		Layout:            domain.NewLayout(opts.Prefix),
		Dir:               opts.Dir,
		Requirements:      opts.Requirements,
		Python:            opts.Python,
		Framework:         opts.Framework,
		Accelerator:       opts.Accelerator,
		FrameworkIndexURL: opts.FrameworkIndexURL,
	})
}
