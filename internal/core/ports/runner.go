package ports

import (
	"context"

	"go.trai.ch/monobase/internal/core/domain"
)

// CommandRunner runs delegated tools.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Run executes cmd and waits for it. It returns the captured stdout.
	// A non-zero exit returns domain.ErrDelegatedToolFailed carrying the tool's output.
	Run(ctx context.Context, cmd domain.Command) (string, error)
}
