package ports

import "go.trai.ch/monobase/internal/core/domain"

// DiskUsage measures directory sizes.
//
//go:generate mockgen -source=disk.go -destination=mocks/mock_disk.go -package=mocks
type DiskUsage interface {
	// Usage returns the size of every direct child of root, and root's total.
	Usage(root string) ([]domain.DirUsage, int64, error)
}
