package fs

import (
	"os"
	"path/filepath"
	"syscall"

	"go.trai.ch/monobase/internal/core/domain"
	"go.trai.ch/monobase/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DiskUsage = (*DiskUsage)(nil)

// DiskUsage measures allocated bytes per directory, counting each inode once
// so deduplicated hardlinks are not double counted.
type DiskUsage struct {
	walker *Walker
}

// NewDiskUsage creates a new DiskUsage.
func NewDiskUsage(walker *Walker) *DiskUsage {
	return &DiskUsage{walker: walker}
}

type inode struct {
	dev uint64
	ino uint64
}

// Usage returns the size of each direct child of root and the total of root.
// Inodes already counted under an earlier child are not counted again.
func (u *DiskUsage) Usage(root string) ([]domain.DirUsage, int64, error) {
	children, err := os.ReadDir(root)
	if err != nil {
		return nil, 0, zerr.With(zerr.Wrap(err, "failed to read directory"), "dir", root)
	}

	seen := make(map[inode]struct{})
	var total int64
	out := make([]domain.DirUsage, 0, len(children))
	for _, c := range children {
		path := filepath.Join(root, c.Name())
		size := u.add(path, seen)

		if c.IsDir() {
			var walkErr error
			for e := range u.walker.WalkTree(path, nil, &walkErr) {
				size += u.add(e.Path, seen)
			}
			if walkErr != nil {
				return nil, 0, zerr.With(zerr.Wrap(walkErr, "failed to walk directory"), "dir", path)
			}
		}

		out = append(out, domain.DirUsage{Path: path, Bytes: size})
		total += size
	}
	return out, total, nil
}

func (u *DiskUsage) add(path string, seen map[inode]struct{}) int64 {
	info, err := os.Lstat(path)
	if err != nil {
		return 0
	}
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.Size()
	}
	key := inode{dev: uint64(st.Dev), ino: st.Ino} //nolint:unconvert // Dev width differs by platform
	if _, dup := seen[key]; dup {
		return 0
	}
	seen[key] = struct{}{}
	return st.Blocks * 512
}
