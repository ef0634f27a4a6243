// Package fs provides file system adapters for walking, fingerprinting and measuring trees.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// Entry is one filesystem entry yielded by the Walker.
type Entry struct {
	// Rel is the slash-separated path relative to the walk root.
	Rel  string
	Path string
	Dir  fs.DirEntry
}

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkTree yields every entry below root, not including root itself.
// Symlinks are yielded but never followed. Entries whose base name is in skip are
// not yielded, though the walk still descends into them.
// The walk stops at the first error, which is reported through errp.
func (w *Walker) WalkTree(root string, skip []string, errp *error) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if path == root {
				return nil
			}
			if w.skipped(d.Name(), skip) {
				return nil
			}

			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			if !yield(Entry{Rel: filepath.ToSlash(rel), Path: path, Dir: d}) {
				return filepath.SkipAll
			}
			return nil
		})
		if errp != nil {
			*errp = err
		}
	}
}

func (w *Walker) skipped(name string, skip []string) bool {
	for _, s := range skip {
		if name == s {
			return true
		}
	}
	return false
}
