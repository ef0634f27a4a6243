package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/monobase/internal/adapters/fs"
	"go.trai.ch/monobase/internal/core/domain"
)

// expectedShapeHash is the golden hash of the tree built by writeTree.
// If this changes, every existing completion marker becomes stale.
const expectedShapeHash = "44fbe47d81c5b205"

func writeTree(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), domain.FilePerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "b.txt"), []byte("b"), domain.FilePerm))
	require.NoError(t, os.Symlink("a.txt", filepath.Join(dir, "link")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.MarkerFileName), []byte("{}"), domain.FilePerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", domain.MarkerFileName), []byte("{}"), domain.FilePerm))
	return dir
}

func TestShapeHasher_Golden(t *testing.T) {
	t.Parallel()

	h := fs.NewShapeHasher(fs.NewWalker())
	got, err := h.ShapeHash(writeTree(t))
	require.NoError(t, err)
	assert.Equal(t, expectedShapeHash, got)
}

func TestShapeHasher_EmptyDir(t *testing.T) {
	t.Parallel()

	h := fs.NewShapeHasher(fs.NewWalker())
	got, err := h.ShapeHash(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "ef46db3751d8e999", got)
}

func TestShapeHasher_IgnoresContentAndMarkers(t *testing.T) {
	t.Parallel()

	h := fs.NewShapeHasher(fs.NewWalker())
	dir := writeTree(t)

	before, err := h.ShapeHash(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("changed"), domain.FilePerm))
	require.NoError(t, os.Remove(filepath.Join(dir, "sub", domain.MarkerFileName)))

	after, err := h.ShapeHash(dir)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestShapeHasher_DetectsShapeChange(t *testing.T) {
	t.Parallel()

	h := fs.NewShapeHasher(fs.NewWalker())
	dir := writeTree(t)

	before, err := h.ShapeHash(dir)
	require.NoError(t, err)

	require.NoError(t, os.Remove(filepath.Join(dir, "sub", "b.txt")))
	removed, err := h.ShapeHash(dir)
	require.NoError(t, err)
	assert.NotEqual(t, before, removed)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "b.txt"), nil, domain.FilePerm))
	restored, err := h.ShapeHash(dir)
	require.NoError(t, err)
	assert.Equal(t, before, restored)
}

func TestShapeHasher_MissingDir(t *testing.T) {
	t.Parallel()

	h := fs.NewShapeHasher(fs.NewWalker())
	_, err := h.ShapeHash(filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, domain.ErrTreeHashFailed)
}
