package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/monobase/internal/core/domain"
	"go.trai.ch/monobase/internal/core/ports"
	"go.trai.ch/zerr"
)

// requirementsDir holds one directory per environment, each with one directory per generation.
const requirementsDir = "requirements"

// latestName is the file holding the newest resolved generation of an environment.
const latestName = "latest"

var _ ports.LockStore = (*LockStore)(nil)

// LockStore implements ports.LockStore on the config tree the Loader reads,
// under "requirements/<env>/<id>/<venv>.txt".
type LockStore struct {
	Logger ports.Logger
}

// NewLockStore creates a new LockStore with the given logger.
func NewLockStore(logger ports.Logger) *LockStore {
	return &LockStore{Logger: logger}
}

func generationPath(env domain.Environment, id int) string {
	return path.Join(requirementsDir, string(env), domain.GenerationDirName(id))
}

// Read parses the lock of one venv.
func (s *LockStore) Read(dir string, ref domain.LockRef) ([]domain.Requirement, error) {
	fsys, err := openDir(dir)
	if err != nil {
		return nil, err
	}

	name := path.Join(generationPath(ref.Env, ref.ID), domain.LockFileName(ref.Venv))
	data, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, zerr.With(zerr.Wrap(domain.ErrLockMissing, "no lock for "+ref.Venv+", run monobase update"),
			"lock", name)
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrLockReadFailed, err.Error()), "lock", name)
	}

	pins, err := domain.ParseRequirements(string(data))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrLockReadFailed, err.Error()), "lock", name)
	}
	return pins, nil
}

// Venvs lists the venvs locked for generation id.
func (s *LockStore) Venvs(dir string, env domain.Environment, id int) ([]string, error) {
	fsys, err := openDir(dir)
	if err != nil {
		return nil, err
	}

	gen := generationPath(env, id)
	entries, err := fs.ReadDir(fsys, gen)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, zerr.With(zerr.Wrap(domain.ErrLockMissing, "no locks for generation "+strconv.Itoa(id)), "dir", gen)
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrLockReadFailed, err.Error()), "dir", gen)
	}

	var venvs []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if venv, ok := strings.CutSuffix(e.Name(), ".txt"); ok {
			venvs = append(venvs, venv)
		}
	}
	slices.Sort(venvs)
	return venvs, nil
}

// WriteGeneration writes the locks into a fresh directory and swaps it in,
// so locks of venvs that are no longer buildable do not survive an update.
func (s *LockStore) WriteGeneration(dir string, env domain.Environment, id int, locks map[string]string) error {
	if dir == "" {
		return zerr.Wrap(domain.ErrLockWriteFailed, "the built-in config is read-only, pass --config")
	}

	dest := filepath.Join(dir, filepath.FromSlash(generationPath(env, id)))
	parent := filepath.Dir(dest)
	if err := os.MkdirAll(parent, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrLockWriteFailed, err.Error()), "dir", parent)
	}
	tmp, err := os.MkdirTemp(parent, "."+filepath.Base(dest)+"-")
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrLockWriteFailed, err.Error()), "dir", parent)
	}
	defer func() { _ = os.RemoveAll(tmp) }()

	if err := os.Chmod(tmp, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrLockWriteFailed, err.Error()), "dir", tmp)
	}
	for venv, content := range locks {
		file := filepath.Join(tmp, domain.LockFileName(venv))
		if err := os.WriteFile(file, []byte(content), domain.FilePerm); err != nil {
			return zerr.With(zerr.Wrap(domain.ErrLockWriteFailed, err.Error()), "file", file)
		}
	}

	if err := os.RemoveAll(dest); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrLockWriteFailed, err.Error()), "dir", dest)
	}
	if err := os.Rename(tmp, dest); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrLockWriteFailed, err.Error()), "dir", dest)
	}
	if s.Logger != nil {
		s.Logger.Info(fmt.Sprintf("wrote %d venv locks to %s", len(locks), dest))
	}
	return nil
}

// SetLatest records id as the newest resolved generation of env.
func (s *LockStore) SetLatest(dir string, env domain.Environment, id int) error {
	name := path.Join(requirementsDir, string(env), latestName)
	return s.WriteFile(dir, name, []byte(domain.GenerationDirName(id)+"\n"))
}

// WriteFile replaces name under dir through a temporary file.
func (s *LockStore) WriteFile(dir, name string, data []byte) error {
	if dir == "" {
		return zerr.Wrap(domain.ErrLockWriteFailed, "the built-in config is read-only, pass --config")
	}

	dest := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(dest), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrLockWriteFailed, err.Error()), "file", dest)
	}
	tmp := dest + ".tmp"
	if err := os.WriteFile(tmp, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrLockWriteFailed, err.Error()), "file", dest)
	}
	if err := os.Rename(tmp, dest); err != nil {
		_ = os.Remove(tmp)
		return zerr.With(zerr.Wrap(domain.ErrLockWriteFailed, err.Error()), "file", dest)
	}
	return nil
}
