package cuda_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/monobase/internal/adapters/cuda"
	"go.trai.ch/monobase/internal/adapters/fs"
	"go.trai.ch/monobase/internal/core/domain"
	"go.trai.ch/monobase/internal/core/ports"
	"go.trai.ch/monobase/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	installer *cuda.Installer
	fetcher   *mocks.MockFetcher
	runner    *mocks.MockCommandRunner
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	catalog, err := cuda.DefaultCatalog("https://dl.local/cuda", "https://dl.local/cudnn")
	require.NoError(t, err)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	f := fixture{
		fetcher: mocks.NewMockFetcher(ctrl),
		runner:  mocks.NewMockCommandRunner(ctrl),
	}
	f.installer = cuda.NewInstaller(catalog, f.fetcher, f.runner, fs.NewWalker(), log)
	return f
}

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte("x"), domain.FilePerm))
}

func TestInstaller_InstallToolkit(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	cache := t.TempDir()
	dest := filepath.Join(t.TempDir(), "accel-12.4.1_550.54.15")
	runfile := filepath.Join(cache, "cuda_12.4.1_550.54.15_linux.run")

	f.fetcher.EXPECT().
		Fetch(gomock.Any(), "https://dl.local/cuda/cuda_12.4.1_550.54.15_linux.run", runfile).
		DoAndReturn(func(_ context.Context, _, dest string) error {
			touch(t, dest)
			return nil
		})

	f.runner.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd domain.Command) (string, error) {
			assert.Equal(t, "/bin/sh", cmd.Name)
			assert.Equal(t, runfile, cmd.Args[0])
			assert.Contains(t, cmd.Args, "--installpath="+dest)
			assert.Contains(t, cmd.Args, "--toolkit")

			touch(t, filepath.Join(dest, "lib64", "libcudart.so.12"))
			touch(t, filepath.Join(dest, "lib64", "libcudart_static.a"))
			touch(t, filepath.Join(dest, "extras", "demo"))
			touch(t, filepath.Join(dest, "nsight-compute-2024.1.1", "ncu"))
			touch(t, filepath.Join(dest, "bin", "nvcc"))
			return "", nil
		})

	err := f.installer.InstallToolkit(t.Context(), ports.ToolkitRequest{
		Version:  "12.4.1_550.54.15",
		Dest:     dest,
		CacheDir: cache,
	})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dest, "lib64", "libcudart.so.12"))
	assert.FileExists(t, filepath.Join(dest, "bin", "nvcc"))
	assert.NoFileExists(t, filepath.Join(dest, "lib64", "libcudart_static.a"))
	assert.NoDirExists(t, filepath.Join(dest, "extras"))
	assert.NoDirExists(t, filepath.Join(dest, "nsight-compute-2024.1.1"))
}

func TestInstaller_UsesCachedArchive(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	cache := t.TempDir()
	archive := filepath.Join(cache, "cudnn-linux-x86_64-9.1.0.70_cuda12-archive.tar.xz")
	touch(t, archive)
	dest := filepath.Join(t.TempDir(), "runtimelib-9.1.0.70-accel12")

	f.runner.EXPECT().Run(gomock.Any(), domain.Command{
		Name: "tar",
		Args: []string{"-xf", archive, "--strip-components=1", "--exclude=lib*.a", "-C", dest},
	}).Return("", nil)

	err := f.installer.InstallRuntimeLib(t.Context(), ports.ToolkitRequest{
		Version:      "9.1.0.70",
		ToolkitMajor: "12",
		Dest:         dest,
		CacheDir:     cache,
	})
	require.NoError(t, err)
	assert.DirExists(t, dest)
}

func TestInstaller_UnknownVersions(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	err := f.installer.InstallToolkit(t.Context(), ports.ToolkitRequest{Version: "99.0.0_1.2.3"})
	require.ErrorIs(t, err, domain.ErrUnknownToolkit)

	err = f.installer.InstallRuntimeLib(t.Context(), ports.ToolkitRequest{Version: "9.1.0.70", ToolkitMajor: "13"})
	require.ErrorIs(t, err, domain.ErrUnknownRuntimeLib)
}
