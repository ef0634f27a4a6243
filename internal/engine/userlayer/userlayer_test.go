package userlayer_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/monobase/internal/adapters/fs"
	"go.trai.ch/monobase/internal/adapters/telemetry"
	"go.trai.ch/monobase/internal/adapters/tracker"
	"go.trai.ch/monobase/internal/core/domain"
	"go.trai.ch/monobase/internal/core/ports"
	"go.trai.ch/monobase/internal/core/ports/mocks"
	"go.trai.ch/monobase/internal/engine/userlayer"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	builder  *userlayer.Builder
	packages *mocks.MockPackageInstaller
	logger   *mocks.MockLogger
	opts     userlayer.Options
	monoDir  string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	root := t.TempDir()
	layout := domain.NewLayout(filepath.Join(root, "prefix"))
	gdir := layout.GenerationDir(4)
	monoDir := filepath.Join(gdir, "python3.12-torch2.4.1-cu124")
	require.NoError(t, os.MkdirAll(monoDir, domain.DirPerm))
	require.NoError(t, os.Symlink("00004", layout.LatestLink()))

	reqs := filepath.Join(root, "requirements.txt")
	require.NoError(t, os.WriteFile(reqs, []byte("jinja2>=3.0\nrequests\n"), domain.FilePerm))

	f := &fixture{
		packages: mocks.NewMockPackageInstaller(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		opts: userlayer.Options{
			Layout:       layout,
			Dir:          filepath.Join(root, "venv"),
			Requirements: reqs,
			Python:       "3.12",
			Framework:    "2.4.1",
			Accelerator:  "12.4",
		},
	}
	f.monoDir, _ = filepath.EvalSymlinks(monoDir)
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	tr := tracker.New(fs.NewShapeHasher(fs.NewWalker()))
	f.builder = userlayer.New(tr, f.packages, telemetry.NewNoOpTracer(), f.logger)
	return f
}

func TestBuild_LayersOnMonobaseVenv(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	mono := []domain.Requirement{domain.Pin("torch", "2.4.1+cu124"), domain.Pin("jinja2", "3.1.3")}

	f.packages.EXPECT().Freeze(gomock.Any(), f.monoDir, gomock.Any()).Return(mono, nil)
	f.packages.EXPECT().CreateVenv(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, spec ports.VenvSpec) error {
			assert.Equal(t, "3.12", spec.Python)
			return os.MkdirAll(filepath.Join(spec.Dir, "bin"), domain.DirPerm)
		},
	)
	f.packages.EXPECT().Compile(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, spec ports.CompileSpec) ([]domain.Requirement, error) {
			assert.Equal(t, []string{"torch==2.4.1+cu124", "jinja2==3.1.3", "jinja2>=3.0", "requests"}, spec.Input)
			assert.Equal(t, "https://download.pytorch.org/whl/cu124", spec.Index.FrameworkURL)
			return []domain.Requirement{
				domain.Pin("torch", "2.4.1+cu124"),
				domain.Pin("jinja2", "3.1.3"),
				domain.Pin("requests", "2.32.3"),
			}, nil
		},
	)
	f.packages.EXPECT().Install(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, spec ports.InstallSpec) error {
			assert.Equal(t, []domain.Requirement{domain.Pin("requests", "2.32.3")}, spec.Packages)
			assert.Equal(t, filepath.Join(f.monoDir, "lib", "python3.12", "site-packages"), spec.Env["PYTHONPATH"])
			assert.Contains(t, spec.Env["CUDA_HOME"], "accel-12.4")
			return nil
		},
	)
	f.logger.EXPECT().Warn("excluding torch from user venv, provided by monobase")
	f.logger.EXPECT().Warn("excluding jinja2 from user venv, provided by monobase")

	require.NoError(t, f.builder.Build(context.Background(), f.opts))
	assert.FileExists(t, filepath.Join(f.opts.Dir, domain.MarkerFileName))

	// Complete venvs are left alone.
	require.NoError(t, f.builder.Build(context.Background(), f.opts))
}

func TestBuild_ReportsConflicts(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.packages.EXPECT().Freeze(gomock.Any(), gomock.Any(), gomock.Any()).Return(
		[]domain.Requirement{domain.Pin("numpy", "1.26.4")}, nil)
	f.packages.EXPECT().CreateVenv(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, spec ports.VenvSpec) error {
			return os.MkdirAll(spec.Dir, domain.DirPerm)
		},
	)
	f.packages.EXPECT().Compile(gomock.Any(), gomock.Any()).Return(
		[]domain.Requirement{domain.Pin("numpy", "2.1.0")}, nil)
	f.packages.EXPECT().Install(gomock.Any(), gomock.Any()).Return(nil)

	f.logger.EXPECT().Warn("probable incompatible versions for numpy: mono==1.26.4, user==2.1.0")
	f.logger.EXPECT().Warn("excluding numpy from user venv, provided by monobase")

	require.NoError(t, f.builder.Build(context.Background(), f.opts))
}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing framework", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.opts.Framework = ""
		require.ErrorIs(t, f.builder.Build(context.Background(), f.opts), domain.ErrMissingFramework)
	})

	t.Run("missing requirements file", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.opts.Requirements = filepath.Join(t.TempDir(), "nope.txt")
		require.ErrorIs(t, f.builder.Build(context.Background(), f.opts), domain.ErrRequirementsReadFailed)
	})
}
