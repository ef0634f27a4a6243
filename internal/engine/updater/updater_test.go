package updater_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/monobase/internal/adapters/config"
	"go.trai.ch/monobase/internal/adapters/telemetry"
	"go.trai.ch/monobase/internal/core/domain"
	"go.trai.ch/monobase/internal/core/ports"
	"go.trai.ch/monobase/internal/core/ports/mocks"
	"go.trai.ch/monobase/internal/engine/updater"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	updater  *updater.Updater
	packages *mocks.MockPackageInstaller
	locks    *config.LockStore
	cfg      updater.Config
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	f := &fixture{
		packages: mocks.NewMockPackageInstaller(ctrl),
		locks:    config.NewLockStore(nil),
		cfg: updater.Config{
			Layout:      domain.NewLayout(t.TempDir()),
			ConfigDir:   t.TempDir(),
			Environment: domain.EnvTest,
			Parallelism: 2,
			ScratchDir:  t.TempDir(),
		},
	}
	f.updater = updater.New(f.packages, f.locks, telemetry.NewNoOpTracer(), log, domain.DefaultResolver())
	return f
}

func manifest() domain.GenerationManifest {
	return domain.GenerationManifest{
		ID:            1,
		Toolkits:      map[string]string{"12.4": "12.4.1_550.54.15"},
		Pythons:       map[string]string{"3.12": "3.12.8"},
		Frameworks:    []string{"2.4.1"},
		ExtraPackages: []string{"wheel==0.45.1"},
	}
}

// expectResolve pins every input spec the way the resolver output would, plus one transitive dependency.
func (f *fixture) expectResolve(times int) {
	f.packages.EXPECT().CreateVenv(gomock.Any(), gomock.Any()).Return(nil).Times(times)
	f.packages.EXPECT().Compile(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, spec ports.CompileSpec) ([]domain.Requirement, error) {
			pins := []domain.Requirement{domain.Pin("numpy", "2.1.3")}
			for _, in := range spec.Input {
				req, err := domain.ParseRequirement(in)
				if err != nil {
					return nil, err
				}
				pins = append(pins, req)
			}
			return pins, nil
		},
	).Times(times)
}

func TestUpdate_WritesLocks(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.expectResolve(2)

	res, err := f.updater.Update(context.Background(), f.cfg, manifest())
	require.NoError(t, err)
	assert.Equal(t, []string{"python3.12-torch2.4.1-cu124", "python3.12-torch2.4.1-cpu"}, res.Venvs)

	venvs, err := f.locks.Venvs(f.cfg.ConfigDir, domain.EnvTest, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"python3.12-torch2.4.1-cpu", "python3.12-torch2.4.1-cu124"}, venvs)

	pins, err := f.locks.Read(f.cfg.ConfigDir, domain.LockRef{Env: domain.EnvTest, ID: 1, Venv: "python3.12-torch2.4.1-cu124"})
	require.NoError(t, err)
	assert.Equal(t, []domain.Requirement{
		domain.Pin("numpy", "2.1.3"),
		domain.Pin("torch", "2.4.1+cu124"),
		domain.Pin("torchaudio", "2.4.1+cu124"),
		domain.Pin("torchvision", "0.19.1+cu124"),
		domain.Pin("wheel", "0.45.1"),
	}, pins)

	raw, err := os.ReadFile(filepath.Join(f.cfg.ConfigDir, "requirements", "test", "00001", "python3.12-torch2.4.1-cpu.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "--extra-index-url https://download.pytorch.org/whl/cpu\n")

	entries, err := os.ReadDir(f.cfg.ScratchDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "scratch venvs are removed")
}

func TestUpdate_FailureKeepsPreviousLocks(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.cfg.Parallelism = 1
	previous := map[string]string{"python3.12-torch2.4.1-cpu": "torch==2.4.1+cpu\n"}
	require.NoError(t, f.locks.WriteGeneration(f.cfg.ConfigDir, domain.EnvTest, 1, previous))

	f.packages.EXPECT().CreateVenv(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.packages.EXPECT().Compile(gomock.Any(), gomock.Any()).Return(nil, domain.ErrDelegatedToolFailed).AnyTimes()

	_, err := f.updater.Update(context.Background(), f.cfg, manifest())
	require.ErrorIs(t, err, domain.ErrDelegatedToolFailed)

	venvs, err := f.locks.Venvs(f.cfg.ConfigDir, domain.EnvTest, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"python3.12-torch2.4.1-cpu"}, venvs)
}

func TestUpdate_FrameworkWithoutCompanions(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	m := manifest()
	m.Frameworks = []string{"2.4.2"}

	res, err := f.updater.Update(context.Background(), f.cfg, m)
	require.NoError(t, err)
	assert.Empty(t, res.Venvs)

	venvs, err := f.locks.Venvs(f.cfg.ConfigDir, domain.EnvTest, 1)
	require.NoError(t, err)
	assert.Empty(t, venvs)
}

func TestUpdate_BuiltinConfigIsReadOnly(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.cfg.ConfigDir = ""
	f.expectResolve(2)

	_, err := f.updater.Update(context.Background(), f.cfg, manifest())
	require.ErrorIs(t, err, domain.ErrLockWriteFailed)
	assert.Contains(t, err.Error(), "--config")
}
