package commands_test

import (
	"bytes"
	"context"
	"errors"
	"math"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/monobase/cmd/monobase/commands"
	"go.trai.ch/monobase/internal/app"
	"go.trai.ch/monobase/internal/build"
	"go.trai.ch/monobase/internal/core/domain"
)

type mockApp struct {
	build    func(ctx context.Context, opts app.BuildOptions) error
	validate func(configDir string) error
	prune    func(ctx context.Context, opts app.PruneOptions) error
	user     func(ctx context.Context, opts app.UserOptions) error
	update   func(ctx context.Context, opts app.UpdateOptions) error
	diff     func(configDir string, env domain.Environment, id0, id1 int) (domain.LockDiff, error)
	matrix   app.Matrix
}

func (m *mockApp) Build(ctx context.Context, opts app.BuildOptions) error {
	if m.build != nil {
		return m.build(ctx, opts)
	}
	return nil
}

func (m *mockApp) Validate(configDir string) error {
	if m.validate != nil {
		return m.validate(configDir)
	}
	return nil
}

func (m *mockApp) Prune(ctx context.Context, opts app.PruneOptions) error {
	if m.prune != nil {
		return m.prune(ctx, opts)
	}
	return nil
}

func (m *mockApp) Matrix(_ string, _ domain.Environment) (app.Matrix, error) {
	return m.matrix, nil
}

func (m *mockApp) PythonVersions(_ string, _ domain.Environment) ([]string, error) {
	return m.matrix.PythonVersions, nil
}

func (m *mockApp) BuildUser(ctx context.Context, opts app.UserOptions) error {
	if m.user != nil {
		return m.user(ctx, opts)
	}
	return nil
}

func (m *mockApp) Update(ctx context.Context, opts app.UpdateOptions) error {
	if m.update != nil {
		return m.update(ctx, opts)
	}
	return nil
}

func (m *mockApp) Diff(configDir string, env domain.Environment, id0, id1 int) (domain.LockDiff, error) {
	if m.diff != nil {
		return m.diff(configDir, env, id0, id1)
	}
	return domain.LockDiff{}, nil
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(a)
	buf := new(bytes.Buffer)
	cli.SetArgs(args)
	cli.SetOutput(buf, buf)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Build(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var got app.BuildOptions
		called := false
		mock := &mockApp{build: func(_ context.Context, opts app.BuildOptions) error {
			got = opts
			called = true
			return nil
		}}

		_, err := execute(t, mock, "build",
			"--environment", "test",
			"--prefix", "/tmp/mb",
			"--min-gen-id", "2",
			"--mini", "--python", "3.12", "--framework", "2.4.1", "--accel", "12.4", "--runtime-lib", "9",
			"--skip-accel", "--prune-old-gen", "--prune-cache=false",
			"--metrics-file", "/tmp/mb.prom",
			"--write-node-feature-labels=false",
		)
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, domain.EnvTest, got.Environment)
		assert.Equal(t, "/tmp/mb", got.Prefix)
		assert.Equal(t, 2, got.MinGenID)
		assert.True(t, got.Mini)
		assert.Equal(t, domain.Selection{Python: "3.12", Framework: "2.4.1", Toolkit: "12.4", RuntimeLib: "9"}, got.Selection)
		assert.True(t, got.SkipAccelerators)
		assert.True(t, got.PruneOldGenerations)
		assert.False(t, got.PruneCache)
		assert.Equal(t, "/tmp/mb.prom", got.MetricsFile)
		assert.Empty(t, got.NodeFeatureLabelFile)
	})

	t.Run("defaults", func(t *testing.T) {
		var got app.BuildOptions
		mock := &mockApp{build: func(_ context.Context, opts app.BuildOptions) error {
			got = opts
			return nil
		}}

		_, err := execute(t, mock, "build", "--write-node-feature-labels")
		require.NoError(t, err)
		assert.Equal(t, domain.EnvProd, got.Environment)
		assert.Equal(t, domain.DefaultPrefix, got.Prefix)
		assert.Equal(t, domain.DefaultCacheDir, got.CacheDir)
		assert.True(t, got.PruneCache)
		assert.Equal(t, domain.DefaultPrefix, got.AllDoneDir)
		assert.Equal(t, domain.DefaultNodeFeatureLabelFile, got.NodeFeatureLabelFile)
	})

	t.Run("rejects unknown environment", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "build", "--environment", "staging")
		require.ErrorIs(t, err, domain.ErrUnknownEnvironment)
	})

	t.Run("returns error on build failure", func(t *testing.T) {
		mock := &mockApp{build: func(_ context.Context, _ app.BuildOptions) error {
			return errors.New("simulated error")
		}}
		_, err := execute(t, mock, "build")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Prune(t *testing.T) {
	var got app.PruneOptions
	mock := &mockApp{prune: func(_ context.Context, opts app.PruneOptions) error {
		got = opts
		return nil
	}}

	_, err := execute(t, mock, "prune", "--prefix", "/tmp/mb", "--accel")
	require.NoError(t, err)
	assert.Equal(t, app.PruneOptions{Prefix: "/tmp/mb", Accelerators: true}, got)

	_, err = execute(t, mock, "prune", "--min-gen-id", "3", "--cache")
	require.NoError(t, err)
	assert.True(t, got.OldGenerations)
	assert.Equal(t, 3, got.FloorID)
	assert.True(t, got.Cache)
}

func TestCommands_Validate(t *testing.T) {
	var dir string
	mock := &mockApp{validate: func(configDir string) error {
		dir = configDir
		return nil
	}}

	out, err := execute(t, mock, "validate", "--config", "/etc/monobase")
	require.NoError(t, err)
	assert.Equal(t, "/etc/monobase", dir)
	assert.Equal(t, "generations are valid\n", out)
}

func TestCommands_User(t *testing.T) {
	var got app.UserOptions
	mock := &mockApp{user: func(_ context.Context, opts app.UserOptions) error {
		got = opts
		return nil
	}}

	_, err := execute(t, mock, "user", "--requirements", "req.txt", "--python", "3.12", "--framework", "2.4.1")
	require.NoError(t, err)
	assert.Equal(t, "req.txt", got.Requirements)
	assert.Equal(t, domain.CPU, got.Accelerator)

	_, err = execute(t, mock, "user", "--python", "3.12")
	require.Error(t, err)
}

func sampleMatrix() app.Matrix {
	return app.Matrix{
		ID:                    1,
		AcceleratorVersions:   []string{"12.4", "12.1"},
		RuntimeLibVersions:    []string{"9"},
		PythonVersions:        []string{"3.12", "3.11"},
		FrameworkVersions:     []string{"2.4.1"},
		FrameworkAccelerators: map[string][]string{"2.4.1": {"11.8", "12.1", "12.4"}},
		Venvs: []app.MatrixVenv{
			{Python: "3.12", Framework: "2.4.1", Accelerator: "12.4"},
			{Python: "3.12", Framework: "2.4.1", Accelerator: domain.CPU},
		},
	}
}

func TestCommands_Matrix(t *testing.T) {
	out, err := execute(t, &mockApp{matrix: sampleMatrix()}, "matrix")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "matrix", []byte(out))
}

func TestCommands_MatrixPythonVersions(t *testing.T) {
	out, err := execute(t, &mockApp{matrix: sampleMatrix()}, "matrix", "--python-versions")
	require.NoError(t, err)
	assert.Equal(t, "3.12\n3.11\n", out)
}

func TestCommands_Update(t *testing.T) {
	var got app.UpdateOptions
	mock := &mockApp{update: func(_ context.Context, opts app.UpdateOptions) error {
		got = opts
		return nil
	}}

	_, err := execute(t, mock, "update", "--config", "/etc/monobase", "--environment", "test",
		"--min-gen-id", "3", "--parallelism", "4")
	require.NoError(t, err)
	assert.Equal(t, "/etc/monobase", got.ConfigDir)
	assert.Equal(t, domain.EnvTest, got.Environment)
	assert.Equal(t, domain.DefaultPrefix, got.Prefix)
	assert.Equal(t, 3, got.MinGenID)
	assert.Equal(t, math.MaxInt, got.MaxGenID)
	assert.Equal(t, 4, got.Parallelism)
}

func TestCommands_Diff(t *testing.T) {
	var gotIDs [2]int
	mock := &mockApp{diff: func(configDir string, env domain.Environment, id0, id1 int) (domain.LockDiff, error) {
		gotIDs = [2]int{id0, id1}
		assert.Equal(t, "/etc/monobase", configDir)
		assert.Equal(t, domain.EnvProd, env)
		return domain.LockDiff{
			Removed: []string{"python3.11-torch2.2.0-cpu"},
			Added:   []string{"python3.13-torch2.5.1-cpu"},
			Changes: []domain.PackageChange{
				{Venv: "python3.12-torch2.4.1-cpu", Package: "filelock", Old: "-", New: "3.16.1"},
				{Venv: "python3.12-torch2.4.1-cpu", Package: "numpy", Old: "1.26.4", New: "2.1.3"},
			},
		}, nil
	}}

	out, err := execute(t, mock, "diff", "--config", "/etc/monobase", "16", "17")
	require.NoError(t, err)
	assert.Equal(t, [2]int{16, 17}, gotIDs)

	g := goldie.New(t)
	g.Assert(t, "diff", []byte(out))

	_, err = execute(t, mock, "diff", "16")
	require.Error(t, err)

	_, err = execute(t, mock, "diff", "16", "latest")
	require.ErrorIs(t, err, domain.ErrInvalidGenerationID)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "monobase version "+build.Version)
}

func TestCommands_LogJSON(t *testing.T) {
	enabled := false
	cli := commands.New(&mockApp{}, commands.WithJSONLogs(func(on bool) { enabled = on }))
	cli.SetArgs([]string{"--log-json", "validate"})
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, enabled)
}
