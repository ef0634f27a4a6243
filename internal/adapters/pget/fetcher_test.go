package pget_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/monobase/internal/adapters/pget"
	"go.trai.ch/monobase/internal/core/domain"
	"go.trai.ch/monobase/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	dest := filepath.Join(t.TempDir(), "archive.tar.xz")

	runner.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd domain.Command) (string, error) {
			assert.Equal(t, "pget", cmd.Name)
			assert.Equal(t, []string{"--force", "https://dl.local/a.tar.xz", dest + ".partial"}, cmd.Args)
			return "", os.WriteFile(dest+".partial", []byte("data"), domain.FilePerm)
		})

	require.NoError(t, pget.New(runner, "").Fetch(t.Context(), "https://dl.local/a.tar.xz", dest))
	assert.FileExists(t, dest)
	assert.NoFileExists(t, dest+".partial")
}

func TestFetcher_FailureLeavesNoArchive(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	dest := filepath.Join(t.TempDir(), "archive.tar.xz")
	require.NoError(t, os.WriteFile(dest+".partial", []byte("stale"), domain.FilePerm))

	runner.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.Command) (string, error) {
			_, err := os.Stat(dest + ".partial")
			assert.True(t, os.IsNotExist(err), "stale partial download is removed first")
			return "", domain.ErrDelegatedToolFailed
		})

	err := pget.New(runner, "/opt/pget").Fetch(t.Context(), "https://dl.local/a.tar.xz", dest)
	require.True(t, errors.Is(err, domain.ErrDelegatedToolFailed))
	assert.NoFileExists(t, dest)
}
