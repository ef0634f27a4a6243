package shell

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEnvironment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		sysEnv  []string
		overlay map[string]string
		want    []string
	}{
		{
			name:   "inherits system environment",
			sysEnv: []string{"PATH=/usr/bin", "HOME=/root"},
			want:   []string{"HOME=/root", "PATH=/usr/bin"},
		},
		{
			name:    "overlay wins",
			sysEnv:  []string{"PATH=/usr/bin", "UV_CACHE_DIR=/tmp"},
			overlay: map[string]string{"UV_CACHE_DIR": "/srv/uv/cache", "VIRTUAL_ENV": "/srv/venv"},
			want:    []string{"PATH=/usr/bin", "UV_CACHE_DIR=/srv/uv/cache", "VIRTUAL_ENV=/srv/venv"},
		},
		{
			name:   "malformed entries are dropped",
			sysEnv: []string{"NOEQUALS", "A=b=c"},
			want:   []string{"A=b=c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, resolveEnvironment(tt.sysEnv, tt.overlay))
		})
	}
}

func TestLookPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tool := filepath.Join(dir, "uv")
	require.NoError(t, os.WriteFile(tool, []byte("#!/bin/sh\n"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "plain"), []byte(""), 0o644))

	got, err := lookPath("uv", []string{"PATH=/nonexistent:" + dir})
	require.NoError(t, err)
	assert.Equal(t, tool, got)

	_, err = lookPath("plain", []string{"PATH=" + dir})
	require.Error(t, err)

	_, err = lookPath("uv", []string{"HOME=/root"})
	require.Error(t, err)
}

func TestTailBuffer(t *testing.T) {
	t.Parallel()

	tb := &tailBuffer{max: 2}
	tb.add("a")
	tb.add("b")
	tb.add("c")
	assert.Equal(t, "b\nc", tb.String())
}
