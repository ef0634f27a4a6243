package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/monobase/internal/core/domain"
)

func TestLayout(t *testing.T) {
	t.Parallel()

	l := domain.NewLayout("/srv/mb")

	assert.Equal(t, "/srv/mb/monobase", l.GenerationsDir())
	assert.Equal(t, "/srv/mb/monobase/00007", l.GenerationDir(7))
	assert.Equal(t, "/srv/mb/monobase/latest", l.LatestLink())
	assert.Equal(t, "/srv/mb/accel/accel-12.4.1_550.54.15", l.ToolkitInstallDir("12.4.1_550.54.15"))
	assert.Equal(t, "/srv/mb/accel/runtimelib-9.1.0.70-accel12", l.RuntimeLibInstallDir("9.1.0.70", "12"))
	assert.Equal(t, "accel-12.4", domain.ToolkitLinkName("12.4"))
	assert.Equal(t, "runtimelib-9-accel-12", domain.RuntimeLibLinkName("9", "12"))

	uv := l.UV()
	assert.Equal(t, "/srv/mb/uv/cache", uv.CacheDir)
	assert.Equal(t, map[string]string{
		"UV_CACHE_DIR":          "/srv/mb/uv/cache",
		"UV_PYTHON_INSTALL_DIR": "/srv/mb/uv/python",
	}, uv.Environ())
	assert.Equal(t, "/srv/mb/uv/python/cpython-3.12.8-linux-x86_64-gnu/lib", uv.PythonLibDir("3.12.8"))
}

func TestGenerationDirName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "00000", domain.GenerationDirName(0))
	assert.Equal(t, "00123", domain.GenerationDirName(123))

	id, ok := domain.ParseGenerationDirName("00042")
	assert.True(t, ok)
	assert.Equal(t, 42, id)

	for _, name := range []string{"latest", "42", "g00042", "0004x", "-0001"} {
		_, ok := domain.ParseGenerationDirName(name)
		assert.False(t, ok, name)
	}
}

func TestCommand_String(t *testing.T) {
	t.Parallel()

	c := domain.Command{Name: "uv", Args: []string{"pip", "freeze"}}
	assert.Equal(t, "uv pip freeze", c.String())
}
