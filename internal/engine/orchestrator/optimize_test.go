package orchestrator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/monobase/internal/core/domain"
	"go.trai.ch/monobase/internal/engine/orchestrator"
)

func TestLinkCacheTargets(t *testing.T) {
	t.Parallel()

	m := domain.GenerationManifest{
		ID:          2,
		Toolkits:    map[string]string{"12.4": "12.4.1_550.54.15", "11.8": "11.8.0_520.61.05"},
		RuntimeLibs: map[string]string{"9": "9.1.0.70"},
		Pythons:     map[string]string{"3.12": "3.12.8"},
	}

	got := orchestrator.LinkCacheTargets(domain.NewLayout("/srv/mb"), m)
	require.Len(t, got, 2)
	assert.Equal(t, orchestrator.LinkCacheTarget{
		File: "/srv/mb/monobase/00002/ld.so.cache.d/accel12.4-runtimelib9-python3.12",
		Dirs: []string{
			"/srv/mb/monobase/00002/accel-12.4/lib64",
			"/srv/mb/monobase/00002/runtimelib-9-accel-12/lib",
			"/srv/mb/uv/python/cpython-3.12.8-linux-x86_64-gnu/lib",
		},
	}, got[0])
	assert.Equal(t, "/srv/mb/monobase/00002/runtimelib-9-accel-11/lib", got[1].Dirs[1])
}

func TestBuildableTriples(t *testing.T) {
	t.Parallel()

	m := domain.GenerationManifest{
		Toolkits:   map[string]string{"12.4": "12.4.1_550.54.15"},
		Pythons:    map[string]string{"3.12": "3.12.8", "3.8": "3.8.20"},
		Frameworks: []string{"2.4.1", "1.13.1"},
	}

	got, err := orchestrator.BuildableTriples(domain.DefaultResolver(), m)
	require.NoError(t, err)

	names := make([]string, len(got))
	for i, tr := range got {
		names[i] = tr.VenvName()
	}
	assert.Equal(t, []string{
		"python3.12-torch2.4.1-cu124",
		"python3.12-torch2.4.1-cpu",
		"python3.8-torch2.4.1-cu124",
		"python3.8-torch2.4.1-cpu",
	}, names)

	_, err = orchestrator.BuildableTriples(domain.DefaultResolver(), domain.GenerationManifest{
		Pythons:    map[string]string{"3.12": "3.12.8"},
		Frameworks: []string{"x"},
	})
	require.ErrorIs(t, err, domain.ErrMalformedVersion)
}

func TestBuildableTriples_FrameworkWithoutCompanions(t *testing.T) {
	t.Parallel()

	// The 2.4 series is supported, but 2.4.2 has no audio and vision releases to pair with.
	m := domain.GenerationManifest{
		Toolkits:   map[string]string{"12.4": "12.4.1_550.54.15", "12.1": "12.1.1_530.30.02"},
		Pythons:    map[string]string{"3.12": "3.12.8", "3.11": "3.11.10"},
		Frameworks: []string{"2.4.2"},
	}

	got, err := orchestrator.BuildableTriples(domain.DefaultResolver(), m)
	require.NoError(t, err)
	assert.Empty(t, got)

	m.Frameworks = []string{"2.4.2", "2.4.1"}
	got, err = orchestrator.BuildableTriples(domain.DefaultResolver(), m)
	require.NoError(t, err)
	require.Len(t, got, 2*3)
	for _, tr := range got {
		assert.Equal(t, "2.4.1", tr.Framework)
	}
}
