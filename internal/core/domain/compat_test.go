package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/monobase/internal/core/domain"
)

func v(s string) domain.Version {
	return domain.MustParseVersion(s)
}

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	r := domain.DefaultResolver()

	spec, ok := r.Resolve(v("2.4.1"))
	require.True(t, ok)
	assert.Equal(t, "3.8", spec.PythonMin.String())
	assert.Equal(t, "3.12", spec.PythonMax.String())
	assert.Equal(t, []string{"11.8", "12.1", "12.4"}, spec.Accelerators)

	_, ok = r.Resolve(v("1.13.1"))
	assert.False(t, ok)
}

func TestResolver_ResolveCompanions(t *testing.T) {
	t.Parallel()

	r := domain.DefaultResolver()

	c, ok := r.ResolveCompanions(v("2.0.1"))
	require.True(t, ok)
	assert.Equal(t, domain.CompanionVersions{Audio: "2.0.2", Vision: "0.15.2"}, c)

	c, ok = r.ResolveCompanions(v("2.6.0.dev20240918"))
	require.True(t, ok)
	assert.Equal(t, "0.20.0.dev20240918", c.Vision)

	_, ok = r.ResolveCompanions(v("2.6.0.dev20241001"))
	assert.False(t, ok)
}

func TestResolver_ResolveCompanions_MinorFallback(t *testing.T) {
	t.Parallel()

	r := domain.NewResolver(
		map[string]domain.CompatibilitySpec{},
		map[string]domain.CompanionVersions{"3.0": {Audio: "3.0.0", Vision: "0.30.0"}},
	)
	c, ok := r.ResolveCompanions(v("3.0.7"))
	require.True(t, ok)
	assert.Equal(t, "0.30.0", c.Vision)
}

func TestResolver_IsBuildable(t *testing.T) {
	t.Parallel()

	r := domain.DefaultResolver()

	tests := []struct {
		name      string
		python    string
		framework string
		accel     string
		want      bool
	}{
		{"lower python bound inclusive", "3.8", "2.2.0", "12.1", true},
		{"upper python bound inclusive", "3.11", "2.2.0", "12.1", true},
		{"python below range", "3.7", "2.2.0", "12.1", false},
		{"python above range", "3.12", "2.2.0", "12.1", false},
		{"accelerator not listed", "3.11", "2.2.0", "12.4", false},
		{"cpu always listed", "3.11", "2.2.0", domain.CPU, true},
		{"unknown framework series", "3.11", "1.13.1", domain.CPU, false},
		{"known series without companions", "3.11", "2.3.9", domain.CPU, false},
		{"patch release without companions", "3.12", "2.4.2", "12.4", false},
		{"nightly", "3.12", "2.6.0.dev20240918", "12.4", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, r.IsBuildable(v(tt.python), v(tt.framework), tt.accel))
		})
	}
}

func TestResolver_Accelerators(t *testing.T) {
	t.Parallel()

	r := domain.DefaultResolver()
	assert.Equal(t, []string{domain.CPU, "11.7", "11.8"}, r.Accelerators(v("2.0.0")))
	assert.Nil(t, r.Accelerators(v("1.0.0")))
}
