package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/monobase/internal/core/domain"
)

func TestParseVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in    string
		major uint
		minor uint
		patch uint
		extra string
	}{
		{"3", 3, 0, 0, ""},
		{"3.12", 3, 12, 0, ""},
		{"3.12.8", 3, 12, 8, ""},
		{"9.1.0.70", 9, 1, 0, "70"},
		{"12.4.1_550.54.15", 12, 4, 1, ""},
		{"2.6.0.dev20240918", 2, 6, 0, "dev20240918"},
		{"2.4.1+cu124", 2, 4, 1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			v, err := domain.ParseVersion(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.major, v.Major)
			assert.Equal(t, tt.minor, v.Minor)
			assert.Equal(t, tt.patch, v.Patch)
			assert.Equal(t, tt.extra, v.Extra)
			assert.Equal(t, tt.in, v.String())
			assert.Equal(t, 0, domain.Compare(v, v))
		})
	}
}

func TestParseVersion_Malformed(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "v1.2", "cpu", ".1"} {
		_, err := domain.ParseVersion(in)
		require.ErrorIs(t, err, domain.ErrMalformedVersion, in)
	}
}

func TestMustParseVersion_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { domain.MustParseVersion("nope") })
}

func TestCompare_TotalOrder(t *testing.T) {
	t.Parallel()

	ordered := []string{"2.0.0", "2.0.1", "2.1", "2.4.1", "2.6.0", "2.6.0.dev20240918", "3", "3.8", "3.12", "12.4"}
	vs := make([]domain.Version, len(ordered))
	for i, s := range ordered {
		vs[i] = domain.MustParseVersion(s)
	}

	for i := range vs {
		for j := range vs {
			got := domain.Compare(vs[i], vs[j])
			switch {
			case i < j:
				assert.Equal(t, -1, got, "%s < %s", ordered[i], ordered[j])
			case i > j:
				assert.Equal(t, 1, got, "%s > %s", ordered[i], ordered[j])
			default:
				assert.Equal(t, 0, got)
			}
			assert.Equal(t, -domain.Compare(vs[j], vs[i]), got, "antisymmetric")
		}
	}
}

func TestVersion_EqualIgnoresRaw(t *testing.T) {
	t.Parallel()

	a := domain.MustParseVersion("3.12")
	b := domain.MustParseVersion("3.12.0")
	assert.True(t, a.Equal(b))
	assert.NotEqual(t, a.String(), b.String())

	assert.False(t, domain.MustParseVersion("2.6.0").Equal(domain.MustParseVersion("2.6.0.dev1")))
}

func TestVersion_InRange(t *testing.T) {
	t.Parallel()

	lo := domain.MustParseVersion("3.8")
	hi := domain.MustParseVersion("3.11")

	assert.True(t, domain.MustParseVersion("3.8").InRange(lo, hi))
	assert.True(t, domain.MustParseVersion("3.10").InRange(lo, hi))
	assert.True(t, domain.MustParseVersion("3.11").InRange(lo, hi))
	assert.False(t, domain.MustParseVersion("3.7").InRange(lo, hi))
	assert.False(t, domain.MustParseVersion("3.12").InRange(lo, hi))
	assert.False(t, domain.MustParseVersion("3.11.1").InRange(lo, hi))
}

func TestVersion_MajorMinor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2.6", domain.MustParseVersion("2.6.0.dev20240918").MajorMinor())
	assert.Equal(t, "3.0", domain.MustParseVersion("3").MajorMinor())
}

func TestMajorLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "12", domain.MajorLine("12.4"))
	assert.Equal(t, "11", domain.MajorLine("11.8"))
	assert.Equal(t, "9", domain.MajorLine("9"))
}

func TestDescVersions(t *testing.T) {
	t.Parallel()

	in := []string{"3.9", "3.12", "3.10", "3.8"}
	assert.Equal(t, []string{"3.12", "3.10", "3.9", "3.8"}, domain.DescVersions(in))
	assert.Equal(t, []string{"3.9", "3.12", "3.10", "3.8"}, in, "input is not mutated")

	keys := domain.DescVersionKeys(map[string]string{"11.8": "a", "12.4": "b", "12.1": "c"})
	assert.Equal(t, []string{"12.4", "12.1", "11.8"}, keys)
}
