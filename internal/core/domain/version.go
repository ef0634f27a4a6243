package domain

import (
	"cmp"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

var versionPattern = regexp.MustCompile(`^(\d+)(?:\.(\d+)(?:\.(\d+)(?:\.(.+))?)?)?`)

// Version is a dotted version of the form major[.minor[.patch[.extra]]].
//
// The raw string is kept as the display form and never takes part in comparisons.
type Version struct {
	Major uint
	Minor uint
	Patch uint
	Extra string
	raw   string
}

// ParseVersion parses the leading version pattern of s.
// Trailing text that does not fit the pattern is ignored, as with "2.4.1+cu124".
func ParseVersion(s string) (Version, error) {
	m := versionPattern.FindStringSubmatch(s)
	if m == nil {
		return Version{}, zerr.With(zerr.Wrap(ErrMalformedVersion, "no leading number"), "version", s)
	}

	major, err := parseComponent(m[1])
	if err != nil {
		return Version{}, zerr.With(zerr.Wrap(ErrMalformedVersion, err.Error()), "version", s)
	}
	minor, err := parseComponent(m[2])
	if err != nil {
		return Version{}, zerr.With(zerr.Wrap(ErrMalformedVersion, err.Error()), "version", s)
	}
	patch, err := parseComponent(m[3])
	if err != nil {
		return Version{}, zerr.With(zerr.Wrap(ErrMalformedVersion, err.Error()), "version", s)
	}

	return Version{
		Major: major,
		Minor: minor,
		Patch: patch,
		Extra: m[4],
		raw:   s,
	}, nil
}

// MustParseVersion is like ParseVersion but panics on error. It is meant for static tables.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

func parseComponent(s string) (uint, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return 0, err
	}
	return uint(n), nil
}

// String returns the string the version was parsed from.
func (v Version) String() string {
	return v.raw
}

// IsPreRelease reports whether the version carries an extra component, as nightly builds do.
func (v Version) IsPreRelease() bool {
	return v.Extra != ""
}

// MajorMinor returns the "major.minor" key of the version.
func (v Version) MajorMinor() string {
	return strconv.FormatUint(uint64(v.Major), 10) + "." + strconv.FormatUint(uint64(v.Minor), 10)
}

// Compare returns -1, 0 or 1 ordering a before, equal to or after b.
// Versions order by major, minor and patch. Extra only breaks ties, as an opaque string,
// so that the order stays total and agrees with Equal.
func Compare(a, b Version) int {
	if c := cmp.Compare(a.Major, b.Major); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Minor, b.Minor); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Patch, b.Patch); c != 0 {
		return c
	}
	return strings.Compare(a.Extra, b.Extra)
}

// Equal reports whether both versions parsed to the same components.
func (v Version) Equal(o Version) bool {
	return Compare(v, o) == 0
}

// Less reports whether v orders before o.
func (v Version) Less(o Version) bool {
	return Compare(v, o) < 0
}

// InRange reports whether min <= v <= max.
func (v Version) InRange(minV, maxV Version) bool {
	return Compare(minV, v) <= 0 && Compare(v, maxV) <= 0
}

// MajorLine strips the last dotted component of a label, mapping "12.4" to "12".
// A label without a dot is returned unchanged.
func MajorLine(label string) string {
	if i := strings.LastIndex(label, "."); i >= 0 {
		return label[:i]
	}
	return label
}

// DescVersions returns the given version strings sorted newest first.
// Strings that do not parse sort last, in lexical order.
func DescVersions(vs []string) []string {
	out := slices.Clone(vs)
	slices.SortStableFunc(out, func(a, b string) int {
		return compareDesc(a, b)
	})
	return out
}

// DescVersionKeys returns the keys of m sorted newest first.
func DescVersionKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return DescVersions(keys)
}

func compareDesc(a, b string) int {
	va, errA := ParseVersion(a)
	vb, errB := ParseVersion(b)
	switch {
	case errA != nil && errB != nil:
		return strings.Compare(a, b)
	case errA != nil:
		return 1
	case errB != nil:
		return -1
	}
	if c := Compare(vb, va); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}
