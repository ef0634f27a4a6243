package domain

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// LockRef names the lock file of one venv of one generation.
type LockRef struct {
	Env  Environment
	ID   int
	Venv string
}

// LockFileName returns the file name of a venv's lock.
func LockFileName(venv string) string {
	return venv + ".txt"
}

// RenderLock renders the lock file of a venv: a header, the indexes the pins were resolved
// from, then one pin per line sorted by package.
func RenderLock(ref LockRef, index PackageIndex, pins []Requirement) string {
	sorted := slices.Clone(pins)
	slices.SortStableFunc(sorted, func(a, b Requirement) int {
		return strings.Compare(a.Key(), b.Key())
	})

	var b strings.Builder
	fmt.Fprintf(&b, "# monobase generation %d (%s): %s\n", ref.ID, ref.Env, ref.Venv)
	if index.DefaultURL != "" {
		fmt.Fprintf(&b, "--index-url %s\n", index.DefaultURL)
	}
	if index.FrameworkURL != "" {
		fmt.Fprintf(&b, "--extra-index-url %s\n", index.FrameworkURL)
	}
	for _, p := range sorted {
		b.WriteString(p.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Locator is what pins a requirement: the version, the URL or the path.
func (r Requirement) Locator() string {
	switch r.Kind {
	case RequirementPin:
		return r.Version
	case RequirementDirect:
		return r.URL
	case RequirementLocal:
		return r.Path
	default:
		return ""
	}
}

// absent marks a package missing from one side of a diff.
const absent = "-"

// PackageChange is a package whose pin differs between two locks of the same venv.
// Old or New is "-" when the package is missing on that side.
type PackageChange struct {
	Venv    string
	Package string
	Old     string
	New     string
}

// LockDiff compares the locks of two generations.
type LockDiff struct {
	// Removed and Added are the venvs present on one side only.
	Removed []string
	Added   []string
	Changes []PackageChange
}

// Empty reports whether both sides lock the same venvs to the same pins.
func (d LockDiff) Empty() bool {
	return len(d.Removed) == 0 && len(d.Added) == 0 && len(d.Changes) == 0
}

// Lines renders the diff one entry per line: "- venv", "+ venv",
// then "venv<TAB>package<TAB>old<TAB>new" for changed pins.
func (d LockDiff) Lines() []string {
	out := make([]string, 0, len(d.Removed)+len(d.Added)+len(d.Changes))
	for _, v := range d.Removed {
		out = append(out, "- "+v)
	}
	for _, v := range d.Added {
		out = append(out, "+ "+v)
	}
	for _, c := range d.Changes {
		out = append(out, strings.Join([]string{c.Venv, c.Package, c.Old, c.New}, "\t"))
	}
	return out
}

// DiffLocks compares two sets of venv locks keyed by venv name.
func DiffLocks(from, to map[string][]Requirement) LockDiff {
	var d LockDiff
	for _, v := range slices.Sorted(maps.Keys(from)) {
		if _, ok := to[v]; !ok {
			d.Removed = append(d.Removed, v)
		}
	}
	for _, v := range slices.Sorted(maps.Keys(to)) {
		before, ok := from[v]
		if !ok {
			d.Added = append(d.Added, v)
			continue
		}
		d.Changes = append(d.Changes, diffPins(v, before, to[v])...)
	}
	return d
}

func diffPins(venv string, from, to []Requirement) []PackageChange {
	index := func(reqs []Requirement) map[string]string {
		m := make(map[string]string, len(reqs))
		for _, r := range reqs {
			m[r.Key()] = r.Locator()
		}
		return m
	}
	before, after := index(from), index(to)

	keys := slices.Collect(maps.Keys(before))
	for k := range after {
		if _, ok := before[k]; !ok {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	var out []PackageChange
	for _, k := range keys {
		o, ok := before[k]
		if !ok {
			o = absent
		}
		n, ok := after[k]
		if !ok {
			n = absent
		}
		if o != n {
			out = append(out, PackageChange{Venv: venv, Package: k, Old: o, New: n})
		}
	}
	return out
}
