package domain

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Environment tags a sequence of generations.
type Environment string

const (
	// EnvTest is the small generation sequence used by tests and CI.
	EnvTest Environment = "test"
	// EnvProd is the production generation sequence.
	EnvProd Environment = "prod"
)

// Environments lists every known environment tag.
var Environments = []Environment{EnvProd, EnvTest}

// ParseEnvironment validates an environment tag.
func ParseEnvironment(s string) (Environment, error) {
	switch Environment(s) {
	case EnvTest, EnvProd:
		return Environment(s), nil
	default:
		return "", zerr.With(zerr.Wrap(ErrUnknownEnvironment, strconv.Quote(s)), "environment", s)
	}
}

// GenerationManifest declares one immutable, numbered bundle of versions to build together.
type GenerationManifest struct {
	ID int
	// Toolkits maps a toolkit label such as "12.4" to its full archive version.
	Toolkits map[string]string
	// RuntimeLibs maps a runtime library label such as "9" to its full version.
	RuntimeLibs map[string]string
	// Pythons maps a major.minor key to the full interpreter version.
	Pythons       map[string]string
	Frameworks    []string
	ExtraPackages []string
}

// Selection restricts a generation to a single combination.
type Selection struct {
	Python     string
	Framework  string
	Toolkit    string
	RuntimeLib string
}

// IsZero reports whether nothing is selected.
func (s Selection) IsZero() bool {
	return s == Selection{}
}

// DirName returns the five-digit directory name of the generation.
func (m GenerationManifest) DirName() string {
	return GenerationDirName(m.ID)
}

// ExtraRequirements parses the extra packages of the manifest.
func (m GenerationManifest) ExtraRequirements() ([]Requirement, error) {
	reqs := make([]Requirement, 0, len(m.ExtraPackages))
	for _, p := range m.ExtraPackages {
		r, err := ParseRequirement(p)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, r)
	}
	return reqs, nil
}

// Attributes flattens the manifest into string attributes for markers and spans.
func (m GenerationManifest) Attributes() map[string]string {
	attrs := map[string]string{
		"id":         strconv.Itoa(m.ID),
		"frameworks": strings.Join(m.Frameworks, ","),
	}
	for k, v := range m.Toolkits {
		attrs["toolkit."+k] = v
	}
	for k, v := range m.RuntimeLibs {
		attrs["runtimelib."+k] = v
	}
	for k, v := range m.Pythons {
		attrs["python."+k] = v
	}
	if len(m.ExtraPackages) > 0 {
		attrs["extra_packages"] = strings.Join(m.ExtraPackages, ",")
	}
	return attrs
}

// Narrow returns a copy of the manifest restricted to sel.
// Empty toolkit or runtime library labels select none, leaving a CPU-only build.
func (m GenerationManifest) Narrow(sel Selection) (GenerationManifest, error) {
	out := GenerationManifest{
		ID:            m.ID,
		Toolkits:      map[string]string{},
		RuntimeLibs:   map[string]string{},
		Pythons:       map[string]string{},
		ExtraPackages: slices.Clone(m.ExtraPackages),
	}

	full, ok := m.Pythons[sel.Python]
	if !ok {
		return GenerationManifest{}, selectionError(m.ID, "python", sel.Python)
	}
	out.Pythons[sel.Python] = full

	if !slices.Contains(m.Frameworks, sel.Framework) {
		return GenerationManifest{}, selectionError(m.ID, "framework", sel.Framework)
	}
	out.Frameworks = []string{sel.Framework}

	if sel.Toolkit != "" {
		v, ok := m.Toolkits[sel.Toolkit]
		if !ok {
			return GenerationManifest{}, selectionError(m.ID, "toolkit", sel.Toolkit)
		}
		out.Toolkits[sel.Toolkit] = v
	}
	if sel.RuntimeLib != "" {
		v, ok := m.RuntimeLibs[sel.RuntimeLib]
		if !ok {
			return GenerationManifest{}, selectionError(m.ID, "runtime_lib", sel.RuntimeLib)
		}
		out.RuntimeLibs[sel.RuntimeLib] = v
	}
	return out, nil
}

func selectionError(id int, field, value string) error {
	err := zerr.With(zerr.Wrap(ErrSelectionNotInGeneration, field), "generation", id)
	return zerr.With(err, field, value)
}

// SelectRange returns the manifests with minID <= id <= maxID, newest first.
func SelectRange(manifests []GenerationManifest, minID, maxID int) []GenerationManifest {
	var out []GenerationManifest
	for _, m := range manifests {
		if m.ID < minID || m.ID > maxID {
			continue
		}
		out = append(out, m)
	}
	slices.SortFunc(out, func(a, b GenerationManifest) int {
		return b.ID - a.ID
	})
	return out
}

// Newest returns the manifest with the highest id.
func Newest(manifests []GenerationManifest) (GenerationManifest, bool) {
	if len(manifests) == 0 {
		return GenerationManifest{}, false
	}
	return slices.MaxFunc(manifests, func(a, b GenerationManifest) int {
		return a.ID - b.ID
	}), true
}

// ValidateGenerations checks every manifest of an environment and reports all violations at once.
// It never touches the filesystem.
func ValidateGenerations(env Environment, manifests []GenerationManifest) error {
	var errs []error
	violation := func(id int, msg string) {
		errs = append(errs, zerr.With(zerr.With(zerr.Wrap(ErrInvalidGeneration, msg), "environment", string(env)), "generation", id))
	}

	for i, m := range manifests {
		if m.ID != i {
			violation(m.ID, fmt.Sprintf("id %d does not match position %d", m.ID, i))
		}
		checkVersionMap(m.Toolkits, "toolkit", func(msg string) { violation(m.ID, msg) })
		checkVersionMap(m.RuntimeLibs, "runtime lib", func(msg string) { violation(m.ID, msg) })
		checkVersionMap(m.Pythons, "python", func(msg string) { violation(m.ID, msg) })
		for _, f := range m.Frameworks {
			if _, err := ParseVersion(f); err != nil {
				violation(m.ID, "malformed framework version "+strconv.Quote(f))
			}
		}
		for _, p := range m.ExtraPackages {
			req, err := ParseRequirement(p)
			switch {
			case err != nil:
				violation(m.ID, "extra package "+strconv.Quote(p)+" is not pinned")
			case req.Kind == RequirementLocal:
				violation(m.ID, "extra package "+strconv.Quote(p)+" is a local path")
			case req.Kind == RequirementDirect && !req.HasRemoteSource():
				violation(m.ID, "extra package "+strconv.Quote(p)+" does not reference a source URL")
			}
		}
	}
	return errors.Join(errs...)
}

func checkVersionMap(versions map[string]string, what string, report func(string)) {
	for _, k := range slices.Sorted(maps.Keys(versions)) {
		v := versions[k]
		if _, err := ParseVersion(k); err != nil {
			report(fmt.Sprintf("malformed %s key %q", what, k))
			continue
		}
		if _, err := ParseVersion(v); err != nil {
			report(fmt.Sprintf("malformed %s version %q", what, v))
			continue
		}
		if !strings.HasPrefix(v, k+".") {
			report(fmt.Sprintf("%s %q is not prefixed by key %q", what, v, k))
		}
	}
}
