package domain

import "slices"

// CPU is the accelerator label of builds without an accelerator toolkit.
const CPU = "cpu"

// CompatibilitySpec is the supported envelope of one framework minor series.
type CompatibilitySpec struct {
	PythonMin    Version
	PythonMax    Version
	Accelerators []string
}

// CompanionVersions are the library versions released together with a framework version.
type CompanionVersions struct {
	Audio  string
	Vision string
}

// Resolver answers compatibility questions from static tables.
type Resolver struct {
	specs      map[string]CompatibilitySpec
	companions map[string]CompanionVersions
}

// NewResolver creates a Resolver.
// specs is keyed by framework major.minor, companions by exact framework version.
func NewResolver(specs map[string]CompatibilitySpec, companions map[string]CompanionVersions) *Resolver {
	return &Resolver{specs: specs, companions: companions}
}

// DefaultResolver returns a Resolver over the built-in framework release matrix.
func DefaultResolver() *Resolver {
	return NewResolver(defaultSpecs(), defaultCompanions())
}

// Resolve looks up the compatibility envelope of the framework's minor series.
// The second result is false when the series is unknown, which is not an error.
func (r *Resolver) Resolve(framework Version) (CompatibilitySpec, bool) {
	spec, ok := r.specs[framework.MajorMinor()]
	return spec, ok
}

// ResolveCompanions looks up companion versions by exact framework version first,
// then by the framework's major.minor key.
func (r *Resolver) ResolveCompanions(framework Version) (CompanionVersions, bool) {
	if c, ok := r.companions[framework.String()]; ok {
		return c, true
	}
	c, ok := r.companions[framework.MajorMinor()]
	return c, ok
}

// Buildable returns the candidates of m the resolver accepts, in candidate order.
func (r *Resolver) Buildable(m GenerationManifest) ([]Triple, error) {
	var out []Triple
	for _, t := range Candidates(m) {
		python, err := ParseVersion(t.Python)
		if err != nil {
			return nil, err
		}
		framework, err := ParseVersion(t.Framework)
		if err != nil {
			return nil, err
		}
		if r.IsBuildable(python, framework, t.Accelerator) {
			out = append(out, t)
		}
	}
	return out, nil
}

// IsBuildable reports whether a venv for the triple may be installed.
func (r *Resolver) IsBuildable(python, framework Version, accelerator string) bool {
	spec, ok := r.Resolve(framework)
	if !ok {
		return false
	}
	if _, ok := r.ResolveCompanions(framework); !ok {
		return false
	}
	if !python.InRange(spec.PythonMin, spec.PythonMax) {
		return false
	}
	return accelerator == CPU || slices.Contains(spec.Accelerators, accelerator)
}

// Accelerators returns the accelerator labels of the framework's series, CPU first.
func (r *Resolver) Accelerators(framework Version) []string {
	spec, ok := r.Resolve(framework)
	if !ok {
		return nil
	}
	return append([]string{CPU}, spec.Accelerators...)
}

func defaultSpecs() map[string]CompatibilitySpec {
	spec := func(pmin, pmax string, accels ...string) CompatibilitySpec {
		return CompatibilitySpec{
			PythonMin:    MustParseVersion(pmin),
			PythonMax:    MustParseVersion(pmax),
			Accelerators: accels,
		}
	}
	return map[string]CompatibilitySpec{
		// Nightly builds only cover a subset of pythons and toolkits.
		"2.6": spec("3.11", "3.12", "12.4"),
		"2.5": spec("3.9", "3.12", "11.8", "12.1", "12.4"),
		"2.4": spec("3.8", "3.12", "11.8", "12.1", "12.4"),
		"2.3": spec("3.8", "3.11", "11.8", "12.1"),
		"2.2": spec("3.8", "3.11", "11.8", "12.1"),
		"2.1": spec("3.8", "3.11", "11.8", "12.1"),
		"2.0": spec("3.8", "3.11", "11.7", "11.8"),
	}
}

func defaultCompanions() map[string]CompanionVersions {
	return map[string]CompanionVersions{
		"2.6.0.dev20240918": {Audio: "2.5.0.dev20240918", Vision: "0.20.0.dev20240918"},
		"2.6.0":             {Audio: "2.6.0", Vision: "0.21.0"},
		"2.5.1":             {Audio: "2.5.1", Vision: "0.20.1"},
		"2.5.0":             {Audio: "2.5.0", Vision: "0.20.0"},
		"2.4.1":             {Audio: "2.4.1", Vision: "0.19.1"},
		"2.4.0":             {Audio: "2.4.0", Vision: "0.19.0"},
		"2.3.1":             {Audio: "2.3.1", Vision: "0.18.1"},
		"2.3.0":             {Audio: "2.3.0", Vision: "0.18.0"},
		"2.2.2":             {Audio: "2.2.2", Vision: "0.17.2"},
		"2.2.1":             {Audio: "2.2.1", Vision: "0.17.1"},
		"2.2.0":             {Audio: "2.2.0", Vision: "0.17.0"},
		"2.1.2":             {Audio: "2.1.2", Vision: "0.16.2"},
		"2.1.1":             {Audio: "2.1.1", Vision: "0.16.1"},
		"2.1.0":             {Audio: "2.1.0", Vision: "0.16.0"},
		"2.0.1":             {Audio: "2.0.2", Vision: "0.15.2"},
		"2.0.0":             {Audio: "2.0.0", Vision: "0.15.0"},
	}
}
