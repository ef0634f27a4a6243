package domain

import (
	"net/url"
	"strings"

	"go.trai.ch/zerr"
)

// RequirementKind tells apart the closed set of accepted package specs.
type RequirementKind int

const (
	// RequirementPin is an exact pin, "name==version".
	RequirementPin RequirementKind = iota + 1
	// RequirementDirect is a direct source reference, "name @ url".
	RequirementDirect
	// RequirementLocal is a filesystem path to a wheel or source tree.
	RequirementLocal
)

// String returns the lowercase name of the kind.
func (k RequirementKind) String() string {
	switch k {
	case RequirementPin:
		return "pin"
	case RequirementDirect:
		return "direct"
	case RequirementLocal:
		return "local"
	default:
		return "unknown"
	}
}

// Requirement is a pinned package spec.
type Requirement struct {
	Kind    RequirementKind
	Name    string
	Version string
	URL     string
	Path    string
}

// rangeOperators are specifier operators that leave the resolved version open.
var rangeOperators = []string{">=", "<=", "~=", "!=", ">", "<", "==="}

// ParseRequirement classifies a single requirement line.
// Environment markers after ';' are dropped.
func ParseRequirement(line string) (Requirement, error) {
	spec := strings.TrimSpace(line)
	if i := strings.Index(spec, ";"); i >= 0 {
		spec = strings.TrimSpace(spec[:i])
	}
	if spec == "" {
		return Requirement{}, zerr.With(zerr.Wrap(ErrUnpinnedPackage, "empty requirement"), "requirement", line)
	}

	if isLocalPath(spec) {
		return Requirement{Kind: RequirementLocal, Name: spec, Path: spec}, nil
	}

	if name, url, ok := strings.Cut(spec, "@"); ok {
		name = strings.TrimSpace(name)
		url = strings.TrimSpace(url)
		if name == "" || url == "" {
			return Requirement{}, zerr.With(zerr.Wrap(ErrUnpinnedPackage, "incomplete direct reference"), "requirement", line)
		}
		return Requirement{Kind: RequirementDirect, Name: name, URL: url}, nil
	}

	if strings.Contains(spec, "===") {
		return Requirement{}, zerr.With(zerr.Wrap(ErrUnpinnedPackage, "arbitrary equality is not supported"), "requirement", line)
	}

	if name, version, ok := strings.Cut(spec, "=="); ok {
		name = strings.TrimSpace(name)
		version = strings.TrimSpace(version)
		if name == "" || version == "" || strings.ContainsAny(version, ",*<>!~") {
			return Requirement{}, zerr.With(zerr.Wrap(ErrUnpinnedPackage, "not an exact version"), "requirement", line)
		}
		return Requirement{Kind: RequirementPin, Name: name, Version: version}, nil
	}

	for _, op := range rangeOperators {
		if strings.Contains(spec, op) {
			return Requirement{}, zerr.With(zerr.Wrap(ErrUnpinnedPackage, "range specifier"), "requirement", line)
		}
	}
	return Requirement{}, zerr.With(zerr.Wrap(ErrUnpinnedPackage, "missing version"), "requirement", line)
}

// ParseRequirements parses requirements text as produced by a freeze or compile.
// Blank lines, comments and option lines starting with "-" are skipped.
func ParseRequirements(text string) ([]Requirement, error) {
	var reqs []Requirement
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}
		// Inline annotations such as "    # via torch".
		if i := strings.Index(line, " #"); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		req, err := ParseRequirement(line)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

// Key returns the normalized project name used to compare requirements.
// Local paths are keyed by the path itself.
func (r Requirement) Key() string {
	if r.Kind == RequirementLocal {
		return r.Path
	}
	name := r.Name
	if i := strings.Index(name, "["); i >= 0 {
		name = name[:i]
	}
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("_", "-", ".", "-").Replace(name)
}

// String renders the canonical requirement line.
func (r Requirement) String() string {
	switch r.Kind {
	case RequirementPin:
		return r.Name + "==" + r.Version
	case RequirementDirect:
		return r.Name + " @ " + r.URL
	case RequirementLocal:
		return r.Path
	default:
		return r.Name
	}
}

// HasRemoteSource reports whether a direct reference points at a URL with a scheme and host.
// Generations only accept such references, since anything else cannot be fetched again later.
func (r Requirement) HasRemoteSource() bool {
	if r.Kind != RequirementDirect {
		return false
	}
	u, err := url.Parse(r.URL)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

func isLocalPath(s string) bool {
	return strings.HasPrefix(s, "/") ||
		strings.HasPrefix(s, "./") ||
		strings.HasPrefix(s, "../") ||
		strings.HasPrefix(s, "~/")
}

// Pin returns an exact pin requirement.
func Pin(name, version string) Requirement {
	return Requirement{Kind: RequirementPin, Name: name, Version: version}
}

// Direct returns a direct reference requirement.
func Direct(name, url string) Requirement {
	return Requirement{Kind: RequirementDirect, Name: name, URL: url}
}
