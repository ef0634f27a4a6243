package domain

import (
	"maps"
	"slices"
	"strconv"
)

// Severity grades a version mismatch between two layers.
type Severity int

const (
	// SeverityPossible means the layers agree on the major version but not the minor.
	SeverityPossible Severity = iota + 1
	// SeverityProbable means the layers disagree on both.
	SeverityProbable
)

// LayerConflict is a package both layers pin, at versions that may not work together.
type LayerConflict struct {
	Key      string
	Base     string
	User     string
	Severity Severity
}

// LayerConflicts compares the pins of a base layer with the pins of a layer installed on top of it.
// Direct and local references count as their own major and minor line.
func LayerConflicts(base, user []Requirement) []LayerConflict {
	baseByKey := indexRequirements(base)
	userByKey := indexRequirements(user)

	var out []LayerConflict
	for _, key := range slices.Sorted(maps.Keys(userByKey)) {
		b, ok := baseByKey[key]
		if !ok {
			continue
		}
		u := userByKey[key]

		majors := map[string]bool{}
		minors := map[string]bool{}
		for _, r := range []Requirement{b, u} {
			major, minor := versionLines(r)
			majors[major] = true
			minors[minor] = true
		}

		var sev Severity
		switch {
		case len(majors) == 1 && len(minors) > 1:
			sev = SeverityPossible
		case len(majors) > 1 && len(minors) > 1:
			sev = SeverityProbable
		default:
			continue
		}
		out = append(out, LayerConflict{Key: key, Base: b.display(), User: u.display(), Severity: sev})
	}
	return out
}

// Overlay returns the user pins whose key the base layer does not already provide, and the excluded ones.
func Overlay(base, user []Requirement) (kept, excluded []Requirement) {
	baseByKey := indexRequirements(base)
	for _, r := range user {
		if _, ok := baseByKey[r.Key()]; ok && r.Kind != RequirementLocal {
			excluded = append(excluded, r)
			continue
		}
		kept = append(kept, r)
	}
	return kept, excluded
}

func indexRequirements(reqs []Requirement) map[string]Requirement {
	out := make(map[string]Requirement, len(reqs))
	for _, r := range reqs {
		out[r.Key()] = r
	}
	return out
}

func versionLines(r Requirement) (string, string) {
	if r.Kind != RequirementPin {
		return r.display(), r.display()
	}
	v, err := ParseVersion(r.Version)
	if err != nil {
		return r.Version, r.Version
	}
	return strconv.FormatUint(uint64(v.Major), 10), strconv.FormatUint(uint64(v.Minor), 10)
}

// display returns the version part of the requirement.
func (r Requirement) display() string {
	switch r.Kind {
	case RequirementPin:
		return r.Version
	case RequirementDirect:
		return r.URL
	default:
		return r.Path
	}
}
