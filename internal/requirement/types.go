package requirement

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Requirement is a single parsed dependency declaration: a distribution name
// plus an optional version specifier, extras, and environment marker.
type Requirement struct {
	// Name is the distribution name as written in the manifest.
	Name string
	// Extras lists the requested extras, e.g. "socks" in requests[socks].
	Extras []string
	// Specifier is the raw version specifier, e.g. ">=2.28,<3". Empty when
	// the requirement is unversioned.
	Specifier string
	// Marker is the raw environment marker after ";", if any. Markers are
	// preserved but not evaluated.
	Marker string
	// URL is set for direct references (name @ https://...). URL requirements
	// are presence-checked only.
	URL string

	constraint *semver.Constraints
}

// HasSpecifier reports whether the requirement carries a version constraint.
func (r *Requirement) HasSpecifier() bool {
	return r.constraint != nil
}

// Satisfies reports whether the given installed version satisfies the
// requirement's specifier. Unversioned requirements accept any version.
// The second return is false when the installed version cannot be parsed.
func (r *Requirement) Satisfies(installed string) (bool, bool) {
	if r.constraint == nil {
		return true, true
	}
	v, err := ParseVersion(installed)
	if err != nil {
		return false, false
	}
	return r.constraint.Check(v), true
}

// String renders the requirement back in specifier form, e.g.
// "requests[socks]>=2.28,<3".
func (r *Requirement) String() string {
	var b strings.Builder
	b.WriteString(r.Name)
	if len(r.Extras) > 0 {
		b.WriteString("[" + strings.Join(r.Extras, ",") + "]")
	}
	b.WriteString(r.Specifier)
	return b.String()
}
