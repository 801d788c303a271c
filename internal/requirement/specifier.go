package requirement

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// pep440Pattern captures the PEP 440 version shapes this tool understands:
// [epoch!]release[{a|b|c|rc}N][.postN][.devN][+local].
var pep440Pattern = regexp.MustCompile(
	`^(?:(\d+)!)?(\d+(?:\.\d+)*)(?:(a|b|c|rc)(\d+))?(?:\.post(\d+))?(?:\.dev(\d+))?(?:\+([A-Za-z0-9.]+))?$`)

// ParseVersion parses an installed version string, normalizing common
// PEP 440 forms (epoch, pre/post/dev segments, local tags) into semver.
func ParseVersion(version string) (*semver.Version, error) {
	if s, ok := normalizePEP440(version); ok {
		return semver.NewVersion(s)
	}
	// Not a recognizable PEP 440 shape; let semver have a direct go.
	return semver.NewVersion(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(version)), "v"))
}

// normalizePEP440 rewrites a PEP 440 version into its semver spelling,
// reporting whether the input matched a PEP 440 shape.
func normalizePEP440(version string) (string, bool) {
	s := strings.ToLower(strings.TrimSpace(version))
	s = strings.TrimPrefix(s, "v")

	m := pep440Pattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}

	var b strings.Builder
	b.WriteString(padRelease(m[2]))
	switch {
	case m[3] != "":
		b.WriteString("-" + preReleaseLabel(m[3]) + "." + m[4])
		if m[6] != "" {
			b.WriteString(".dev." + m[6])
		}
	case m[6] != "":
		// Dev release without a pre segment orders before the release.
		b.WriteString("-dev." + m[6])
	}
	// Post releases compare equal to the base release here; the .postN
	// segment is carried as build metadata, which semver ignores.
	if m[5] != "" {
		b.WriteString("+post." + m[5])
	} else if m[7] != "" {
		b.WriteString("+" + m[7])
	}

	return b.String(), true
}

// preReleaseLabel maps PEP 440 pre-release markers onto semver labels that
// preserve their relative ordering (alpha < beta < rc).
func preReleaseLabel(marker string) string {
	switch marker {
	case "a":
		return "alpha"
	case "b":
		return "beta"
	default: // "c" and "rc" are synonyms in PEP 440
		return "rc"
	}
}

// padRelease extends a dotted release to exactly three components so that
// "2.28" becomes "2.28.0" and "1.2.3.4" truncates to "1.2.3".
func padRelease(release string) string {
	parts := strings.Split(release, ".")
	for len(parts) < 3 {
		parts = append(parts, "0")
	}
	return strings.Join(parts[:3], ".")
}

// TranslateSpecifier converts a PEP 440 version specifier (comma-separated
// clauses like ">=2.28, <3" or "~=1.4.2") into a semver constraint set.
func TranslateSpecifier(spec string) (*semver.Constraints, error) {
	var clauses []string
	for _, raw := range strings.Split(spec, ",") {
		clause := strings.TrimSpace(raw)
		if clause == "" {
			continue
		}
		translated, err := translateClause(clause)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, translated)
	}
	if len(clauses) == 0 {
		return nil, fmt.Errorf("empty specifier %q", spec)
	}
	return semver.NewConstraint(strings.Join(clauses, ", "))
}

// translateClause maps a single specifier clause onto semver constraint syntax.
func translateClause(clause string) (string, error) {
	op, version := splitOperator(clause)
	version = strings.TrimSpace(version)
	if version == "" {
		return "", fmt.Errorf("clause %q has no version", clause)
	}

	switch op {
	case "~=":
		return expandCompatibleRelease(version)
	case "===", "==":
		if strings.HasSuffix(version, ".*") {
			// ==1.2.* is the wildcard match 1.2.x.
			return strings.TrimSuffix(version, ".*") + ".x", nil
		}
		return "=" + normalizeClause(version), nil
	case "!=":
		if strings.HasSuffix(version, ".*") {
			return "!=" + strings.TrimSuffix(version, ".*") + ".x", nil
		}
		return "!=" + normalizeClause(version), nil
	case ">=", "<=", ">", "<":
		return op + normalizeClause(version), nil
	case "":
		return "", fmt.Errorf("clause %q has no comparison operator", clause)
	default:
		return "", fmt.Errorf("unsupported operator %q in clause %q", op, clause)
	}
}

// normalizeClause rewrites a clause version into semver spelling so that
// pre/post/dev segments and short releases compare the way PEP 440 orders
// them ("2.0rc1" becomes "2.0.0-rc.1", "<3" means "<3.0.0", not "below the
// 3.x line"). Unrecognized versions pass through for semver to reject.
func normalizeClause(version string) string {
	if s, ok := normalizePEP440(version); ok {
		return s
	}
	return version
}

// splitOperator separates the leading comparison operator from the version.
func splitOperator(clause string) (string, string) {
	for _, op := range []string{"===", "==", "~=", "!=", ">=", "<="} {
		if strings.HasPrefix(clause, op) {
			return op, clause[len(op):]
		}
	}
	for _, op := range []string{">", "<"} {
		if strings.HasPrefix(clause, op) {
			return op, clause[len(op):]
		}
	}
	return "", clause
}

// expandCompatibleRelease rewrites a PEP 440 compatible-release clause into
// an explicit range: ~=X.Y.Z means >=X.Y.Z, <X.(Y+1).0 and ~=X.Y means
// >=X.Y, <(X+1).0.
func expandCompatibleRelease(version string) (string, error) {
	parts := strings.Split(version, ".")
	if len(parts) < 2 {
		return "", fmt.Errorf("~=%s requires at least two release components", version)
	}

	bump, err := strconv.Atoi(parts[len(parts)-2])
	if err != nil {
		return "", fmt.Errorf("~=%s has a non-numeric release component", version)
	}

	upper := make([]string, len(parts)-1)
	copy(upper, parts[:len(parts)-1])
	upper[len(upper)-1] = strconv.Itoa(bump + 1)

	return fmt.Sprintf(">=%s, <%s", normalizeClause(version), padRelease(strings.Join(upper, "."))), nil
}
