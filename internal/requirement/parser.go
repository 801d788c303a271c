package requirement

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidRequirement is wrapped by parse errors for malformed lines.
var ErrInvalidRequirement = errors.New("invalid requirement")

// namePattern matches a PEP 508 distribution name at the start of a line.
var namePattern = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9._-]*[A-Za-z0-9])?`)

// ParseLine parses a single requirement line into a Requirement. The caller
// is expected to have skipped blank lines, comments, and pip option lines.
func ParseLine(line string) (*Requirement, error) {
	s := strings.TrimSpace(stripComment(line))
	if s == "" {
		return nil, fmt.Errorf("%w: empty line", ErrInvalidRequirement)
	}

	req := &Requirement{}

	// Environment marker after the first ";".
	if i := strings.Index(s, ";"); i >= 0 {
		req.Marker = strings.TrimSpace(s[i+1:])
		s = strings.TrimSpace(s[:i])
	}

	// Direct reference: "name @ https://...".
	if i := strings.Index(s, "@"); i >= 0 {
		req.URL = strings.TrimSpace(s[i+1:])
		s = strings.TrimSpace(s[:i])
	}

	name := namePattern.FindString(s)
	if name == "" {
		return nil, fmt.Errorf("%w: %q has no distribution name", ErrInvalidRequirement, line)
	}
	req.Name = name
	s = s[len(name):]

	// Extras: [extra1,extra2].
	if strings.HasPrefix(s, "[") {
		end := strings.Index(s, "]")
		if end < 0 {
			return nil, fmt.Errorf("%w: %q has unterminated extras", ErrInvalidRequirement, line)
		}
		for _, e := range strings.Split(s[1:end], ",") {
			if e = strings.TrimSpace(e); e != "" {
				req.Extras = append(req.Extras, e)
			}
		}
		s = s[end+1:]
	}

	// Remainder is the version specifier, optionally parenthesized (PEP 508).
	spec := strings.TrimSpace(s)
	spec = strings.TrimPrefix(spec, "(")
	spec = strings.TrimSuffix(spec, ")")
	spec = strings.TrimSpace(spec)

	if spec != "" {
		c, err := TranslateSpecifier(spec)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidRequirement, line, err)
		}
		req.Specifier = compactSpecifier(spec)
		req.constraint = c
	}

	return req, nil
}

// stripComment removes a trailing "#" comment. A "#" only starts a comment at
// the beginning of the line or when preceded by whitespace, matching pip.
func stripComment(line string) string {
	for i := 0; i < len(line); i++ {
		if line[i] != '#' {
			continue
		}
		if i == 0 || line[i-1] == ' ' || line[i-1] == '\t' {
			return line[:i]
		}
	}
	return line
}

// compactSpecifier removes whitespace inside a specifier so that
// ">= 2.28, < 3" renders as ">=2.28,<3".
func compactSpecifier(spec string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, spec)
}
