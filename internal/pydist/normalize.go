package pydist

import (
	"regexp"
	"strings"
)

var separatorRuns = regexp.MustCompile(`[-_.]+`)

// Normalize applies PEP 503 name normalization: lowercase with runs of
// "-", "_", and "." folded to a single "-". "Flask_SQLAlchemy" and
// "flask.sqlalchemy" both normalize to "flask-sqlalchemy".
func Normalize(name string) string {
	return separatorRuns.ReplaceAllString(strings.ToLower(name), "-")
}
