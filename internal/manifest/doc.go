// Package manifest parses and validates the structured requirements.yaml
// manifest format, an alternative to line-oriented requirements.txt for
// projects that want schema-checked dependency declarations.
package manifest
