// Package requirement parses dependency declarations from requirements.txt
// and pyproject.toml files into typed requirements, and translates PEP 440
// version specifiers into semver constraints for comparison.
package requirement
