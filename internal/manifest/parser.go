package manifest

import (
	"fmt"
	"os"
	"strings"

	"github.com/reqcheck-labs/reqcheck/internal/requirement"
	"go.yaml.in/yaml/v3"
)

// Parse reads a requirements.yaml manifest file.
func Parse(path string) (*Manifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	return &m, nil
}

// Requirements converts the manifest's dependency declarations into parsed
// requirements. Optional dependencies are excluded unless includeOptional
// is set.
func (m *Manifest) Requirements(includeOptional bool) ([]requirement.Requirement, error) {
	var reqs []requirement.Requirement
	for _, dep := range m.Dependencies {
		if dep.Optional && !includeOptional {
			continue
		}

		line := dep.Name
		if len(dep.Extras) > 0 {
			line += "[" + strings.Join(dep.Extras, ",") + "]"
		}
		line += dep.Specifier
		if dep.Marker != "" {
			line += "; " + dep.Marker
		}

		req, err := requirement.ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("dependency %q: %w", dep.Name, err)
		}
		reqs = append(reqs, *req)
	}
	return reqs, nil
}

// readFile reads the contents of a file, mapping a missing file onto the
// manifest-not-found error the rest of the tool reports.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", requirement.ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
