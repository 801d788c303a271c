package requirement

import (
	"fmt"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"
)

// pyProject models the subset of pyproject.toml this tool reads.
type pyProject struct {
	Project struct {
		Name                 string              `toml:"name"`
		Dependencies         []string            `toml:"dependencies"`
		OptionalDependencies map[string][]string `toml:"optional-dependencies"`
	} `toml:"project"`
}

// LoadPyProject reads the [project] dependencies of a pyproject.toml file.
// When includeOptional is set, every optional-dependencies group is appended
// after the mandatory dependencies, groups in name order.
func LoadPyProject(path string, includeOptional bool) ([]Requirement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var pp pyProject
	if err := toml.Unmarshal(data, &pp); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	var reqs []Requirement
	for _, dep := range pp.Project.Dependencies {
		req, err := ParseLine(dep)
		if err != nil {
			return nil, fmt.Errorf("%s: dependency %q: %w", path, dep, err)
		}
		reqs = append(reqs, *req)
	}

	if includeOptional {
		groups := make([]string, 0, len(pp.Project.OptionalDependencies))
		for g := range pp.Project.OptionalDependencies {
			groups = append(groups, g)
		}
		sort.Strings(groups)
		for _, g := range groups {
			for _, dep := range pp.Project.OptionalDependencies[g] {
				req, err := ParseLine(dep)
				if err != nil {
					return nil, fmt.Errorf("%s: optional dependency %q (group %s): %w", path, dep, g, err)
				}
				reqs = append(reqs, *req)
			}
		}
	}

	return reqs, nil
}
