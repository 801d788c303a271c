package pydist

import "fmt"

// Registry looks up the installed version of a distribution by name.
// Names are matched after PEP 503 normalization.
type Registry interface {
	// Version returns the installed version of the named distribution.
	// It returns a *NotInstalledError when no such distribution exists.
	Version(name string) (string, error)
}

// NotInstalledError is returned when a distribution has no installed version.
type NotInstalledError struct {
	Name string
}

func (e *NotInstalledError) Error() string {
	return fmt.Sprintf("the '%s' distribution was not found", e.Name)
}

// mapRegistry is the shared lookup core for both backends: a map of
// normalized name to installed version.
type mapRegistry struct {
	dists map[string]string
}

func (m *mapRegistry) Version(name string) (string, error) {
	v, ok := m.dists[Normalize(name)]
	if !ok {
		return "", &NotInstalledError{Name: name}
	}
	return v, nil
}

// Len returns the number of known distributions.
func (m *mapRegistry) Len() int {
	return len(m.dists)
}
