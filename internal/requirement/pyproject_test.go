package requirement

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const samplePyProject = `[project]
name = "sample"
dependencies = [
    "requests>=2.28,<3",
    "click~=8.1",
]

[project.optional-dependencies]
dev = ["pytest>=7.0"]
docs = ["sphinx>=6"]
`

func writePyProject(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pyproject.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPyProject(t *testing.T) {
	path := writePyProject(t, samplePyProject)

	reqs, err := LoadPyProject(path, false)
	if err != nil {
		t.Fatalf("LoadPyProject error: %v", err)
	}
	if len(reqs) != 2 {
		t.Fatalf("got %d requirements, want 2", len(reqs))
	}
	if reqs[0].Name != "requests" || reqs[1].Name != "click" {
		t.Errorf("names = %q, %q", reqs[0].Name, reqs[1].Name)
	}
}

func TestLoadPyProject_IncludeOptional(t *testing.T) {
	path := writePyProject(t, samplePyProject)

	reqs, err := LoadPyProject(path, true)
	if err != nil {
		t.Fatalf("LoadPyProject error: %v", err)
	}
	// 2 mandatory + dev group + docs group, groups in name order.
	if len(reqs) != 4 {
		t.Fatalf("got %d requirements, want 4", len(reqs))
	}
	if reqs[2].Name != "pytest" || reqs[3].Name != "sphinx" {
		t.Errorf("optional names = %q, %q, want pytest, sphinx", reqs[2].Name, reqs[3].Name)
	}
}

func TestLoadPyProject_Missing(t *testing.T) {
	_, err := LoadPyProject(filepath.Join(t.TempDir(), "pyproject.toml"), false)
	if !errors.Is(err, ErrManifestNotFound) {
		t.Errorf("error = %v, want ErrManifestNotFound", err)
	}
}

func TestLoadPyProject_BadDependency(t *testing.T) {
	path := writePyProject(t, `[project]
dependencies = [">=nonsense"]
`)

	_, err := LoadPyProject(path, false)
	if err == nil {
		t.Fatal("expected error for malformed dependency, got nil")
	}
}
