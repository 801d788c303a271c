package manifest

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/reqcheck-labs/reqcheck/internal/requirement"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

func TestParse(t *testing.T) {
	m, err := Parse(testPath("valid.yaml"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if m.Name != "sample-service" {
		t.Errorf("Name = %q, want %q", m.Name, "sample-service")
	}
	if len(m.Dependencies) != 4 {
		t.Fatalf("Dependencies len = %d, want 4", len(m.Dependencies))
	}
	if m.Dependencies[0].Name != "requests" {
		t.Errorf("Dependencies[0].Name = %q, want %q", m.Dependencies[0].Name, "requests")
	}
	if len(m.Dependencies[0].Extras) != 1 || m.Dependencies[0].Extras[0] != "socks" {
		t.Errorf("Dependencies[0].Extras = %v, want [socks]", m.Dependencies[0].Extras)
	}
	if !m.Dependencies[3].Optional {
		t.Error("Dependencies[3] should be optional")
	}
}

func TestParse_FileNotFound(t *testing.T) {
	_, err := Parse(testPath("nonexistent.yaml"))
	if !errors.Is(err, requirement.ErrManifestNotFound) {
		t.Errorf("error = %v, want ErrManifestNotFound", err)
	}
}

func TestRequirements(t *testing.T) {
	m, err := Parse(testPath("valid.yaml"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	reqs, err := m.Requirements(false)
	if err != nil {
		t.Fatalf("Requirements error: %v", err)
	}
	// pytest is optional and excluded by default.
	if len(reqs) != 3 {
		t.Fatalf("got %d requirements, want 3", len(reqs))
	}
	if reqs[0].String() != "requests[socks]>=2.28,<3" {
		t.Errorf("reqs[0] = %q", reqs[0].String())
	}
	if reqs[2].Marker != `sys_platform == "win32"` {
		t.Errorf("reqs[2].Marker = %q", reqs[2].Marker)
	}
}

func TestRequirements_IncludeOptional(t *testing.T) {
	m, err := Parse(testPath("valid.yaml"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	reqs, err := m.Requirements(true)
	if err != nil {
		t.Fatalf("Requirements error: %v", err)
	}
	if len(reqs) != 4 {
		t.Fatalf("got %d requirements, want 4", len(reqs))
	}
	if reqs[3].Name != "pytest" {
		t.Errorf("reqs[3].Name = %q, want pytest", reqs[3].Name)
	}
}
