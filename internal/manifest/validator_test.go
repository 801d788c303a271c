package manifest

import (
	"strings"
	"testing"
)

func TestValidateFile_Valid(t *testing.T) {
	result, err := ValidateFile(testPath("valid.yaml"))
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if !result.Valid {
		t.Fatalf("expected valid manifest, got issues: %+v", result.Issues)
	}
}

func TestValidateFile_MissingDependencies(t *testing.T) {
	result, err := ValidateFile(testPath("invalid-no-deps.yaml"))
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected validation failure for manifest without dependencies")
	}
	if len(result.Issues) == 0 {
		t.Fatal("expected at least one issue")
	}
}

func TestValidateFile_BadDependency(t *testing.T) {
	result, err := ValidateFile(testPath("invalid-bad-name.yaml"))
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected validation failure")
	}

	// Issues point into the dependencies array.
	found := false
	for _, issue := range result.Issues {
		if strings.HasPrefix(issue.Path, "/dependencies/") {
			found = true
		}
	}
	if !found {
		t.Errorf("no issue located under /dependencies: %+v", result.Issues)
	}
}

func TestValidate_NotYAML(t *testing.T) {
	if _, err := Validate([]byte("\t{unparseable")); err == nil {
		t.Fatal("expected error for malformed YAML, got nil")
	}
}
