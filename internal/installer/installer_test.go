package installer

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// fakeInterpreter writes an executable shell script that stands in for
// python, so tests exercise the subprocess path without a real pip.
func fakeInterpreter(t *testing.T, script string) string {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available, skipping")
	}
	path := filepath.Join(t.TempDir(), "python-fake")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestInstall_Success(t *testing.T) {
	inst := &Installer{
		Python: fakeInterpreter(t, `echo "Successfully installed"; exit 0`),
		Stdout: &bytes.Buffer{},
		Stderr: &bytes.Buffer{},
	}

	if err := inst.Install(context.Background(), "requirements.txt"); err != nil {
		t.Fatalf("Install error: %v", err)
	}
}

func TestInstall_PipFailure(t *testing.T) {
	inst := &Installer{
		Python: fakeInterpreter(t, `echo "ERROR: No matching distribution found for leftpad" >&2; exit 1`),
		Stdout: &bytes.Buffer{},
		Stderr: &bytes.Buffer{},
	}

	err := inst.Install(context.Background(), "requirements.txt")
	if err == nil {
		t.Fatal("expected error for failing pip, got nil")
	}
	if !errors.Is(err, ErrInstallFailed) {
		t.Errorf("error = %v, want ErrInstallFailed", err)
	}
	// The tail of pip's stderr is carried in the message.
	if got := err.Error(); !strings.Contains(got, "No matching distribution") {
		t.Errorf("error %q should include pip's stderr tail", got)
	}
}

func TestInstall_QuietCapturesStderr(t *testing.T) {
	var stderr bytes.Buffer
	inst := &Installer{
		Python: fakeInterpreter(t, `echo "noise"; echo "boom" >&2; exit 2`),
		Quiet:  true,
		Stderr: &stderr,
	}

	err := inst.Install(context.Background(), "requirements.txt")
	if !errors.Is(err, ErrInstallFailed) {
		t.Fatalf("error = %v, want ErrInstallFailed", err)
	}
	// Quiet mode suppresses streaming but the error still carries stderr.
	if stderr.Len() != 0 {
		t.Errorf("quiet mode should not stream stderr, got %q", stderr.String())
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("error %q should include captured stderr", err)
	}
}

func TestInstall_InterpreterNotFound(t *testing.T) {
	inst := &Installer{Python: "definitely-not-a-python-interpreter"}

	err := inst.Install(context.Background(), "requirements.txt")
	if err == nil {
		t.Fatal("expected error for missing interpreter, got nil")
	}
	if errors.Is(err, ErrInstallFailed) {
		t.Error("a missing interpreter is not an installation failure")
	}
}

func TestLastLine(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"one\ntwo\nthree\n", "three"},
		{"only", "only"},
		{"", ""},
		{"trailing  \n\n", "trailing"},
	}

	for _, tt := range tests {
		if got := lastLine([]byte(tt.in)); got != tt.want {
			t.Errorf("lastLine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
