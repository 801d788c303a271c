// Package installer invokes pip to install the dependencies declared in a
// requirements manifest.
package installer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/charmbracelet/log"
)

// ErrInstallFailed wraps any pip failure into a single error, as the
// calling flow treats all installation failures the same.
var ErrInstallFailed = errors.New("dependencies installation failed")

// Installer runs `<python> -m pip install -r <manifest>`.
type Installer struct {
	// Python is the interpreter command used to invoke pip.
	Python string
	// Upgrade adds --upgrade to the pip invocation.
	Upgrade bool
	// Quiet suppresses pip's output; it is still captured for error reporting.
	Quiet bool

	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Install runs pip against the manifest at the given path. A non-zero pip
// exit wraps ErrInstallFailed with the tail of pip's stderr.
func (i *Installer) Install(ctx context.Context, manifestPath string) error {
	bin, err := exec.LookPath(i.Python)
	if err != nil {
		return fmt.Errorf("python interpreter %q not found: %w", i.Python, err)
	}

	args := []string{"-m", "pip", "install", "-r", manifestPath}
	if i.Upgrade {
		args = append(args, "--upgrade")
	}

	cmd := exec.CommandContext(ctx, bin, args...)

	stdout := i.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := i.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var stderrBuf bytes.Buffer
	if i.Quiet {
		cmd.Stdout = io.Discard
		cmd.Stderr = &stderrBuf
	} else {
		cmd.Stdout = stdout
		cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)
	}

	log.Debug("installing dependencies", "command", cmd.String())
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%w: pip exited with status %d: %s",
				ErrInstallFailed, exitErr.ExitCode(), lastLine(stderrBuf.Bytes()))
		}
		return fmt.Errorf("%w: %v", ErrInstallFailed, err)
	}

	return nil
}

// lastLine returns the final non-empty line of pip's captured stderr.
func lastLine(out []byte) string {
	lines := bytes.Split(bytes.TrimSpace(out), []byte("\n"))
	if len(lines) == 0 {
		return ""
	}
	return string(bytes.TrimSpace(lines[len(lines)-1]))
}
