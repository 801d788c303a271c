package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/reqcheck-labs/reqcheck/internal/config"
	"github.com/reqcheck-labs/reqcheck/internal/manifest"
	"github.com/reqcheck-labs/reqcheck/internal/pydist"
	"github.com/reqcheck-labs/reqcheck/internal/requirement"
)

// loadManifest reads requirements from the given path, dispatching on the
// file type: pyproject.toml, requirements.yaml, or line-oriented
// requirements.txt. An empty path falls back to the configured default.
func loadManifest(path string, includeOptional bool) ([]requirement.Requirement, string, error) {
	if path == "" {
		path = config.Requirements()
	}

	switch {
	case strings.HasSuffix(path, ".toml"):
		reqs, err := requirement.LoadPyProject(path, includeOptional)
		return reqs, path, err
	case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
		m, err := manifest.Parse(path)
		if err != nil {
			return nil, path, err
		}
		reqs, err := m.Requirements(includeOptional)
		return reqs, path, err
	default:
		reqs, err := requirement.Load(path)
		return reqs, path, err
	}
}

// buildRegistry constructs the installed-distribution registry: an explicit
// site-packages scan when roots are given, otherwise one pip invocation.
func buildRegistry(ctx context.Context, python string, sitePackages []string) (pydist.Registry, error) {
	if len(sitePackages) > 0 {
		return pydist.ScanSitePackages(sitePackages)
	}
	if python == "" {
		python = config.Python()
	}
	return pydist.NewPipRegistry(ctx, python)
}

// materializeRequirements writes parsed requirements to a temporary
// requirements.txt so pip can install from manifests that are not already
// in pip's native format. The caller must invoke cleanup.
func materializeRequirements(reqs []requirement.Requirement) (path string, cleanup func(), err error) {
	f, err := os.CreateTemp("", "reqcheck-*.txt")
	if err != nil {
		return "", nil, fmt.Errorf("creating temporary manifest: %w", err)
	}

	var b strings.Builder
	for _, req := range reqs {
		b.WriteString(req.String())
		if req.URL != "" {
			b.WriteString(" @ " + req.URL)
		}
		if req.Marker != "" {
			b.WriteString("; " + req.Marker)
		}
		b.WriteString("\n")
	}

	if _, err := f.WriteString(b.String()); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", nil, fmt.Errorf("writing temporary manifest: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", nil, fmt.Errorf("writing temporary manifest: %w", err)
	}

	return f.Name(), func() { os.Remove(f.Name()) }, nil
}

// installablePath returns a path pip can consume with -r: the manifest
// itself when it is already line-oriented, otherwise a temporary rendering.
func installablePath(manifestPath string, reqs []requirement.Requirement) (string, func(), error) {
	ext := filepath.Ext(manifestPath)
	if ext != ".toml" && ext != ".yaml" && ext != ".yml" {
		return manifestPath, func() {}, nil
	}
	return materializeRequirements(reqs)
}
