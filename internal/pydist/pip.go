package pydist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/exec"

	"github.com/charmbracelet/log"
)

// PipRegistry reads installed distributions from a single
// `<python> -m pip list --format=json` invocation.
type PipRegistry struct {
	mapRegistry
}

// NewPipRegistry runs pip once and builds the lookup map. The python
// argument is the interpreter command ("python3", "/usr/bin/python", ...).
func NewPipRegistry(ctx context.Context, python string) (*PipRegistry, error) {
	bin, err := exec.LookPath(python)
	if err != nil {
		return nil, fmt.Errorf("python interpreter %q not found: %w", python, err)
	}

	cmd := exec.CommandContext(ctx, bin, "-m", "pip", "list", "--format=json", "--disable-pip-version-check")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Debug("querying installed distributions", "command", cmd.String())
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("listing installed distributions: %w: %s", err, bytes.TrimSpace(stderr.Bytes()))
	}

	dists, err := decodePipList(&stdout)
	if err != nil {
		return nil, err
	}
	log.Debug("installed distributions loaded", "count", len(dists))

	return &PipRegistry{mapRegistry{dists: dists}}, nil
}

// decodePipList decodes pip's JSON list output into a normalized-name map.
func decodePipList(r io.Reader) (map[string]string, error) {
	var entries []struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	}
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decoding pip list output: %w", err)
	}

	dists := make(map[string]string, len(entries))
	for _, e := range entries {
		dists[Normalize(e.Name)] = e.Version
	}
	return dists, nil
}
