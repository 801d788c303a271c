package pydist

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// DistInfoRegistry reads installed distributions from site-packages
// metadata directories (*.dist-info/METADATA and *.egg-info/PKG-INFO),
// the same records importlib.metadata reads.
type DistInfoRegistry struct {
	mapRegistry
}

// ScanSitePackages builds a registry from the given site-packages roots.
// Roots that do not exist are skipped; unreadable metadata files are skipped.
func ScanSitePackages(roots []string) (*DistInfoRegistry, error) {
	dists := make(map[string]string)

	for _, root := range roots {
		entries, err := os.ReadDir(root)
		if err != nil {
			if os.IsNotExist(err) {
				log.Debug("site-packages root missing, skipping", "root", root)
				continue
			}
			return nil, fmt.Errorf("reading site-packages %s: %w", root, err)
		}

		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			var metaPath string
			switch {
			case strings.HasSuffix(entry.Name(), ".dist-info"):
				metaPath = filepath.Join(root, entry.Name(), "METADATA")
			case strings.HasSuffix(entry.Name(), ".egg-info"):
				metaPath = filepath.Join(root, entry.Name(), "PKG-INFO")
			default:
				continue
			}

			name, version, err := readMetadata(metaPath)
			if err != nil || name == "" || version == "" {
				log.Debug("skipping unreadable metadata", "path", metaPath, "err", err)
				continue
			}
			dists[Normalize(name)] = version
		}
	}

	log.Debug("site-packages scan complete", "count", len(dists))
	return &DistInfoRegistry{mapRegistry{dists: dists}}, nil
}

// readMetadata extracts the Name and Version headers from a METADATA or
// PKG-INFO file. Headers end at the first blank line.
func readMetadata(path string) (name, version string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			break
		}
		if v, ok := strings.CutPrefix(line, "Name:"); ok {
			name = strings.TrimSpace(v)
		} else if v, ok := strings.CutPrefix(line, "Version:"); ok {
			version = strings.TrimSpace(v)
		}
		if name != "" && version != "" {
			break
		}
	}
	return name, version, scanner.Err()
}
