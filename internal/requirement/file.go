package requirement

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// ErrManifestNotFound is returned when the requirements file does not exist.
var ErrManifestNotFound = errors.New("can't find requirements file")

// Load reads a requirements.txt-style manifest and returns the parsed
// requirements in file order. Blank lines and "#" comments are skipped,
// as are pip option lines ("-r", "--index-url", ...). Trailing backslashes
// continue a requirement onto the next line.
func Load(path string) ([]Requirement, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	defer f.Close()

	var reqs []Requirement
	var pending string
	lineNo := 0

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if pending != "" {
			line = pending + " " + line
			pending = ""
		}

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "-") {
			// pip options (-r, -e, --index-url, ...) are out of scope.
			log.Debug("skipping pip option line", "path", path, "line", lineNo)
			continue
		}
		if strings.HasSuffix(line, "\\") {
			pending = strings.TrimSpace(strings.TrimSuffix(line, "\\"))
			continue
		}

		req, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		reqs = append(reqs, *req)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	if pending != "" {
		return nil, fmt.Errorf("%s: unterminated line continuation", path)
	}

	return reqs, nil
}
