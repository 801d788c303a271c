package checker

import (
	"encoding/json"
	"fmt"
	"io"
)

// Write renders the report as one status line per requirement, in the
// bracketed format used across the CLI's diagnostic output.
func (r *Report) Write(w io.Writer) {
	for _, res := range r.Results {
		switch res.Status {
		case StatusOK:
			if res.Specifier != "" {
				fmt.Fprintf(w, "  [ OK ] %s %s (%s)\n", res.Name, res.Installed, res.Specifier)
			} else {
				fmt.Fprintf(w, "  [ OK ] %s %s\n", res.Name, res.Installed)
			}
		case StatusMissing:
			fmt.Fprintf(w, "  [MISS] %s\n", res.Message)
		case StatusConflict:
			fmt.Fprintf(w, "  [FAIL] %s\n", res.Message)
		case StatusSkipped:
			fmt.Fprintf(w, "  [SKIP] %s: %s\n", res.Name, res.Message)
		}
	}

	missing := r.count(StatusMissing)
	conflicts := r.count(StatusConflict)
	if missing+conflicts > 0 {
		fmt.Fprintf(w, "\n  %d missing, %d conflicting.\n", missing, conflicts)
	}
}

// WriteJSON renders the report as an indented JSON array of results.
func (r *Report) WriteJSON(w io.Writer) error {
	data, err := json.MarshalIndent(r.Results, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
