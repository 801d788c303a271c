// Package checker cross-references parsed requirements against an installed
// distribution registry and reports per-requirement verdicts.
package checker

import (
	"errors"
	"fmt"

	"github.com/reqcheck-labs/reqcheck/internal/pydist"
	"github.com/reqcheck-labs/reqcheck/internal/requirement"
)

// ConflictError is returned when a distribution is installed but its version
// does not satisfy the declared specifier.
type ConflictError struct {
	Name        string
	Installed   string
	Requirement string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %s is installed but %s is required", e.Name, e.Installed, e.Requirement)
}

// Status classifies the verdict for a single requirement.
type Status string

const (
	StatusOK       Status = "ok"
	StatusMissing  Status = "missing"
	StatusConflict Status = "conflict"
	// StatusSkipped marks a marker-gated requirement that is not installed:
	// without evaluating the marker we cannot tell whether it applies here.
	StatusSkipped Status = "skipped"
)

// Result is the verdict for one requirement.
type Result struct {
	Requirement requirement.Requirement `json:"-"`
	Name        string                  `json:"name"`
	Specifier   string                  `json:"specifier,omitempty"`
	Installed   string                  `json:"installed,omitempty"`
	Status      Status                  `json:"status"`
	Message     string                  `json:"message,omitempty"`

	// Err is the typed error behind a missing or conflict verdict.
	Err error `json:"-"`
}

// Report aggregates the results of one verification pass.
type Report struct {
	Results []Result
}

// Check verifies each requirement against the registry, in manifest order.
func Check(reqs []requirement.Requirement, reg pydist.Registry) *Report {
	report := &Report{Results: make([]Result, 0, len(reqs))}

	for _, req := range reqs {
		report.Results = append(report.Results, checkOne(req, reg))
	}

	return report
}

func checkOne(req requirement.Requirement, reg pydist.Registry) Result {
	res := Result{
		Requirement: req,
		Name:        req.Name,
		Specifier:   req.Specifier,
	}

	installed, err := reg.Version(req.Name)
	if err != nil {
		var notInstalled *pydist.NotInstalledError
		if errors.As(err, &notInstalled) && req.Marker != "" {
			res.Status = StatusSkipped
			res.Message = fmt.Sprintf("not installed, gated by marker %q", req.Marker)
			return res
		}
		res.Status = StatusMissing
		res.Err = err
		res.Message = err.Error()
		return res
	}
	res.Installed = installed

	satisfied, parsed := req.Satisfies(installed)
	if !parsed || !satisfied {
		conflict := &ConflictError{
			Name:        req.Name,
			Installed:   installed,
			Requirement: req.Name + req.Specifier,
		}
		res.Status = StatusConflict
		res.Err = conflict
		res.Message = conflict.Error()
		return res
	}

	res.Status = StatusOK
	return res
}

// OK reports whether every requirement passed (skipped counts as passing).
func (r *Report) OK() bool {
	return r.count(StatusMissing)+r.count(StatusConflict) == 0
}

// Err summarizes the failed results as a single error, or nil when the
// report is clean.
func (r *Report) Err() error {
	missing := r.count(StatusMissing)
	conflicts := r.count(StatusConflict)
	if missing == 0 && conflicts == 0 {
		return nil
	}
	return fmt.Errorf("%d missing and %d conflicting dependency(ies)", missing, conflicts)
}

func (r *Report) count(s Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == s {
			n++
		}
	}
	return n
}
