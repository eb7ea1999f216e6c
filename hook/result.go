package hook

import (
	"strings"
	"time"
)

// Status is the outcome of a single hook run.
type Status string

const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusFixed   Status = "fixed"   // hook modified files; commit must be retried
	StatusSkipped Status = "skipped" // no files matched
	StatusErrored Status = "errored" // hook could not be executed
)

// Result records the outcome of running one hook.
type Result struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Status   Status        `json:"status"`
	Duration time.Duration `json:"duration"`
	Files    int           `json:"files"`
	Output   string        `json:"output,omitempty"`
	ExitCode int           `json:"exitCode,omitempty"`
}

// Ok reports whether the hook allows the commit to proceed.
func (r *Result) Ok() bool {
	return r.Status == StatusPassed || r.Status == StatusSkipped
}

// Summary aggregates the results of a full run.
type Summary struct {
	Results []Result `json:"results"`
}

// Ok reports whether every hook passed or was skipped.
func (s *Summary) Ok() bool {
	for i := range s.Results {
		if !s.Results[i].Ok() {
			return false
		}
	}
	return true
}

// Failed returns the ids of hooks that did not pass.
func (s *Summary) Failed() []string {
	var ids []string
	for i := range s.Results {
		if !s.Results[i].Ok() {
			ids = append(ids, s.Results[i].ID)
		}
	}
	return ids
}

// String renders a compact one-line-per-hook report.
func (s *Summary) String() string {
	var b strings.Builder
	for i := range s.Results {
		r := &s.Results[i]
		b.WriteString(r.Name)
		b.WriteString(": ")
		b.WriteString(string(r.Status))
		b.WriteString("\n")
	}
	return b.String()
}
