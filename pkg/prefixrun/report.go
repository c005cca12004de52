package prefixrun

import "time"

// Status is the terminal state of a scheduled step after a run.
type Status string

const (
	StatusOK      Status = "ok"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped" // unmapped extension under the lenient policy
	StatusDryRun  Status = "dry-run"
	StatusNotRun  Status = "not run" // scheduled after a failure or interrupt
)

// StepResult records one scheduled step's resolved command, timing, and
// outcome.
type StepResult struct {
	Step
	Command  []string // interpreter argv with the filename appended
	Start    time.Time
	End      time.Time
	Status   Status
	ExitCode int // -1 unless the process ran to completion
}

// Elapsed returns the step's wall-clock duration, or zero when it never ran.
func (r *StepResult) Elapsed() time.Duration {
	if r.Start.IsZero() || r.End.IsZero() {
		return 0
	}
	return r.End.Sub(r.Start)
}

// Report collects per-step results for one run, in schedule order. It is
// populated even when the run fails partway so callers can show what
// happened up to the failure.
type Report struct {
	Directory string
	Results   []StepResult
}

// Count returns the number of results with the given status.
func (r *Report) Count(s Status) int {
	n := 0
	for i := range r.Results {
		if r.Results[i].Status == s {
			n++
		}
	}
	return n
}
