package prefixrun

import "fmt"

// UnknownExtensionError reports a discovered step whose extension has no
// interpreter mapping. Under the default strict policy it aborts the run
// before any step executes.
type UnknownExtensionError struct {
	Name string // step filename
	Ext  string // extension including the dot; empty when the name has none
}

func (e *UnknownExtensionError) Error() string {
	if e.Ext == "" {
		return fmt.Sprintf("%s: no file extension", e.Name)
	}
	return fmt.Sprintf("%s: no interpreter for extension %q", e.Name, e.Ext)
}

// StepError reports a step whose child process exited non-zero or could not
// be started. Remaining steps are not executed.
type StepError struct {
	Order    int
	Name     string
	ExitCode int // -1 when the process never started or died to a signal
	Err      error
}

func (e *StepError) Error() string {
	if e.ExitCode >= 0 {
		return fmt.Sprintf("step %d (%s) exited with status %d", e.Order, e.Name, e.ExitCode)
	}
	return fmt.Sprintf("step %d (%s) failed: %v", e.Order, e.Name, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }
