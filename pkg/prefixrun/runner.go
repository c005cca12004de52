package prefixrun

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"github.com/pkg/errors"
)

// Logger is the minimal progress interface the runner needs. It is satisfied
// by the CLI's logging package; library callers may pass their own or rely
// on the default no-op.
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}

// killDelay is how long a cancelled child may linger after SIGTERM before
// it is killed outright.
const killDelay = 5 * time.Second

// Runner executes the steps discovered in a directory, in prefix order, one
// child process at a time. Construct with [New]; the zero value is not
// usable.
type Runner struct {
	dir         string
	extensions  Map
	skipUnknown bool
	dryRun      bool
	log         Logger

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// New builds a Runner over the default extension table and the current
// working directory, then applies opts in order.
func New(opts ...Option) *Runner {
	r := &Runner{
		dir:        ".",
		extensions: DefaultExtensions(),
		log:        nopLogger{},
		stdin:      os.Stdin,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Extensions returns a copy of the runner's effective extension table.
func (r *Runner) Extensions() Map { return r.extensions.Merge(nil) }

// Run discovers the pipeline and executes it to completion. The returned
// Report covers every scheduled step, also when the run fails partway.
//
// The error is an *UnknownExtensionError when a step cannot be resolved
// under the strict policy (nothing has executed at that point), a
// *StepError when a child exits non-zero (remaining steps are left
// unexecuted), or the context's error when the run is cancelled.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	steps, err := Discover(r.dir)
	if err != nil {
		return nil, err
	}

	// Resolve every interpreter before anything executes: under the strict
	// policy an unmapped extension aborts the whole run, not just the step
	// it was found on.
	report := &Report{Directory: r.dir}
	var unknown error
	for _, step := range steps {
		argv, err := r.extensions.Lookup(step.Name)
		if err != nil {
			if r.skipUnknown {
				r.log.Warn("Skip %s: %v", step.Name, err)
				report.Results = append(report.Results, StepResult{
					Step:     step,
					Status:   StatusSkipped,
					ExitCode: -1,
				})
				continue
			}
			if unknown == nil {
				unknown = err
			}
			report.Results = append(report.Results, StepResult{
				Step:     step,
				Status:   StatusNotRun,
				ExitCode: -1,
			})
			continue
		}
		report.Results = append(report.Results, StepResult{
			Step:     step,
			Command:  append(append([]string(nil), argv...), step.Name),
			Status:   StatusNotRun,
			ExitCode: -1,
		})
	}
	if unknown != nil {
		return report, unknown
	}

	runnable := len(report.Results) - report.Count(StatusSkipped)
	current := 0
	var failed error
	for i := range report.Results {
		res := &report.Results[i]
		if res.Status == StatusSkipped || failed != nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			r.log.Warn("Interrupted, %d steps not run", runnable-current)
			failed = errors.Wrap(err, "pipeline interrupted")
			continue
		}

		current++
		r.log.Info("[%d/%d] %s", current, runnable, res.Name)

		if r.dryRun {
			r.log.Info("[DRY] Would run: %s", strings.Join(res.Command, " "))
			res.Status = StatusDryRun
			continue
		}

		res.Start = time.Now()
		err := r.runStep(ctx, res.Command)
		res.End = time.Now()
		if err != nil {
			res.Status = StatusFailed
			res.ExitCode = exitCode(err)
			failed = &StepError{
				Order:    res.Order,
				Name:     res.Name,
				ExitCode: res.ExitCode,
				Err:      err,
			}
			continue
		}
		res.Status = StatusOK
		res.ExitCode = 0
	}
	return report, failed
}

// runStep executes one child process, blocking until it exits. The child
// runs in the pipeline directory with the runner's streams so its output is
// visible in real time. On context cancellation the child receives SIGTERM
// and is killed after killDelay.
func (r *Runner) runStep(ctx context.Context, argv []string) error {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = r.dir
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr
	cmd.Cancel = func() error {
		return cmd.Process.Signal(syscall.SIGTERM)
	}
	cmd.WaitDelay = killDelay
	return cmd.Run()
}

// exitCode extracts the child's exit status; -1 when the process never
// started or was terminated by a signal.
func exitCode(err error) int {
	var exit *exec.ExitError
	if errors.As(err, &exit) {
		return exit.ExitCode()
	}
	return -1
}
