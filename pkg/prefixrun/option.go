package prefixrun

import "io"

// Option configures a Runner at construction time.
type Option func(*Runner)

// WithDirectory sets the directory to discover steps in and to use as the
// working directory of every child process. Default: the process's current
// working directory.
func WithDirectory(dir string) Option {
	return func(r *Runner) { r.dir = dir }
}

// WithExtensions merges custom entries over the runner's extension table,
// override-wins. May be passed more than once; later options win.
func WithExtensions(custom Map) Option {
	return func(r *Runner) { r.extensions = r.extensions.Merge(custom) }
}

// WithSkipUnknown selects the lenient unknown-extension policy: steps with
// unmapped extensions are dropped with a warning instead of failing the run
// before it starts.
func WithSkipUnknown() Option {
	return func(r *Runner) { r.skipUnknown = true }
}

// WithDryRun logs the commands that would run without spawning processes.
func WithDryRun() Option {
	return func(r *Runner) { r.dryRun = true }
}

// WithLogger directs runner progress output to log. The default logger
// discards everything.
func WithLogger(log Logger) Option {
	return func(r *Runner) { r.log = log }
}

// WithStdin replaces the stdin handed to child processes (default: the
// parent's own).
func WithStdin(rd io.Reader) Option {
	return func(r *Runner) { r.stdin = rd }
}

// WithStdout replaces the stdout handed to child processes.
func WithStdout(w io.Writer) Option {
	return func(r *Runner) { r.stdout = w }
}

// WithStderr replaces the stderr handed to child processes.
func WithStderr(w io.Writer) Option {
	return func(r *Runner) { r.stderr = w }
}
