// Package check provides interpreter diagnostics (--check mode) and
// pre-pipeline validation that the interpreters the discovered steps need
// are actually on PATH.
package check

import (
	"os/exec"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/backmassage/prefixrun/pkg/prefixrun"
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck runs the --check flow: for every extension in the effective
// table it reports whether the interpreter command resolves on PATH.
// Informational only; returns false when any interpreter is missing.
func RunCheck(exts prefixrun.Map, log Logger) bool {
	log.Info("=== Interpreter Check ===")

	keys := make([]string, 0, len(exts))
	for ext := range exts {
		keys = append(keys, ext)
	}
	sort.Strings(keys)

	ok := true
	for _, ext := range keys {
		argv := exts[ext]
		path, err := exec.LookPath(argv[0])
		if err != nil {
			log.Error("%-7s %s (not found on PATH)", ext, strings.Join(argv, " "))
			ok = false
			continue
		}
		log.Success("%-7s %s -> %s", ext, strings.Join(argv, " "), path)
	}
	return ok
}

// CheckDeps is the pre-pipeline validation: it resolves the interpreters
// the discovered steps actually need and fails when any is missing from
// PATH. Steps with unmapped extensions are left to the runner's policy.
func CheckDeps(steps []prefixrun.Step, exts prefixrun.Map) error {
	seen := map[string]bool{}
	var missing []string
	for _, step := range steps {
		argv, err := exts.Lookup(step.Name)
		if err != nil {
			continue
		}
		cmd := argv[0]
		if seen[cmd] {
			continue
		}
		seen[cmd] = true
		if _, err := exec.LookPath(cmd); err != nil {
			missing = append(missing, cmd)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return errors.Errorf("interpreters not found on PATH: %s", strings.Join(missing, ", "))
	}
	return nil
}
