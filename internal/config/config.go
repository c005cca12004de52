// Package config holds runtime configuration: defaults, CLI flag parsing,
// the optional YAML config file, and validation. Precedence is built-in
// defaults < config file < flags.
package config

import (
	"strings"

	"github.com/pkg/errors"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] and [ApplyFile] before being passed (by
// pointer) to packages that need it.
type Config struct {
	// Directory to scan for prefixed files and to run steps in.
	Directory string // Default: ".".

	// ConfigFile is an optional YAML file with directory, policy, and
	// extension entries. Flags win over file values.
	ConfigFile string

	// EnvFile is an optional dotenv file loaded into the process
	// environment before any step runs, so children inherit it.
	EnvFile string

	// Extensions holds caller-supplied extension mappings, merged
	// override-wins on top of the built-in defaults. Keys include the
	// leading dot; values are interpreter argv prefixes.
	Extensions map[string][]string

	// Behavior flags.
	SkipUnknown bool // Skip unmapped extensions instead of aborting the run.
	DryRun      bool // Log commands without spawning processes.
	ShowReport  bool // Default: true. Cleared by --no-report.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with the built-in defaults. Used as the
// base before [ApplyFile] and [ParseFlags] apply overrides.
func DefaultConfig() Config {
	return Config{
		Directory:  ".",
		Extensions: map[string][]string{},
		ShowReport: true,
		ColorMode:  ColorAuto,
	}
}

// Validate checks enum fields and the shape of extension entries.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}
	if c.Directory == "" {
		return errors.New("directory must not be empty")
	}
	for ext, argv := range c.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return errors.Errorf("invalid extension key %q (must start with '.', e.g. '.py')", ext)
		}
		if len(argv) == 0 || argv[0] == "" {
			return errors.Errorf("extension %q maps to an empty command", ext)
		}
	}
	return nil
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an
// empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}
