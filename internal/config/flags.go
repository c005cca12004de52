package config

// This file implements CLI flag parsing and help text. Flags are GNU-style
// via pflag; --ext may be repeated and wins over config-file entries for
// the same extension.

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// ParseFlags parses args (usually os.Args[1:]) into cfg. On --help or
// --version it prints and exits. The returned FlagSet lets [ApplyFile]
// distinguish flag-set fields from defaults so that flags win over the
// config file.
func ParseFlags(cfg *Config, version string, args []string) (*pflag.FlagSet, error) {
	fs := pflag.NewFlagSet("prefixrun", pflag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() { printUsage(fs, version) }

	var (
		extFlags    []string
		colorMode   string
		noReport    bool
		showVersion bool
		showHelp    bool
	)

	fs.StringVarP(&cfg.Directory, "directory", "d", cfg.Directory, "Directory to scan for prefixed files")
	fs.StringVarP(&cfg.ConfigFile, "config", "c", "", "YAML config file (extensions, directory, policy)")
	fs.StringVarP(&cfg.EnvFile, "env-file", "e", "", "Dotenv file loaded before running steps")
	fs.StringArrayVar(&extFlags, "ext", nil, "Extension mapping '.ext=cmd [args]' (repeatable)")
	fs.BoolVar(&cfg.SkipUnknown, "skip-unknown", false, "Skip files with unmapped extensions instead of aborting")
	fs.BoolVarP(&cfg.DryRun, "dry-run", "n", false, "Preview only; do not run any step")
	fs.BoolVar(&noReport, "no-report", false, "Suppress the end-of-run report table")
	fs.StringVar(&colorMode, "color", string(cfg.ColorMode), "Colored logs: auto | always | never")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose output")
	fs.StringVarP(&cfg.LogFile, "log", "l", "", "Append logs to file")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Check interpreter availability and exit")
	fs.BoolVarP(&showVersion, "version", "V", false, "Print version and exit")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show this help and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printUsage(fs, version)
			os.Exit(0)
		}
		return nil, err
	}

	if showHelp {
		printUsage(fs, version)
		os.Exit(0)
	}
	if showVersion {
		fmt.Fprintln(os.Stdout, "prefixrun v"+version)
		os.Exit(0)
	}

	if rest := fs.Args(); len(rest) > 0 {
		return nil, errors.Errorf("unexpected argument %q (directory is set with --directory)", rest[0])
	}

	if noReport {
		cfg.ShowReport = false
	}
	cfg.ColorMode = ColorMode(strings.ToLower(colorMode))
	cfg.Directory = NormalizeDirArg(cfg.Directory)

	for _, raw := range extFlags {
		ext, argv, err := parseExtFlag(raw)
		if err != nil {
			return nil, err
		}
		cfg.Extensions[ext] = argv
	}
	return fs, nil
}

// parseExtFlag splits one --ext value of the form ".ext=cmd [args...]".
func parseExtFlag(raw string) (string, []string, error) {
	ext, command, found := strings.Cut(raw, "=")
	ext = strings.TrimSpace(ext)
	if !found || !strings.HasPrefix(ext, ".") || len(ext) < 2 {
		return "", nil, errors.Errorf("invalid --ext %q (expected '.ext=cmd [args]')", raw)
	}
	argv := strings.Fields(command)
	if len(argv) == 0 {
		return "", nil, errors.Errorf("--ext %q maps %s to an empty command", raw, ext)
	}
	return ext, argv, nil
}

// printUsage writes the help text to stderr.
func printUsage(fs *pflag.FlagSet, version string) {
	fmt.Fprintf(os.Stderr, `prefixrun v%s — run integer-prefixed files in order

Files named <integer><sep><rest> (e.g. 1-load.sh, 02_build.hql) are
discovered in the target directory, sorted by their integer prefix, and
executed one at a time with an interpreter chosen by file extension.
The first failing step stops the pipeline.

Usage:
  prefixrun [flags]

Flags:
%s
Built-in extensions:
  .hql → hive -f    .py → python    .R → Rscript    .scala → scala    .sh → bash
`, version, fs.FlagUsages())
}
