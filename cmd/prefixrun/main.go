// Command prefixrun is the CLI entrypoint for the prefixrun pipeline runner.
//
// It parses flags and the optional YAML config, merges the extension table,
// and either runs interpreter diagnostics (--check) or the discovered
// pipeline: files with an integer prefix, executed ascending by prefix, one
// child process at a time.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/backmassage/prefixrun/internal/check"
	"github.com/backmassage/prefixrun/internal/config"
	"github.com/backmassage/prefixrun/internal/display"
	"github.com/backmassage/prefixrun/internal/logging"
	"github.com/backmassage/prefixrun/pkg/prefixrun"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build" (no make), these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap — the logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output goes
	// through the logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	fs, err := config.ParseFlags(&cfg, version, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "prefixrun: %v\n", err)
		return 1
	}
	if cfg.ConfigFile != "" {
		if err := config.ApplyFile(&cfg, fs); err != nil {
			fmt.Fprintf(os.Stderr, "prefixrun: %v\n", err)
			return 1
		}
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "prefixrun: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "prefixrun: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available — all output goes through log from here on.
	display.PrintBanner()

	exts := prefixrun.DefaultExtensions().Merge(cfg.Extensions)

	if cfg.CheckOnly {
		if !check.RunCheck(exts, log) {
			return 1
		}
		return 0
	}

	// Steps inherit the process environment; load the dotenv file before
	// anything runs so every child sees it.
	if cfg.EnvFile != "" {
		if err := godotenv.Load(cfg.EnvFile); err != nil {
			log.Error("Cannot load env file: %v", err)
			return 1
		}
		log.Debug("Loaded environment from %s", cfg.EnvFile)
	}

	dirAbs, err := filepath.Abs(cfg.Directory)
	if err != nil {
		log.Error("Cannot resolve directory: %s", cfg.Directory)
		return 1
	}

	log.Info("=== prefixrun v%s (%s) ===", version, commit)
	log.Info("Dir: %s", dirAbs)
	if cfg.DryRun {
		log.Warn("DRY RUN — no steps will be executed")
	}
	log.Info("")

	// Discover once up front for the fail-fast interpreter check and the
	// step count; the runner repeats discovery, which is deterministic on
	// an unchanged directory.
	steps, err := prefixrun.Discover(dirAbs)
	if err != nil {
		log.Error("Step discovery failed: %v", err)
		return 1
	}
	log.Info("Found %d steps", len(steps))
	if !cfg.DryRun {
		if err := check.CheckDeps(steps, exts); err != nil {
			log.Error("%v", err)
			return 1
		}
	}

	// Phase 3: Signal handling — cancel the context on SIGINT/SIGTERM so
	// the in-flight child is terminated and later steps never start.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, terminating current step…")
		cancel()
	}()

	// Phase 4: Run the pipeline.
	opts := []prefixrun.Option{
		prefixrun.WithDirectory(dirAbs),
		prefixrun.WithExtensions(cfg.Extensions),
		prefixrun.WithLogger(log),
	}
	if cfg.SkipUnknown {
		opts = append(opts, prefixrun.WithSkipUnknown())
	}
	if cfg.DryRun {
		opts = append(opts, prefixrun.WithDryRun())
	}

	report, runErr := prefixrun.New(opts...).Run(ctx)

	if cfg.ShowReport && report != nil && len(report.Results) > 0 {
		fmt.Println()
		fmt.Println(display.RenderReport(report))
	}

	if runErr != nil {
		var stepErr *prefixrun.StepError
		if errors.As(runErr, &stepErr) {
			log.Error("%v", stepErr)
			if stepErr.ExitCode > 0 {
				return stepErr.ExitCode
			}
			return 1
		}
		log.Error("%v", runErr)
		return 1
	}

	log.Success("Pipeline complete: %s", display.Summary(report))
	return 0
}
