// Package cli carries the shared entrypoint logic for the vidcrop and vidweb
// commands: flag parsing, validation, logger setup, signal handling, and
// pipeline launch. The two binaries differ only in the Op they pass in.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/teomat/vidkit/internal/check"
	"github.com/teomat/vidkit/internal/config"
	"github.com/teomat/vidkit/internal/display"
	"github.com/teomat/vidkit/internal/logging"
	"github.com/teomat/vidkit/internal/pipeline"
)

// Run executes the full command flow for one binary and returns its exit code.
func Run(op config.Op, version string) int {
	// Phase 1: Bootstrap — the logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig(op)
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", op.Command(), err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", op.Command(), err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", op.Command(), err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available — all output goes through log from here on.
	display.PrintBanner()

	if cfg.CheckOnly {
		if !check.RunCheck(log) {
			return 1
		}
		return 0
	}

	log.Info("=== %s v%s ===", op.Command(), version)
	log.Info("Root: %s", cfg.RootDir)

	// Fail fast if ffmpeg or libx264 are unavailable (skipped for dry runs,
	// which never invoke the encoder).
	if !cfg.DryRun {
		if err := check.CheckDeps(); err != nil {
			log.Error("%v", err)
			return 1
		}
	}

	// Phase 3: Signal handling — cancel context on SIGINT/SIGTERM so the
	// pipeline can stop between files without leaving partial output.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, finishing current file…")
		cancel()
	}()

	// Phase 4: Run the batch.
	stats, err := pipeline.Run(ctx, &cfg, log)
	if err != nil {
		log.Error("%v", err)
		return 1
	}

	if stats.Failed > 0 && !cfg.IgnoreErrors {
		return 1
	}
	return 0
}
