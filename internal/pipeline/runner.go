// Package pipeline orchestrates file discovery, per-file transcoding, and
// batch summary reporting.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/teomat/vidkit/internal/check"
	"github.com/teomat/vidkit/internal/config"
	"github.com/teomat/vidkit/internal/display"
	"github.com/teomat/vidkit/internal/ffmpeg"
	"github.com/teomat/vidkit/internal/logging"
	"github.com/teomat/vidkit/internal/naming"
	"github.com/teomat/vidkit/internal/scan"
)

// Run is the top-level batch entry point. It discovers files, builds one Job
// per match, processes each sequentially, and returns aggregate stats.
//
// Per-file failures are isolated: a non-zero ffmpeg exit marks the job failed
// and the batch continues. Only two conditions return a non-nil error, both
// fatal to the whole run: the root is not a directory, and the ffmpeg binary
// disappearing mid-batch (no later job could succeed either).
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) (RunStats, error) {
	var stats RunStats

	files, err := scan.Discover(cfg.RootDir, scan.FilterFor(cfg))
	if err != nil {
		return stats, err
	}
	if len(files) == 0 {
		log.Info("No matching video files found in %s", cfg.RootDir)
		return stats, nil
	}

	stats.Total = len(files)
	logBatchHeader(cfg, log, &stats)

	for i, path := range files {
		stats.Current = i + 1

		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}

		if err := processJob(ctx, cfg, log, NewJob(cfg, path), &stats); err != nil {
			return stats, err
		}
	}

	logSummary(cfg, log, &stats)
	return stats, nil
}

// processJob handles one file: encode to a scratch path, then move the
// result into place. A non-nil return aborts the batch; per-file failures
// are recorded in stats and return nil.
func processJob(ctx context.Context, cfg *config.Config, log *logging.Logger, job Job, stats *RunStats) error {
	basename := filepath.Base(job.SourcePath)
	log.Info("[%d/%d] %s", stats.Current, stats.Total, basename)

	fi, err := os.Stat(job.SourcePath)
	if err != nil {
		log.Error("File not found: %s", job.SourcePath)
		stats.Failed++
		fmt.Println()
		return nil
	}

	if cfg.DryRun {
		if job.Overwrite() {
			log.Success("[DRY] Would overwrite %s", basename)
		} else {
			log.Success("[DRY] Would write %s", filepath.Base(job.DestPath))
		}
		stats.Processed++
		fmt.Println()
		return nil
	}

	// Encode into a scratch file; the destination is only touched after
	// ffmpeg reports success. Covers both modes so a failed run never
	// leaves a partial file at the destination.
	scratch := naming.ScratchPath(job.DestPath, job.Overwrite())
	args := ffmpeg.Build(cfg, job.SourcePath, scratch)

	start := time.Now()
	result := ffmpeg.Execute(ctx, cfg, args)
	if result.Err != nil {
		os.Remove(scratch)
		if ffmpeg.NotFound(result.Err) {
			return fmt.Errorf("%w; aborting batch", check.ErrFfmpegNotFound)
		}
		if ctx.Err() != nil {
			// Killed by cancellation; the loop logs the interrupt.
			return nil
		}
		log.Error("Transcode failed: %s", basename)
		logStderr(log, result.Stderr)
		stats.Failed++
		fmt.Println()
		return nil
	}

	var outSize int64
	if outInfo, err := os.Stat(scratch); err == nil {
		outSize = outInfo.Size()
	}

	if err := moveFile(scratch, job.DestPath); err != nil {
		os.Remove(scratch)
		log.Error("Cannot place output: %v", err)
		stats.Failed++
		fmt.Println()
		return nil
	}

	elapsed := time.Since(start)
	stats.TotalInputBytes += fi.Size()
	stats.TotalOutputBytes += outSize
	stats.Processed++

	ratio := int64(100)
	if fi.Size() > 0 {
		ratio = outSize * 100 / fi.Size()
	}
	if job.Overwrite() {
		log.Success("Overwrote %s in %ds (%d%% of original)", basename, int(elapsed.Seconds()), ratio)
	} else {
		log.Success("Wrote %s in %ds (%d%% of original)", filepath.Base(job.DestPath), int(elapsed.Seconds()), ratio)
	}
	fmt.Println()
	return nil
}

func logStderr(log *logging.Logger, stderr string) {
	lines := ffmpeg.TailLines(stderr, 20)
	if len(lines) == 0 {
		return
	}
	log.Error("Last ffmpeg output:")
	for _, l := range lines {
		log.Error("  %s", l)
	}
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("Found %d video(s) to process", stats.Total)

	if cfg.Op == config.OpCrop {
		log.Info("Op: crop to top half (%s)", ffmpeg.CropFilter)
		log.Info("Keyword: %q excluded from filenames", cfg.Keyword)
	} else {
		log.Info("Op: re-encode for web playback (H.264, faststart)")
		log.Info("Keyword: %q required in filenames", cfg.Keyword)
	}

	if cfg.Mode == config.ModeOverwrite {
		log.Warn("OVERWRITE mode is enabled; original files will be replaced")
	} else {
		log.Info("Output: sibling files with %q suffix", cfg.Op.Suffix())
	}
	if cfg.DryRun {
		log.Warn("DRY RUN — no files will be written")
	}
	fmt.Println()
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Done: %d processed, %d failed", stats.Processed, stats.Failed)

	if cfg.DryRun {
		log.Info("  Size delta: n/a (dry run)")
		return
	}

	log.Info("  Size delta: %s (input %s -> output %s)",
		display.FormatBytesWithSign(stats.SpaceDelta()),
		display.FormatBytes(stats.TotalInputBytes),
		display.FormatBytes(stats.TotalOutputBytes))
}
