// Package ffmpeg builds and executes ffmpeg commands with a shared argument
// skeleton.
package ffmpeg

import (
	"github.com/teomat/vidkit/internal/config"
)

// CropFilter takes the top half of the frame: full input width, half the
// input height, origin at the top-left corner.
const CropFilter = "crop=iw:ih/2:0:0"

// Build constructs the complete ffmpeg argument slice for one file: a fixed
// H.264 web-compatible encode (yuv420p, preset fast, CRF 18, faststart
// metadata, audio stripped), with the crop filter injected for the crop op.
func Build(cfg *config.Config, input, output string) []string {
	args := make([]string, 0, 24)

	// --- Preamble ---
	args = append(args, "ffmpeg", "-hide_banner", "-nostdin", "-y")

	// Loglevel: info plus live stats when verbose, otherwise error.
	if cfg.Verbose {
		args = append(args, "-loglevel", "info", "-stats", "-stats_period", "1")
	} else {
		args = append(args, "-loglevel", "error")
	}

	// --- Input ---
	args = append(args, "-i", input)

	// --- Video filter (crop op only) ---
	if cfg.Op == config.OpCrop {
		args = append(args, "-vf", CropFilter)
	}

	// --- Codec and container flags (identical for both ops) ---
	args = append(args,
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		"-preset", "fast",
		"-crf", "18",
		"-movflags", "+faststart",
		"-an",
		output,
	)

	return args
}
