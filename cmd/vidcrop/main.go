// Command vidcrop batch-crops videos to their top half using ffmpeg.
// It selects .mp4 files whose name lacks the filter keyword and writes
// *_cropped.mp4 siblings, or overwrites originals in place with -w.
package main

import (
	"os"

	"github.com/teomat/vidkit/internal/cli"
	"github.com/teomat/vidkit/internal/config"
)

// version is injected at build time via -ldflags.
var version = "1.0.0"

func main() {
	os.Exit(cli.Run(config.OpCrop, version))
}
