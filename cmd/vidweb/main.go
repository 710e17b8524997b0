// Command vidweb batch re-encodes videos for web playback using ffmpeg
// (H.264, yuv420p, faststart, audio stripped). It selects .mp4 files whose
// name contains the filter keyword and writes *_new.mp4 siblings, or
// overwrites originals in place with -w.
package main

import (
	"os"

	"github.com/teomat/vidkit/internal/cli"
	"github.com/teomat/vidkit/internal/config"
)

// version is injected at build time via -ldflags.
var version = "1.0.0"

func main() {
	os.Exit(cli.Run(config.OpWeb, version))
}
