package ffmpeg

import (
	"errors"
	"io/fs"
	"os/exec"
	"strings"
)

// NotFound reports whether err means the ffmpeg binary itself could not be
// located or started. This is the one failure that makes every remaining
// job hopeless, so callers abort the batch instead of moving on.
func NotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist)
}

// TailLines returns up to n trailing lines of captured stderr, for compact
// per-file diagnostics.
func TailLines(stderr string, n int) []string {
	s := strings.TrimSpace(stderr)
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines
}
