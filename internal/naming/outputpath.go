// Package naming derives destination and scratch paths for transcode jobs.
package naming

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// OutputPath maps a source path to its final destination. Overwrite jobs
// keep the original path; copy jobs get a suffixed sibling:
//
//	/media/a.mp4 + "_cropped" → /media/a_cropped.mp4
func OutputPath(source, suffix string, overwrite bool) string {
	if overwrite {
		return source
	}
	ext := filepath.Ext(source)
	stem := strings.TrimSuffix(source, ext)
	return stem + suffix + ext
}

// ScratchPath returns a uniquely named temporary path to encode into before
// the final move. The name is salted with a UUID so concurrent runs never
// collide, and keeps the destination's extension so ffmpeg can infer the
// container.
//
// Overwrite jobs use the system temp directory, leaving the source location
// untouched until the swap. Copy jobs use the destination's own directory so
// the final rename never crosses filesystems; the scratch name still ends in
// the output suffix, so a concurrent copy-mode scan will not pick it up.
func ScratchPath(dest string, overwrite bool) string {
	name := "vidkit-" + uuid.NewString() + "-" + filepath.Base(dest)
	if overwrite {
		return filepath.Join(os.TempDir(), name)
	}
	return filepath.Join(filepath.Dir(dest), name)
}
