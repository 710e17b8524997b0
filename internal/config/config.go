// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation. Both commands (vidcrop, vidweb) share this package; the Op baked
// into each binary selects keyword polarity, output suffix, and video filter.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// --- Enum types for validated string fields ---

// Op identifies which transformation a binary performs.
type Op string

const (
	OpCrop Op = "crop" // Crop to the top half of the frame (vidcrop).
	OpWeb  Op = "web"  // Plain re-encode for web compatibility (vidweb).
)

// Mode selects where output lands.
type Mode string

const (
	ModeCopy      Mode = "copy"      // New sibling file with a suffix (default).
	ModeOverwrite Mode = "overwrite" // Replace the original in place via temp swap.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Command returns the binary name for an op.
func (o Op) Command() string {
	if o == OpCrop {
		return "vidcrop"
	}
	return "vidweb"
}

// Suffix returns the derivative-file suffix used in copy mode.
func (o Op) Suffix() string {
	if o == OpCrop {
		return "_cropped"
	}
	return "_new"
}

// RequireKeyword reports the keyword polarity: vidweb selects files whose
// name contains the keyword, vidcrop selects files whose name does not.
func (o Op) RequireKeyword() bool { return o == OpWeb }

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Selection (Op is fixed per binary, the rest from CLI).
	Op      Op
	RootDir string // Positional arg: root of the tree to process.
	Keyword string // Default: "motion".
	Ext     string // Target media extension. Default: ".mp4".
	Mode    Mode   // Default: copy. Switched by -w/--overwrite.

	// Behavior flags.
	DryRun       bool
	IgnoreErrors bool // Exit 0 even when some files failed.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults for the given op.
// Used as the base before [ParseFlags] applies CLI overrides.
func DefaultConfig(op Op) Config {
	return Config{
		Op:        op,
		Keyword:   "motion",
		Ext:       ".mp4",
		Mode:      ModeCopy,
		ColorMode: ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// NormalizeExt lowercases an extension and ensures a leading dot, so "MP4",
// ".mp4" and "mp4" are all accepted on the command line.
func NormalizeExt(ext string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(ext))
	if s == "" || s == "." {
		return "", errors.New("extension must not be empty")
	}
	if !strings.HasPrefix(s, ".") {
		s = "." + s
	}
	if strings.Count(s, ".") > 1 || strings.ContainsAny(s, "/\\") {
		return "", fmt.Errorf("invalid extension %q", ext)
	}
	return s, nil
}

// Validate checks enum fields and, when not in CheckOnly mode, requires the
// positional root directory. The extension is canonicalized in place.
func (c *Config) Validate() error {
	switch c.Op {
	case OpCrop, OpWeb:
		// valid
	default:
		return fmt.Errorf("invalid op %q", c.Op)
	}

	switch c.Mode {
	case ModeCopy, ModeOverwrite:
		// valid
	default:
		return fmt.Errorf("invalid mode %q", c.Mode)
	}

	ext, err := NormalizeExt(c.Ext)
	if err != nil {
		return err
	}
	c.Ext = ext

	if c.CheckOnly {
		return nil
	}
	if c.RootDir == "" {
		return errors.New("need exactly one target directory")
	}
	return nil
}
