// Package scan discovers candidate video files for a batch run. It only
// observes the filesystem; selection is by extension and a keyword test
// against the base filename, never the full path.
package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/teomat/vidkit/internal/config"
)

// ErrNotDirectory is returned by Discover when the root path does not exist
// or is not a directory.
var ErrNotDirectory = errors.New("directory not found")

// Filter holds the per-run selection rules applied to each filename.
type Filter struct {
	Ext            string // Lowercase extension with leading dot, e.g. ".mp4".
	Keyword        string // Substring matched case-insensitively against the filename.
	RequireKeyword bool   // true: keyword must be present; false: must be absent.
	SkipSuffix     string // When non-empty, filenames ending in this are excluded.
}

// FilterFor derives the Filter for a configured run. The self-exclusion
// suffix is only set in copy mode: overwrite regenerates the original name,
// so previously produced derivatives cannot be confused with sources.
func FilterFor(cfg *config.Config) Filter {
	f := Filter{
		Ext:            strings.ToLower(cfg.Ext),
		Keyword:        strings.ToLower(cfg.Keyword),
		RequireKeyword: cfg.Op.RequireKeyword(),
	}
	if cfg.Mode == config.ModeCopy {
		f.SkipSuffix = strings.ToLower(cfg.Op.Suffix() + cfg.Ext)
	}
	return f
}

// Match reports whether a base filename passes the filter.
func (f Filter) Match(name string) bool {
	lower := strings.ToLower(name)
	if filepath.Ext(lower) != f.Ext {
		return false
	}
	if strings.Contains(lower, f.Keyword) != f.RequireKeyword {
		return false
	}
	if f.SkipSuffix != "" && strings.HasSuffix(lower, f.SkipSuffix) {
		return false
	}
	return true
}

// Discover walks root, collects absolute paths of files matching the filter,
// and returns them sorted lexicographically for deterministic processing
// order. Root must be an existing directory.
func Discover(root string, f Filter) ([]string, error) {
	fi, err := os.Stat(root)
	if err != nil || !fi.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !f.Match(d.Name()) {
			return nil
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		files = append(files, abs)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
