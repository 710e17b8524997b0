package naming

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name      string
		source    string
		suffix    string
		overwrite bool
		want      string
	}{
		{"copy cropped", "/media/a.mp4", "_cropped", false, "/media/a_cropped.mp4"},
		{"copy new", "/media/clips/a_motion.mp4", "_new", false, "/media/clips/a_motion_new.mp4"},
		{"overwrite keeps source", "/media/a.mp4", "_cropped", true, "/media/a.mp4"},
		{"stem with dots", "/media/a.b.mp4", "_new", false, "/media/a.b_new.mp4"},
		{"no extension", "/media/raw", "_new", false, "/media/raw_new"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OutputPath(tt.source, tt.suffix, tt.overwrite)
			if got != tt.want {
				t.Errorf("OutputPath(%q, %q, %v) = %q, want %q",
					tt.source, tt.suffix, tt.overwrite, got, tt.want)
			}
		})
	}
}

func TestScratchPath_Overwrite(t *testing.T) {
	p := ScratchPath("/media/a.mp4", true)
	if filepath.Dir(p) != filepath.Clean(os.TempDir()) {
		t.Errorf("overwrite scratch dir = %q, want system temp dir", filepath.Dir(p))
	}
	if filepath.Ext(p) != ".mp4" {
		t.Errorf("scratch path %q should keep the .mp4 extension", p)
	}
}

func TestScratchPath_Copy(t *testing.T) {
	p := ScratchPath("/media/a_cropped.mp4", false)
	if filepath.Dir(p) != "/media" {
		t.Errorf("copy scratch dir = %q, want destination dir", filepath.Dir(p))
	}
	// Must still carry the output suffix so copy-mode scans exclude it.
	if !strings.HasSuffix(p, "_cropped.mp4") {
		t.Errorf("copy scratch %q should end in the output suffix", p)
	}
}

func TestScratchPath_Unique(t *testing.T) {
	a := ScratchPath("/media/a.mp4", true)
	b := ScratchPath("/media/a.mp4", true)
	if a == b {
		t.Errorf("two scratch paths for the same dest should differ, both %q", a)
	}
}
