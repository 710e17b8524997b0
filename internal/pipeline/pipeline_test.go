package pipeline

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/teomat/vidkit/internal/config"
	"github.com/teomat/vidkit/internal/logging"
)

// --- Job tests ---

func TestNewJob(t *testing.T) {
	cfg := config.DefaultConfig(config.OpCrop)
	job := NewJob(&cfg, "/media/a.mp4")

	if job.ID == "" {
		t.Error("job ID should not be empty")
	}
	if job.SourcePath != "/media/a.mp4" {
		t.Errorf("SourcePath = %q", job.SourcePath)
	}
	if job.DestPath != "/media/a_cropped.mp4" {
		t.Errorf("DestPath = %q, want /media/a_cropped.mp4", job.DestPath)
	}
	if job.Overwrite() {
		t.Error("copy-mode job should not report Overwrite")
	}

	other := NewJob(&cfg, "/media/a.mp4")
	if other.ID == job.ID {
		t.Error("two jobs should get distinct IDs")
	}
}

func TestNewJob_Overwrite(t *testing.T) {
	cfg := config.DefaultConfig(config.OpWeb)
	cfg.Mode = config.ModeOverwrite
	job := NewJob(&cfg, "/media/a_motion.mp4")

	if job.DestPath != job.SourcePath {
		t.Errorf("overwrite DestPath = %q, want source path", job.DestPath)
	}
	if !job.Overwrite() {
		t.Error("overwrite-mode job should report Overwrite")
	}
}

// --- RunStats tests ---

func TestRunStats_SpaceDelta(t *testing.T) {
	s := RunStats{TotalInputBytes: 1000, TotalOutputBytes: 600}
	if got := s.SpaceDelta(); got != -400 {
		t.Errorf("SpaceDelta: got %d, want -400", got)
	}

	s2 := RunStats{TotalInputBytes: 100, TotalOutputBytes: 150}
	if got := s2.SpaceDelta(); got != 50 {
		t.Errorf("SpaceDelta (grew): got %d, want 50", got)
	}
}

// --- moveFile tests ---

func TestMoveFile(t *testing.T) {
	src := filepath.Join(t.TempDir(), "src.mp4")
	dst := filepath.Join(t.TempDir(), "dst.mp4")
	if err := os.WriteFile(src, []byte("payload"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := moveFile(src, dst); err != nil {
		t.Fatalf("moveFile: %v", err)
	}
	b, err := os.ReadFile(dst)
	if err != nil || string(b) != "payload" {
		t.Errorf("dst content = %q, %v", b, err)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Error("src should be gone after move")
	}
}

func TestMoveFile_ReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.mp4")
	dst := filepath.Join(dir, "dst.mp4")
	os.WriteFile(src, []byte("new"), 0o644)
	os.WriteFile(dst, []byte("old"), 0o644)

	if err := moveFile(src, dst); err != nil {
		t.Fatalf("moveFile: %v", err)
	}
	b, _ := os.ReadFile(dst)
	if string(b) != "new" {
		t.Errorf("dst content = %q, want %q", b, "new")
	}
}

// --- Dry-run pipeline (no ffmpeg required) ---

func TestRun_DryRun(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.mp4")
	touch(t, dir, "a_motion.mp4")
	touch(t, dir, "b.txt")

	cfg := testConfig(config.OpCrop, dir)
	cfg.DryRun = true

	stats, err := runQuiet(t, &cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Total != 1 || stats.Processed != 1 || stats.Failed != 0 {
		t.Errorf("stats = %+v, want Total=1 Processed=1 Failed=0", stats)
	}
	if _, err := os.Stat(filepath.Join(dir, "a_cropped.mp4")); !os.IsNotExist(err) {
		t.Error("dry run must not create output files")
	}
}

func TestRun_EmptyScan(t *testing.T) {
	cfg := testConfig(config.OpWeb, t.TempDir())

	stats, err := runQuiet(t, &cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Total != 0 || stats.Processed != 0 || stats.Failed != 0 {
		t.Errorf("stats = %+v, want all zero", stats)
	}
}

func TestRun_MissingRoot(t *testing.T) {
	cfg := testConfig(config.OpCrop, filepath.Join(t.TempDir(), "nope"))

	_, err := runQuiet(t, &cfg)
	if err == nil {
		t.Fatal("Run should fail for a missing root directory")
	}
}

// --- Full pipeline integration (requires ffmpeg) ---

func TestRun_CropCopyScenario(t *testing.T) {
	requireFfmpeg(t)
	dir := t.TempDir()
	genVideo(t, filepath.Join(dir, "a.mp4"))
	genVideo(t, filepath.Join(dir, "a_motion.mp4"))
	touch(t, dir, "b.txt")
	before := readFile(t, filepath.Join(dir, "a.mp4"))

	cfg := testConfig(config.OpCrop, dir)
	stats, err := runQuiet(t, &cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Total != 1 || stats.Processed != 1 || stats.Failed != 0 {
		t.Fatalf("stats = %+v, want Total=1 Processed=1 Failed=0", stats)
	}

	if _, err := os.Stat(filepath.Join(dir, "a_cropped.mp4")); err != nil {
		t.Errorf("expected a_cropped.mp4: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "a_motion_cropped.mp4")); !os.IsNotExist(err) {
		t.Error("a_motion.mp4 must not be cropped (keyword excluded)")
	}
	after := readFile(t, filepath.Join(dir, "a.mp4"))
	if !bytes.Equal(before, after) {
		t.Error("copy mode must leave the original untouched")
	}
}

func TestRun_WebCopyScenario(t *testing.T) {
	requireFfmpeg(t)
	dir := t.TempDir()
	genVideo(t, filepath.Join(dir, "a.mp4"))
	genVideo(t, filepath.Join(dir, "a_motion.mp4"))

	cfg := testConfig(config.OpWeb, dir)
	stats, err := runQuiet(t, &cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Processed != 1 {
		t.Fatalf("stats = %+v, want Processed=1", stats)
	}
	if _, err := os.Stat(filepath.Join(dir, "a_motion_new.mp4")); err != nil {
		t.Errorf("expected a_motion_new.mp4: %v", err)
	}
}

func TestRun_OverwriteRoundTrip(t *testing.T) {
	requireFfmpeg(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "a.mp4")
	genVideo(t, path)
	before := readFile(t, path)

	cfg := testConfig(config.OpCrop, dir)
	cfg.Mode = config.ModeOverwrite
	stats, err := runQuiet(t, &cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Processed != 1 || stats.Failed != 0 {
		t.Fatalf("stats = %+v, want Processed=1 Failed=0", stats)
	}

	after := readFile(t, path)
	if bytes.Equal(before, after) {
		t.Error("overwrite should replace the file's bytes")
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("overwrite must not change the file count, got %d entries", len(entries))
	}
	if residue, _ := filepath.Glob(filepath.Join(os.TempDir(), "vidkit-*-a.mp4")); len(residue) != 0 {
		t.Errorf("scratch residue left behind: %v", residue)
	}
}

func TestRun_FailureIsolation(t *testing.T) {
	requireFfmpeg(t)
	dir := t.TempDir()
	genVideo(t, filepath.Join(dir, "good.mp4"))
	// Not a media file at all; ffmpeg exits non-zero.
	if err := os.WriteFile(filepath.Join(dir, "bad.mp4"), []byte("not a video"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := testConfig(config.OpCrop, dir)
	stats, err := runQuiet(t, &cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Total != 2 || stats.Processed != 1 || stats.Failed != 1 {
		t.Errorf("stats = %+v, want Total=2 Processed=1 Failed=1", stats)
	}
	if _, err := os.Stat(filepath.Join(dir, "good_cropped.mp4")); err != nil {
		t.Errorf("the healthy file must still be processed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "bad_cropped.mp4")); !os.IsNotExist(err) {
		t.Error("no partial output may remain for the failed file")
	}
}

// --- Helpers ---

func testConfig(op config.Op, dir string) config.Config {
	cfg := config.DefaultConfig(op)
	cfg.RootDir = dir
	cfg.ColorMode = config.ColorNever
	return cfg
}

func runQuiet(t *testing.T, cfg *config.Config) (RunStats, error) {
	t.Helper()
	log, err := logging.NewLogger(cfg)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	defer log.Close()
	return Run(context.Background(), cfg, log)
}

func requireFfmpeg(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		t.Skip("ffmpeg not available")
	}
}

// genVideo writes a 1-second synthetic test video.
func genVideo(t *testing.T, path string) {
	t.Helper()
	gen := exec.Command("ffmpeg",
		"-f", "lavfi", "-i", "testsrc=duration=1:size=320x240:rate=24",
		"-c:v", "libx264", "-pix_fmt", "yuv420p",
		"-y", path,
	)
	gen.Stderr = os.Stderr
	if err := gen.Run(); err != nil {
		t.Fatalf("generate %s: %v", path, err)
	}
}

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte{}, 0o644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return b
}
