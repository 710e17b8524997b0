package pipeline

import (
	"github.com/google/uuid"

	"github.com/teomat/vidkit/internal/config"
	"github.com/teomat/vidkit/internal/naming"
)

// Job is one file slated for processing: a source path, its computed
// destination, and the placement mode. Jobs are created during the scan
// phase, consumed exactly once, and never persisted across runs.
type Job struct {
	ID         string
	SourcePath string
	DestPath   string
	Mode       config.Mode
}

// NewJob computes the destination for source under cfg and assigns a fresh ID.
func NewJob(cfg *config.Config, source string) Job {
	return Job{
		ID:         uuid.NewString(),
		SourcePath: source,
		DestPath:   naming.OutputPath(source, cfg.Op.Suffix(), cfg.Mode == config.ModeOverwrite),
		Mode:       cfg.Mode,
	}
}

// Overwrite reports whether the job replaces its source in place.
func (j Job) Overwrite() bool { return j.Mode == config.ModeOverwrite }
