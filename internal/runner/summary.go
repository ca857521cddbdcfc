package runner

import (
	"sort"
	"time"

	"github.com/yacobolo/scsstypes/internal/artifact"
)

// Summary counts what a run did.
type Summary struct {
	Files     int           `json:"files"`
	Written   []string      `json:"written"`
	Deleted   []string      `json:"deleted"`
	Skipped   []string      `json:"skipped"`
	Failed    []string      `json:"failed"`
	Unchanged int           `json:"unchanged"`
	Orphans   []string      `json:"orphans"`
	Duration  time.Duration `json:"duration"`
}

func (s *Summary) record(file string, action artifact.Action) {
	switch action {
	case artifact.ActionWritten:
		s.Written = append(s.Written, artifact.DeclarationPath(file))
	case artifact.ActionDeleted:
		s.Deleted = append(s.Deleted, artifact.DeclarationPath(file))
	case artifact.ActionSkipped:
		s.Skipped = append(s.Skipped, file)
	default:
		s.Unchanged++
	}
}

func (s *Summary) sort() {
	sort.Strings(s.Written)
	sort.Strings(s.Deleted)
	sort.Strings(s.Skipped)
	sort.Strings(s.Failed)
}

// Changed reports whether the run touched the filesystem.
func (s Summary) Changed() bool {
	return len(s.Written)+len(s.Deleted)+len(s.Orphans) > 0
}
