package artifact

import (
	"context"
	"io/fs"

	"github.com/yacobolo/scsstypes/internal/dts"
	"github.com/yacobolo/scsstypes/internal/errs"
	"github.com/yacobolo/scsstypes/internal/modules"
)

// Action is what Reconcile did to a declaration.
type Action int

const (
	// ActionNone means no declaration exists and none is needed.
	ActionNone Action = iota
	// ActionSkipped means extraction failed and the previous declaration was kept.
	ActionSkipped
	// ActionWritten means the declaration was (over)written.
	ActionWritten
	// ActionDeleted means a stale declaration was removed.
	ActionDeleted
)

func (a Action) String() string {
	switch a {
	case ActionSkipped:
		return "skipped"
	case ActionWritten:
		return "written"
	case ActionDeleted:
		return "deleted"
	default:
		return "none"
	}
}

// Synchronizer reconciles one source's declaration on disk.
type Synchronizer struct {
	fs   FS
	opts dts.Options
}

// NewSynchronizer creates a synchronizer rendering declarations with opts.
func NewSynchronizer(fsys FS, opts dts.Options) *Synchronizer {
	return &Synchronizer{fs: fsys, opts: opts}
}

// Reconcile applies an extraction result to the declaration of its source:
//
//	failed extraction  → keep whatever is on disk
//	no class names     → remove the declaration if present
//	class names        → overwrite the declaration
func (s *Synchronizer) Reconcile(ctx context.Context, result modules.Extraction) (Action, error) {
	if result.Failed() {
		return ActionSkipped, nil
	}
	if err := ctx.Err(); err != nil {
		return ActionNone, err
	}

	target := DeclarationPath(result.Source)
	names := result.Names()

	if len(names) == 0 {
		err := s.fs.Remove(target)
		switch {
		case err == nil:
			return ActionDeleted, nil
		case errs.Is(err, fs.ErrNotExist):
			return ActionNone, nil
		default:
			return ActionNone, errs.Wrapf(err, "remove %s", target)
		}
	}

	text, err := dts.Synthesize(names, s.opts)
	if err != nil {
		return ActionNone, errs.Wrapf(err, "synthesize %s", target)
	}
	if err := s.fs.WriteFile(target, []byte(text)); err != nil {
		return ActionNone, errs.Wrapf(err, "write %s", target)
	}
	return ActionWritten, nil
}
