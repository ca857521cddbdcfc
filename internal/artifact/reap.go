package artifact

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/yacobolo/scsstypes/internal/errs"
)

// ReapResult lists what a reap removed and what it could not.
type ReapResult struct {
	Deleted []string
	Failed  map[string]error
}

// Err joins the per-file failures, or returns nil.
func (r ReapResult) Err() error {
	if len(r.Failed) == 0 {
		return nil
	}
	paths := make([]string, 0, len(r.Failed))
	for p := range r.Failed {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	joined := make([]error, 0, len(paths))
	for _, p := range paths {
		joined = append(joined, r.Failed[p])
	}
	return errs.Join(joined...)
}

// Orphans returns the declarations matching pattern+".d.ts" whose source is not in current.
func Orphans(fsys FS, current []string, pattern string) ([]string, error) {
	declarations, err := fsys.Glob(DeclarationGlob(pattern))
	if err != nil {
		return nil, err
	}

	tracked := make(map[string]struct{}, len(current))
	for _, source := range current {
		tracked[filepath.Clean(source)] = struct{}{}
	}

	var orphans []string
	for _, declaration := range declarations {
		source, ok := SourcePath(declaration)
		if !ok {
			continue
		}
		if _, live := tracked[filepath.Clean(source)]; !live {
			orphans = append(orphans, declaration)
		}
	}
	sort.Strings(orphans)
	return orphans, nil
}

// Reap deletes orphaned declarations concurrently. One failed deletion never
// stops the others; limit bounds parallel deletions when positive.
func Reap(ctx context.Context, fsys FS, current []string, pattern string, limit int) (ReapResult, error) {
	orphans, err := Orphans(fsys, current, pattern)
	if err != nil {
		return ReapResult{}, err
	}

	var (
		mu     sync.Mutex
		result = ReapResult{Failed: make(map[string]error)}
		g      errgroup.Group
	)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for _, orphan := range orphans {
		orphan := orphan
		g.Go(func() error {
			err := ctx.Err()
			if err == nil {
				err = fsys.Remove(orphan)
			}

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				result.Deleted = append(result.Deleted, orphan)
			case errs.Is(err, fs.ErrNotExist):
				// Already gone
			default:
				result.Failed[orphan] = errs.Wrapf(err, "remove %s", orphan)
			}
			return nil
		})
	}
	_ = g.Wait()

	sort.Strings(result.Deleted)
	return result, nil
}
