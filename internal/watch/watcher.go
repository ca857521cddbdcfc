// Package watch delivers debounced style-file changes under a directory tree.
package watch

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"
	ignore "github.com/sabhiram/go-gitignore"

	"github.com/yacobolo/scsstypes/internal/errs"
)

// Handler receives one changed path. Calls are serialized.
type Handler func(ctx context.Context, path string)

// Options configures a Watcher.
type Options struct {
	Root       string        // directory watched recursively
	Debounce   time.Duration // quiet period before changes are delivered
	Extensions []string      // file extensions to deliver (".scss", ".sass", ".css")
	Ignore     []string      // glob patterns relative to Root ("**/vendor/**")
	Logger     *slog.Logger
}

// Watcher watches a directory tree for style file changes.
type Watcher struct {
	watcher    *fsnotify.Watcher
	root       string
	debounce   time.Duration
	extensions map[string]bool
	ignores    []glob.Glob
	gitignore  *ignore.GitIgnore
	logger     *slog.Logger

	pending   map[string]bool // accumulated changes
	pendingMu sync.Mutex
	timer     *time.Timer // current debounce timer
	timerMu   sync.Mutex
	closeOnce sync.Once
}

// skipDirs are never descended into
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
}

// New creates a watcher and registers every directory under opts.Root.
func New(opts Options) (*Watcher, error) {
	if opts.Root == "" {
		opts.Root = "."
	}
	if opts.Debounce <= 0 {
		opts.Debounce = 100 * time.Millisecond
	}
	if len(opts.Extensions) == 0 {
		opts.Extensions = []string{".scss", ".sass", ".css"}
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	ignores := make([]glob.Glob, 0, len(opts.Ignore))
	for _, pattern := range opts.Ignore {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, errs.Wrapf(err, "ignore pattern %q", pattern)
		}
		ignores = append(ignores, g)
	}

	extensions := make(map[string]bool, len(opts.Extensions))
	for _, ext := range opts.Extensions {
		extensions[ext] = true
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errs.Wrap(err, "create file watcher")
	}

	w := &Watcher{
		watcher:    fsw,
		root:       opts.Root,
		debounce:   opts.Debounce,
		extensions: extensions,
		ignores:    ignores,
		gitignore:  loadGitIgnore(opts.Root),
		logger:     opts.Logger,
		pending:    make(map[string]bool),
	}

	if err := w.addRecursive(opts.Root); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return w, nil
}

// loadGitIgnore compiles <root>/.gitignore; a missing file means no rules
func loadGitIgnore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}

// Run delivers debounced changes to handle until ctx is done.
func (w *Watcher) Run(ctx context.Context, handle Handler) error {
	fire := make(chan struct{}, 1)
	defer w.stopTimer()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}

			// Handle new directories - add them to watcher
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addRecursive(event.Name); err != nil {
						w.logger.Warn("failed to watch new directory", "dir", event.Name, "error", err)
					}
					continue
				}
			}

			if !w.shouldProcess(event) {
				continue
			}

			w.pendingMu.Lock()
			w.pending[event.Name] = true
			w.pendingMu.Unlock()

			w.resetTimer(fire)

		case <-fire:
			for _, path := range w.drain() {
				if ctx.Err() != nil {
					return nil
				}
				w.logger.Debug("style file changed", "file", path)
				handle(ctx, path)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("file watcher error", "error", err)
		}
	}
}

// Close releases the underlying watcher.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		err = w.watcher.Close()
	})
	return err
}

// drain returns and clears the accumulated paths, sorted
func (w *Watcher) drain() []string {
	w.pendingMu.Lock()
	defer w.pendingMu.Unlock()

	paths := make([]string, 0, len(w.pending))
	for path := range w.pending {
		paths = append(paths, path)
	}
	w.pending = make(map[string]bool)

	sort.Strings(paths)
	return paths
}

func (w *Watcher) resetTimer(fire chan struct{}) {
	w.timerMu.Lock()
	defer w.timerMu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case fire <- struct{}{}:
		default:
		}
	})
}

func (w *Watcher) stopTimer() {
	w.timerMu.Lock()
	defer w.timerMu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}

// shouldProcess filters events by operation, extension and ignore rules.
func (w *Watcher) shouldProcess(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	return w.matchesFile(event.Name)
}

// matchesFile reports whether path is a style source that is not ignored
func (w *Watcher) matchesFile(path string) bool {
	// Our own output
	if strings.HasSuffix(path, ".d.ts") {
		return false
	}
	if !w.extensions[filepath.Ext(path)] {
		return false
	}
	return !w.ignored(path, false)
}

func (w *Watcher) ignored(path string, dir bool) bool {
	rel, err := filepath.Rel(w.root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		rel = path
	}
	rel = filepath.ToSlash(rel)

	if w.gitignore != nil && rel != "." {
		if w.gitignore.MatchesPath(rel) || (dir && w.gitignore.MatchesPath(rel+"/")) {
			return true
		}
	}
	for _, g := range w.ignores {
		if g.Match(rel) {
			return true
		}
	}
	return false
}

// addRecursive adds every directory of the tree to the watcher.
func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// If it's the root path, fail immediately
			if path == root {
				return errs.Wrapf(err, "watch %s", root)
			}
			w.logger.Warn("error accessing path", "path", path, "error", err)
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && (skipDirs[d.Name()] || w.ignored(path, true)) {
			return filepath.SkipDir
		}

		if err := w.watcher.Add(path); err != nil {
			w.logger.Warn("failed to watch directory", "dir", path, "error", err)
		}
		return nil
	})
}
