package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWatcher(t *testing.T, root string, ignore ...string) *Watcher {
	t.Helper()
	w, err := New(Options{Root: root, Debounce: 20 * time.Millisecond, Ignore: ignore})
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	return w
}

func TestShouldProcess(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".gitignore"), []byte("dist/\n*.tmp.scss\n"), 0o644))

	w := newTestWatcher(t, root, "**/vendor/**")

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write scss", fsnotify.Event{Name: filepath.Join(root, "src/a.module.scss"), Op: fsnotify.Write}, true},
		{"remove scss", fsnotify.Event{Name: filepath.Join(root, "src/a.module.scss"), Op: fsnotify.Remove}, true},
		{"create css", fsnotify.Event{Name: filepath.Join(root, "src/b.module.css"), Op: fsnotify.Create}, true},
		{"chmod ignored", fsnotify.Event{Name: filepath.Join(root, "src/a.module.scss"), Op: fsnotify.Chmod}, false},
		{"declaration ignored", fsnotify.Event{Name: filepath.Join(root, "src/a.module.scss.d.ts"), Op: fsnotify.Write}, false},
		{"other extension", fsnotify.Event{Name: filepath.Join(root, "src/a.ts"), Op: fsnotify.Write}, false},
		{"gitignored file", fsnotify.Event{Name: filepath.Join(root, "src/x.tmp.scss"), Op: fsnotify.Write}, false},
		{"glob ignored", fsnotify.Event{Name: filepath.Join(root, "src/vendor/lib.scss"), Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.shouldProcess(tt.event))
		})
	}
}

func TestNew_InvalidIgnorePattern(t *testing.T) {
	_, err := New(Options{Root: t.TempDir(), Ignore: []string{"[unclosed"}})
	assert.Error(t, err)
}

func TestNew_MissingRoot(t *testing.T) {
	_, err := New(Options{Root: filepath.Join(t.TempDir(), "missing")})
	assert.Error(t, err)
}

func TestRun_DeliversDebouncedChanges(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src")
	require.NoError(t, os.MkdirAll(src, 0o755))

	w := newTestWatcher(t, root)

	var (
		mu   sync.Mutex
		seen []string
	)
	got := make(chan struct{}, 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(_ context.Context, path string) {
			mu.Lock()
			seen = append(seen, path)
			mu.Unlock()
			select {
			case got <- struct{}{}:
			default:
			}
		})
	}()

	target := filepath.Join(src, "a.module.scss")
	require.NoError(t, os.WriteFile(target, []byte(".a{}"), 0o644))
	require.NoError(t, os.WriteFile(target, []byte(".a{color:red}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "a.module.scss.d.ts"), []byte("x"), 0o644))

	select {
	case <-got:
	case <-time.After(5 * time.Second):
		t.Fatal("no change delivered")
	}

	// Let any straggling timers settle
	time.Sleep(100 * time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, seen)
	for _, path := range seen {
		assert.Equal(t, target, path)
	}
}

func TestAddRecursive_SkipsIgnoredDirs(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "node_modules", "pkg"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src", "components"), 0o755))

	w := newTestWatcher(t, root)

	watched := w.watcher.WatchList()
	assert.Contains(t, watched, filepath.Join(root, "src", "components"))
	assert.NotContains(t, watched, filepath.Join(root, "node_modules"))
	assert.NotContains(t, watched, filepath.Join(root, "node_modules", "pkg"))
}
