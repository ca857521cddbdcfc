package runner

import (
	"context"
	"errors"
	"io/fs"
	"sort"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/yacobolo/scsstypes/internal/artifact"
	"github.com/yacobolo/scsstypes/internal/modules"
)

type memFS struct {
	mu        sync.Mutex
	files     map[string]string
	failWrite map[string]bool
	failGlob  map[string]bool
	writes    []string
}

func newMemFS(files ...string) *memFS {
	m := &memFS{files: make(map[string]string), failWrite: make(map[string]bool), failGlob: make(map[string]bool)}
	for _, f := range files {
		m.files[f] = ""
	}
	return m
}

func (m *memFS) Glob(pattern string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGlob[pattern] {
		return nil, errors.New("permission denied")
	}
	var out []string
	for path := range m.files {
		if ok, _ := doublestar.Match(pattern, path); ok {
			out = append(out, path)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (m *memFS) ReadFile(path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return []byte(data), nil
}

func (m *memFS) WriteFile(path string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrite[path] {
		return errors.New("read-only file system")
	}
	m.files[path] = string(data)
	m.writes = append(m.writes, path)
	return nil
}

func (m *memFS) Remove(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.files[path]; !ok {
		return fs.ErrNotExist
	}
	delete(m.files, path)
	return nil
}

func (m *memFS) Exists(path string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.files[path]
	return ok, nil
}

func (m *memFS) has(path string) bool {
	ok, _ := m.Exists(path)
	return ok
}

func (m *memFS) content(path string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.files[path]
}

// fakeExtractor returns one class name per file unless told otherwise.
type fakeExtractor struct {
	mu      sync.Mutex
	names   map[string][]string
	failing map[string]bool
	calls   []string
}

func newFakeExtractor() *fakeExtractor {
	return &fakeExtractor{names: make(map[string][]string), failing: make(map[string]bool)}
}

func (f *fakeExtractor) Extract(_ context.Context, path string) modules.Extraction {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, path)

	if f.failing[path] {
		return modules.Extraction{Source: path, Err: errors.New("compile error")}
	}
	names, ok := f.names[path]
	if !ok {
		names = []string{"root"}
	}
	locals := modules.NewLocals()
	for _, n := range names {
		locals.Add(n, n)
	}
	return modules.Extraction{Source: path, Locals: locals}
}

func (f *fakeExtractor) called() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := append([]string(nil), f.calls...)
	sort.Strings(out)
	return out
}

type recordingReporter struct {
	mu        sync.Mutex
	starts    int
	successes int
	failures  []error
	extract   []string
	reaped    []string
}

func (r *recordingReporter) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.starts++
}

func (r *recordingReporter) Success(time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.successes++
}

func (r *recordingReporter) Failure(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures = append(r.failures, err)
}

func (r *recordingReporter) ExtractionFailed(path string, _ error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.extract = append(r.extract, path)
}

func (r *recordingReporter) Reaped(result artifact.ReapResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reaped = append(r.reaped, result.Deleted...)
}
