package artifact

import (
	"io/fs"
	"sort"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
)

// memFS is an in-memory FS; paths listed in failRemove refuse deletion.
type memFS struct {
	mu         sync.Mutex
	files      map[string]string
	failRemove map[string]error
	writes     []string
	removes    []string
}

func newMemFS(files ...string) *memFS {
	m := &memFS{files: make(map[string]string), failRemove: make(map[string]error)}
	for _, f := range files {
		m.files[f] = ""
	}
	return m
}

func (m *memFS) Glob(pattern string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
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
	m.files[path] = string(data)
	m.writes = append(m.writes, path)
	return nil
}

func (m *memFS) Remove(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removes = append(m.removes, path)
	if err, ok := m.failRemove[path]; ok {
		return err
	}
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
