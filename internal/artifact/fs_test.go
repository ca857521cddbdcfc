package artifact

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLocalFS_Glob(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "src", "a.module.scss"), "")
	writeFile(t, filepath.Join(dir, "src", "nested", "b.module.scss"), "")
	writeFile(t, filepath.Join(dir, "src", "c.scss"), "")
	writeFile(t, filepath.Join(dir, "src", "a.module.scss.d.ts"), "")

	files, err := LocalFS{}.Glob(filepath.Join(dir, "src/**/*.module.scss"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "src", "a.module.scss"),
		filepath.Join(dir, "src", "nested", "b.module.scss"),
	}, files)

	decls, err := LocalFS{}.Glob(DeclarationGlob(filepath.Join(dir, "src/**/*.module.scss")))
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "src", "a.module.scss.d.ts")}, decls)
}

func TestLocalFS_Glob_Sorted(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"z", "m", "a", "q", "b"} {
		writeFile(t, filepath.Join(dir, name, name+".module.scss"), "")
	}

	files, err := LocalFS{}.Glob(filepath.Join(dir, "**/*.module.scss"))
	require.NoError(t, err)
	require.Len(t, files, 5)
	assert.IsIncreasing(t, files)
}

func TestLocalFS_Exists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.d.ts")

	ok, err := LocalFS{}.Exists(path)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, LocalFS{}.WriteFile(path, []byte("x")))
	ok, err = LocalFS{}.Exists(path)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPaths(t *testing.T) {
	assert.Equal(t, "src/a.module.scss.d.ts", DeclarationPath("src/a.module.scss"))

	source, ok := SourcePath("src/a.module.scss.d.ts")
	assert.True(t, ok)
	assert.Equal(t, "src/a.module.scss", source)

	_, ok = SourcePath("src/a.module.scss")
	assert.False(t, ok)

	assert.Equal(t, "src/**/*.module.scss.d.ts", DeclarationGlob("src/**/*.module.scss"))
}

func TestResolvePattern(t *testing.T) {
	assert.Equal(t, "src/**/*.scss", ResolvePattern("", "src/**/*.scss"))
	assert.Equal(t, filepath.Join("web", "src/**/*.scss"), ResolvePattern("web", "src/**/*.scss"))
	assert.Equal(t, "/abs/**/*.scss", ResolvePattern("web", "/abs/**/*.scss"))
}
