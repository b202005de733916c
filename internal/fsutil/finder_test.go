package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("# test\n"), 0o644))
}

func TestFindFilesByExtension(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.hcl"))
	writeFile(t, filepath.Join(root, "nested", "b.hcl"))
	writeFile(t, filepath.Join(root, "nested", "c.txt"))

	files, err := FindFilesByExtension(root, ".hcl")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "a.hcl"),
		filepath.Join(root, "nested", "b.hcl"),
	}, files)
}

func TestFindFilesByExtension_PanicsOnEmptyExtension(t *testing.T) {
	assert.Panics(t, func() { _, _ = FindFilesByExtension(t.TempDir(), "") })
}

func TestResolvePaths(t *testing.T) {
	root := t.TempDir()
	one := filepath.Join(root, "one.hcl")
	two := filepath.Join(root, "dir", "two.hcl")
	writeFile(t, one)
	writeFile(t, two)
	writeFile(t, filepath.Join(root, "dir", "notes.md"))

	t.Run("files and directories are merged without duplicates", func(t *testing.T) {
		files, err := ResolvePaths([]string{root, one, filepath.Join(root, "dir")}, ".hcl")
		require.NoError(t, err)
		assert.Equal(t, []string{two, one}, files)
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := ResolvePaths([]string{filepath.Join(root, "nope.hcl")}, ".hcl")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "path not found")
	})

	t.Run("wrong extension", func(t *testing.T) {
		_, err := ResolvePaths([]string{filepath.Join(root, "dir", "notes.md")}, ".hcl")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a .hcl file")
	})
}
