package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"b.hcl", "a.hcl", "notes.txt", "nested/c.hcl"} {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, nil, 0o644))
	}

	files, err := FindFilesByExtension(root, ".hcl", false)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "a.hcl"), filepath.Join(root, "b.hcl")}, files)

	files, err = FindFilesByExtension(root, ".hcl", true)
	require.NoError(t, err)
	assert.Len(t, files, 3)
	assert.Contains(t, files, filepath.Join(root, "nested", "c.hcl"))

	_, err = FindFilesByExtension(filepath.Join(root, "missing"), ".hcl", false)
	assert.Error(t, err)

	assert.Panics(t, func() { _, _ = FindFilesByExtension(root, "", false) })
}

func TestFileExists(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "answers.conf")
	require.NoError(t, os.WriteFile(path, []byte("[general]\n"), 0o644))

	assert.True(t, FileExists(path))
	assert.False(t, FileExists(root), "directories are not files")
	assert.False(t, FileExists(filepath.Join(root, "missing")))
}
