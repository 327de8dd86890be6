package install

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEnsureDir_CreatesNestedDirectories tests directory creation
func TestEnsureDir_CreatesNestedDirectories(t *testing.T) {
	w := NewWriter()
	path := filepath.Join(t.TempDir(), "a", "b", "c")

	require.NoError(t, w.EnsureDir(path))
	assert.DirExists(t, path)

	// Idempotent on an existing directory.
	assert.NoError(t, w.EnsureDir(path))
}

// TestWriteFile_AppliesModeOnOverwrite tests permission enforcement
func TestWriteFile_AppliesModeOnOverwrite(t *testing.T) {
	w := NewWriter()
	path := filepath.Join(t.TempDir(), "entry.desktop")

	require.NoError(t, w.WriteFile(path, "first", 0o644))
	require.NoError(t, w.WriteFile(path, "second", 0o755))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

// TestExpandHome_ReplacesTildePrefix tests home expansion
func TestExpandHome_ReplacesTildePrefix(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, home, ExpandHome("~"))
	assert.Equal(t, filepath.Join(home, "Desktop"), ExpandHome("~/Desktop"))
	assert.Equal(t, "/absolute/path", ExpandHome("/absolute/path"))
	assert.Equal(t, "~user/other", ExpandHome("~user/other"), "only the bare ~ prefix expands")
}
