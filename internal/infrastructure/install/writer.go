// Package install performs the filesystem side of an installation:
// creating target directories and writing descriptor files with their
// final permission bits.
package install

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Writer owns all filesystem mutation outside the target artifact's
// execute bit.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// EnsureDir creates path and any missing parents.
func (w *Writer) EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", path, err)
	}
	return nil
}

// WriteFile writes content to path with the given permission bits.
func (w *Writer) WriteFile(path, content string, mode os.FileMode) error {
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	// os.WriteFile applies the mode only on creation; enforce it when
	// overwriting an existing entry too.
	if err := os.Chmod(path, mode); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	return nil
}

// ExpandHome replaces a leading ~ with the current user's home
// directory. Paths without the prefix, and any home lookup failure,
// leave the path unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
