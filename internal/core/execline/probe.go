package execline

import (
	"fmt"
	"os"
)

// IsExecutable reports whether path is a regular file with any execute
// bit set. Any stat failure reads as "not executable".
func IsExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Mode()&0o111 != 0
}

// MakeExecutable adds the owner, group, and other execute bits to the
// path's current permissions. Unlike the read-side probes, the error is
// returned: failing to set the bit is an actionable condition the caller
// may want to log, even if it then proceeds with a fallback.
func MakeExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.Chmod(path, info.Mode().Perm()|0o111); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	return nil
}
