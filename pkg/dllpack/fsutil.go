package dllpack

import (
	"os"
	"path/filepath"
)

// pathExists reports whether path exists on disk, regardless of type.
func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ensureParentDir creates the parent directory of path, recursively, if it
// does not already exist.
func ensureParentDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
