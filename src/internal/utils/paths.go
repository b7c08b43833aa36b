package utils

import (
	"os"
	"path/filepath"
)

// GetAbsolutePath returns path unchanged when it is absolute, otherwise the
// cleaned join of baseDir and path.
func GetAbsolutePath(path, baseDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Clean(filepath.Join(baseDir, path))
}

// EnsureParentDir creates the directory that will hold path, including any
// missing parents.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == string(filepath.Separator) {
		return nil
	}
	return os.MkdirAll(dir, 0755)
}
