package lists

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/maksimkurb/hosts-concat/src/internal/hashing"
	"github.com/maksimkurb/hosts-concat/src/internal/log"
	"github.com/maksimkurb/hosts-concat/src/internal/utils"
)

// SaveOutput writes content to path, creating the parent directory when
// missing. With skipUnchanged set, an existing file with identical content is
// left alone. written reports whether the file was (re)written.
func SaveOutput(path, content string, skipUnchanged bool) (written bool, err error) {
	if err := utils.EnsureParentDir(path); err != nil {
		return false, fmt.Errorf("failed to create output directory: %w", err)
	}

	if skipUnchanged {
		if changed, err := IsFileChanged(hashing.StringChecksum(content), path); err != nil {
			log.Debugf("Failed to compare %s with new content, rewriting: %v", path, err)
		} else if !changed {
			log.Debugf("Output %s is not changed, skipping write to disk", path)
			return false, nil
		}
	}

	if err := writeFileAtomic(path, []byte(content), 0644); err != nil {
		return false, err
	}
	return true, nil
}

// writeFileAtomic writes data to a temporary file next to path and renames it
// over path, so readers see either the old or the new file, never a partial one.
func writeFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		utils.CloseOrWarn(tmp)
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmpPath, perm); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}
