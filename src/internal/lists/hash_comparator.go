package lists

import (
	"errors"
	"io"
	"os"

	"github.com/maksimkurb/hosts-concat/src/internal/hashing"
	"github.com/maksimkurb/hosts-concat/src/internal/utils"
)

// IsFileChanged reports whether the file at filePath differs from the content
// fingerprinted by checksumProvider. A missing file counts as changed.
func IsFileChanged(checksumProvider hashing.ChecksumProvider, filePath string) (bool, error) {
	expected, err := checksumProvider.GetChecksum()
	if err != nil {
		return false, err
	}

	file, err := os.Open(filePath)
	if errors.Is(err, os.ErrNotExist) {
		return true, nil
	} else if err != nil {
		return false, err
	}
	defer utils.CloseOrWarn(file)

	proxy := hashing.NewMD5ReaderProxy(file)
	if _, err := io.Copy(io.Discard, proxy); err != nil {
		return false, err
	}

	actual, err := proxy.GetChecksum()
	if err != nil {
		return false, err
	}
	return actual != expected, nil
}
