package utils

import (
	"io"

	"github.com/maksimkurb/hosts-concat/src/internal/log"
)

// CloseOrWarn closes c and logs a warning if that fails. Meant for deferred
// closes of files that were only read.
func CloseOrWarn(c io.Closer) {
	if err := c.Close(); err != nil {
		log.Warnf("Failed to close file: %v", err)
	}
}
