package lists

import (
	"io"
	"os"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/maksimkurb/hosts-concat/src/internal/log"
	"github.com/maksimkurb/hosts-concat/src/internal/utils"
)

// Result is the outcome of reading one file.
type Result struct {
	Path string
	Text string
	Err  error
}

// ReadFile returns the text of the file at path. A UTF-8 byte order mark is
// dropped and BOM-marked UTF-16 is converted to UTF-8.
func ReadFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer utils.CloseOrWarn(file)

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	content, err := io.ReadAll(transform.NewReader(file, decoder))
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// ReadAll reads every path, at most limit at a time (limit <= 0 means no
// limit), and returns once all reads have finished. results[i] belongs to
// paths[i]; a failed read leaves Text empty and sets Err.
func ReadAll(paths []string, limit int) []Result {
	results := make([]Result, len(paths))

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, path := range paths {
		g.Go(func() error {
			text, err := ReadFile(path)
			results[i] = Result{Path: path, Text: text, Err: err}
			if err == nil {
				log.Debugf("Read %d bytes from %s", len(text), path)
			}
			// Failures stay in the result so that every other read still completes.
			return nil
		})
	}

	_ = g.Wait()
	return results
}
