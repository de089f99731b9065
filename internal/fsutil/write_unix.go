//go:build !windows

package fsutil

import (
	"fmt"

	"github.com/google/renameio/v2"
)

// WriteFile replaces path with data atomically: readers see either the old or
// the new content, never a truncated file. Concurrent writers still race and
// the last rename wins.
func WriteFile(path string, data []byte) error {
	if err := renameio.WriteFile(path, data, FilePerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
