//go:build windows

package fsutil

import (
	"fmt"
	"os"
)

// WriteFile overwrites path with data. renameio has no Windows support, so
// the write is not atomic here.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, FilePerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
