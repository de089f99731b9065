// Package fsutil writes generated files in place of existing ones.
package fsutil

import "os"

// FilePerm is the mode used for files created by WriteFile.
const FilePerm os.FileMode = 0644
