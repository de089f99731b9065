package cli

import (
	"encoding/json"
	"os"

	"github.com/brudil/launchgen/internal/ide"
)

// --- JSON output types ---

type listJSON struct {
	Dir   string     `json:"dir"`
	Files []fileJSON `json:"files"`
}

type fileJSON struct {
	Path           string   `json:"path"`
	Exists         bool     `json:"exists"`
	Version        string   `json:"version,omitempty"`
	Error          string   `json:"error,omitempty"`
	Configurations []string `json:"configurations"`
}

func runListJSON(dir string, files []ide.File) error {
	result := listJSON{
		Dir:   dir,
		Files: make([]fileJSON, len(files)),
	}

	for i, f := range files {
		fj := fileJSON{Path: f.Path, Configurations: []string{}}
		switch {
		case f.Err != nil:
			fj.Exists = true
			fj.Error = f.Err.Error()
		case f.Doc != nil:
			fj.Exists = true
			fj.Version = f.Doc.Version()
			fj.Configurations = f.Doc.Names()
		}
		result.Files[i] = fj
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
