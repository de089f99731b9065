package ide

import (
	"errors"

	"github.com/brudil/launchgen/internal/launch"
)

// Regenerate upserts the target into every detected IDE launch file.
// Only writes files whose IDE directory already exists.
func Regenerate(host Host, t Target, opts Options) ([]*Result, error) {
	var results []*Result
	var errs []error
	if !opts.DisableVSCode {
		res, err := GenerateVSCode(host, t, opts)
		if err != nil {
			errs = append(errs, err)
		} else if res != nil {
			results = append(results, res)
		}
	}
	if !opts.DisableVisualStudio {
		res, err := GenerateVisualStudio(host, t, opts)
		if err != nil {
			errs = append(errs, err)
		} else if res != nil {
			results = append(results, res)
		}
	}
	return results, errors.Join(errs...)
}

// Remove deletes the named entries from every detected IDE launch file, one
// write per file. Results only include files that held at least one entry.
func Remove(host Host, names []string, opts Options) ([]*Result, error) {
	var results []*Result
	var errs []error
	collect := func(res *Result, found bool, err error) {
		if err != nil {
			errs = append(errs, err)
		} else if found {
			results = append(results, res)
		}
	}
	if !opts.DisableVSCode {
		collect(RemoveVSCode(host, names, opts))
	}
	if !opts.DisableVisualStudio {
		collect(RemoveVisualStudio(host, names, opts))
	}
	return results, errors.Join(errs...)
}

// File is a detected launch file and its parsed document.
type File struct {
	Path string
	Doc  *launch.Document // nil if the file doesn't exist yet
	Err  error
}

// Detect returns the launch files this host would write to.
func Detect(host Host, opts Options) []File {
	var files []File
	if !opts.DisableVSCode && VSCodeEnabled(host) {
		doc, err := LoadVSCode(host)
		files = append(files, File{Path: VSCodePath(host), Doc: doc, Err: err})
	}
	if !opts.DisableVisualStudio && VisualStudioEnabled(host) {
		doc, err := LoadVisualStudio(host)
		files = append(files, File{Path: VisualStudioPath(host), Doc: doc, Err: err})
	}
	return files
}
