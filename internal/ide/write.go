package ide

import (
	"errors"

	"github.com/brudil/launchgen/internal/fsutil"
	"github.com/brudil/launchgen/internal/launch"
	"github.com/brudil/launchgen/internal/log"
)

// Result reports what happened to one launch file.
type Result struct {
	Path      string
	Replaced  bool // an entry with the same name already existed
	Recovered bool // the previous content was unusable and has been discarded
	Removed   []string // names deleted by a remove, in request order
	Content   []byte
}

// loadOrNew reads path, falling back to an empty document. A missing file is
// the ordinary first-run case; a malformed or unreadable one is logged and
// reported through recovered.
func loadOrNew(path, defaultVersion, component string) (doc *launch.Document, recovered bool) {
	logger := log.WithComponent(component)

	doc, err := launch.Load(path, defaultVersion)
	switch {
	case err == nil && doc != nil:
		return doc, false
	case err == nil:
		logger.Debug().Str("file", path).Msg("no existing launch file")
		return launch.New(defaultVersion), false
	case errors.Is(err, launch.ErrMalformed):
		logger.Warn().Err(err).Str("file", path).Msg("discarding malformed launch file")
		return launch.New(defaultVersion), true
	default:
		logger.Warn().Err(err).Str("file", path).Msg("discarding unreadable launch file")
		return launch.New(defaultVersion), true
	}
}

// upsertFile merges entry into the launch file at path and writes it back,
// unless opts.DryRun is set.
func upsertFile(path, defaultVersion, component, name string, entry any, opts Options) (*Result, error) {
	doc, recovered := loadOrNew(path, defaultVersion, component)

	replaced := false
	for _, existing := range doc.Names() {
		if existing == name {
			replaced = true
			break
		}
	}
	if err := doc.Upsert(name, entry); err != nil {
		return nil, err
	}

	out, err := doc.Encode()
	if err != nil {
		return nil, err
	}

	res := &Result{Path: path, Replaced: replaced, Recovered: recovered, Content: out}
	if opts.DryRun {
		return res, nil
	}

	logger := log.WithComponent(component)
	logger.Debug().
		Str("file", path).
		Str("name", name).
		Bool("replaced", replaced).
		Msg("writing launch configuration")
	if err := fsutil.WriteFile(path, out); err != nil {
		return nil, err
	}
	return res, nil
}

// removeFromFile deletes the named entries from an existing launch file in a
// single write. Missing or unusable files are left alone.
func removeFromFile(path, defaultVersion, component string, names []string, opts Options) (*Result, bool, error) {
	doc, err := launch.Load(path, defaultVersion)
	if err != nil {
		logger := log.WithComponent(component)
		logger.Warn().Err(err).Str("file", path).Msg("skipping launch file")
		return nil, false, nil
	}
	if doc == nil {
		return nil, false, nil
	}
	var removed []string
	for _, name := range names {
		if doc.Remove(name) {
			removed = append(removed, name)
		}
	}
	if len(removed) == 0 {
		return nil, false, nil
	}

	out, err := doc.Encode()
	if err != nil {
		return nil, false, err
	}
	res := &Result{Path: path, Removed: removed, Content: out}
	if opts.DryRun {
		return res, true, nil
	}
	if err := fsutil.WriteFile(path, out); err != nil {
		return nil, false, err
	}
	return res, true, nil
}
