package ide

import (
	"path/filepath"

	"github.com/brudil/launchgen/internal/launch"
)

const (
	VSCodeDir     = ".vscode"
	VSCodeFile    = "launch.json"
	VSCodeVersion = "0.2.0"
)

type vscodeEnvVar struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type vscodeLogging struct {
	ModuleLoad bool `json:"moduleLoad"`
}

// vscodeEntry is a cppdbg/cppvsdbg launch configuration. Field order is the
// order written to launch.json.
type vscodeEntry struct {
	Name        string         `json:"name"`
	Type        string         `json:"type"`
	Request     string         `json:"request"`
	Program     string         `json:"program"`
	Args        []string       `json:"args"`
	Cwd         string         `json:"cwd"`
	Environment []vscodeEnvVar `json:"environment"`
	Console     string         `json:"console"`
	Logging     *vscodeLogging `json:"logging,omitempty"`
}

// VSCodePath returns the launch.json location under the host directory.
func VSCodePath(host Host) string {
	return filepath.Join(host.Dir, VSCodeDir, VSCodeFile)
}

// VSCodeEnabled reports whether .vscode/ exists under the host directory.
func VSCodeEnabled(host Host) bool {
	return isDir(filepath.Join(host.Dir, VSCodeDir))
}

func newVSCodeEntry(host Host, t Target, opts Options) vscodeEntry {
	e := vscodeEntry{
		Name:    t.Name,
		Type:    "cppdbg",
		Request: "launch",
		Program: t.Program(),
		Args:    args(t.Args),
		Cwd:     t.WorkingDir,
		Environment: []vscodeEnvVar{
			{Name: "ASSET_PATH", Value: host.NormalizePathList(t.AssetPath)},
		},
		Console: opts.console(),
	}
	if t.Logging {
		e.Logging = &vscodeLogging{ModuleLoad: false}
	}

	runtimePath := host.NormalizePathList(t.RuntimePath)
	if host.IsWindows() {
		e.Type = "cppvsdbg"
		e.Environment = append(e.Environment, vscodeEnvVar{
			Name:  "PATH",
			Value: pathPrefix(host, opts, "${env:PATH}") + runtimePath,
		})
	} else {
		e.Environment = append(e.Environment, vscodeEnvVar{
			Name:  "LD_LIBRARY_PATH",
			Value: runtimePath,
		})
	}
	return e
}

// pathPrefix is the existing PATH followed by a separator, either as the IDE's
// variable reference or, with ExpandPath, the captured process value.
func pathPrefix(host Host, opts Options, reference string) string {
	prefix := reference
	if opts.ExpandPath {
		prefix = host.Path
	}
	return prefix + string(host.ListSeparator)
}

// GenerateVSCode upserts the target into .vscode/launch.json.
// No-op (nil result) if the .vscode/ directory doesn't exist.
func GenerateVSCode(host Host, t Target, opts Options) (*Result, error) {
	if !VSCodeEnabled(host) {
		return nil, nil
	}
	return upsertFile(VSCodePath(host), VSCodeVersion, "vscode", t.Name, newVSCodeEntry(host, t, opts), opts)
}

// RemoveVSCode deletes the named entries from .vscode/launch.json if present.
func RemoveVSCode(host Host, names []string, opts Options) (*Result, bool, error) {
	if !VSCodeEnabled(host) {
		return nil, false, nil
	}
	return removeFromFile(VSCodePath(host), VSCodeVersion, "vscode", names, opts)
}

// LoadVSCode reads .vscode/launch.json. Returns nil, nil if it doesn't exist.
func LoadVSCode(host Host) (*launch.Document, error) {
	if !VSCodeEnabled(host) {
		return nil, nil
	}
	return launch.Load(VSCodePath(host), VSCodeVersion)
}
