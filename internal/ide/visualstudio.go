package ide

import (
	"fmt"
	"path/filepath"

	"github.com/brudil/launchgen/internal/launch"
)

const (
	VisualStudioDir     = ".vs"
	VisualStudioFile    = "launch.vs.json"
	VisualStudioVersion = "0.2.1"
)

type visualStudioEnv struct {
	Path      string `json:"PATH"`
	AssetPath string `json:"ASSET_PATH"`
}

// visualStudioEntry is a CMake-project launch configuration for Visual Studio's
// Open Folder mode.
type visualStudioEntry struct {
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	Project       string          `json:"project"`
	Args          []string        `json:"args"`
	ProjectTarget string          `json:"projectTarget"`
	Cwd           string          `json:"cwd"`
	Env           visualStudioEnv `json:"env"`
}

// VisualStudioPath returns the launch.vs.json location under the host directory.
func VisualStudioPath(host Host) string {
	return filepath.Join(host.Dir, VisualStudioDir, VisualStudioFile)
}

// VisualStudioEnabled reports whether the host is Windows and .vs/ exists.
func VisualStudioEnabled(host Host) bool {
	return host.IsWindows() && isDir(filepath.Join(host.Dir, VisualStudioDir))
}

func newVisualStudioEntry(host Host, t Target, opts Options) visualStudioEntry {
	return visualStudioEntry{
		Name:          t.Name,
		Type:          "default",
		Project:       "CMakeLists.txt",
		Args:          args(t.Args),
		ProjectTarget: fmt.Sprintf("%s (%s)", filepath.Base(t.Executable), t.Executable),
		Cwd:           t.WorkingDir,
		Env: visualStudioEnv{
			Path:      pathPrefix(host, opts, "${env.PATH}") + host.NormalizePathList(t.RuntimePath),
			AssetPath: host.NormalizePathList(t.AssetPath),
		},
	}
}

// GenerateVisualStudio upserts the target into .vs/launch.vs.json.
// No-op (nil result) unless running on Windows with an existing .vs/ directory.
func GenerateVisualStudio(host Host, t Target, opts Options) (*Result, error) {
	if !VisualStudioEnabled(host) {
		return nil, nil
	}
	return upsertFile(VisualStudioPath(host), VisualStudioVersion, "visualstudio", t.Name, newVisualStudioEntry(host, t, opts), opts)
}

// RemoveVisualStudio deletes the named entries from .vs/launch.vs.json if present.
func RemoveVisualStudio(host Host, names []string, opts Options) (*Result, bool, error) {
	if !VisualStudioEnabled(host) {
		return nil, false, nil
	}
	return removeFromFile(VisualStudioPath(host), VisualStudioVersion, "visualstudio", names, opts)
}

// LoadVisualStudio reads .vs/launch.vs.json. Returns nil, nil if it doesn't exist.
func LoadVisualStudio(host Host) (*launch.Document, error) {
	if !VisualStudioEnabled(host) {
		return nil, nil
	}
	return launch.Load(VisualStudioPath(host), VisualStudioVersion)
}
