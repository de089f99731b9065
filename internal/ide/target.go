package ide

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// InputListSeparator delimits asset and runtime path lists on the command line,
// whatever the host OS.
const InputListSeparator = ";"

// Target describes the runnable a launch configuration is generated for.
type Target struct {
	Name        string
	Executable  string
	BinaryDir   string // joined with Executable when set
	WorkingDir  string
	AssetPath   string // InputListSeparator-delimited
	RuntimePath string // InputListSeparator-delimited

	// Logging adds VS Code's "logging": {"moduleLoad": false} block.
	Logging bool
	Args    []string
}

// Program returns the path the debugger launches. An absolute executable
// is used as given. Otherwise it is appended to BinaryDir without cleaning,
// so ".." segments survive.
func (t Target) Program() string {
	if t.BinaryDir == "" || filepath.IsAbs(t.Executable) || filepath.VolumeName(t.Executable) != "" {
		return t.Executable
	}
	if os.IsPathSeparator(t.BinaryDir[len(t.BinaryDir)-1]) {
		return t.BinaryDir + t.Executable
	}
	return t.BinaryDir + string(filepath.Separator) + t.Executable
}

// NameFromExecutable derives a target name from the executable's base name
// without its extension.
func NameFromExecutable(executable string) string {
	base := filepath.Base(executable)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Host is the process state the writers depend on.
type Host struct {
	Dir           string // directory holding .vscode/ and .vs/
	GOOS          string
	ListSeparator rune
	Path          string // process PATH, used when ExpandPath is set
}

// HostFromEnv captures the current process's working directory, OS and PATH.
func HostFromEnv() (Host, error) {
	dir, err := os.Getwd()
	if err != nil {
		return Host{}, err
	}
	return Host{
		Dir:           dir,
		GOOS:          runtime.GOOS,
		ListSeparator: os.PathListSeparator,
		Path:          os.Getenv("PATH"),
	}, nil
}

func (h Host) IsWindows() bool {
	return h.GOOS == "windows"
}

// NormalizePathList rewrites InputListSeparator to the host's path-list separator.
func (h Host) NormalizePathList(list string) string {
	return strings.ReplaceAll(list, InputListSeparator, string(h.ListSeparator))
}

// Options carries the config-file knobs shared by both writers.
type Options struct {
	// ExpandPath writes the captured process PATH instead of the IDE's
	// ${env:PATH} reference.
	ExpandPath bool
	Console    string
	DryRun     bool

	DisableVSCode       bool
	DisableVisualStudio bool
}

func (o Options) console() string {
	if o.Console == "" {
		return "internalConsole"
	}
	return o.Console
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func args(extra []string) []string {
	out := make([]string, 0, len(extra))
	return append(out, extra...)
}
