package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/brudil/launchgen/internal/ide"
)

// HostOpts configures a test host directory.
type HostOpts struct {
	Windows      bool
	VSCode       bool              // create .vscode/
	VisualStudio bool              // create .vs/
	Files        map[string]string // relative path -> content
}

// SetupHost creates a host directory in t.TempDir() with the requested IDE
// directories and files.
func SetupHost(t *testing.T, opts HostOpts) ide.Host {
	t.Helper()

	host := ide.Host{Dir: t.TempDir(), GOOS: "linux", ListSeparator: ':', Path: "/usr/bin:/bin"}
	if opts.Windows {
		host.GOOS = "windows"
		host.ListSeparator = ';'
		host.Path = `C:\Windows\system32;C:\Windows`
	}

	if opts.VSCode {
		mkdir(t, filepath.Join(host.Dir, ide.VSCodeDir))
	}
	if opts.VisualStudio {
		mkdir(t, filepath.Join(host.Dir, ide.VisualStudioDir))
	}
	for rel, content := range opts.Files {
		path := filepath.Join(host.Dir, rel)
		mkdir(t, filepath.Dir(path))
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("writing %s: %v", rel, err)
		}
	}
	return host
}

func mkdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating %s: %v", dir, err)
	}
}
