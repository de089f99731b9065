package ide

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/brudil/launchgen/internal/launch"
)

type CheckStatus int

const (
	CheckOK CheckStatus = iota
	CheckWarn
	CheckFail
)

type CheckResult struct {
	Name   string
	Status CheckStatus
	Detail string
}

type CheckCategory struct {
	Name   string
	Checks []CheckResult
}

// Doctor checks which launch files would be written and whether they parse.
func Doctor(host Host, opts Options) []CheckCategory {
	return []CheckCategory{
		checkDirs(host, opts),
		checkFiles(host, opts),
	}
}

func checkDirs(host Host, opts Options) CheckCategory {
	vscode := CheckResult{Name: VSCodeDir, Status: CheckOK, Detail: VSCodePath(host)}
	switch {
	case opts.DisableVSCode:
		vscode.Status, vscode.Detail = CheckWarn, "disabled in config"
	case !VSCodeEnabled(host):
		vscode.Status, vscode.Detail = CheckWarn, fmt.Sprintf("not found in %s, launch.json will not be written", host.Dir)
	}

	vs := CheckResult{Name: VisualStudioDir, Status: CheckOK, Detail: VisualStudioPath(host)}
	switch {
	case !host.IsWindows():
		vs.Detail = "skipped, Windows only"
	case opts.DisableVisualStudio:
		vs.Status, vs.Detail = CheckWarn, "disabled in config"
	case !isDir(filepath.Join(host.Dir, VisualStudioDir)):
		vs.Status, vs.Detail = CheckWarn, fmt.Sprintf("not found in %s, launch.vs.json will not be written", host.Dir)
	}

	return CheckCategory{Name: "IDE directories", Checks: []CheckResult{vscode, vs}}
}

func checkFiles(host Host, opts Options) CheckCategory {
	var checks []CheckResult
	for _, f := range Detect(host, opts) {
		name := filepath.Base(f.Path)
		switch {
		case errors.Is(f.Err, launch.ErrMalformed):
			checks = append(checks, CheckResult{Name: name, Status: CheckFail, Detail: fmt.Sprintf("%v; it will be replaced on the next run", f.Err)})
		case f.Err != nil:
			checks = append(checks, CheckResult{Name: name, Status: CheckFail, Detail: f.Err.Error()})
		case f.Doc == nil:
			checks = append(checks, CheckResult{Name: name, Status: CheckOK, Detail: "will be created"})
		default:
			checks = append(checks, CheckResult{Name: name, Status: CheckOK, Detail: fmt.Sprintf("%d configurations", len(f.Doc.Names()))})
			checks = append(checks, duplicateChecks(name, f.Doc.Names())...)
		}
	}
	return CheckCategory{Name: "Launch files", Checks: checks}
}

// duplicateChecks warns about names used more than once; only the first
// entry with a name is ever updated.
func duplicateChecks(file string, names []string) []CheckResult {
	counts := make(map[string]int, len(names))
	var order []string
	for _, n := range names {
		if counts[n] == 0 {
			order = append(order, n)
		}
		counts[n]++
	}
	var checks []CheckResult
	for _, n := range order {
		if counts[n] > 1 {
			checks = append(checks, CheckResult{
				Name:   fmt.Sprintf("%s: %s", file, n),
				Status: CheckWarn,
				Detail: fmt.Sprintf("defined %d times, only the first is updated", counts[n]),
			})
		}
	}
	return checks
}
