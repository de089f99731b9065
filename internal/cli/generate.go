package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/brudil/launchgen/internal/ide"
	"github.com/brudil/launchgen/internal/ui"
	"github.com/spf13/cobra"
)

// positionalArgs is the argument count of the positional calling convention.
const positionalArgs = 4

type generateFlags struct {
	name        string
	executable  string
	binaryDir   string
	workingDir  string
	assetPath   string
	runtimePath string
	positional  bool
}

var targetFlagNames = []string{"name", "executable", "binary-dir", "working-dir", "asset-path", "runtime-path"}

func (f *generateFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.name, "name", "", "Name of the launch target to generate")
	fl.StringVar(&f.executable, "executable", "", "Path to executable to run, relative to --binary-dir")
	fl.StringVar(&f.binaryDir, "binary-dir", "", "Build output directory, joined with --executable")
	fl.StringVar(&f.workingDir, "working-dir", "", "Directory to run the executable from")
	fl.StringVar(&f.assetPath, "asset-path", "", "Semicolon-delimited asset paths, exported as ASSET_PATH")
	fl.StringVar(&f.runtimePath, "runtime-path", "", "Semicolon-delimited runtime paths, added to PATH or LD_LIBRARY_PATH")
}

// validateArgs accepts either every target flag and no arguments, or exactly
// the positional arguments and no target flags.
func (f *generateFlags) validateArgs(cmd *cobra.Command, args []string) error {
	var set, missing []string
	for _, name := range targetFlagNames {
		if cmd.Flags().Changed(name) {
			set = append(set, name)
		} else {
			missing = append(missing, name)
		}
	}

	switch {
	case len(args) > 0 && len(set) > 0:
		return fmt.Errorf("positional arguments cannot be combined with --%s", set[0])
	case len(args) > 0:
		if len(args) != positionalArgs {
			return fmt.Errorf("expected %d positional arguments (executable, source-dir, asset-path, runtime-path), got %d", positionalArgs, len(args))
		}
		f.positional = true
		return nil
	case len(missing) > 0:
		return fmt.Errorf("required flag(s) \"%s\" not set", strings.Join(missing, "\", \""))
	}
	return nil
}

// target builds the launch target from whichever calling convention was used.
// Only valid after validateArgs succeeded.
func (f *generateFlags) target(args []string) ide.Target {
	if f.positional {
		return ide.Target{
			Name:        ide.NameFromExecutable(args[0]),
			Executable:  args[0],
			WorkingDir:  args[1],
			AssetPath:   args[2],
			RuntimePath: args[3],
		}
	}
	return ide.Target{
		Name:        f.name,
		Executable:  f.executable,
		BinaryDir:   f.binaryDir,
		WorkingDir:  f.workingDir,
		AssetPath:   f.assetPath,
		RuntimePath: f.runtimePath,
		Logging:     true,
	}
}

func runGenerate(cmd *cobra.Command, target ide.Target, dryRun bool) error {
	ctx, err := LoadContext()
	if err != nil {
		return err
	}
	target.Args = ctx.Config.Launch.Args

	results, err := ide.Regenerate(ctx.Host, target, ctx.Options(dryRun))
	if len(results) == 0 && err == nil {
		fmt.Fprintf(os.Stderr, "%s no %s or %s directory in %s, nothing to do\n",
			ui.Dim.Render("–"), ide.VSCodeDir, ide.VisualStudioDir, ctx.Host.Dir)
		return nil
	}
	printResults(ctx.Host.Dir, target.Name, results, dryRun)
	return err
}

func printResults(base, name string, results []*ide.Result, dryRun bool) {
	link := ui.IsTerminal(os.Stderr)
	for _, res := range results {
		file := ui.FileLink(base, res.Path, link)
		if res.Recovered {
			fmt.Fprintf(os.Stderr, "%s %s was not valid JSON and has been replaced\n", ui.Orange.Render("⚠"), file)
		}

		verb := "added"
		if res.Replaced {
			verb = "updated"
		}
		if dryRun {
			fmt.Fprintf(os.Stderr, "%s %s %s %s\n", ui.Dim.Render("would have"), verb, ui.Bold.Render(name), ui.Dim.Render("in "+file))
			os.Stdout.Write(res.Content)
			continue
		}
		fmt.Fprintf(os.Stderr, "%s %s %s %s\n", ui.Green.Render("✓"), verb, ui.Bold.Render(name), ui.Dim.Render("in "+file))
	}
}
