package cli

import (
	"os"

	"github.com/brudil/launchgen/internal/log"
	"github.com/brudil/launchgen/internal/ui"
	"github.com/spf13/cobra"
)

type globalFlags struct {
	verbose bool
	dryRun  bool
}

func NewRootCmd(version string) *cobra.Command {
	var global globalFlags
	var gen generateFlags

	cmd := &cobra.Command{
		Use:   "launchgen [executable source-dir asset-path runtime-path]",
		Short: "Generate IDE debugger launch configurations",
		Long: `Add or update a debugger launch configuration for one build target in
.vscode/launch.json and, on Windows, .vs/launch.vs.json.

Files are only written when their IDE directory already exists in the
current directory. Asset and runtime paths are ';'-delimited on every OS.`,
		Example: `  launchgen --name HelloWorld --executable Demos/HelloWorld/HelloWorld \
    --binary-dir build --working-dir Demos/HelloWorld \
    --asset-path "Assets;Demos/HelloWorld/Assets" --runtime-path "build/Engine"

  launchgen build/HelloWorld Demos/HelloWorld "Assets" "build/Engine"`,
		Args:              gen.validateArgs,
		ValidArgsFunction: completePositional,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Configure(log.Config{
				Verbose: global.verbose,
				NoColor: !ui.IsTerminal(os.Stderr),
			})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, gen.target(args), global.dryRun)
		},
	}

	cmd.Version = version

	cmd.PersistentFlags().BoolVarP(&global.verbose, "verbose", "v", false, "Log what is read and written")
	cmd.PersistentFlags().BoolVar(&global.dryRun, "dry-run", false, "Print resulting files to stdout instead of writing them")
	gen.register(cmd)

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newRemoveCmd(&global))
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newDoctorCmd())

	return cmd
}
