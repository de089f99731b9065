package cli

import (
	"fmt"
	"os"

	"github.com/brudil/launchgen/internal/config"
	"github.com/brudil/launchgen/internal/ui"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "init",
		Short:             "Write a launchgen.toml with the default settings",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := LoadContext()
			if err != nil {
				return err
			}

			enabled, expand := true, false
			cfg := &config.Config{
				Launch:       config.LaunchConfig{ExpandPath: &expand},
				VSCode:       config.VSCodeConfig{Enabled: &enabled, Console: "internalConsole"},
				VisualStudio: config.VisualStudioConfig{Enabled: &enabled},
			}
			if err := config.Write(ctx.Host.Dir, cfg); err != nil {
				return err
			}

			fmt.Fprintf(os.Stderr, "%s wrote %s\n", ui.Green.Render("✓"), config.FileName)
			return nil
		},
	}
}
