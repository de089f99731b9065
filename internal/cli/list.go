package cli

import (
	"fmt"
	"os"

	"github.com/brudil/launchgen/internal/ide"
	"github.com/brudil/launchgen/internal/ui"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:               "list",
		Aliases:           []string{"ls"},
		Short:             "List launch configurations in detected IDE files",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := LoadContext()
			if err != nil {
				return err
			}

			files := ide.Detect(ctx.Host, ctx.Options(false))
			if jsonOutput {
				return runListJSON(ctx.Host.Dir, files)
			}
			if len(files) == 0 {
				fmt.Fprintf(os.Stderr, "%s no %s or %s directory in %s\n",
					ui.Dim.Render("–"), ide.VSCodeDir, ide.VisualStudioDir, ctx.Host.Dir)
				return nil
			}

			link := ui.IsTerminal(os.Stderr)
			for i, f := range files {
				if i > 0 {
					fmt.Fprintln(os.Stdout)
				}
				file := ui.FileLink(ctx.Host.Dir, f.Path, link)
				switch {
				case f.Err != nil:
					fmt.Fprintf(os.Stdout, "%s %s\n", ui.Bold.Render(file), ui.Orange.Render("unreadable"))
					fmt.Fprintf(os.Stdout, "  %s\n", ui.Dim.Render(f.Err.Error()))
				case f.Doc == nil:
					fmt.Fprintf(os.Stdout, "%s %s\n", ui.Bold.Render(file), ui.Dim.Render("not created yet"))
				default:
					fmt.Fprintf(os.Stdout, "%s %s\n", ui.Bold.Render(file), ui.TagDim.Render(f.Doc.Version()))
					names := f.Doc.Names()
					if len(names) == 0 {
						fmt.Fprintf(os.Stdout, "  %s\n", ui.Dim.Render("no configurations"))
					}
					for _, name := range names {
						fmt.Fprintf(os.Stdout, "  %s\n", name)
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
