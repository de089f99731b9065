package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/brudil/launchgen/internal/ide"
	"github.com/brudil/launchgen/internal/ui"
	"github.com/spf13/cobra"
)

func newRemoveCmd(global *globalFlags) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:               "remove [name...]",
		Aliases:           []string{"rm"},
		Short:             "Remove launch configurations by name",
		ValidArgsFunction: completeEntryNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := LoadContext()
			if err != nil {
				return err
			}

			names := args
			if len(names) == 0 {
				existing := entryNames(ctx)
				if len(existing) == 0 {
					fmt.Fprintln(os.Stderr, "No launch configurations to remove.")
					return nil
				}
				names, err = ui.PickMultiple("Remove launch configurations", existing)
				if err != nil {
					return err
				}
				if len(names) == 0 {
					return nil
				}
			}

			if !yes && !global.dryRun {
				ok, err := ui.Confirm(fmt.Sprintf("Remove %s?", strings.Join(names, ", ")))
				if err != nil {
					return fmt.Errorf("%w (pass --yes to skip)", err)
				}
				if !ok {
					return nil
				}
			}

			opts := ctx.Options(global.dryRun)
			link := ui.IsTerminal(os.Stderr)
			results, err := ide.Remove(ctx.Host, names, opts)
			if err != nil {
				return err
			}
			found := make(map[string]bool)
			for _, res := range results {
				file := ui.FileLink(ctx.Host.Dir, res.Path, link)
				removed := ui.Bold.Render(strings.Join(res.Removed, ", "))
				for _, name := range res.Removed {
					found[name] = true
				}
				if global.dryRun {
					fmt.Fprintf(os.Stderr, "%s removed %s %s\n", ui.Dim.Render("would have"), removed, ui.Dim.Render("from "+file))
					os.Stdout.Write(res.Content)
					continue
				}
				fmt.Fprintf(os.Stderr, "%s removed %s %s\n", ui.Green.Render("✓"), removed, ui.Dim.Render("from "+file))
			}
			for _, name := range names {
				if !found[name] {
					fmt.Fprintf(os.Stderr, "%s %s not found\n", ui.Orange.Render("⚠"), ui.Bold.Render(name))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
