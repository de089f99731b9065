package cli

import (
	"slices"

	"github.com/brudil/launchgen/internal/ide"
	"github.com/spf13/cobra"
)

// entryNames returns the configuration names across all detected launch
// files, deduplicated and in first-seen order.
func entryNames(ctx *Context) []string {
	var names []string
	for _, f := range ide.Detect(ctx.Host, ctx.Options(false)) {
		if f.Doc == nil {
			continue
		}
		for _, name := range f.Doc.Names() {
			if !slices.Contains(names, name) {
				names = append(names, name)
			}
		}
	}
	return names
}

func completeEntryNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	ctx, err := LoadContext()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var out []string
	for _, name := range entryNames(ctx) {
		if !slices.Contains(args, name) {
			out = append(out, name)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

// completePositional offers file completion for the four paths of the
// positional form and nothing after them.
func completePositional(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) >= positionalArgs {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveDefault
}
