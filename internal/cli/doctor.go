package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/brudil/launchgen/internal/config"
	"github.com/brudil/launchgen/internal/ide"
	"github.com/brudil/launchgen/internal/ui"
	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "doctor",
		Short:             "Check which launch files would be written",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgCheck := ide.CheckResult{Name: config.FileName, Status: ide.CheckOK, Detail: "defaults"}
			ctx, err := LoadContext()
			if err != nil {
				cfgCheck.Status, cfgCheck.Detail = ide.CheckFail, err.Error()
				printDoctorResults([]ide.CheckCategory{{Name: "Configuration", Checks: []ide.CheckResult{cfgCheck}}})
				return fmt.Errorf("doctor found issues")
			}
			if len(ctx.Config.Sources) > 0 {
				cfgCheck.Detail = "loaded " + strings.Join(ctx.Config.Sources, ", ")
			}

			categories := append([]ide.CheckCategory{{Name: "Configuration", Checks: []ide.CheckResult{cfgCheck}}},
				ide.Doctor(ctx.Host, ctx.Options(false))...)
			if printDoctorResults(categories) {
				return fmt.Errorf("doctor found issues")
			}
			return nil
		},
	}
}

func printDoctorResults(categories []ide.CheckCategory) bool {
	hasFail := false

	for i, cat := range categories {
		if i > 0 {
			fmt.Fprintln(os.Stderr)
		}
		fmt.Fprintln(os.Stderr, ui.Bold.Render(cat.Name))

		for _, check := range cat.Checks {
			var icon, detail string
			switch check.Status {
			case ide.CheckOK:
				icon = ui.Green.Render("✓")
				if check.Detail != "" {
					detail = " " + ui.Dim.Render("→ "+check.Detail)
				}
			case ide.CheckWarn:
				icon = ui.Orange.Render("⚠")
				if check.Detail != "" {
					detail = " — " + check.Detail
				}
			case ide.CheckFail:
				hasFail = true
				icon = ui.Red.Render("✗")
				if check.Detail != "" {
					detail = " — " + check.Detail
				}
			}
			fmt.Fprintf(os.Stderr, "  %s %s%s\n", icon, check.Name, detail)
		}
	}

	return hasFail
}
