package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/helpdeck/pkg/commands/options"
	"tableflip.dev/helpdeck/pkg/runner/export"
	"tableflip.dev/helpdeck/pkg/store"
)

func addExport(topLevel *cobra.Command) {
	eo := &options.ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "render the latest cached document as markdown",
		Example: `
helpdeck export
helpdeck export --plain > help.md
helpdeck export --html > help.html
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			e := export.Export{
				Persistence: p,
				Plain:       eo.Plain,
				HTML:        eo.HTML,
				Wrap:        eo.Wrap,
			}
			return e.Do(context.Background())
		},
	}

	options.AddExportArgs(cmd, eo)

	topLevel.AddCommand(cmd)
}
