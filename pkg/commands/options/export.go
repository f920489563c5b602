package options

import (
	"github.com/spf13/cobra"
)

// ExportOptions
type ExportOptions struct {
	Plain bool
	HTML  bool
	Wrap  int
}

func AddExportArgs(cmd *cobra.Command, o *ExportOptions) {
	cmd.Flags().BoolVar(&o.Plain, "plain", false,
		"Write raw markdown instead of styled terminal output.")
	cmd.Flags().BoolVar(&o.HTML, "html", false,
		"Write HTML instead of styled terminal output.")
	cmd.Flags().IntVar(&o.Wrap, "wrap", 80,
		"Wrap width for styled terminal output.")
}
