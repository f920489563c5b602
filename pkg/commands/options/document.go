// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// DocumentOptions captures which document to fetch or reuse.
type DocumentOptions struct {
	Language string
	Level    string
	Cached   bool
}

// AddDocumentArgs wires language and level selection flags.
func AddDocumentArgs(cmd *cobra.Command, o *DocumentOptions) {
	cmd.Flags().StringVarP(&o.Language, "lang", "l", "",
		"Language to request the help document in. Defaults to the profile's first language.")
	cmd.Flags().StringVar(&o.Level, "level", "",
		"Proficiency level: Basic, Intermediate, or Fluent.")
}

// AddCachedArg registers the flag that skips fetching.
func AddCachedArg(cmd *cobra.Command, o *DocumentOptions) {
	cmd.Flags().BoolVar(&o.Cached, "cached", false,
		"Use the latest cached document instead of fetching.")
}
