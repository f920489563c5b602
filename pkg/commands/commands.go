// Package commands wires the cobra command tree for helpdeck.
package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/helpdeck/pkg/profile"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "helpdeck",
		Short: base.Wrap80("Workplace help documents as an interactive checklist on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addGet(topLevel)
	addUI(topLevel)
	addExport(topLevel)
	addProfile(topLevel)
	addVersion(topLevel)
}

// resolveLanguage picks the language and level for a fetch: explicit flags
// first, then the first language on the stored profile.
func resolveLanguage(lang, level string) (string, string) {
	if lang != "" {
		if level == "" {
			level = string(profile.Basic)
		}
		return lang, level
	}

	if path, err := profile.DefaultPath(); err == nil {
		if p, err := profile.Load(path); err == nil && len(p.Languages) > 0 {
			first := p.Languages[0]
			if level == "" {
				level = string(first.Level)
			}
			return first.Language, level
		}
	}

	if level == "" {
		level = string(profile.Basic)
	}
	return "English", level
}

// displayName picks the name completions are reported as: config first, then
// the stored profile.
func displayName(configured string) string {
	if configured != "" {
		return configured
	}
	if path, err := profile.DefaultPath(); err == nil {
		if p, err := profile.Load(path); err == nil && p.FullName() != "" {
			return p.FullName()
		}
	}
	return "anonymous"
}
