package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/helpdeck/pkg/api"
	"tableflip.dev/helpdeck/pkg/commands/options"
	"tableflip.dev/helpdeck/pkg/runner/ui"
	"tableflip.dev/helpdeck/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	do := &options.DocumentOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the interactive checklist",
		Example: `
helpdeck ui
helpdeck ui --lang Dutch --level Intermediate
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Load(cfg)
			if err != nil {
				return err
			}

			lang, level := resolveLanguage(do.Language, do.Level)
			i := ui.UI{
				Client:      &api.HelpClient{BaseURL: cfg.APIBase()},
				Persistence: p,
				Notifier: &api.TaskClient{
					BaseURL: cfg.APIBase(),
					Name:    displayName(cfg.DisplayName()),
				},
				Language: lang,
				Level:    level,
			}
			return i.Do(context.Background())
		},
	}

	options.AddDocumentArgs(cmd, do)

	topLevel.AddCommand(cmd)
}
