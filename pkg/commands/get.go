package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/helpdeck/pkg/api"
	"tableflip.dev/helpdeck/pkg/commands/options"
	"tableflip.dev/helpdeck/pkg/runner/get"
	"tableflip.dev/helpdeck/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	do := &options.DocumentOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "fetch the help document and print it",
		Example: `
helpdeck get
helpdeck get --lang Dutch --level Basic
helpdeck get --cached
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
			s := get.Get{
				Client:      &api.HelpClient{BaseURL: cfg.APIBase()},
				Persistence: p,
				Language:    lang,
				Level:       level,
				Cached:      do.Cached,
			}
			return s.Do(context.Background())
		},
	}

	options.AddDocumentArgs(cmd, do)
	options.AddCachedArg(cmd, do)

	topLevel.AddCommand(cmd)
}
