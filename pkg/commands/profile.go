package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/helpdeck/pkg/commands/options"
	"tableflip.dev/helpdeck/pkg/profile"
	profilerunner "tableflip.dev/helpdeck/pkg/runner/profile"
)

func addProfile(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "show or edit the stored user profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := profile.DefaultPath()
			if err != nil {
				return err
			}
			s := profilerunner.Show{Path: path}
			return s.Do(context.Background())
		},
	}

	addProfileSet(cmd)
	addProfileLanguage(cmd)

	topLevel.AddCommand(cmd)
}

func addProfileSet(parent *cobra.Command) {
	po := &options.ProfileOptions{}

	cmd := &cobra.Command{
		Use:   "set",
		Short: "set name and surname",
		Example: `
helpdeck profile set --name Koen --surname Visser
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if po.Name == "" && po.Surname == "" {
				return errors.New("nothing to set, use --name or --surname")
			}
			path, err := profile.DefaultPath()
			if err != nil {
				return err
			}
			s := profilerunner.Set{Path: path, Name: po.Name, Surname: po.Surname}
			return s.Do(context.Background())
		},
	}

	options.AddNameArgs(cmd, po)
	parent.AddCommand(cmd)
}

func addProfileLanguage(parent *cobra.Command) {
	po := &options.ProfileOptions{}

	add := &cobra.Command{
		Use:   "add-language [language]",
		Short: "add or update a language",
		Args:  cobra.MinimumNArgs(1),
		Example: `
helpdeck profile add-language Dutch --level Intermediate
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := profile.DefaultPath()
			if err != nil {
				return err
			}
			a := profilerunner.AddLanguage{
				Path:     path,
				Language: strings.Join(args, " "),
				Level:    profile.ParseLevel(po.Level),
			}
			return a.Do(context.Background())
		},
	}
	options.AddLanguageArgs(add, po)
	parent.AddCommand(add)

	remove := &cobra.Command{
		Use:   "remove-language [language]",
		Short: "remove a language",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := profile.DefaultPath()
			if err != nil {
				return err
			}
			r := profilerunner.RemoveLanguage{
				Path:     path,
				Language: strings.Join(args, " "),
			}
			return r.Do(context.Background())
		},
	}
	parent.AddCommand(remove)
}
