package options

import (
	"github.com/spf13/cobra"
)

// ProfileOptions
type ProfileOptions struct {
	Name     string
	Surname  string
	Language string
	Level    string
}

func AddNameArgs(cmd *cobra.Command, o *ProfileOptions) {
	cmd.Flags().StringVar(&o.Name, "name", "",
		"First name.")
	cmd.Flags().StringVar(&o.Surname, "surname", "",
		"Surname.")
}

func AddLanguageArgs(cmd *cobra.Command, o *ProfileOptions) {
	cmd.Flags().StringVar(&o.Level, "level", "Basic",
		"Proficiency level: Basic, Intermediate, or Fluent.")
}
