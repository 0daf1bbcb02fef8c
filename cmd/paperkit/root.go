package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/paperkit/internal/config"
)

type rootFlags struct {
	configPath string
	verbose    bool
	logLevel   string
	human      bool
}

// bindings maps the persistent flags onto config keys. Command specific
// bindings are merged on top.
func (f *rootFlags) bindings(extra map[string]string) map[string]string {
	out := map[string]string{
		config.KeyLogLevel: "log-level",
		config.KeyLogHuman: "human",
	}
	for key, name := range extra {
		out[key] = name
	}
	return out
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "paperkit",
		Short:         "paperkit derives Material themes and rewrites barrel imports",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to a config file (default: nearest "+config.FileName+")")
	cmd.PersistentFlags().BoolVar(&flags.verbose, "verbose", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", config.DefaultLogLevel, "Log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&flags.human, "human", false, "Write human readable logs instead of JSON")

	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newImportsCmd(flags))
	cmd.AddCommand(newStylesCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
