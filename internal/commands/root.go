// Package commands implements the calendar-views command line.
package commands

import (
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configFile string
}

// NewRootCommand returns the calendar-views command. Without a subcommand it
// runs the server.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "calendar-views",
		Short:         "Month, week and day calendar views",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "YAML config file")

	serve := newServeCommand(opts)
	root.RunE = serve.RunE
	root.AddCommand(serve, newGridCommand(), newHashPasswordCommand(opts))
	return root
}
