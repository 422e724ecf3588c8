package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "hoist",
		Short: base.Wrap80("A single-screen to-do editor demonstrating state hoisting."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addBrowse(topLevel)
	addDemo(topLevel)
	addIcons(topLevel)
	addVersion(topLevel)
}
