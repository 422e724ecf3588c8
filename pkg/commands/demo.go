package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/hoist/pkg/commands/options"
	"tableflip.dev/hoist/pkg/runner/demo"
)

func addDemo(topLevel *cobra.Command) {
	do := &options.DisplayOptions{}
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "run a scripted edit session and print each snapshot",
		Example: `
hoist demo
hoist demo --show-id
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := demo.Demo{ShowID: do.ShowID}
			return d.Do(context.Background())
		},
	}
	options.AddDisplayArgs(cmd, do)

	topLevel.AddCommand(cmd)
}
