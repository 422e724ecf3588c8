package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/hoist/pkg/commands/options"
	"tableflip.dev/hoist/pkg/config"
	"tableflip.dev/hoist/pkg/runner/browse"
	"tableflip.dev/hoist/pkg/todo"
)

func addBrowse(topLevel *cobra.Command) {
	so := &options.SeedOptions{}
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "open the earlier, simpler terminal interface",
		Example: `
hoist browse --seed
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if so.Seed {
				cfg.Seed = true
			}
			b := browse.Browse{Store: todo.NewStore(), Config: cfg}
			return b.Do(context.Background())
		},
	}
	options.AddSeedArgs(cmd, so)

	topLevel.AddCommand(cmd)
}
