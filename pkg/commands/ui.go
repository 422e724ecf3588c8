package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/hoist/pkg/commands/options"
	"tableflip.dev/hoist/pkg/config"
	"tableflip.dev/hoist/pkg/runner/ui"
	"tableflip.dev/hoist/pkg/todo"
)

func addUI(topLevel *cobra.Command) {
	so := &options.SeedOptions{}
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
hoist ui
hoist ui --seed
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
			i := ui.UI{Store: todo.NewStore(), Config: cfg}
			return i.Do(context.Background())
		},
	}
	options.AddSeedArgs(cmd, so)

	topLevel.AddCommand(cmd)
}
