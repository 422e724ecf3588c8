package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/hoist/pkg/runner/icons"
)

func addIcons(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "icons",
		Short: "print the icon categories and their CLI aliases",
		Example: `
hoist icons
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			i := icons.Icons{}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
