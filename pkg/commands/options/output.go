package options

import (
	"github.com/spf13/cobra"
)

// DisplayOptions
type DisplayOptions struct {
	ShowID bool
}

func AddDisplayArgs(cmd *cobra.Command, o *DisplayOptions) {
	cmd.Flags().BoolVar(&o.ShowID, "show-id", false,
		"Print the id of each item alongside it.")
}

// SeedOptions
type SeedOptions struct {
	Seed bool
}

func AddSeedArgs(cmd *cobra.Command, o *SeedOptions) {
	cmd.Flags().BoolVar(&o.Seed, "seed", false,
		"Start with a few example items instead of an empty list.")
}
