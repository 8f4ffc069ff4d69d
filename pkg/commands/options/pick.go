package options

import (
	"github.com/spf13/cobra"
)

// PickOptions
type PickOptions struct {
	MultiSelect bool
}

func AddPickArgs(cmd *cobra.Command, o *PickOptions) {
	cmd.Flags().BoolVarP(&o.MultiSelect, "multi", "m", false,
		"Keep the picker open after a pick and print every pick on exit.")
}
