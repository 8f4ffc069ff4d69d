package options

import (
	"github.com/spf13/cobra"
)

// RefreshOptions
type RefreshOptions struct {
	ForceRefresh bool
}

func AddRefreshArgs(cmd *cobra.Command, o *RefreshOptions) {
	cmd.Flags().BoolVarP(&o.ForceRefresh, "refresh", "r", false,
		"Bypass the cache and fetch fresh copies of every source.")
}
