package options

import (
	"github.com/spf13/cobra"
)

// SearchOptions
type SearchOptions struct {
	Query string
}

func AddSearchArgs(cmd *cobra.Command, o *SearchOptions) {
	cmd.Flags().StringVarP(&o.Query, "search", "s", "",
		"Print items matching the query instead of a collection.")
}
