// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// CollectionOptions captures common collection selection flags.
type CollectionOptions struct {
	Collection string
	All        bool
}

// AddCollectionArgs wires collection-related flags on the provided command.
func AddCollectionArgs(cmd *cobra.Command, o *CollectionOptions) {
	cmd.Flags().StringVarP(&o.Collection, "collection", "c", "",
		"Specify the collection.")
}

// AddAllCollectionsArg registers the flag that spans every collection.
func AddAllCollectionsArg(cmd *cobra.Command, o *CollectionOptions) {
	cmd.Flags().BoolVar(&o.All, "all", false,
		"Specify all collections.")
}
