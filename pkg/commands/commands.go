package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "owo",
		Short: base.Wrap80("Emoji and emoticon picker for OWO format catalogs."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addPick(topLevel)
	addGet(topLevel)
	addSources(topLevel)
	addRefresh(topLevel)
	addVersion(topLevel)
}
