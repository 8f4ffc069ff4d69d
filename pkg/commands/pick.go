package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/owo/pkg/cache"
	"tableflip.dev/owo/pkg/commands/options"
	"tableflip.dev/owo/pkg/loader"
	"tableflip.dev/owo/pkg/runner/pick"
)

func addPick(topLevel *cobra.Command) {
	co := &options.CollectionOptions{}
	po := &options.PickOptions{}
	ro := &options.RefreshOptions{}

	cmd := &cobra.Command{
		Use:   "pick [collection]",
		Short: "open the interactive emoji picker",
		Example: `
owo pick
owo pick Faces
owo pick --multi
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				co.Collection = strings.Join(args, " ")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cache.LoadConfig()
			if err != nil {
				return err
			}
			store, err := cache.Load(cfg)
			if err != nil {
				return err
			}
			s := pick.Pick{
				Collection:   co.Collection,
				MultiSelect:  po.MultiSelect,
				ForceRefresh: ro.ForceRefresh,
				URLs:         cfg.URLs(),
				Loader:       loader.New(store),
				Store:        store,
				Config:       cfg,
				Out:          cmd.OutOrStdout(),
			}
			return s.Do(context.Background())
		},
	}

	options.AddCollectionArgs(cmd, co)
	options.AddPickArgs(cmd, po)
	options.AddRefreshArgs(cmd, ro)

	topLevel.AddCommand(cmd)
}
