package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/owo/pkg/cache"
	"tableflip.dev/owo/pkg/commands/options"
	"tableflip.dev/owo/pkg/loader"
	"tableflip.dev/owo/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	co := &options.CollectionOptions{}
	ko := &options.KeyOptions{}
	ro := &options.RefreshOptions{}
	so := &options.SearchOptions{}

	cmd := &cobra.Command{
		Use:   "get [collection]",
		Short: "print catalog collections without opening the picker",
		Example: `
owo get
owo get Faces
owo get --collection Faces --show-key
owo get --search grin
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
			s := get.Get{
				ShowKey:      ko.ShowKey,
				Collection:   co.Collection,
				Search:       so.Query,
				ForceRefresh: ro.ForceRefresh,
				URLs:         cfg.URLs(),
				Loader:       loader.New(store),
			}
			if co.All {
				s.Collection = ""
			}
			return s.Do(context.Background())
		},
	}

	options.AddCollectionArgs(cmd, co)
	options.AddAllCollectionsArg(cmd, co)
	options.AddShowKeyArgs(cmd, ko)
	options.AddRefreshArgs(cmd, ro)
	options.AddSearchArgs(cmd, so)

	topLevel.AddCommand(cmd)
}
