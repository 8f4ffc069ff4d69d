package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/owo/pkg/cache"
	"tableflip.dev/owo/pkg/loader"
	"tableflip.dev/owo/pkg/runner/refresh"
)

func addRefresh(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "re-fetch every configured source, bypassing the cache",
		Example: `
owo refresh
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cache.LoadConfig()
			if err != nil {
				return err
			}
			store, err := cache.Load(cfg)
			if err != nil {
				return err
			}
			s := refresh.Refresh{URLs: cfg.URLs(), Loader: loader.New(store)}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
