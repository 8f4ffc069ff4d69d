package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/owo/pkg/cache"
	"tableflip.dev/owo/pkg/runner/sources"
)

func addSources(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "sources",
		Short: "list configured catalog sources and their cache state",
		Example: `
owo sources
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
			s := sources.Sources{URLs: cfg.URLs(), Store: store}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
