package get

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/owo/pkg/catalog"
	"tableflip.dev/owo/pkg/loader"
	"tableflip.dev/owo/pkg/printers"
)

// Get prints catalog collections without opening the picker. A non-empty
// Search takes precedence over Collection.
type Get struct {
	ShowKey      bool
	Collection   string
	Search       string
	ForceRefresh bool
	URLs         []string
	Loader       *loader.Loader
}

func (n *Get) Do(ctx context.Context) error {
	if n.Loader == nil {
		return errors.New("can not get, no loader")
	}

	pp := printers.PrettyPrint{ShowKey: n.ShowKey}

	res := n.Loader.LoadAll(ctx, n.URLs, n.ForceRefresh)
	for _, failure := range res.Failures {
		fmt.Printf("skipped %s: %v\n", failure.URL, failure.Err)
	}
	pp.Warnings(res.Warnings)

	index := catalog.NewIndex(res.Collections)
	pp.NewLine()

	if n.Search != "" {
		matches := index.Search(n.Search)
		pp.TitleWithCount(fmt.Sprintf("matches for %q", n.Search), len(matches))
		pp.Collection(matches...)
		return nil
	}

	if n.Collection != "" && n.Collection != catalog.All {
		col, ok := index.Collection(n.Collection)
		if !ok {
			return fmt.Errorf("no collection named %q", n.Collection)
		}
		pp.TitleWithCount(col.Name, len(col.Items))
		pp.Collection(col.Items...)
		return nil
	}

	if len(index.Collections()) == 0 {
		if err := res.LastError(); err != nil {
			return fmt.Errorf("no collections loaded: %w", err)
		}
		pp.Title("no collections")
		pp.Collection()
		return nil
	}

	for _, col := range index.Collections() {
		pp.TitleWithCount(col.Name, len(col.Items))
		pp.Collection(col.Items...)
	}
	return nil
}
