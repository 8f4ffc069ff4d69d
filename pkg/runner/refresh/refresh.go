package refresh

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/owo/pkg/loader"
)

// Refresh re-fetches every configured source, bypassing the cache, and
// reports the outcome per URL.
type Refresh struct {
	URLs   []string
	Loader *loader.Loader
}

func (n *Refresh) Do(ctx context.Context) error {
	if n.Loader == nil {
		return errors.New("can not refresh, no loader")
	}
	if len(n.URLs) == 0 {
		return errors.New("no catalog sources configured")
	}

	ok := color.New(color.FgGreen)
	bad := color.New(color.FgRed)
	faint := color.New(color.Faint)

	res := n.Loader.LoadAll(ctx, n.URLs, true)

	failed := make(map[string]error, len(res.Failures))
	for _, f := range res.Failures {
		failed[f.URL] = f.Err
	}

	for _, url := range n.URLs {
		if err, isBad := failed[url]; isBad {
			_, _ = bad.Printf("✗ %s\n", url)
			_, _ = faint.Printf("  %v\n", err)
			continue
		}
		_, _ = ok.Printf("✓ %s\n", url)
	}

	items := 0
	for _, col := range res.Collections {
		items += len(col.Items)
	}
	fmt.Printf("\n%d collections, %d items, %d of %d sources ok\n",
		len(res.Collections), items, len(n.URLs)-len(res.Failures), len(n.URLs))

	if len(res.Failures) == len(n.URLs) {
		return fmt.Errorf("every source failed: %w", res.LastError())
	}
	return nil
}
