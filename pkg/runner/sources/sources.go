// Package sources provides CLI helpers to display configured catalog
// sources and their cache state.
package sources

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/owo/pkg/cache"
	"tableflip.dev/owo/pkg/catalog"
)

// Sources prints a table of configured source URLs and what the cache
// holds for each.
type Sources struct {
	URLs  []string
	Store cache.Store
}

// Do renders the source table to stdout.
func (n *Sources) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not list sources, no cache store")
	}

	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("URL"), bold.Sprint("Cached"), bold.Sprint("ETag"),
		bold.Sprint("Age"), bold.Sprint("Collections"), bold.Sprint("Items"))

	configured := make(map[string]bool, len(n.URLs))
	for _, url := range n.URLs {
		configured[url] = true
		entry, ok := n.Store.Get(url)
		if !ok {
			tbl.AddRow(url, "no", "", "", "", "")
			continue
		}
		cols, items := counts(entry)
		tbl.AddRow(url, "yes", entry.ETag, entry.Age().Round(time.Second).String(), cols, items)
	}

	// Cached entries for URLs no longer configured still take disk space;
	// show them so they can be cleaned up.
	for _, url := range n.Store.URLs(ctx) {
		if configured[url] {
			continue
		}
		entry, ok := n.Store.Get(url)
		if !ok {
			continue
		}
		cols, items := counts(entry)
		tbl.AddRow(url+" (stale)", "yes", entry.ETag, entry.Age().Round(time.Second).String(), cols, items)
	}

	_, _ = fmt.Fprintln(color.Output, "")
	_, _ = fmt.Fprintln(color.Output, tbl)
	_, _ = fmt.Fprintln(color.Output, "")
	return nil
}

// counts parses a cached payload to report what it holds. A payload that no
// longer validates shows as "-": the cache stores raw fetched bytes and
// schema validation only runs at parse time.
func counts(entry cache.Entry) (string, string) {
	parsed, err := catalog.Parse(entry.Payload, entry.URL)
	if err != nil {
		return "-", "-"
	}
	items := 0
	for _, col := range parsed.Collections {
		items += len(col.Items)
	}
	return fmt.Sprintf("%d", len(parsed.Collections)), fmt.Sprintf("%d", items)
}
