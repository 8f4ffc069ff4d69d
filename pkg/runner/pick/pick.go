package pick

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"tableflip.dev/owo/pkg/cache"
	"tableflip.dev/owo/pkg/catalog"
	"tableflip.dev/owo/pkg/loader"
	"tableflip.dev/owo/pkg/tui/picker"
)

// Pick opens the interactive picker and writes each chosen item to Out, one
// per line, so picks can be piped or pasted.
type Pick struct {
	Collection   string
	MultiSelect  bool
	ForceRefresh bool
	URLs         []string
	Loader       *loader.Loader
	Store        cache.Store
	Config       cache.Config
	Out          io.Writer
}

func (n *Pick) Do(ctx context.Context) error {
	if n.Loader == nil {
		return errors.New("can not pick, no loader")
	}
	out := n.Out
	if out == nil {
		out = os.Stdout
	}

	var remember func(string)
	if n.Config != nil {
		remember = func(name string) {
			if err := n.Config.RememberCollection(name); err != nil {
				fmt.Fprintf(os.Stderr, "pick: remember collection: %v\n", err)
			}
		}
	}

	initial := n.Collection
	if initial == "" && n.Config != nil {
		initial = n.Config.LastCollection()
	}

	m, err := picker.Run(picker.Options{
		ID:                 "picker",
		Loader:             n.Loader,
		URLs:               n.URLs,
		Store:              n.Store,
		InitialCollection:  initial,
		RememberCollection: remember,
		MultiSelect:        n.MultiSelect,
		ForceRefresh:       n.ForceRefresh,
	})
	if err != nil {
		return err
	}

	for _, item := range m.Picked() {
		// Images paste as their source URL, everything else as its text.
		if item.Type == catalog.TypeImage {
			fmt.Fprintln(out, item.URL)
			continue
		}
		fmt.Fprintln(out, item.Text)
	}
	return nil
}
