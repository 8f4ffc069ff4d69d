// Package printers renders catalog collections for the terminal.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/owo/pkg/catalog"
)

// PrettyPrint writes catalog items with light ANSI styling. When ShowKey is
// set each row is prefixed with the item's stable key.
type PrettyPrint struct {
	ShowKey bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" item")
	default:
		_, _ = c.Println(" items")
	}
}

// Collection prints the items of one collection, one row each.
func (pp *PrettyPrint) Collection(items ...catalog.Item) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	k := color.New(color.FgHiYellow, color.Italic, color.Faint)
	u := color.New(color.Faint)

	width := 0
	for _, item := range items {
		if len(item.Key) > width {
			width = len(item.Key)
		}
	}

	for _, item := range items {
		if pp.ShowKey {
			_, _ = k.Print(item.Key)
			_, _ = k.Print(strings.Repeat(" ", width-len(item.Key)+2))
		}
		_, _ = t.Printf("%s  %s", item.Icon, item.Text)
		if item.Type == catalog.TypeImage && item.URL != item.Icon {
			_, _ = u.Printf("  %s", item.URL)
		}
		_, _ = t.Println("")
	}
	_, _ = t.Println("")
}

// Warnings prints per-item parse warnings, faint so they read as asides.
func (pp *PrettyPrint) Warnings(warnings []catalog.Warning) {
	if len(warnings) == 0 {
		return
	}
	f := color.New(color.Faint)
	for _, w := range warnings {
		_, _ = f.Println(w.String())
	}
	_, _ = f.Println("")
}
