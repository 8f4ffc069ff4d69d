// Package events defines the typed messages the picker emits toward the
// rendering layer. Each message carries the emitting component and a
// Describe helper for logs.
package events

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/owo/pkg/catalog"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// CatalogLoadedMsg announces a (re)built catalog index.
type CatalogLoadedMsg struct {
	Component ComponentID
	Index     *catalog.Index
	FromCache bool
	Failures  int
}

// Describe renders the load in a human-friendly format for logs.
func (m CatalogLoadedMsg) Describe() string {
	return fmt.Sprintf(`collections:%d items:%d cached:%v failures:%d`,
		len(m.Index.Collections()), m.Index.Len(), m.FromCache, m.Failures)
}

// CatalogLoadFailedMsg announces that no catalog could be built. Background
// refresh failures are marked so consumers keep showing cached data instead
// of surfacing an error.
type CatalogLoadFailedMsg struct {
	Component  ComponentID
	Err        string
	Background bool
}

// Describe renders the failure for logs.
func (m CatalogLoadFailedMsg) Describe() string {
	return fmt.Sprintf(`err:%q background:%v`, m.Err, m.Background)
}

// FilteredChangedMsg fires when the displayed result set changed.
type FilteredChangedMsg struct {
	Component ComponentID
	Items     []catalog.Item
}

// Describe renders the change for logs.
func (m FilteredChangedMsg) Describe() string {
	return fmt.Sprintf(`items:%d`, len(m.Items))
}

// HighlightChangedMsg fires when the highlighted row moved. Index is -1
// when nothing is highlighted.
type HighlightChangedMsg struct {
	Component ComponentID
	Index     int
}

// Describe renders the highlight for logs.
func (m HighlightChangedMsg) Describe() string {
	return fmt.Sprintf(`index:%d`, m.Index)
}

// ItemActivatedMsg fires when the user picks the highlighted item. When
// MultiSelect is off the picker is expected to close after this.
type ItemActivatedMsg struct {
	Component   ComponentID
	Item        catalog.Item
	MultiSelect bool
}

// Describe renders the pick for logs.
func (m ItemActivatedMsg) Describe() string {
	return fmt.Sprintf(`key:%q text:%q multi:%v`, m.Item.Key, m.Item.Text, m.MultiSelect)
}

// CatalogLoadedCmd wraps CatalogLoadedMsg in a tea.Cmd.
func CatalogLoadedCmd(component ComponentID, index *catalog.Index, fromCache bool, failures int) tea.Cmd {
	return func() tea.Msg {
		return CatalogLoadedMsg{Component: component, Index: index, FromCache: fromCache, Failures: failures}
	}
}

// CatalogLoadFailedCmd wraps CatalogLoadFailedMsg in a tea.Cmd.
func CatalogLoadFailedCmd(component ComponentID, err string, background bool) tea.Cmd {
	return func() tea.Msg {
		return CatalogLoadFailedMsg{Component: component, Err: err, Background: background}
	}
}

// ItemActivatedCmd wraps ItemActivatedMsg in a tea.Cmd.
func ItemActivatedCmd(component ComponentID, item catalog.Item, multi bool) tea.Cmd {
	return func() tea.Msg {
		return ItemActivatedMsg{Component: component, Item: item, MultiSelect: multi}
	}
}

// FilteredChangedCmd wraps FilteredChangedMsg in a tea.Cmd.
func FilteredChangedCmd(component ComponentID, items []catalog.Item) tea.Cmd {
	return func() tea.Msg {
		return FilteredChangedMsg{Component: component, Items: items}
	}
}

// HighlightChangedCmd wraps HighlightChangedMsg in a tea.Cmd.
func HighlightChangedCmd(component ComponentID, index int) tea.Cmd {
	return func() tea.Msg {
		return HighlightChangedMsg{Component: component, Index: index}
	}
}
