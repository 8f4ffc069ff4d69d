// Package selection implements the interactive picker state machine. It
// operates purely on the catalog index and never touches presentation: the
// TUI drives it with input events and renders whatever it exposes.
package selection

import (
	"strings"

	"tableflip.dev/owo/pkg/catalog"
)

// State holds the picker's interactive state: the active collection, the
// current query, the filtered result list, the highlighted row, and the
// multi-select flag. A State is created fresh each time a picker opens and
// discarded on close; only the last active collection survives across opens,
// remembered by the settings layer.
type State struct {
	index *catalog.Index

	active    string
	query     string
	filtered  []catalog.Item
	highlight int
	multi     bool

	lastErr string
}

// NewState builds a fresh state over the index, starting on the requested
// collection. Unknown names (and "") fall back to the first collection, or
// the all view when the catalog is empty.
func NewState(index *catalog.Index, active string) *State {
	s := &State{index: index, highlight: -1}
	s.active = s.resolveActive(active)
	s.filtered = index.ItemsFor(s.active)
	return s
}

func (s *State) resolveActive(name string) string {
	if name == catalog.All {
		return name
	}
	if _, ok := s.index.Collection(name); ok {
		return name
	}
	if cols := s.index.Collections(); len(cols) > 0 {
		return cols[0].Name
	}
	return catalog.All
}

// ActiveCollection returns the active collection name, catalog.All for the
// concatenated view.
func (s *State) ActiveCollection() string { return s.active }

// Query returns the current trimmed search query.
func (s *State) Query() string { return s.query }

// Filtered returns the currently displayed result set.
func (s *State) Filtered() []catalog.Item { return s.filtered }

// Highlight returns the highlighted index into Filtered, -1 for none.
func (s *State) Highlight() int { return s.highlight }

// MultiSelect reports whether multi-select mode is on.
func (s *State) MultiSelect() bool { return s.multi }

// Err returns the last catalog failure message, "" when healthy.
func (s *State) Err() string { return s.lastErr }

// Index exposes the underlying catalog index.
func (s *State) Index() *catalog.Index { return s.index }

// SubmitQuery applies a (debounced) search query. The query is trimmed; if
// it equals the previous one this is a no-op. An empty query shows the
// active collection, anything else runs a search. The empty case never
// reaches Index.Search. Returns true when the filtered list changed, which
// also resets the highlight; identical results leave the highlight alone so
// downstream work is skipped.
func (s *State) SubmitQuery(query string) bool {
	trimmed := strings.TrimSpace(query)
	if trimmed == s.query {
		return false
	}
	s.query = trimmed
	if trimmed == "" {
		return s.setFiltered(s.index.ItemsFor(s.active))
	}
	return s.setFiltered(s.index.Search(trimmed))
}

// SwitchCollection changes the active collection. Switching always clears
// an in-progress search: the new collection's full item set is shown.
// Switching to the already-active collection is a no-op that preserves the
// query. Returns true when the filtered list changed.
func (s *State) SwitchCollection(name string) bool {
	if name != catalog.All {
		if _, ok := s.index.Collection(name); !ok {
			return false
		}
	}
	if name == s.active {
		return false
	}
	s.active = name
	s.query = ""
	return s.setFiltered(s.index.ItemsFor(name))
}

// Tabs returns the collection names in load order with the all view
// appended, matching the picker's tab row.
func (s *State) Tabs() []string {
	cols := s.index.Collections()
	tabs := make([]string, 0, len(cols)+1)
	for _, col := range cols {
		tabs = append(tabs, col.Name)
	}
	return append(tabs, catalog.All)
}

// CycleCollection moves the active collection forward (+1) or backward (-1)
// through the tab order, wrapping at either end.
func (s *State) CycleCollection(delta int) bool {
	tabs := s.Tabs()
	if len(tabs) == 0 {
		return false
	}
	current := 0
	for i, name := range tabs {
		if name == s.active {
			current = i
			break
		}
	}
	next := (current + delta + len(tabs)) % len(tabs)
	return s.SwitchCollection(tabs[next])
}

// NavigateDown moves the highlight forward, wrapping from the last row to
// the first. No-op on an empty result set.
func (s *State) NavigateDown() bool {
	if len(s.filtered) == 0 {
		return false
	}
	s.highlight = (s.highlight + 1) % len(s.filtered)
	return true
}

// NavigateUp moves the highlight backward, wrapping from the first row to
// the last. No-op on an empty result set.
func (s *State) NavigateUp() bool {
	if len(s.filtered) == 0 {
		return false
	}
	if s.highlight <= 0 {
		s.highlight = len(s.filtered) - 1
	} else {
		s.highlight--
	}
	return true
}

// Activate resolves the highlighted item. The caller decides what a pick
// means (insert, print, close) using the MultiSelect flag.
func (s *State) Activate() (catalog.Item, bool) {
	if s.highlight < 0 || s.highlight >= len(s.filtered) {
		return catalog.Item{}, false
	}
	return s.filtered[s.highlight], true
}

// ToggleMultiSelect flips multi-select mode and returns the new value. The
// filtered list and highlight are untouched.
func (s *State) ToggleMultiSelect() bool {
	s.multi = !s.multi
	return s.multi
}

// SetCatalog swaps in a freshly loaded index, keeping the active collection
// when it still exists and re-running the current query against the new
// data. Used by the background refresh; returns true when the visible list
// changed.
func (s *State) SetCatalog(index *catalog.Index) bool {
	s.index = index
	s.lastErr = ""
	s.active = s.resolveActive(s.active)
	if s.query == "" {
		return s.setFiltered(index.ItemsFor(s.active))
	}
	return s.setFiltered(index.Search(s.query))
}

// SetUnavailable records a catalog failure: the item set empties and the
// message is kept for display. The state machine stays usable so the picker
// can keep running (and recover via SetCatalog).
func (s *State) SetUnavailable(msg string) {
	s.lastErr = msg
	s.index = catalog.NewIndex(nil)
	s.active = catalog.All
	s.query = ""
	s.setFiltered(nil)
}

// setFiltered replaces the result set only when it actually differs,
// comparing length plus the ordered key sequence. A change resets the
// highlight.
func (s *State) setFiltered(items []catalog.Item) bool {
	if sameItems(s.filtered, items) {
		return false
	}
	s.filtered = items
	s.highlight = -1
	return true
}

func sameItems(a, b []catalog.Item) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Key != b[i].Key {
			return false
		}
	}
	return true
}
