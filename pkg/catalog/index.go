package catalog

import "strings"

// All is the sentinel collection name for the concatenated view across
// every collection. It is computed on demand and never stored.
const All = "all"

// Index is a read-only view over merged collections. It is rebuilt
// wholesale each time a load completes; there is no incremental patching.
type Index struct {
	collections []*Collection
	byName      map[string]*Collection
}

// NewIndex builds an index over the provided collections, keeping load
// order. A nil or empty slice yields a usable empty index.
func NewIndex(collections []*Collection) *Index {
	idx := &Index{
		collections: collections,
		byName:      make(map[string]*Collection, len(collections)),
	}
	for _, col := range collections {
		if col == nil {
			continue
		}
		if _, ok := idx.byName[col.Name]; !ok {
			idx.byName[col.Name] = col
		}
	}
	return idx
}

// Collections returns every collection in load order.
func (x *Index) Collections() []*Collection {
	if x == nil {
		return nil
	}
	return x.collections
}

// Collection looks up a single collection by name.
func (x *Index) Collection(name string) (*Collection, bool) {
	if x == nil {
		return nil, false
	}
	col, ok := x.byName[name]
	return col, ok
}

// Len reports the total item count across all collections.
func (x *Index) Len() int {
	if x == nil {
		return 0
	}
	n := 0
	for _, col := range x.collections {
		n += len(col.Items)
	}
	return n
}

// AllItems concatenates every collection's items, collection order first,
// item order second.
func (x *Index) AllItems() []Item {
	if x == nil {
		return nil
	}
	items := make([]Item, 0, x.Len())
	for _, col := range x.collections {
		items = append(items, col.Items...)
	}
	return items
}

// ItemsFor returns the items for the named collection, the full
// concatenation for All, and an empty sequence for unknown names.
func (x *Index) ItemsFor(name string) []Item {
	if name == All {
		return x.AllItems()
	}
	col, ok := x.Collection(name)
	if !ok {
		return nil
	}
	return col.Items
}

// Search returns the items whose display text contains the trimmed query,
// case-insensitively, in catalog order (no relevance ranking). Keys and
// category names match too, so a query can pull in a whole collection.
//
// Search must not be handed an empty query: empty means "show the active
// collection" and the selection layer routes it through ItemsFor instead.
func (x *Index) Search(query string) []Item {
	if x == nil {
		return nil
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var matches []Item
	for _, col := range x.collections {
		for _, item := range col.Items {
			if strings.Contains(strings.ToLower(item.Text), q) ||
				strings.Contains(strings.ToLower(item.Key), q) ||
				strings.Contains(strings.ToLower(item.Category), q) {
				matches = append(matches, item)
			}
		}
	}
	return matches
}
