package catalog

// Merge combines collections sharing a name into one, preserving the order
// of first appearance. Item sequences are concatenated in input order and
// de-duplicated by key, keeping the first occurrence: a later source never
// overrides an earlier definition of the same key. Sources of merged
// collections are joined with ", " for diagnostics.
//
// Merge is pure and idempotent: the inputs are not mutated and merging an
// already-merged list yields the same result.
func Merge(collections []*Collection) []*Collection {
	merged := make([]*Collection, 0, len(collections))
	byName := make(map[string]int, len(collections))
	seen := make(map[string]map[string]bool, len(collections))

	for _, col := range collections {
		if col == nil {
			continue
		}
		idx, ok := byName[col.Name]
		if !ok {
			idx = len(merged)
			byName[col.Name] = idx
			seen[col.Name] = make(map[string]bool, len(col.Items))
			merged = append(merged, &Collection{
				Name:   col.Name,
				Type:   col.Type,
				Items:  make([]Item, 0, len(col.Items)),
				Source: col.Source,
			})
		} else if col.Source != "" {
			if merged[idx].Source == "" {
				merged[idx].Source = col.Source
			} else {
				merged[idx].Source = merged[idx].Source + ", " + col.Source
			}
		}

		keys := seen[col.Name]
		for _, item := range col.Items {
			if keys[item.Key] {
				continue
			}
			keys[item.Key] = true
			merged[idx].Items = append(merged[idx].Items, item)
		}
	}
	return merged
}
