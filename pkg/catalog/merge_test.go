package catalog

import "testing"

func col(name string, source string, keys ...string) *Collection {
	items := make([]Item, 0, len(keys))
	for _, k := range keys {
		items = append(items, Item{Key: k, Icon: k, Text: k, Type: TypeEmoji, Category: name})
	}
	return &Collection{Name: name, Type: TypeEmoji, Items: items, Source: source}
}

func keysOf(c *Collection) []string {
	keys := make([]string, 0, len(c.Items))
	for _, item := range c.Items {
		keys = append(keys, item.Key)
	}
	return keys
}

func sameKeys(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestMergeFirstOccurrenceWins(t *testing.T) {
	merged := Merge([]*Collection{
		col("Faces", "one.json", "a"),
		col("Faces", "two.json", "a", "b"),
	})

	if len(merged) != 1 {
		t.Fatalf("expected 1 collection, got %d", len(merged))
	}
	if !sameKeys(keysOf(merged[0]), []string{"a", "b"}) {
		t.Fatalf("expected items [a b], got %v", keysOf(merged[0]))
	}
	if merged[0].Source != "one.json, two.json" {
		t.Fatalf("expected joined source, got %q", merged[0].Source)
	}
}

func TestMergeEmptyFirstSourceTakesLaterOne(t *testing.T) {
	merged := Merge([]*Collection{
		col("Faces", "", "a"),
		col("Faces", "two.json", "b"),
	})

	if len(merged) != 1 {
		t.Fatalf("expected 1 collection, got %d", len(merged))
	}
	if merged[0].Source != "two.json" {
		t.Fatalf("expected source without leading separator, got %q", merged[0].Source)
	}
}

func TestMergePreservesFirstAppearanceOrder(t *testing.T) {
	merged := Merge([]*Collection{
		col("B", "s1", "b_0"),
		col("A", "s1", "a_0"),
		col("B", "s2", "b_1"),
	})

	if len(merged) != 2 {
		t.Fatalf("expected 2 collections, got %d", len(merged))
	}
	if merged[0].Name != "B" || merged[1].Name != "A" {
		t.Fatalf("order lost: %q, %q", merged[0].Name, merged[1].Name)
	}
	if !sameKeys(keysOf(merged[0]), []string{"b_0", "b_1"}) {
		t.Fatalf("expected [b_0 b_1], got %v", keysOf(merged[0]))
	}
}

func TestMergeKeepsEarlierDefinitionOnConflict(t *testing.T) {
	first := col("Faces", "one.json", "a")
	first.Items[0].Text = "original"
	second := col("Faces", "two.json", "a")
	second.Items[0].Text = "override attempt"

	merged := Merge([]*Collection{first, second})
	if merged[0].Items[0].Text != "original" {
		t.Fatalf("later source overrode earlier item: %q", merged[0].Items[0].Text)
	}
}

func TestMergeDedupesWithinOneCollection(t *testing.T) {
	merged := Merge([]*Collection{col("Faces", "one.json", "a", "a", "b")})
	if !sameKeys(keysOf(merged[0]), []string{"a", "b"}) {
		t.Fatalf("expected [a b], got %v", keysOf(merged[0]))
	}
}

func TestMergeIdempotent(t *testing.T) {
	input := []*Collection{
		col("Faces", "one.json", "a", "b"),
		col("Animals", "one.json", "x"),
		col("Faces", "two.json", "b", "c"),
	}

	once := Merge(input)
	twice := Merge(once)

	if len(once) != len(twice) {
		t.Fatalf("collection count changed: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].Name != twice[i].Name {
			t.Fatalf("collection order changed at %d: %q vs %q", i, once[i].Name, twice[i].Name)
		}
		if !sameKeys(keysOf(once[i]), keysOf(twice[i])) {
			t.Fatalf("items changed for %q: %v vs %v", once[i].Name, keysOf(once[i]), keysOf(twice[i]))
		}
	}
}

func TestMergeDoesNotMutateInput(t *testing.T) {
	a := col("Faces", "one.json", "a")
	b := col("Faces", "two.json", "b")

	_ = Merge([]*Collection{a, b})

	if len(a.Items) != 1 || a.Source != "one.json" {
		t.Fatalf("input collection mutated: %d items source %q", len(a.Items), a.Source)
	}
}
