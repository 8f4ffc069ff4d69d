package catalog

import (
	"errors"
	"testing"
)

func TestParseFacesDocument(t *testing.T) {
	doc := `{"Faces": {"type":"emoji","container":[{"icon":"😀","text":"grin"},{"icon":"😀","text":"grin2"}]}}`

	res, err := Parse([]byte(doc), "faces.json")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if len(res.Collections) != 1 {
		t.Fatalf("expected 1 collection, got %d", len(res.Collections))
	}
	col := res.Collections[0]
	if col.Name != "Faces" || col.Type != TypeEmoji {
		t.Fatalf("unexpected collection %q type %q", col.Name, col.Type)
	}
	if col.Source != "faces.json" {
		t.Fatalf("expected source faces.json, got %q", col.Source)
	}
	if len(col.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(col.Items))
	}
	if col.Items[0].Key != "faces_0" || col.Items[1].Key != "faces_1" {
		t.Fatalf("unexpected keys %q, %q", col.Items[0].Key, col.Items[1].Key)
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", res.Warnings)
	}
}

func TestParsePreservesCategoryOrder(t *testing.T) {
	doc := `{
		"Zebra": {"type":"emoticon","container":[{"icon":":z:","text":"zebra"}]},
		"Apple": {"type":"emoticon","container":[{"icon":":a:","text":"apple"}]}
	}`

	res, err := Parse([]byte(doc), "order.json")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if len(res.Collections) != 2 {
		t.Fatalf("expected 2 collections, got %d", len(res.Collections))
	}
	if res.Collections[0].Name != "Zebra" || res.Collections[1].Name != "Apple" {
		t.Fatalf("document order lost: %q, %q", res.Collections[0].Name, res.Collections[1].Name)
	}
}

func TestParseKeySynthesisCollapsesWhitespace(t *testing.T) {
	doc := `{"Cool  Faces": {"type":"emoji","container":[{"icon":"😎","text":"cool"}]}}`

	res, err := Parse([]byte(doc), "cool.json")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if got := res.Collections[0].Items[0].Key; got != "cool_faces_0" {
		t.Fatalf("expected key cool_faces_0, got %q", got)
	}
}

func TestParseImageIconExtraction(t *testing.T) {
	doc := `{"Cats": {"type":"image","container":[
		{"icon":"<img src='http://x/y.png'>","text":"cat"},
		{"icon":"http://x/direct.png","text":"direct"}
	]}}`

	res, err := Parse([]byte(doc), "cats.json")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	items := res.Collections[0].Items
	if items[0].Icon != "http://x/y.png" || items[0].URL != "http://x/y.png" {
		t.Fatalf("img tag not extracted: icon=%q url=%q", items[0].Icon, items[0].URL)
	}
	if items[1].Icon != "http://x/direct.png" || items[1].URL != "http://x/direct.png" {
		t.Fatalf("direct URL not carried: icon=%q url=%q", items[1].Icon, items[1].URL)
	}
}

func TestParseImageSrcDoubleQuotesAndCase(t *testing.T) {
	doc := `{"Cats": {"type":"image","container":[{"icon":"<IMG SRC=\"http://x/z.png\">","text":"loud cat"}]}}`

	res, err := Parse([]byte(doc), "cats.json")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if got := res.Collections[0].Items[0].URL; got != "http://x/z.png" {
		t.Fatalf("case-insensitive src match failed, got %q", got)
	}
}

func TestParseSchemaViolationsFailDocument(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"top level array", `[{"type":"emoji","container":[]}]`},
		{"top level string", `"nope"`},
		{"missing type", `{"Faces": {"container":[{"icon":"x","text":"y"}]}}`},
		{"unknown type", `{"Faces": {"type":"sticker","container":[{"icon":"x","text":"y"}]}}`},
		{"missing container", `{"Faces": {"type":"emoji"}}`},
		{"container not array", `{"Faces": {"type":"emoji","container":{"icon":"x"}}}`},
		{"item not object", `{"Faces": {"type":"emoji","container":["x"]}}`},
		{"item icon not string", `{"Faces": {"type":"emoji","container":[{"icon":1,"text":"y"}]}}`},
		{"item missing text", `{"Faces": {"type":"emoji","container":[{"icon":"x"}]}}`},
		{"item blank icon", `{"Faces": {"type":"emoji","container":[{"icon":"  ","text":"y"}]}}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc), "bad.json")
			var schemaErr *SchemaError
			if !errors.As(err, &schemaErr) {
				t.Fatalf("expected SchemaError, got %v", err)
			}
		})
	}
}

func TestParseSchemaFailureInLaterCategoryRejectsAll(t *testing.T) {
	doc := `{
		"Good": {"type":"emoji","container":[{"icon":"😀","text":"grin"}]},
		"Bad": {"type":"emoji"}
	}`

	res, err := Parse([]byte(doc), "mixed.json")
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	if len(res.Collections) != 0 {
		t.Fatalf("partial document acceptance: %d collections", len(res.Collections))
	}
}

func TestParseInvalidJSONIsNotSchemaError(t *testing.T) {
	_, err := Parse([]byte(`{"Faces": {`), "trunc.json")
	if err == nil {
		t.Fatal("expected error for truncated JSON")
	}
	var schemaErr *SchemaError
	if errors.As(err, &schemaErr) {
		t.Fatalf("syntax error misclassified as schema error: %v", err)
	}
}

func TestParseEmptyDocument(t *testing.T) {
	res, err := Parse([]byte(`{}`), "empty.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Collections) != 0 {
		t.Fatalf("expected no collections, got %d", len(res.Collections))
	}
}
