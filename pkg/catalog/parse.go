package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// WarningKind classifies non-fatal parse diagnostics.
type WarningKind string

const (
	// WarnItemInvalid marks an item that was dropped during sanitation.
	WarnItemInvalid WarningKind = "item-invalid"
	// WarnDuplicateKey marks a key collision inside one parsed category.
	// Both copies are kept; merging de-duplicates later, first wins.
	WarnDuplicateKey WarningKind = "duplicate-key"
)

// Warning records a non-fatal defect found while parsing a source document.
// Warnings are returned as values so callers decide whether to surface,
// aggregate, or drop them.
type Warning struct {
	Kind     WarningKind
	Source   string
	Category string
	Index    int
	Reason   string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s[%d] in %s: %s", w.Kind, w.Category, w.Index, w.Source, w.Reason)
}

// SchemaError reports a document-level shape violation. The whole source is
// rejected; nothing from it is imported.
type SchemaError struct {
	Source string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("catalog: invalid OWO document in %s: %s", e.Source, e.Reason)
}

// Result carries the collections parsed from one document plus itemized
// warnings for the defects that were skipped.
type Result struct {
	Collections []*Collection
	Warnings    []Warning
}

type rawItem struct {
	Icon *string `json:"icon"`
	Text *string `json:"text"`
}

type rawCategory struct {
	Type      string     `json:"type"`
	Container []*rawItem `json:"container"`
}

// Parse validates and converts one OWO document. Validation is two-tiered:
// the document shape (object of categories, each with a known type and a
// container of icon/text objects) is checked strictly and any violation
// fails the whole document, while per-item sanitation is lenient, skipping
// bad items with a Warning. A category left with zero valid items is
// omitted. Category order in the document is preserved.
//
// Malformed JSON is returned as a wrapped json error; shape violations as a
// *SchemaError. This is the fail-fast single-payload entry point; multi-URL
// loading isolates these errors per source instead.
func Parse(data []byte, source string) (Result, error) {
	var res Result

	categories, err := decodeDocument(data, source)
	if err != nil {
		return res, err
	}

	for _, cat := range categories {
		collection, warnings := parseCategory(cat, source)
		res.Warnings = append(res.Warnings, warnings...)
		if len(collection.Items) > 0 {
			res.Collections = append(res.Collections, collection)
		}
	}
	return res, nil
}

type namedCategory struct {
	name string
	typ  ItemType
	raw  rawCategory
}

// decodeDocument runs the strict document-shape tier. It uses a token
// decoder so category order survives; map decoding would scramble it.
func decodeDocument(data []byte, source string) ([]namedCategory, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("catalog: invalid JSON in %s: %w", source, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, &SchemaError{Source: source, Reason: "top level is not an object"}
	}

	var categories []namedCategory
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("catalog: invalid JSON in %s: %w", source, err)
		}
		name, ok := tok.(string)
		if !ok || strings.TrimSpace(name) == "" {
			return nil, &SchemaError{Source: source, Reason: "empty category name"}
		}

		var raw rawCategory
		if err := dec.Decode(&raw); err != nil {
			var syntaxErr *json.SyntaxError
			if errors.As(err, &syntaxErr) {
				return nil, fmt.Errorf("catalog: invalid JSON in %s: %w", source, err)
			}
			return nil, &SchemaError{
				Source: source,
				Reason: fmt.Sprintf("category %q: %v", name, err),
			}
		}
		if err := validateCategory(raw); err != nil {
			return nil, &SchemaError{
				Source: source,
				Reason: fmt.Sprintf("category %q: %v", name, err),
			}
		}
		typ, err := ParseItemType(raw.Type)
		if err != nil {
			return nil, &SchemaError{
				Source: source,
				Reason: fmt.Sprintf("category %q: %v", name, err),
			}
		}
		categories = append(categories, namedCategory{name: name, typ: typ, raw: raw})
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("catalog: invalid JSON in %s: %w", source, err)
	}
	return categories, nil
}

func validateCategory(raw rawCategory) error {
	if raw.Container == nil {
		return errors.New("missing container array")
	}
	for i, item := range raw.Container {
		if item == nil {
			return fmt.Errorf("container[%d] is not an object", i)
		}
		if item.Icon == nil || strings.TrimSpace(*item.Icon) == "" {
			return fmt.Errorf("container[%d] missing icon", i)
		}
		if item.Text == nil || strings.TrimSpace(*item.Text) == "" {
			return fmt.Errorf("container[%d] missing text", i)
		}
	}
	return nil
}

// parseCategory runs the lenient per-item tier over one validated category.
func parseCategory(cat namedCategory, source string) (*Collection, []Warning) {
	var warnings []Warning
	items := make([]Item, 0, len(cat.raw.Container))
	seen := make(map[string]bool, len(cat.raw.Container))

	for i, raw := range cat.raw.Container {
		item, err := parseItem(raw, cat.name, cat.typ, i)
		if err != nil {
			warnings = append(warnings, Warning{
				Kind:     WarnItemInvalid,
				Source:   source,
				Category: cat.name,
				Index:    i,
				Reason:   err.Error(),
			})
			continue
		}
		if seen[item.Key] {
			warnings = append(warnings, Warning{
				Kind:     WarnDuplicateKey,
				Source:   source,
				Category: cat.name,
				Index:    i,
				Reason:   fmt.Sprintf("duplicate key %q", item.Key),
			})
		}
		seen[item.Key] = true
		items = append(items, item)
	}

	return &Collection{
		Name:   cat.name,
		Type:   cat.typ,
		Items:  items,
		Source: source,
	}, warnings
}

func parseItem(raw *rawItem, category string, typ ItemType, index int) (Item, error) {
	icon := strings.TrimSpace(*raw.Icon)
	text := strings.TrimSpace(*raw.Text)
	if icon == "" || text == "" {
		return Item{}, errors.New("missing required icon or text field")
	}

	item := Item{
		Key:      ItemKey(category, index),
		Icon:     icon,
		Text:     text,
		Type:     typ,
		Category: category,
	}

	if typ == TypeImage {
		if src := extractImgSrc(icon); src != "" {
			item.Icon = src
			item.URL = src
		} else {
			// No markup: the raw icon value is the URL itself.
			item.URL = icon
		}
	}
	return item, nil
}

var imgSrcPattern = regexp.MustCompile(`(?i)src=['"]([^'"]+)['"]`)

// extractImgSrc pulls the src attribute out of an HTML <img> snippet.
// Returns "" when the value carries no recognizable markup.
func extractImgSrc(html string) string {
	match := imgSrcPattern.FindStringSubmatch(html)
	if match == nil {
		return ""
	}
	return match[1]
}
