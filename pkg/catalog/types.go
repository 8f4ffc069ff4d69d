// Package catalog defines the OWO emoji catalog model: items, collections,
// document parsing, merging, and the searchable index.
package catalog

import (
	"fmt"
	"regexp"
	"strings"
)

// ItemType identifies how a catalog item is rendered and inserted.
type ItemType string

const (
	// TypeEmoticon is a text emoticon such as "( ˘ω˘ )".
	TypeEmoticon ItemType = "emoticon"
	// TypeEmoji is a unicode emoji glyph.
	TypeEmoji ItemType = "emoji"
	// TypeImage is an image item whose icon resolves to a URL.
	TypeImage ItemType = "image"
)

// AllItemTypes returns the list of supported item types.
func AllItemTypes() []ItemType {
	return []ItemType{
		TypeEmoticon,
		TypeEmoji,
		TypeImage,
	}
}

// ParseItemType converts a string to an ItemType or returns an error for
// unknown values. Unlike collection metadata elsewhere there is no default:
// the OWO format requires an explicit type on every category.
func ParseItemType(raw string) (ItemType, error) {
	t := ItemType(strings.ToLower(strings.TrimSpace(raw)))
	for _, candidate := range AllItemTypes() {
		if candidate == t {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("catalog: unknown item type %q", raw)
}

// MustItemType parses the input and panics on error. Intended for tests.
func MustItemType(raw string) ItemType {
	t, err := ParseItemType(raw)
	if err != nil {
		panic(err)
	}
	return t
}

// Item is one selectable catalog entry.
type Item struct {
	// Key is a stable identifier derived from the category name and the
	// item's position in its source container. It is unique within one
	// parsed category but not guaranteed unique across same-named
	// categories from different sources; the merge step resolves that.
	Key      string   `json:"key"`
	Icon     string   `json:"icon"`
	Text     string   `json:"text"`
	Type     ItemType `json:"type"`
	Category string   `json:"category"`
	// URL is set for image items only: the resolved image location.
	URL string `json:"url,omitempty"`
}

// Collection is one named category, possibly aggregated from several source
// files. Item order follows source order with merged duplicates removed.
type Collection struct {
	Name  string   `json:"name"`
	Type  ItemType `json:"type"`
	Items []Item   `json:"items"`
	// Source is a comma-joined list of originating URLs, diagnostics only.
	Source string `json:"source"`
}

var keyWhitespace = regexp.MustCompile(`\s+`)

// ItemKey derives the positional item key for a category: the category name
// lower-cased with whitespace runs collapsed to underscores, then the index.
func ItemKey(category string, index int) string {
	normalized := keyWhitespace.ReplaceAllString(strings.ToLower(category), "_")
	return fmt.Sprintf("%s_%d", normalized, index)
}
