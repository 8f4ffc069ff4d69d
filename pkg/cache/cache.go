package cache

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/peterbourgon/diskv/v3"
)

// Entry is one cached catalog payload. Payload holds the raw JSON document
// exactly as fetched; it has passed a syntax check but not schema
// validation, which re-runs on every parse.
type Entry struct {
	URL       string          `json:"url"`
	Payload   json.RawMessage `json:"payload"`
	ETag      string          `json:"etag,omitempty"`
	FetchedAt time.Time       `json:"fetchedAt"`
}

// Age reports how long ago the entry was fetched.
func (e Entry) Age() time.Duration {
	if e.FetchedAt.IsZero() {
		return 0
	}
	return time.Since(e.FetchedAt)
}

// Store is the narrow persistence contract the loader consumes. Writes are
// last-write-wins; concurrent pickers racing on the same key is acceptable.
type Store interface {
	Get(url string) (Entry, bool)
	Set(url string, payload json.RawMessage, etag string) error
	Erase(url string) error
	URLs(ctx context.Context) []string
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Store backed by diskv using the provided config.
func Load(cfg Config) (Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &store{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type store struct {
	d        *diskv.Diskv
	basePath string
}

// Get returns the cached entry for a source URL. Unreadable or corrupt
// entries count as misses: the loader falls back to a fresh fetch.
func (s *store) Get(url string) (Entry, bool) {
	key := toKey(url)
	if !s.d.Has(key) {
		return Entry{}, false
	}
	val, err := s.d.Read(key)
	if err != nil {
		return Entry{}, false
	}
	var e Entry
	if err := json.Unmarshal(val, &e); err != nil {
		fmt.Fprintf(os.Stderr, "cache: %s: %s\n", url, err)
		return Entry{}, false
	}
	if e.URL == "" {
		e.URL = url
	}
	return e, true
}

// Set writes a fetched payload back under its source URL, stamping the
// fetch time.
func (s *store) Set(url string, payload json.RawMessage, etag string) error {
	e := Entry{
		URL:       url,
		Payload:   payload,
		ETag:      etag,
		FetchedAt: time.Now(),
	}
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("cache: encode %s: %w", url, err)
	}
	if err := s.d.Write(toKey(url), data); err != nil {
		return fmt.Errorf("cache: write %s: %w", url, err)
	}
	return nil
}

// Erase drops the cached entry for a source URL.
func (s *store) Erase(url string) error {
	return s.d.Erase(toKey(url))
}

// URLs lists every source URL with a cached entry.
func (s *store) URLs(ctx context.Context) []string {
	all := make([]string, 0)
	for key := range s.d.Keys(ctx.Done()) {
		url, err := fromKey(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cache: %s: %s\n", key, err)
			continue
		}
		all = append(all, url)
	}
	return all
}

// Keys are base64 so arbitrary URLs map onto flat, filesystem-safe names.
func toKey(url string) string {
	return base64.URLEncoding.EncodeToString([]byte(url))
}

func fromKey(key string) (string, error) {
	url, err := base64.URLEncoding.DecodeString(key)
	if err != nil {
		return "", err
	}
	return string(url), nil
}
