// Package loader orchestrates fetching, caching, parsing, and merging of
// OWO catalog sources.
package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"tableflip.dev/owo/pkg/cache"
	"tableflip.dev/owo/pkg/catalog"
)

// Doer abstracts the HTTP client; *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Loader fetches catalog sources sequentially, one URL at a time, reading
// through the cache store and writing fetched payloads back. The store and
// client are injected at construction; there is no package-level binding.
type Loader struct {
	Store  cache.Store
	Client Doer
}

// New builds a Loader over the given store with a default HTTP client.
func New(store cache.Store) *Loader {
	return &Loader{
		Store:  store,
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

// SourceFailure records why one URL contributed nothing to the catalog.
type SourceFailure struct {
	URL string
	Err error
}

// Result carries the merged catalog plus per-source diagnostics. Failures
// and warnings are values; the caller chooses whether to surface them.
type Result struct {
	Collections []*catalog.Collection
	Warnings    []catalog.Warning
	Failures    []SourceFailure
	CacheHits   int
}

// LastError returns the most recent source failure, nil when every source
// loaded.
func (r Result) LastError() error {
	if len(r.Failures) == 0 {
		return nil
	}
	return r.Failures[len(r.Failures)-1].Err
}

// LoadAll processes urls in the order supplied. Each source is fetched (or
// served from cache when forceRefresh is false), parsed, and accumulated;
// a failing source is recorded and skipped so one bad source never blocks
// the rest. The accumulated collections are merged before returning.
//
// LoadAll never fails as a whole: the result always carries whatever loaded
// successfully, possibly nothing. Callers wanting fail-fast semantics for a
// single known payload should use catalog.Parse directly.
func (l *Loader) LoadAll(ctx context.Context, urls []string, forceRefresh bool) Result {
	var res Result

	for _, raw := range urls {
		source := strings.TrimSpace(raw)
		if source == "" {
			continue
		}
		parsed, fromCache, err := l.loadOne(ctx, source, forceRefresh)
		if err != nil {
			res.Failures = append(res.Failures, SourceFailure{URL: source, Err: err})
			continue
		}
		if fromCache {
			res.CacheHits++
		}
		res.Collections = append(res.Collections, parsed.Collections...)
		res.Warnings = append(res.Warnings, parsed.Warnings...)
	}

	res.Collections = catalog.Merge(res.Collections)
	return res
}

// loadOne retrieves and parses a single source. When the cache holds an
// entry and forceRefresh is off, the cached payload is parsed without any
// network traffic; otherwise the source is fetched and written back to the
// cache (with its ETag when the server sent one) before parsing.
func (l *Loader) loadOne(ctx context.Context, source string, forceRefresh bool) (catalog.Result, bool, error) {
	if u, err := url.Parse(source); err != nil || u.Scheme == "" || u.Host == "" {
		return catalog.Result{}, false, &InvalidURLError{URL: source}
	}

	if !forceRefresh && l.Store != nil {
		if entry, ok := l.Store.Get(source); ok {
			parsed, err := catalog.Parse(entry.Payload, source)
			if err != nil {
				return catalog.Result{}, false, err
			}
			return parsed, true, nil
		}
	}

	body, etag, err := l.fetch(ctx, source)
	if err != nil {
		return catalog.Result{}, false, err
	}

	// Syntax is checked before the payload touches the cache so the cache
	// only ever holds well-formed JSON.
	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return catalog.Result{}, false, &SyntaxError{URL: source, Err: err}
	}

	if l.Store != nil {
		if err := l.Store.Set(source, raw, etag); err != nil {
			// A broken cache is a degradation, not a failure: the fetched
			// payload is still good.
			fmt.Fprintf(os.Stderr, "loader: cache write %s: %v\n", source, err)
		}
	}

	parsed, err := catalog.Parse(raw, source)
	if err != nil {
		return catalog.Result{}, false, err
	}
	return parsed, false, nil
}

// TODO: send If-None-Match with the stored ETag and add a 304 path that
// re-uses the cached payload instead of re-downloading.
func (l *Loader) fetch(ctx context.Context, source string) ([]byte, string, error) {
	client := l.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, "", &InvalidURLError{URL: source}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, "", &NetworkError{URL: source, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", &StatusError{URL: source, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", &NetworkError{URL: source, Err: err}
	}
	return body, resp.Header.Get("ETag"), nil
}
