package loader

import "fmt"

// The loader distinguishes why a source contributed nothing — a bad URL, a
// transport failure, an HTTP error status, malformed JSON, or a schema
// mismatch (catalog.SchemaError) — but treats them all the same at the
// control-flow level: skip the source, continue with the rest.

// InvalidURLError reports a source that is not a well-formed absolute URL.
type InvalidURLError struct {
	URL string
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("loader: invalid URL format: %s", e.URL)
}

// NetworkError reports a transport-level failure (DNS, connect, timeout).
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("loader: network error loading %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// StatusError reports a non-2xx HTTP response.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("loader: HTTP %s loading %s", e.Status, e.URL)
}

// SyntaxError reports a response body that is not valid JSON.
type SyntaxError struct {
	URL string
	Err error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("loader: invalid JSON from %s: %v", e.URL, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }
