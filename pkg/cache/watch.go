package cache

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes the nature of a cache change notification.
type EventType int

const (
	// EventSourceChanged indicates the cached payload for one source URL
	// was written or removed.
	EventSourceChanged EventType = iota

	// EventCacheInvalidated signals a change that could not be attributed
	// to a single source; consumers should reload everything.
	EventCacheInvalidated
)

// Event is emitted by Store.Watch when another process updates the cache.
type Event struct {
	Type EventType
	URL  string
}

// Watch streams cache change events until ctx is cancelled. Callers should
// drain the channel; events are dropped rather than blocking the watcher
// when the consumer lags. The channel closes once ctx is done or the
// watcher fails unrecoverably.
func (s *store) Watch(ctx context.Context) (<-chan Event, error) {
	if s.basePath == "" {
		return nil, errors.New("cache: base path unknown")
	}
	if err := os.MkdirAll(s.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("cache: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("cache: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "cache: watcher close: %v\n", err)
			}
		})
	}

	if err := watcher.Add(s.basePath); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("cache: watch %s: %w", s.basePath, err)
	}

	events := make(chan Event, 64)

	go func() {
		defer close(events)
		defer closeWatcher()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Drop when the consumer is not ready; the next reload
				// picks the change up anyway.
			}
		}

		// Coalesce bursts of writes (diskv writes via temp file + rename)
		// so consumers redraw once per refresh, not once per syscall.
		var (
			mu      sync.Mutex
			pending map[string]Event
			timer   *time.Timer
		)
		enqueue := func(ev Event) {
			mu.Lock()
			defer mu.Unlock()
			if pending == nil {
				pending = make(map[string]Event)
			}
			pending[ev.URL] = ev
			if timer == nil {
				timer = time.AfterFunc(100*time.Millisecond, func() {
					mu.Lock()
					batch := pending
					pending = nil
					timer = nil
					mu.Unlock()
					for _, ev := range batch {
						send(ev)
					}
				})
			}
		}
		defer func() {
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			mu.Unlock()
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				enqueue(Event{Type: EventCacheInvalidated})
				_ = err
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				url, err := fromKey(filepath.Base(evt.Name))
				if err != nil {
					enqueue(Event{Type: EventCacheInvalidated})
					continue
				}
				enqueue(Event{Type: EventSourceChanged, URL: url})
			}
		}
	}()

	return events, nil
}
