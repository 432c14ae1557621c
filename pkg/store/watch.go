package store

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

// Event is emitted by Watch when a tracked key changes on disk, typically
// because another process wrote it. Key is empty when the change could not
// be attributed and callers should refresh everything.
type Event struct {
	Key string
}

// Watcher is implemented by substrates that can report external changes.
// The in-memory substrate does not; only the disk-backed one qualifies.
type Watcher interface {
	Watch(ctx context.Context) (<-chan Event, error)
}

// Watch streams change events until ctx is cancelled. Callers should drain
// the returned channel to avoid blocking the watcher; the channel closes when
// ctx is done or the watcher hits an unrecoverable error.
func (v *Diskv) Watch(ctx context.Context) (<-chan Event, error) {
	if v.basePath == "" {
		return nil, errors.New("store: base path unknown")
	}

	if err := os.MkdirAll(v.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	if err := watcher.Add(v.basePath); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", v.basePath, err)
	}

	events := make(chan Event, 64)

	go func() {
		defer close(events)
		defer closeWatcher()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Drop events when the consumer lags; the next refresh picks
				// up whatever was missed and the watcher never stalls.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// An unclassifiable error becomes a full refresh so clients
				// stay in sync even when we cannot name the change.
				throttle.Enqueue(Event{}, send)
				_ = err
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
					continue
				}
				key := filepath.Base(evt.Name)
				if key == "." || key == "" {
					throttle.Enqueue(Event{}, send)
					continue
				}
				throttle.Enqueue(Event{Key: key}, send)
			}
		}
	}()

	return events, nil
}

// eventThrottle coalesces rapid change notifications so a burst of writes
// produces a single refresh per key instead of one per syscall.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[string]struct{}
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[string]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	t.pending[ev.Key] = struct{}{}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[string]struct{})
	t.timer = nil
	t.mu.Unlock()

	for key := range pending {
		send(Event{Key: key})
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
