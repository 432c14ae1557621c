package store

import (
	"context"
	"testing"
	"time"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func TestWatchEmitsKeyChanges(t *testing.T) {
	base := t.TempDir()
	d, err := Open(testConfig{path: base})
	if err != nil {
		t.Fatalf("open substrate: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := d.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	s := New(d)
	if err := s.SaveMap(KeyWorkbook, map[string]string{"step-1-A-1": "answered"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Key == "" || evt.Key == KeyWorkbook {
				return
			}
			if evt.Key == KeySchema {
				continue // first save also stamps the schema key
			}
			t.Fatalf("unexpected key %q", evt.Key)
		case <-deadline:
			t.Fatal("timed out waiting for change event")
		}
	}
}
