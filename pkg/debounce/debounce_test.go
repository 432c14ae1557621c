package debounce

import (
	"errors"
	"sync"
	"testing"
	"time"
)

type persistSpy struct {
	mu     sync.Mutex
	calls  []string
	failOn string
}

func (p *persistSpy) persist(value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, value)
	if p.failOn != "" && value == p.failOn {
		return errors.New("refused")
	}
	return nil
}

func (p *persistSpy) snapshot() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.calls...)
}

func waitForStatus(t *testing.T, w *Writer, want Status) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if got, _ := w.Status(); got == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	got, err := w.Status()
	t.Fatalf("status = %v (err %v), want %v", got, err, want)
}

func TestRapidSetsCoalesceToOneWrite(t *testing.T) {
	spy := &persistSpy{}
	w := NewWriter(30*time.Millisecond, spy.persist)

	for _, v := range []string{"F", "Fe", "Fee", "Feel", "Feeling grateful"} {
		w.Set(v)
		time.Sleep(5 * time.Millisecond)
	}
	waitForStatus(t, w, StatusSaved)

	calls := spy.snapshot()
	if len(calls) != 1 {
		t.Fatalf("persist called %d times, want 1: %v", len(calls), calls)
	}
	if calls[0] != "Feeling grateful" {
		t.Fatalf("persisted %q, want last value", calls[0])
	}
}

func TestStopDiscardsPendingWrite(t *testing.T) {
	spy := &persistSpy{}
	w := NewWriter(30*time.Millisecond, spy.persist)
	w.Set("about to vanish")
	w.Stop()

	time.Sleep(100 * time.Millisecond)
	if calls := spy.snapshot(); len(calls) != 0 {
		t.Fatalf("stopped writer still persisted: %v", calls)
	}
}

func TestFlushWritesImmediately(t *testing.T) {
	spy := &persistSpy{}
	w := NewWriter(time.Hour, spy.persist)
	w.Set("now please")
	if err := w.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if calls := spy.snapshot(); len(calls) != 1 || calls[0] != "now please" {
		t.Fatalf("flush calls: %v", calls)
	}
	if got, _ := w.Status(); got != StatusSaved {
		t.Fatalf("status after flush = %v", got)
	}

	// The cancelled deadline must not fire a second write.
	time.Sleep(50 * time.Millisecond)
	if calls := spy.snapshot(); len(calls) != 1 {
		t.Fatalf("deadline fired after flush: %v", calls)
	}
}

func TestPersistFailureBecomesErrorStatus(t *testing.T) {
	spy := &persistSpy{failOn: "bad"}
	w := NewWriter(10*time.Millisecond, spy.persist)
	w.Set("bad")
	waitForStatus(t, w, StatusError)
	if _, err := w.Status(); err == nil {
		t.Fatal("expected an error cause")
	}

	// A fresh keystroke clears the error and can still save.
	w.Set("good again")
	waitForStatus(t, w, StatusSaved)
}

func TestSetDuringSaveKeepsUnsavedStatus(t *testing.T) {
	block := make(chan struct{})
	started := make(chan struct{}, 1)
	w := NewWriter(5*time.Millisecond, func(string) error {
		started <- struct{}{}
		<-block
		return nil
	})
	w.Set("first")
	<-started
	w.Set("second") // arrives while the first persist is in flight
	close(block)

	waitForStatus(t, w, StatusSaved) // second deadline persists "second"
}
