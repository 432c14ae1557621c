// Package debounce coalesces rapid-fire input into a single delayed persist
// call per logical field, so every keystroke does not rewrite the store.
package debounce

import (
	"sync"
	"time"
)

// Delays tuned per field kind. Workbook answers are long-form and saved less
// urgently than interactive text fields.
const (
	TextDelay     = 300 * time.Millisecond
	WorkbookDelay = 1500 * time.Millisecond
)

// Status describes the save state of the field a Writer backs, for UI
// feedback lines.
type Status int

const (
	StatusIdle Status = iota
	StatusUnsaved
	StatusSaving
	StatusSaved
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusUnsaved:
		return "unsaved"
	case StatusSaving:
		return "saving"
	case StatusSaved:
		return "saved"
	case StatusError:
		return "error"
	default:
		return ""
	}
}

// Writer debounces writes of one logical field. Every Set cancels the
// pending deadline and schedules a new one; when a deadline fires without an
// intervening Set, the latest value is persisted exactly once. A Writer torn
// down via Stop discards its pending write; the loss is bounded by the delay
// window and accepted.
type Writer struct {
	mu      sync.Mutex
	delay   time.Duration
	persist func(string) error

	timer  *time.Timer
	value  string
	status Status
	err    error
}

func NewWriter(delay time.Duration, persist func(string) error) *Writer {
	return &Writer{delay: delay, persist: persist, status: StatusIdle}
}

// Set records the latest value and resets the deadline.
func (w *Writer) Set(value string) {
	w.mu.Lock()
	w.value = value
	w.status = StatusUnsaved
	w.err = nil
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.delay, w.fire)
	w.mu.Unlock()
}

func (w *Writer) fire() {
	w.mu.Lock()
	if w.timer == nil {
		// Stopped or flushed between the deadline firing and the lock.
		w.mu.Unlock()
		return
	}
	w.timer = nil
	value := w.value
	w.status = StatusSaving
	w.mu.Unlock()

	err := w.persist(value)

	w.mu.Lock()
	if w.status == StatusSaving {
		if err != nil {
			w.status = StatusError
			w.err = err
		} else {
			w.status = StatusSaved
		}
	}
	w.mu.Unlock()
}

// Flush persists the latest value immediately, cancelling any pending
// deadline. Used by explicit submit paths.
func (w *Writer) Flush() error {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	value := w.value
	w.status = StatusSaving
	w.mu.Unlock()

	err := w.persist(value)

	w.mu.Lock()
	if err != nil {
		w.status = StatusError
		w.err = err
	} else {
		w.status = StatusSaved
	}
	w.mu.Unlock()
	return err
}

// Stop discards any pending write. There is no flush-on-teardown.
func (w *Writer) Stop() {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mu.Unlock()
}

// Status reports the current save state and, for StatusError, the cause.
func (w *Writer) Status() (Status, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status, w.err
}
