// Package record defines the journal/goal record type and its wire codec.
package record

import "time"

// Record is one user-authored item: a journal entry or a goal. IDs are
// assigned at creation and never change; the timestamp is bumped on every
// edit, so it tracks the latest version rather than the original write.
type Record struct {
	ID        string
	Text      string
	Timestamp time.Time
	Completed bool
}

// Wire is the JSON-safe shape persisted to the store and written by export.
// Timestamps travel as ISO-8601 strings; completed only appears for goal
// records.
type Wire struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Timestamp Timestamp `json:"timestamp"`
	Completed *bool     `json:"completed,omitempty"`
}

// Encode converts a record to its wire shape. The completed flag is carried
// only when the owning collection tracks completion.
func Encode(r Record, completable bool) Wire {
	w := Wire{
		ID:        r.ID,
		Text:      r.Text,
		Timestamp: Timestamp{Time: r.Timestamp},
	}
	if completable {
		completed := r.Completed
		w.Completed = &completed
	}
	return w
}

// Decode converts a wire record back to the in-memory shape. It cannot fail:
// an absent or garbled timestamp becomes the epoch (see Timestamp).
func Decode(w Wire) Record {
	ts := w.Timestamp.Time
	if ts.IsZero() {
		ts = Epoch()
	}
	r := Record{
		ID:        w.ID,
		Text:      w.Text,
		Timestamp: ts.UTC(),
	}
	if w.Completed != nil {
		r.Completed = *w.Completed
	}
	return r
}
