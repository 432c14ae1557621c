package record

import (
	"encoding/json"
	"testing"
	"time"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	r := Record{
		ID:        "m3kx90abcde",
		Text:      "Feeling grateful today",
		Timestamp: now,
		Completed: true,
	}

	got := Decode(Encode(r, true))
	if got.ID != r.ID || got.Text != r.Text || got.Completed != r.Completed {
		t.Fatalf("round trip changed fields: %+v vs %+v", got, r)
	}
	if !got.Timestamp.Equal(r.Timestamp) {
		t.Fatalf("round trip lost timestamp precision: %v vs %v", got.Timestamp, r.Timestamp)
	}
}

func TestEncodeOmitsCompletedForJournal(t *testing.T) {
	r := Record{ID: "a", Text: "note", Timestamp: time.Now()}
	data, err := json.Marshal(Encode(r, false))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := m["completed"]; ok {
		t.Fatalf("journal wire record should not carry completed: %s", data)
	}
}

func TestEncodeCarriesCompletedForGoals(t *testing.T) {
	r := Record{ID: "a", Text: "call sponsor", Timestamp: time.Now()}
	data, err := json.Marshal(Encode(r, true))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v, ok := m["completed"]; !ok || v != false {
		t.Fatalf("goal wire record should carry completed=false: %s", data)
	}
}

func TestDecodeMalformedTimestampFallsBackToEpoch(t *testing.T) {
	var w Wire
	if err := json.Unmarshal([]byte(`{"id":"x","text":"t","timestamp":"not-a-date"}`), &w); err != nil {
		t.Fatalf("unmarshal should tolerate a bad timestamp: %v", err)
	}
	got := Decode(w)
	if !got.Timestamp.Equal(Epoch()) {
		t.Fatalf("expected epoch fallback, got %v", got.Timestamp)
	}
}

func TestDecodeMissingTimestampFallsBackToEpoch(t *testing.T) {
	var w Wire
	if err := json.Unmarshal([]byte(`{"id":"x","text":"t"}`), &w); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got := Decode(w)
	if !got.Timestamp.Equal(Epoch()) {
		t.Fatalf("expected epoch fallback, got %v", got.Timestamp)
	}
}

func TestTimestampStringIsMillisecondUTC(t *testing.T) {
	ts := Timestamp{Time: time.Date(2026, 3, 14, 9, 26, 53, 589_000_000, time.UTC)}
	if got, want := ts.String(), "2026-03-14T09:26:53.589Z"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
