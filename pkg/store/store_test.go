package store

import (
	"encoding/json"
	"testing"
	"time"

	"tableflip.dev/recovery/pkg/record"
)

func TestLoadListAbsentKeyIsEmpty(t *testing.T) {
	s := New(NewMemory())
	if got := s.LoadList(KeyJournal); len(got) != 0 {
		t.Fatalf("expected empty list, got %d elements", len(got))
	}
}

func TestLoadListCorruptDocumentIsEmpty(t *testing.T) {
	m := NewMemory()
	if err := m.Write(KeyGoals, []byte("{not json")); err != nil {
		t.Fatalf("seed: %v", err)
	}
	s := New(m)
	if got := s.LoadList(KeyGoals); len(got) != 0 {
		t.Fatalf("corrupt document should degrade to empty, got %d", len(got))
	}
}

func TestSaveListRoundTrip(t *testing.T) {
	s := New(NewMemory())
	wire := []record.Wire{record.Encode(record.Record{
		ID:        "abc",
		Text:      "Feeling grateful today",
		Timestamp: time.Now().UTC().Truncate(time.Millisecond),
	}, false)}
	if err := s.SaveList(KeyJournal, wire); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw := s.LoadList(KeyJournal)
	if len(raw) != 1 {
		t.Fatalf("expected 1 element, got %d", len(raw))
	}
	var got record.Wire
	if err := json.Unmarshal(raw[0], &got); err != nil {
		t.Fatalf("unmarshal element: %v", err)
	}
	if got.ID != "abc" || got.Text != "Feeling grateful today" {
		t.Fatalf("unexpected element: %+v", got)
	}
}

func TestLoadDateAbsentIsNil(t *testing.T) {
	s := New(NewMemory())
	if got := s.LoadDate(); got != nil {
		t.Fatalf("expected nil date, got %v", got)
	}
}

func TestLoadDateUnparsableIsNil(t *testing.T) {
	m := NewMemory()
	if err := m.Write(KeySobriety, []byte("yesterday-ish")); err != nil {
		t.Fatalf("seed: %v", err)
	}
	s := New(m)
	if got := s.LoadDate(); got != nil {
		t.Fatalf("unparsable date should read as nil, got %v", got)
	}
}

func TestSaveDateStoresVerbatimISOString(t *testing.T) {
	m := NewMemory()
	s := New(m)
	when := time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)
	if err := s.SaveDate(when); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, err := m.Read(KeySobriety)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(raw) != "2025-06-01T08:30:00.000Z" {
		t.Fatalf("date not stored as bare ISO string: %q", raw)
	}
	got := s.LoadDate()
	if got == nil || !got.Equal(when) {
		t.Fatalf("round trip: got %v want %v", got, when)
	}
}

func TestFlagDefaultsFalse(t *testing.T) {
	s := New(NewMemory())
	if s.LoadFlag() {
		t.Fatal("flag should default to false")
	}
	if err := s.SaveFlag(true); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !s.LoadFlag() {
		t.Fatal("flag should read back true")
	}
}

func TestLoadAllOmitsTipFlagAndIncludesRawFallback(t *testing.T) {
	m := NewMemory()
	s := New(m)
	if err := s.SaveFlag(true); err != nil {
		t.Fatalf("save flag: %v", err)
	}
	if err := s.SaveDate(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("save date: %v", err)
	}
	if err := s.SaveList(KeyJournal, []record.Wire{record.Encode(record.Record{
		ID: "a", Text: "one", Timestamp: time.Now(),
	}, false)}); err != nil {
		t.Fatalf("save list: %v", err)
	}
	// A corrupt goals document must show up as a raw string, not vanish.
	if err := m.Write(KeyGoals, []byte("{broken")); err != nil {
		t.Fatalf("seed: %v", err)
	}

	all := s.LoadAll()
	if _, ok := all[KeyWelcomeTip]; ok {
		t.Fatal("export snapshot must omit the welcome tip flag")
	}
	if _, ok := all[KeyWorkbook]; ok {
		t.Fatal("absent keys should be omitted")
	}
	entries, ok := all[KeyJournal].([]any)
	if !ok || len(entries) != 1 {
		t.Fatalf("journal key wrong shape: %#v", all[KeyJournal])
	}
	if got, ok := all[KeyGoals].(string); !ok || got != "{broken" {
		t.Fatalf("corrupt key should degrade to its raw string: %#v", all[KeyGoals])
	}
	if got, ok := all[KeySobriety].(string); !ok || got != "2025-01-15T00:00:00.000Z" {
		t.Fatalf("sobriety key should be the raw ISO string: %#v", all[KeySobriety])
	}
}

func TestSaveStampsSchemaVersion(t *testing.T) {
	m := NewMemory()
	s := New(m)
	if err := s.SaveMap(KeyWorkbook, map[string]string{"step-1-A-1": "honest answer"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, err := m.Read(KeySchema)
	if err != nil {
		t.Fatalf("schema key missing: %v", err)
	}
	if string(raw) != SchemaVersion {
		t.Fatalf("schema version %q, want %q", raw, SchemaVersion)
	}
}

func TestGenerateIDUnique(t *testing.T) {
	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		id := GenerateID()
		if id == "" {
			t.Fatal("empty id")
		}
		if seen[id] {
			t.Fatalf("duplicate id %q after %d draws", id, i)
		}
		seen[id] = true
	}
}
