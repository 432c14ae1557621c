package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tableflip.dev/recovery/pkg/repo"
	"tableflip.dev/recovery/pkg/store"
)

func TestSnapshotIncludesJournalOmitsTipFlag(t *testing.T) {
	s := store.New(store.NewMemory())
	if err := s.SaveFlag(true); err != nil {
		t.Fatalf("save flag: %v", err)
	}
	journal := repo.NewList(s, repo.Journal)
	if _, err := journal.Create("one entry"); err != nil {
		t.Fatalf("create: %v", err)
	}

	svc := &Service{Store: s}
	data, err := svc.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("snapshot not valid JSON: %v", err)
	}
	entries, ok := doc[store.KeyJournal].([]any)
	if !ok || len(entries) != 1 {
		t.Fatalf("journal key wrong: %#v", doc[store.KeyJournal])
	}
	if _, ok := doc[store.KeyGoals]; ok {
		t.Fatal("empty goals collection should be omitted")
	}
	if _, ok := doc[store.KeyWelcomeTip]; ok {
		t.Fatal("tip flag must not be exported")
	}
	if v, ok := doc["export_version"].(float64); !ok || int(v) != Version {
		t.Fatalf("export_version = %#v", doc["export_version"])
	}
}

func TestSnapshotDoesNotMutateStore(t *testing.T) {
	s := store.New(store.NewMemory())
	goals := repo.NewList(s, repo.Goals)
	if _, err := goals.Create("stay honest"); err != nil {
		t.Fatalf("create: %v", err)
	}
	before := goals.LoadAll()

	if _, err := (&Service{Store: s}).Snapshot(); err != nil {
		t.Fatalf("snapshot: %v", err)
	}

	after := goals.LoadAll()
	if len(after) != len(before) || after[0] != before[0] {
		t.Fatal("snapshot mutated the store")
	}
}

func TestWriteCreatesDatedFile(t *testing.T) {
	s := store.New(store.NewMemory())
	if err := s.SaveDate(time.Now()); err != nil {
		t.Fatalf("save date: %v", err)
	}
	dir := t.TempDir()

	path, err := (&Service{Store: s}).Write(dir)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if filepath.Base(path) != Filename(time.Now()) {
		t.Fatalf("unexpected filename %q", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("export file missing: %v", err)
	}
}
