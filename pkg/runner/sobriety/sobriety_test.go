package sobriety

import (
	"context"
	"strings"
	"testing"
	"time"

	"tableflip.dev/recovery/pkg/store"
)

func testStore() *store.Store {
	return store.New(store.NewMemory())
}

func TestBeginSetsDate(t *testing.T) {
	p := testStore()
	s := Sobriety{Begin: true, DateString: "2026-01-01", Persistence: p}
	if err := s.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	date := p.LoadDate()
	if date == nil {
		t.Fatal("expected a stored date")
	}
	want := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if !date.Equal(want) {
		t.Errorf("stored date = %v, want %v", date, want)
	}
}

func TestBeginRefusesToOverwrite(t *testing.T) {
	p := testStore()
	original := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	if err := p.SaveDate(original); err != nil {
		t.Fatal(err)
	}

	s := Sobriety{Begin: true, DateString: "2026-01-01", Persistence: p}
	if err := s.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	date := p.LoadDate()
	if date == nil || !date.Equal(original) {
		t.Errorf("begin overwrote the date: got %v, want %v", date, original)
	}
}

func TestSetStagesReflectionDraft(t *testing.T) {
	p := testStore()
	if err := p.SaveDate(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatal(err)
	}

	s := Sobriety{DateString: "2026-01-01", Reflect: true, Persistence: p}
	if err := s.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	draft := p.LoadDraft()
	if draft == "" {
		t.Fatal("expected a reflection draft")
	}
	if !strings.Contains(draft, "June 1, 2025") || !strings.Contains(draft, "January 1, 2026") {
		t.Errorf("draft should mention both dates, got:\n%s", draft)
	}
}

func TestSetWithoutPreviousDateStagesNoDraft(t *testing.T) {
	p := testStore()
	s := Sobriety{DateString: "2026-01-01", Reflect: true, Persistence: p}
	if err := s.Do(context.Background()); err != nil {
		t.Fatal(err)
	}
	if draft := p.LoadDraft(); draft != "" {
		t.Errorf("no previous date, but a draft was staged:\n%s", draft)
	}
}

func TestUnparsableDateIsRejected(t *testing.T) {
	p := testStore()
	s := Sobriety{DateString: "next tuesday", Persistence: p}
	if err := s.Do(context.Background()); err == nil {
		t.Fatal("expected an error for an unparsable date")
	}
	if p.LoadDate() != nil {
		t.Error("a rejected date must not be stored")
	}
}
