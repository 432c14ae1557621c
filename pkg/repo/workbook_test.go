package repo

import (
	"testing"

	"tableflip.dev/recovery/pkg/store"
	"tableflip.dev/recovery/pkg/workbook"
)

func newTestWorkbook(t *testing.T) *Workbook {
	t.Helper()
	return NewWorkbook(store.New(store.NewMemory()))
}

func TestGetUnansweredIsEmpty(t *testing.T) {
	w := newTestWorkbook(t)
	if got := w.Get("step-1-A-1"); got != "" {
		t.Fatalf("unanswered key should read empty, got %q", got)
	}
}

func TestSetMergesWithoutDroppingSiblings(t *testing.T) {
	w := newTestWorkbook(t)
	if err := w.Set("step-1-A-1", "first answer"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := w.Set("step-1-A-2", "second answer"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := w.Get("step-1-A-1"); got != "first answer" {
		t.Fatalf("sibling answer lost: %q", got)
	}
	if len(w.Responses()) != 2 {
		t.Fatalf("responses = %v", w.Responses())
	}
}

func TestSetOverwrites(t *testing.T) {
	w := newTestWorkbook(t)
	if err := w.Set("triggers-map", "v1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := w.Set("triggers-map", "v2"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := w.Get("triggers-map"); got != "v2" {
		t.Fatalf("got %q want v2", got)
	}
}

func TestIsTopicCompleteAnyNonEmptyAnswer(t *testing.T) {
	w := newTestWorkbook(t)
	topic := workbook.Topic{
		ID: "t-A",
		Sections: []workbook.Section{
			{Title: "A", Questions: []string{"q1", "q2"}},
		},
	}

	if w.IsTopicComplete(topic) {
		t.Fatal("empty topic should not be complete")
	}

	if err := w.Set("t-A-A-1", "   "); err != nil {
		t.Fatalf("set: %v", err)
	}
	if w.IsTopicComplete(topic) {
		t.Fatal("whitespace-only answer should not complete a topic")
	}

	if err := w.Set("t-A-A-2", "one honest sentence"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !w.IsTopicComplete(topic) {
		t.Fatal("one non-empty answer should complete the topic")
	}
}

func TestCompletedTopicsAcrossCatalog(t *testing.T) {
	w := newTestWorkbook(t)
	if err := w.Set("step-1-B-1", "work fell apart"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := w.Set("gratitude-practice", "morning coffee, quiet"); err != nil {
		t.Fatalf("set: %v", err)
	}

	completed := w.CompletedTopics()
	if !completed["step-1"] || !completed["gratitude-practice"] {
		t.Fatalf("completed set wrong: %v", completed)
	}
	if completed["step-2"] {
		t.Fatal("step-2 should not be complete")
	}
}
