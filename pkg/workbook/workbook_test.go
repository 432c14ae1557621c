package workbook

import (
	"reflect"
	"testing"
)

func TestQuestionKeysFlatTopic(t *testing.T) {
	topic := Topic{ID: "understanding-addiction", Prompt: "Reflect..."}
	if got := topic.QuestionKeys(); !reflect.DeepEqual(got, []string{"understanding-addiction"}) {
		t.Fatalf("flat topic keys: %v", got)
	}
}

func TestQuestionKeysSectionedTopic(t *testing.T) {
	topic := Topic{
		ID: "step-1",
		Sections: []Section{
			{Title: "A. The Problem of Powerlessness", Questions: []string{"q1", "q2", "q3"}},
			{Title: "B. Unmanageability", Questions: []string{"q1", "q2"}},
		},
	}
	want := []string{"step-1-A-1", "step-1-A-2", "step-1-A-3", "step-1-B-1", "step-1-B-2"}
	if got := topic.QuestionKeys(); !reflect.DeepEqual(got, want) {
		t.Fatalf("sectioned topic keys: got %v want %v", got, want)
	}
}

func TestCatalogKeysAreUnique(t *testing.T) {
	seen := make(map[string]string)
	for _, category := range Catalog() {
		for _, topic := range category.Topics {
			for _, key := range topic.QuestionKeys() {
				if owner, ok := seen[key]; ok {
					t.Fatalf("key %q used by both %q and %q", key, owner, topic.ID)
				}
				seen[key] = topic.ID
			}
		}
	}
}

func TestFindTopic(t *testing.T) {
	if _, ok := FindTopic("step-1"); !ok {
		t.Fatal("step-1 should exist")
	}
	if _, ok := FindTopic("step-99"); ok {
		t.Fatal("step-99 should not exist")
	}
}

func TestProgressRollsUp(t *testing.T) {
	completed := map[string]bool{"step-1": true, "understanding-addiction": true}
	overall := OverallProgress(completed)
	if overall.Completed != 2 {
		t.Fatalf("completed = %d, want 2", overall.Completed)
	}
	if overall.Total != 8 {
		t.Fatalf("total = %d, want 8", overall.Total)
	}
	if overall.Percentage != 25 {
		t.Fatalf("percentage = %d, want 25", overall.Percentage)
	}
}
