package repo

import (
	"strings"

	"tableflip.dev/recovery/pkg/store"
	"tableflip.dev/recovery/pkg/workbook"
)

// Workbook is the sparse question-key to answer-text repository. An absent
// key means unanswered; keys are only ever overwritten, never deleted.
type Workbook struct {
	store *store.Store
}

func NewWorkbook(s *store.Store) *Workbook {
	return &Workbook{store: s}
}

// Get returns the stored answer, or the empty string when unanswered.
func (w *Workbook) Get(questionKey string) string {
	return w.store.LoadMap(store.KeyWorkbook)[questionKey]
}

// Set merges the answer into the map and rewrites the whole document.
func (w *Workbook) Set(questionKey, text string) error {
	responses := w.store.LoadMap(store.KeyWorkbook)
	responses[questionKey] = text
	return w.store.SaveMap(store.KeyWorkbook, responses)
}

// Responses snapshots the full answer map.
func (w *Workbook) Responses() map[string]string {
	return w.store.LoadMap(store.KeyWorkbook)
}

// IsTopicComplete reports whether any of the topic's question keys holds a
// non-whitespace answer. Completion tracks engagement, not exhaustiveness;
// one real answer marks the topic done.
func (w *Workbook) IsTopicComplete(topic workbook.Topic) bool {
	responses := w.store.LoadMap(store.KeyWorkbook)
	for _, key := range topic.QuestionKeys() {
		if strings.TrimSpace(responses[key]) != "" {
			return true
		}
	}
	return false
}

// CompletedTopics returns the set of completed topic ids across the catalog.
func (w *Workbook) CompletedTopics() map[string]bool {
	responses := w.store.LoadMap(store.KeyWorkbook)
	completed := make(map[string]bool)
	for _, category := range workbook.Catalog() {
		for _, topic := range category.Topics {
			for _, key := range topic.QuestionKeys() {
				if strings.TrimSpace(responses[key]) != "" {
					completed[topic.ID] = true
					break
				}
			}
		}
	}
	return completed
}
