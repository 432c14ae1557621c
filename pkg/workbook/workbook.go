// Package workbook holds the static exercise catalog: categories, topics,
// and the question-key scheme responses are filed under. The catalog is
// read-only data; answers live in the store, keyed by Topic.QuestionKeys.
package workbook

import (
	"fmt"
	"strings"
)

// Section groups related questions inside a structured topic.
type Section struct {
	Title     string
	Questions []string
}

// Topic is one exercise. Flat topics carry a single Prompt and answer under
// their own ID; structured topics carry Sections whose questions each get a
// composite key.
type Topic struct {
	ID       string
	Title    string
	Quote    string
	Prompt   string
	Sections []Section
}

// Category is a workbook chapter.
type Category struct {
	ID          string
	Title       string
	Description string
	Topics      []Topic
}

// QuestionKeys returns every response key belonging to the topic. Flat
// topics answer under the topic id itself; sectioned topics key each
// question as <topic>-<first rune of section title>-<1-based index>. The
// scheme is part of the stored data contract and must not change.
func (t Topic) QuestionKeys() []string {
	if len(t.Sections) == 0 {
		return []string{t.ID}
	}
	keys := make([]string, 0, 8)
	for _, section := range t.Sections {
		keys = append(keys, t.SectionKeys(section)...)
	}
	return keys
}

// SectionKeys returns the response keys for one section's questions, in
// question order.
func (t Topic) SectionKeys(section Section) []string {
	prefix := t.ID
	for _, r := range section.Title {
		prefix = fmt.Sprintf("%s-%c", t.ID, r)
		break
	}
	keys := make([]string, 0, len(section.Questions))
	for i := range section.Questions {
		keys = append(keys, fmt.Sprintf("%s-%d", prefix, i+1))
	}
	return keys
}

// Answered counts the topic's questions holding a non-whitespace answer.
func (t Topic) Answered(responses map[string]string) int {
	n := 0
	for _, key := range t.QuestionKeys() {
		if strings.TrimSpace(responses[key]) != "" {
			n++
		}
	}
	return n
}

// Structured reports whether the topic uses sections.
func (t Topic) Structured() bool {
	return len(t.Sections) > 0
}

// Catalog returns the workbook chapters in display order.
func Catalog() []Category {
	return []Category{generalRecovery(), twelveSteps()}
}

// FindTopic locates a topic by id across all categories.
func FindTopic(id string) (Topic, bool) {
	for _, category := range Catalog() {
		for _, topic := range category.Topics {
			if topic.ID == id {
				return topic, true
			}
		}
	}
	return Topic{}, false
}

func generalRecovery() Category {
	return Category{
		ID:          "generalRecovery",
		Title:       "General Recovery Exercises",
		Description: "Core exercises for your recovery.",
		Topics: []Topic{
			{
				ID:     "understanding-addiction",
				Title:  "Understanding My Addiction",
				Prompt: "Reflect on when your substance use shifted from a choice to a compulsion. What did it give you at first, and what did it start taking?",
			},
			{
				ID:     "triggers-map",
				Title:  "Mapping My Triggers",
				Prompt: "List the people, places, feelings, and times of day that most reliably precede a craving. Which one surprised you?",
			},
			{
				ID:     "support-network",
				Title:  "My Support Network",
				Prompt: "Who can you call at 2am? Write down the names, and next to each, what makes that person safe to reach.",
			},
			{
				ID:     "gratitude-practice",
				Title:  "A Gratitude Practice",
				Prompt: "Describe three ordinary moments from this week that you would have missed while using.",
			},
		},
	}
}

func twelveSteps() Category {
	return Category{
		ID:          "twelveSteps",
		Title:       "12-Step Workbook",
		Description: "A guide to working the 12 Steps with written inventory.",
		Topics: []Topic{
			{
				ID:    "step-1",
				Title: "Step 1: Honesty",
				Quote: "We admitted we were powerless over our addiction - that our lives had become unmanageable.",
				Sections: []Section{
					{
						Title: "A. The Problem of Powerlessness",
						Questions: []string{
							"1. In your own words, what does powerlessness mean to you?",
							"2. Describe a time you swore off using and could not keep the promise.",
							"3. What have you tried to control your use, and how did each attempt end?",
						},
					},
					{
						Title: "B. Unmanageability",
						Questions: []string{
							"1. Which areas of your life (work, family, health, money) became unmanageable?",
							"2. What did admitting unmanageability cost your pride, and what did it buy you?",
						},
					},
				},
			},
			{
				ID:    "step-2",
				Title: "Step 2: Hope",
				Quote: "Came to believe that a Power greater than ourselves could restore us to sanity.",
				Sections: []Section{
					{
						Title: "A. Coming to Believe",
						Questions: []string{
							"1. What does a Power greater than yourself look like for you today?",
							"2. Where have you already seen that power at work in your recovery?",
						},
					},
					{
						Title: "B. Restoration",
						Questions: []string{
							"1. What would being restored to sanity change about your daily life?",
							"2. What insane decision did the addiction make reasonable at the time?",
						},
					},
				},
			},
			{
				ID:    "step-3",
				Title: "Step 3: Surrender",
				Quote: "Made a decision to turn our will and our lives over to the care of God as we understood Him.",
				Sections: []Section{
					{
						Title: "A. The Decision",
						Questions: []string{
							"1. What parts of your will are you still holding back, and why?",
							"2. Describe the difference between giving up and surrendering.",
						},
					},
				},
			},
			{
				ID:    "step-4",
				Title: "Step 4: Inventory",
				Quote: "Made a searching and fearless moral inventory of ourselves.",
				Sections: []Section{
					{
						Title: "A. Resentments",
						Questions: []string{
							"1. List your three oldest resentments. What part of your security did each threaten?",
							"2. For one resentment, what was your part in it?",
						},
					},
					{
						Title: "B. Fears",
						Questions: []string{
							"1. Name the fears that drove your using. Which remain today?",
							"2. What would you do this month if the strongest fear were gone?",
						},
					},
				},
			},
		},
	}
}

// Progress summarizes completion over a set of topics.
type Progress struct {
	Completed  int
	Total      int
	Percentage int
}

// CategoryProgress counts completed topics in one category given the set of
// completed topic ids.
func CategoryProgress(c Category, completed map[string]bool) Progress {
	p := Progress{Total: len(c.Topics)}
	for _, topic := range c.Topics {
		if completed[topic.ID] {
			p.Completed++
		}
	}
	if p.Total > 0 {
		p.Percentage = int(float64(p.Completed)/float64(p.Total)*100 + 0.5)
	}
	return p
}

// OverallProgress counts completed topics across the whole catalog.
func OverallProgress(completed map[string]bool) Progress {
	p := Progress{}
	for _, category := range Catalog() {
		cp := CategoryProgress(category, completed)
		p.Completed += cp.Completed
		p.Total += cp.Total
	}
	if p.Total > 0 {
		p.Percentage = int(float64(p.Completed)/float64(p.Total)*100 + 0.5)
	}
	return p
}
