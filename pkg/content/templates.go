package content

import (
	"fmt"
	"time"
)

// JournalTemplate is a reusable prompt skeleton the journal pre-fills.
type JournalTemplate struct {
	ID       string
	Name     string
	Template string
}

var JournalTemplates = []JournalTemplate{
	{
		ID:       "gratitude",
		Name:     "3-Part Gratitude Check",
		Template: "Today I am grateful for:\n1. (Person/Relationship)\n2. (Experience/Event)\n3. (Small Detail)\n\nHow did this feeling of gratitude influence my day?",
	},
	{
		ID:       "halt",
		Name:     "The H.A.L.T. Check",
		Template: "Before reacting or craving, I will check:\n\n**H**ungry? (Yes/No): \n**A**ngry? (Yes/No): \n**L**onely? (Yes/No): \n**T**ired? (Yes/No): \n\nWhat action did I take to meet my true need?",
	},
	{
		ID:       "resentment",
		Name:     "Resentment Filter",
		Template: "Today I felt resentful toward: (Person/Situation)\n\nWhat did they do? \n\nWhat part of my self-esteem (pride, security, ambition) did this threaten? \n\nWhat is my part in this situation?",
	},
	{
		ID:       "step_10",
		Name:     "Step 10 Spot Check",
		Template: "Where was I wrong today? (Small admissions of fault or mistake)\n\nWas I mindful of others?\n\nDid I practice honesty in a difficult situation?\n\nIf I was wrong, did I promptly admit it?",
	},
}

// FindTemplate returns the template with the given id.
func FindTemplate(id string) (JournalTemplate, bool) {
	for _, t := range JournalTemplates {
		if t.ID == id {
			return t, true
		}
	}
	return JournalTemplate{}, false
}

// CopingReflection pre-fills a journal entry from a coping card.
func CopingReflection(card CopingCard) string {
	return fmt.Sprintf("Coping Card Reflection: %q\n\n**Strategy:** %s\n\n**My Application Plan:** (How will I use this skill the next time I have a craving?)\n\n", card.Title, card.Description)
}

// DateChangeReflection pre-fills a journal entry when the sobriety date is
// adjusted; reflecting on why the date moved is part of the practice.
func DateChangeReflection(previous, updated time.Time) string {
	const layout = "January 2, 2006"
	return fmt.Sprintf("Sobriety Date Change Reflection (%s):\n\n**Previous Date:** %s\n**New Date:** %s\n\nI am changing my date because:\n\nThis decision is important because:",
		time.Now().Format(layout), previous.Format(layout), updated.Format(layout))
}
