package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/recovery/pkg/glyph"
	"tableflip.dev/recovery/pkg/workbook"
)

// WorkbookStatus renders a per-topic progress table for every category in
// the catalog. A topic counts as complete once any of its questions holds a
// real answer.
func (pp *PrettyPrint) WorkbookStatus(categories []workbook.Category, responses map[string]string) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	completed := make(map[string]bool)
	for _, cat := range categories {
		for _, topic := range cat.Topics {
			if topic.Answered(responses) > 0 {
				completed[topic.ID] = true
			}
		}
	}

	for _, cat := range categories {
		pp.Title(cat.Title)

		tbl := uitable.New()
		tbl.Separator = "  "
		for _, topic := range cat.Topics {
			mark := glyph.Unanswered.String()
			if completed[topic.ID] {
				mark = glyph.Done.String()
			}
			answered := topic.Answered(responses)
			total := len(topic.QuestionKeys())
			tbl.AddRow(mark, topic.ID, topic.Title, faint.Sprintf("%d/%d", answered, total))
		}
		_, _ = fmt.Fprintln(color.Output, tbl)
		pp.NewLine()
	}

	overall := workbook.OverallProgress(completed)
	_, _ = bold.Printf("%d of %d topics complete (%d%%)\n", overall.Completed, overall.Total, overall.Percentage)
}

// Topic renders one topic's questions with their saved answers.
func (pp *PrettyPrint) Topic(topic workbook.Topic, responses map[string]string) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint, color.Italic)

	pp.Title(topic.Title)
	if topic.Quote != "" {
		_, _ = faint.Printf("%q\n", topic.Quote)
	}
	pp.NewLine()

	if !topic.Structured() {
		fmt.Println(topic.Prompt)
		pp.question(topic.ID, responses)
		pp.NewLine()
		return
	}

	for _, section := range topic.Sections {
		_, _ = bold.Println(section.Title)
		keys := topic.SectionKeys(section)
		for i, question := range section.Questions {
			fmt.Println(question)
			pp.question(keys[i], responses)
		}
		pp.NewLine()
	}
}

func (pp *PrettyPrint) question(key string, responses map[string]string) {
	faint := color.New(color.Faint)

	answer, ok := responses[key]
	mark := glyph.Unanswered.String()
	if ok && strings.TrimSpace(answer) != "" {
		mark = glyph.Done.String()
	}
	if strings.TrimSpace(answer) == "" {
		_, _ = faint.Printf("  %s [%s] unanswered\n", mark, key)
		return
	}
	fmt.Printf("  %s [%s] %s\n", mark, key, firstLine(answer))
}

// Legend prints the bullet key.
func (pp *PrettyPrint) Legend() {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Bullets"), bold.Sprint("Meaning"))
	for _, g := range glyph.DefaultGlyphs() {
		tbl.AddRow(g.Symbol, g.Meaning)
	}

	_, _ = fmt.Fprintln(color.Output, tbl)
}
