// Package resources provides the runner logic for the read-only support
// content: facts, coping cards, literature excerpts, meeting links, and
// journal templates.
package resources

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/recovery/pkg/content"
	"tableflip.dev/recovery/pkg/printers"
)

// Fact prints one random recovery insight.
type Fact struct{}

func (n *Fact) Do(ctx context.Context) error {
	fmt.Println("")
	fmt.Println(content.RandomFact())
	return nil
}

// Coping prints the coping card deck, or one card by title.
type Coping struct {
	Title string
}

func (n *Coping) Do(ctx context.Context) error {
	fmt.Println("")
	pp := printers.PrettyPrint{}

	if n.Title != "" {
		card, ok := content.FindCopingCard(n.Title)
		if !ok {
			return fmt.Errorf("unknown coping card %q", n.Title)
		}
		pp.Title(card.Title)
		fmt.Println(card.Description)
		return nil
	}

	pp.Title("Coping Cards")
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.Wrap = true
	for _, card := range content.CopingCards {
		tbl.AddRow(bold.Sprint(card.Title), card.Description, faint.Sprint(card.Category))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	return nil
}

// Literature prints the recovery texts, or one work's excerpts by id.
type Literature struct {
	WorkID string
}

func (n *Literature) Do(ctx context.Context) error {
	fmt.Println("")
	pp := printers.PrettyPrint{}
	faint := color.New(color.Faint)

	if n.WorkID != "" {
		for _, work := range content.Literature {
			if work.ID != n.WorkID {
				continue
			}
			pp.Title(work.Title)
			_, _ = faint.Printf("full text: %s\n\n", work.PDFLink)
			for _, chapter := range work.Chapters {
				_, _ = color.New(color.Bold).Println(chapter.Title)
				fmt.Println(chapter.Content)
				fmt.Println("")
			}
			return nil
		}
		return fmt.Errorf("unknown work %q", n.WorkID)
	}

	pp.Title("Literature")
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, work := range content.Literature {
		tbl.AddRow(work.ID, work.Title, faint.Sprintf("%d excerpts", len(work.Chapters)))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	return nil
}

// Meetings prints fellowship meeting directories.
type Meetings struct{}

func (n *Meetings) Do(ctx context.Context) error {
	fmt.Println("")
	pp := printers.PrettyPrint{}
	pp.Title("Find a Meeting")

	faint := color.New(color.Faint)
	for _, m := range content.MeetingLinks {
		_, _ = color.New(color.Bold).Println(m.Name)
		fmt.Println(m.Description)
		fmt.Println(m.Link)
		_, _ = faint.Println(m.Instructions)
		fmt.Println("")
	}
	return nil
}

// Templates lists the journal templates, or prints one by id.
type Templates struct {
	ID string
}

func (n *Templates) Do(ctx context.Context) error {
	fmt.Println("")
	pp := printers.PrettyPrint{}

	if n.ID != "" {
		t, ok := content.FindTemplate(n.ID)
		if !ok {
			return fmt.Errorf("unknown template %q", n.ID)
		}
		pp.Title(t.Name)
		fmt.Println(t.Template)
		return nil
	}

	pp.Title("Journal Templates")
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, t := range content.JournalTemplates {
		tbl.AddRow(t.ID, t.Name)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	return nil
}
