// Package write provides the runner logic for the interactive journal
// editor.
package write

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/recovery/pkg/content"
	"tableflip.dev/recovery/pkg/printers"
	"tableflip.dev/recovery/pkg/repo"
	"tableflip.dev/recovery/pkg/store"
	"tableflip.dev/recovery/pkg/tui"
)

// Write opens the editor seeded from, in order: an explicit template, a
// coping card reflection, or the pending draft. A submitted entry lands in
// the journal and clears the draft; anything else stays staged as a draft.
type Write struct {
	TemplateID string
	CopingCard string

	Persistence *store.Store
}

func (n *Write) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not write, no persistence")
	}

	initial, err := n.seed()
	if err != nil {
		return err
	}

	result, err := tui.RunWrite(n.Persistence, initial)
	if err != nil {
		return err
	}

	if !result.Submitted {
		if strings.TrimSpace(result.Text) != "" {
			_, _ = color.New(color.Faint).Println("draft kept")
		}
		return nil
	}
	if strings.TrimSpace(result.Text) == "" {
		_, _ = color.New(color.Faint).Println("nothing to save")
		return nil
	}

	list := repo.NewList(n.Persistence, repo.Journal)
	if _, err := list.Create(result.Text); err != nil {
		return err
	}
	if err := n.Persistence.ClearDraft(); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title(repo.Journal.Name)
	pp.Records(repo.Journal, list.LoadAll()...)

	return nil
}

func (n *Write) seed() (string, error) {
	if n.TemplateID != "" {
		t, ok := content.FindTemplate(n.TemplateID)
		if !ok {
			return "", fmt.Errorf("unknown template %q", n.TemplateID)
		}
		return t.Template, nil
	}
	if n.CopingCard != "" {
		card, ok := content.FindCopingCard(n.CopingCard)
		if !ok {
			return "", fmt.Errorf("unknown coping card %q", n.CopingCard)
		}
		return content.CopingReflection(card), nil
	}
	return n.Persistence.LoadDraft(), nil
}
