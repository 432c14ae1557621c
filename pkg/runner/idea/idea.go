// Package idea provides the runner logic for AI-assisted journal drafts.
package idea

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/recovery/pkg/assist"
	"tableflip.dev/recovery/pkg/store"
)

// Idea asks the journaling helper for a draft and optionally stages it.
type Idea struct {
	Prompt string
	Save   bool

	Helper      assist.Helper
	Persistence *store.Store
}

func (n *Idea) Do(ctx context.Context) error {
	if n.Helper == nil {
		return errors.New("the journaling helper is not configured, set RECOVERY_GEMINI_API_KEY")
	}

	text, err := n.Helper.Suggest(ctx, n.Prompt)
	if err != nil {
		return err
	}

	fmt.Println("")
	fmt.Println(text)

	if n.Save {
		if n.Persistence == nil {
			return errors.New("can not save draft, no persistence")
		}
		if err := n.Persistence.SaveDraft(text); err != nil {
			return err
		}
		_, _ = color.New(color.Faint).Println(`Draft saved; continue it with "recovery journal write".`)
	}
	return nil
}
