// Package tip provides the runner logic for the one-time welcome tip.
package tip

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/recovery/pkg/content"
	"tableflip.dev/recovery/pkg/store"
)

// Tip shows the welcome tip until it is dismissed. Dismissal is sticky.
type Tip struct {
	Dismiss bool

	Persistence *store.Store
}

func (n *Tip) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not show tip, no persistence")
	}

	if n.Dismiss {
		if err := n.Persistence.SaveFlag(true); err != nil {
			return err
		}
		_, _ = color.New(color.Faint).Println("tip dismissed")
		return nil
	}

	fmt.Println("")
	if n.Persistence.LoadFlag() {
		_, _ = color.New(color.Faint).Println("(tip dismissed)")
		return nil
	}
	fmt.Println(content.WelcomeTip)
	return nil
}
