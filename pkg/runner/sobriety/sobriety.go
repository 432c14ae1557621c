// Package sobriety provides the runner logic for the sobriety start date:
// first-run onboarding, showing the counter, and moving the date.
package sobriety

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/recovery/pkg/content"
	"tableflip.dev/recovery/pkg/printers"
	"tableflip.dev/recovery/pkg/record"
	"tableflip.dev/recovery/pkg/store"
)

const layoutISO = "2006-01-02"

// Sobriety shows or updates the sobriety start date. Begin is the
// onboarding path: it refuses to overwrite an existing date. Setting a new
// date over an old one can stage a reflection draft; moving the date is
// part of the practice, not a reset button.
type Sobriety struct {
	Begin      bool
	DateString string
	Reflect    bool

	Persistence *store.Store
}

func (n *Sobriety) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not track sobriety, no persistence")
	}

	if n.DateString == "" && !n.Begin {
		return n.show()
	}

	when, err := n.parse()
	if err != nil {
		return err
	}

	previous := n.Persistence.LoadDate()
	if n.Begin && previous != nil {
		fmt.Println("")
		fmt.Println("Your journey is already underway.")
		pp := printers.PrettyPrint{}
		pp.Sober(*previous)
		return nil
	}

	if err := n.Persistence.SaveDate(when); err != nil {
		return err
	}

	fmt.Println("")
	pp := printers.PrettyPrint{}
	pp.Sober(when)

	if n.Begin {
		// Onboarding seeds the tip as visible; it stays until dismissed.
		if err := n.Persistence.SaveFlag(false); err != nil {
			return err
		}
		fmt.Println("")
		fmt.Println(content.WelcomeTip)
		fmt.Println(`Dismiss this tip with "recovery tip dismiss".`)
	}

	if n.Reflect && previous != nil && !previous.Equal(when) {
		if err := n.Persistence.SaveDraft(content.DateChangeReflection(*previous, when)); err != nil {
			return err
		}
		faint := color.New(color.Faint)
		_, _ = faint.Println(`A reflection draft is waiting; continue it with "recovery journal write".`)
	}

	return nil
}

func (n *Sobriety) show() error {
	date := n.Persistence.LoadDate()
	fmt.Println("")
	if date == nil {
		fmt.Println(`No sobriety date set yet. Start with "recovery begin".`)
		return nil
	}
	pp := printers.PrettyPrint{}
	pp.Sober(*date)
	return nil
}

func (n *Sobriety) parse() (time.Time, error) {
	if n.DateString == "" {
		// Begin with no explicit date starts the clock now.
		return time.Now().UTC().Truncate(time.Millisecond), nil
	}
	if t, err := time.Parse(layoutISO, n.DateString); err == nil {
		return t.UTC(), nil
	}
	t, err := record.ParseTime(n.DateString)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized date %q, want %s or ISO-8601", n.DateString, layoutISO)
	}
	return t.UTC(), nil
}
