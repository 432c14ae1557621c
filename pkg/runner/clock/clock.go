// Package clock provides the runner logic for the full-screen sobriety
// counter.
package clock

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/recovery/pkg/store"
	"tableflip.dev/recovery/pkg/tui"
)

// Clock opens the ticking counter for the sobriety start date.
type Clock struct {
	Persistence *store.Store
}

func (n *Clock) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not show clock, no persistence")
	}
	date := n.Persistence.LoadDate()
	if date == nil {
		fmt.Println(`No sobriety date set yet. Start with "recovery begin".`)
		return nil
	}
	return tui.RunClock(*date)
}
